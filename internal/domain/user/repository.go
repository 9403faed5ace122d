package user

import "context"

type Repository interface {
	GetByCNP(ctx context.Context, cnp string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, u *User) error
}

// PunishmentApplier is an optional capability a Repository may implement to
// apply a chat punishment in one store-side write instead of the generic
// read-modify-write fallback.
type PunishmentApplier interface {
	ApplyPunishment(ctx context.Context, cnp string, gemPenalty, offenseDelta int) (*User, error)
}
