package usermock

import (
	"context"

	domain "credscore-service/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	GetByCNPFn func(ctx context.Context, cnp string) (*domain.User, error)
	GetAllFn   func(ctx context.Context) ([]domain.User, error)
	SaveFn     func(ctx context.Context, u *domain.User) error
}

func (m *Repo) GetByCNP(ctx context.Context, cnp string) (*domain.User, error) {
	if m.GetByCNPFn != nil {
		return m.GetByCNPFn(ctx, cnp)
	}
	return nil, context.Canceled
}

func (m *Repo) GetAll(ctx context.Context) ([]domain.User, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

// PunishingRepo additionally satisfies domain.PunishmentApplier, for tests
// exercising the store-side punish capability.
type PunishingRepo struct {
	Repo
	ApplyPunishmentFn func(ctx context.Context, cnp string, gemPenalty, offenseDelta int) (*domain.User, error)
}

func (m *PunishingRepo) ApplyPunishment(ctx context.Context, cnp string, gemPenalty, offenseDelta int) (*domain.User, error) {
	if m.ApplyPunishmentFn != nil {
		return m.ApplyPunishmentFn(ctx, cnp, gemPenalty, offenseDelta)
	}
	return nil, context.Canceled
}
