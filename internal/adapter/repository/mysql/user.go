package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "credscore-service/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByCNP(ctx context.Context, cnp string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("cnp = ?", cnp).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetAll(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// ApplyPunishment is the store-side punish capability: one transactional
// write that floors the gem balance at zero and bumps the offense count.
func (r *UserRepository) ApplyPunishment(ctx context.Context, cnp string, gemPenalty, offenseDelta int) (*userDomain.User, error) {
	var out userDomain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cnp = ?", cnp).First(&out).Error; err != nil {
			return err
		}
		out.GemBalance -= gemPenalty
		if out.GemBalance < 0 {
			out.GemBalance = 0
		}
		out.NoOffenses += offenseDelta
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
