package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	invDomain "credscore-service/internal/domain/investment"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) GetAllHistory(ctx context.Context) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).Order("investment_date ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) GetByInvestorCNP(ctx context.Context, cnp string) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_cnp = ?", cnp).
		Order("investment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) Add(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) UpdateReturned(ctx context.Context, investmentID, investorCNP string, amountReturned decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&invDomain.Investment{}).
		Where("investment_id = ? AND investor_cnp = ?", investmentID, investorCNP).
		Update("amount_returned", amountReturned)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
