package investmentmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "credscore-service/internal/domain/investment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetAllHistoryFn    func(ctx context.Context) ([]domain.Investment, error)
	GetByInvestorCNPFn func(ctx context.Context, cnp string) ([]domain.Investment, error)
	AddFn              func(ctx context.Context, inv *domain.Investment) error
	UpdateReturnedFn   func(ctx context.Context, investmentID, investorCNP string, amountReturned decimal.Decimal) error
}

func (m *Repo) GetAllHistory(ctx context.Context) ([]domain.Investment, error) {
	if m.GetAllHistoryFn != nil {
		return m.GetAllHistoryFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByInvestorCNP(ctx context.Context, cnp string) ([]domain.Investment, error) {
	if m.GetByInvestorCNPFn != nil {
		return m.GetByInvestorCNPFn(ctx, cnp)
	}
	return nil, nil
}

func (m *Repo) Add(ctx context.Context, inv *domain.Investment) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, inv)
	}
	return nil
}

func (m *Repo) UpdateReturned(ctx context.Context, investmentID, investorCNP string, amountReturned decimal.Decimal) error {
	if m.UpdateReturnedFn != nil {
		return m.UpdateReturnedFn(ctx, investmentID, investorCNP, amountReturned)
	}
	return nil
}
