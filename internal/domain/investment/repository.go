package investment

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	GetAllHistory(ctx context.Context) ([]Investment, error)
	GetByInvestorCNP(ctx context.Context, cnp string) ([]Investment, error)
	Add(ctx context.Context, inv *Investment) error
	// UpdateReturned closes a position owned by investorCNP.
	UpdateReturned(ctx context.Context, investmentID, investorCNP string, amountReturned decimal.Decimal) error
}
