package billsplit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Report, error)
	GetByReportID(ctx context.Context, reportID string) (*Report, error)
	Add(ctx context.Context, r *Report) error
	Save(ctx context.Context, r *Report) error
	Delete(ctx context.Context, reportID string) error

	// Helper reads used only by the penalty engine.
	SumCreditsSince(ctx context.Context, cnp string, since time.Time) (decimal.Decimal, error)
	CountTransfersSince(ctx context.Context, cnp string, since time.Time) (int64, error)
}
