package billsplitmock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "credscore-service/internal/domain/billsplit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetAllFn              func(ctx context.Context) ([]domain.Report, error)
	GetByReportIDFn       func(ctx context.Context, reportID string) (*domain.Report, error)
	AddFn                 func(ctx context.Context, r *domain.Report) error
	SaveFn                func(ctx context.Context, r *domain.Report) error
	DeleteFn              func(ctx context.Context, reportID string) error
	SumCreditsSinceFn     func(ctx context.Context, cnp string, since time.Time) (decimal.Decimal, error)
	CountTransfersSinceFn func(ctx context.Context, cnp string, since time.Time) (int64, error)
}

func (m *Repo) GetAll(ctx context.Context) ([]domain.Report, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByReportID(ctx context.Context, reportID string) (*domain.Report, error) {
	if m.GetByReportIDFn != nil {
		return m.GetByReportIDFn(ctx, reportID)
	}
	return nil, context.Canceled
}

func (m *Repo) Add(ctx context.Context, r *domain.Report) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Report) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, reportID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, reportID)
	}
	return nil
}

func (m *Repo) SumCreditsSince(ctx context.Context, cnp string, since time.Time) (decimal.Decimal, error) {
	if m.SumCreditsSinceFn != nil {
		return m.SumCreditsSinceFn(ctx, cnp, since)
	}
	return decimal.Zero, nil
}

func (m *Repo) CountTransfersSince(ctx context.Context, cnp string, since time.Time) (int64, error) {
	if m.CountTransfersSinceFn != nil {
		return m.CountTransfersSinceFn(ctx, cnp, since)
	}
	return 0, nil
}
