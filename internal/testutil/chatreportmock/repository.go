package chatreportmock

import (
	"context"

	domain "credscore-service/internal/domain/chatreport"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetAllFn        func(ctx context.Context) ([]domain.Report, error)
	GetByReportIDFn func(ctx context.Context, reportID string) (*domain.Report, error)
	DeleteFn        func(ctx context.Context, reportID string) error
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

func (m *Repo) Delete(ctx context.Context, reportID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, reportID)
	}
	return nil
}
