package chatreport

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Report, error)
	GetByReportID(ctx context.Context, reportID string) (*Report, error)
	Delete(ctx context.Context, reportID string) error
}
