package mysql

import (
	"context"

	"gorm.io/gorm"

	crDomain "credscore-service/internal/domain/chatreport"
)

type ChatReportRepository struct{ db *gorm.DB }

func NewChatReportRepository(db *gorm.DB) *ChatReportRepository {
	return &ChatReportRepository{db: db}
}

func (r *ChatReportRepository) GetAll(ctx context.Context) ([]crDomain.Report, error) {
	var out []crDomain.Report
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *ChatReportRepository) GetByReportID(ctx context.Context, reportID string) (*crDomain.Report, error) {
	var out crDomain.Report
	res := r.db.WithContext(ctx).Where("report_id = ?", reportID).First(&out)
	return &out, res.Error
}

func (r *ChatReportRepository) Delete(ctx context.Context, reportID string) error {
	return r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Delete(&crDomain.Report{}).Error
}
