package mysql

import (
	"context"

	"gorm.io/gorm"

	histDomain "credscore-service/internal/domain/history"
)

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) AppendScoreEvent(ctx context.Context, e *histDomain.CreditScoreEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) AppendActivity(ctx context.Context, e *histDomain.ActivityLogEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) AddTip(ctx context.Context, e *histDomain.TipEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) CountTips(ctx context.Context, cnp string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&histDomain.TipEvent{}).
		Where("user_cnp = ?", cnp).
		Count(&n)
	return n, res.Error
}
