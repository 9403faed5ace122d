package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	bsDomain "credscore-service/internal/domain/billsplit"
)

type BillSplitRepository struct{ db *gorm.DB }

func NewBillSplitRepository(db *gorm.DB) *BillSplitRepository {
	return &BillSplitRepository{db: db}
}

func (r *BillSplitRepository) GetAll(ctx context.Context) ([]bsDomain.Report, error) {
	var out []bsDomain.Report
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *BillSplitRepository) GetByReportID(ctx context.Context, reportID string) (*bsDomain.Report, error) {
	var out bsDomain.Report
	res := r.db.WithContext(ctx).Where("report_id = ?", reportID).First(&out)
	return &out, res.Error
}

func (r *BillSplitRepository) Add(ctx context.Context, rep *bsDomain.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *BillSplitRepository) Save(ctx context.Context, rep *bsDomain.Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *BillSplitRepository) Delete(ctx context.Context, reportID string) error {
	return r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Delete(&bsDomain.Report{}).Error
}

// SumCreditsSince totals inbound credits for the user from the given date on.
func (r *BillSplitRepository) SumCreditsSince(ctx context.Context, cnp string, since time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	res := r.db.WithContext(ctx).
		Model(&bsDomain.Transaction{}).
		Select("SUM(amount)").
		Where("user_cnp = ? AND kind = ? AND date >= ?", cnp, bsDomain.TransactionCredit, since).
		Scan(&sum)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *BillSplitRepository) CountTransfersSince(ctx context.Context, cnp string, since time.Time) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&bsDomain.Transaction{}).
		Where("user_cnp = ? AND kind = ? AND date >= ?", cnp, bsDomain.TransactionTransfer, since).
		Count(&n)
	return n, res.Error
}
