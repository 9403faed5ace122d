package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "credscore-service/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *LoanRepository) Tx(ctx context.Context, fn func(repo loanDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanRepository{db: tx})
	})
}

func (r *LoanRepository) GetAll(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) GetByUserCNP(ctx context.Context, cnp string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Where("user_cnp = ?", cnp).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) Add(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) Delete(ctx context.Context, loanID string) error {
	return r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&loanDomain.Loan{}).Error
}

type LoanRequestRepository struct{ db *gorm.DB }

func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepository {
	return &LoanRequestRepository{db: db}
}

func (r *LoanRequestRepository) GetAll(ctx context.Context) ([]loanDomain.Request, error) {
	var out []loanDomain.Request
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanRequestRepository) GetUnsolved(ctx context.Context) ([]loanDomain.Request, error) {
	var out []loanDomain.Request
	res := r.db.WithContext(ctx).
		Where("status = ?", loanDomain.RequestUnsolved).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*loanDomain.Request, error) {
	var out loanDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) MarkSolved(ctx context.Context, requestID string) error {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Request{}).
		Where("request_id = ?", requestID).
		Update("status", loanDomain.RequestSolved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LoanRequestRepository) Delete(ctx context.Context, requestID string) error {
	return r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Delete(&loanDomain.Request{}).Error
}
