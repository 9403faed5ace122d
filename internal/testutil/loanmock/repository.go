package loanmock

import (
	"context"

	domain "credscore-service/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetAllFn       func(ctx context.Context) ([]domain.Loan, error)
	GetByUserCNPFn func(ctx context.Context, cnp string) ([]domain.Loan, error)
	GetByLoanIDFn  func(ctx context.Context, loanID string) (*domain.Loan, error)
	AddFn          func(ctx context.Context, l *domain.Loan) error
	SaveFn         func(ctx context.Context, l *domain.Loan) error
	DeleteFn       func(ctx context.Context, loanID string) error
}

func (m *Repo) GetAll(ctx context.Context) ([]domain.Loan, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByUserCNP(ctx context.Context, cnp string) ([]domain.Loan, error) {
	if m.GetByUserCNPFn != nil {
		return m.GetByUserCNPFn(ctx, cnp)
	}
	return nil, nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) Add(ctx context.Context, l *domain.Loan) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, loanID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, loanID)
	}
	return nil
}

// RequestRepo is a function-backed mock that satisfies domain.RequestRepository.
type RequestRepo struct {
	GetAllFn         func(ctx context.Context) ([]domain.Request, error)
	GetUnsolvedFn    func(ctx context.Context) ([]domain.Request, error)
	GetByRequestIDFn func(ctx context.Context, requestID string) (*domain.Request, error)
	MarkSolvedFn     func(ctx context.Context, requestID string) error
	DeleteFn         func(ctx context.Context, requestID string) error
}

func (m *RequestRepo) GetAll(ctx context.Context) ([]domain.Request, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, nil
}

func (m *RequestRepo) GetUnsolved(ctx context.Context) ([]domain.Request, error) {
	if m.GetUnsolvedFn != nil {
		return m.GetUnsolvedFn(ctx)
	}
	return nil, nil
}

func (m *RequestRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *RequestRepo) MarkSolved(ctx context.Context, requestID string) error {
	if m.MarkSolvedFn != nil {
		return m.MarkSolvedFn(ctx, requestID)
	}
	return nil
}

func (m *RequestRepo) Delete(ctx context.Context, requestID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, requestID)
	}
	return nil
}
