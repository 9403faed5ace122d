package loan

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Loan, error)
	GetByUserCNP(ctx context.Context, cnp string) ([]Loan, error)
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	Add(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, loanID string) error
}

type RequestRepository interface {
	GetAll(ctx context.Context) ([]Request, error)
	GetUnsolved(ctx context.Context) ([]Request, error)
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	MarkSolved(ctx context.Context, requestID string) error
	Delete(ctx context.Context, requestID string) error
}
