package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrRequestNotFound   = errors.New("loan request not found")
	ErrInvalidInput      = errors.New("invalid loan input")
	ErrInvalidTerm       = errors.New("loan term must span at least one whole month")
	ErrAlreadySolved     = errors.New("loan request already solved")
	ErrInvalidTransition = errors.New("invalid loan state transition")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

type Loan struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID string `gorm:"column:loan_id;size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	// UserCNP is the borrower's national id.
	UserCNP         string          `gorm:"column:user_cnp;type:char(13);index:idx_loans_user_cnp" json:"user_cnp"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	ApplicationDate time.Time       `gorm:"column:application_date;type:date" json:"application_date"`
	RepaymentDate   time.Time       `gorm:"column:repayment_date;type:date" json:"repayment_date"`
	// InterestRate is a percentage derived once at creation, never recomputed.
	InterestRate             decimal.Decimal `gorm:"column:interest_rate;type:decimal(10,4)" json:"interest_rate"`
	NumberOfMonths           int             `gorm:"column:number_of_months" json:"number_of_months"`
	MonthlyPaymentAmount     decimal.Decimal `gorm:"column:monthly_payment_amount;type:decimal(18,2)" json:"monthly_payment_amount"`
	MonthlyPaymentsCompleted int             `gorm:"column:monthly_payments_completed;not null;default:0" json:"monthly_payments_completed"`
	RepaidAmount             decimal.Decimal `gorm:"column:repaid_amount;type:decimal(18,2);not null;default:0" json:"repaid_amount"`
	Penalty                  decimal.Decimal `gorm:"column:penalty;type:decimal(18,2);not null;default:0" json:"penalty"`
	Status                   Status          `gorm:"column:status;type:enum('active','overdue','completed');default:'active'" json:"status"`
	CreatedAt                time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt                gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

type RequestStatus string

const (
	RequestUnsolved RequestStatus = "unsolved"
	RequestSolved   RequestStatus = "solved"
)

type Request struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	RequestID       string          `gorm:"column:request_id;size:32;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	UserCNP         string          `gorm:"column:user_cnp;type:char(13);index" json:"user_cnp"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	ApplicationDate time.Time       `gorm:"column:application_date;type:date" json:"application_date"`
	RepaymentDate   time.Time       `gorm:"column:repayment_date;type:date" json:"repayment_date"`
	Status          RequestStatus   `gorm:"column:status;type:enum('unsolved','solved');default:'unsolved'" json:"status"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

func (Request) TableName() string { return "loan_requests" }
