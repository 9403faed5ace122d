package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM, no CHAR, no DECIMAL) ---

type userSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	CNP            string         `gorm:"size:13;column:cnp;uniqueIndex"`
	CreditScore    int            `gorm:"column:credit_score"`
	RiskScore      int            `gorm:"column:risk_score"`
	ROI            string         `gorm:"column:roi"`
	GemBalance     int            `gorm:"column:gem_balance"`
	NoOffenses     int            `gorm:"column:no_offenses"`
	Income         string         `gorm:"column:income"`
	PaidBillShares int            `gorm:"column:paid_bill_shares"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type loanSQLite struct {
	ID                       uint64         `gorm:"primaryKey;column:id"`
	LoanID                   string         `gorm:"size:32;column:loan_id"`
	UserCNP                  string         `gorm:"size:13;column:user_cnp"`
	Amount                   string         `gorm:"column:amount"`
	ApplicationDate          time.Time      `gorm:"column:application_date"`
	RepaymentDate            time.Time      `gorm:"column:repayment_date"`
	InterestRate             string         `gorm:"column:interest_rate"`
	NumberOfMonths           int            `gorm:"column:number_of_months"`
	MonthlyPaymentAmount     string         `gorm:"column:monthly_payment_amount"`
	MonthlyPaymentsCompleted int            `gorm:"column:monthly_payments_completed"`
	RepaidAmount             string         `gorm:"column:repaid_amount"`
	Penalty                  string         `gorm:"column:penalty"`
	Status                   string         `gorm:"type:text;column:status"` // ← no enum
	CreatedAt                time.Time      `gorm:"column:created_at"`
	UpdatedAt                time.Time      `gorm:"column:updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type loanRequestSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	RequestID       string         `gorm:"size:32;column:request_id"`
	UserCNP         string         `gorm:"size:13;column:user_cnp"`
	Amount          string         `gorm:"column:amount"`
	ApplicationDate time.Time      `gorm:"column:application_date"`
	RepaymentDate   time.Time      `gorm:"column:repayment_date"`
	Status          string         `gorm:"type:text;column:status"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanRequestSQLite) TableName() string { return "loan_requests" }

type billSplitReportSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	ReportID          string    `gorm:"size:32;column:report_id"`
	ReportedUserCNP   string    `gorm:"size:13;column:reported_user_cnp"`
	BillShare         string    `gorm:"column:bill_share"`
	DateOfTransaction time.Time `gorm:"column:date_of_transaction"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (billSplitReportSQLite) TableName() string { return "bill_split_reports" }

type transactionSQLite struct {
	ID      uint64    `gorm:"primaryKey;column:id"`
	UserCNP string    `gorm:"size:13;column:user_cnp"`
	Amount  string    `gorm:"column:amount"`
	Kind    string    `gorm:"size:16;column:kind"`
	Date    time.Time `gorm:"column:date"`
}

func (transactionSQLite) TableName() string { return "transactions" }

type chatReportSQLite struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	ReportID        string    `gorm:"size:32;column:report_id"`
	ReportedUserCNP string    `gorm:"size:13;column:reported_user_cnp"`
	SubmitterCNP    string    `gorm:"size:13;column:submitter_cnp"`
	Reason          string    `gorm:"type:text;column:reason"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (chatReportSQLite) TableName() string { return "chat_reports" }

type investmentSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	InvestmentID   string    `gorm:"size:32;column:investment_id"`
	InvestorCNP    string    `gorm:"size:13;column:investor_cnp"`
	AmountInvested string    `gorm:"column:amount_invested"`
	AmountReturned string    `gorm:"column:amount_returned"`
	InvestmentDate time.Time `gorm:"column:investment_date"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type scoreEventSQLite struct {
	ID      uint64    `gorm:"primaryKey;column:id"`
	UserCNP string    `gorm:"size:13;column:user_cnp"`
	Score   int       `gorm:"column:score"`
	Reason  string    `gorm:"size:64;column:reason"`
	At      time.Time `gorm:"column:at"`
}

func (scoreEventSQLite) TableName() string { return "credit_score_events" }

type activitySQLite struct {
	ID      uint64    `gorm:"primaryKey;column:id"`
	UserCNP string    `gorm:"size:13;column:user_cnp"`
	Amount  int       `gorm:"column:amount"`
	Detail  string    `gorm:"size:128;column:detail"`
	At      time.Time `gorm:"column:at"`
}

func (activitySQLite) TableName() string { return "activity_log" }

type tipEventSQLite struct {
	ID      uint64    `gorm:"primaryKey;column:id"`
	UserCNP string    `gorm:"size:13;column:user_cnp"`
	Bracket string    `gorm:"size:16;column:bracket"`
	At      time.Time `gorm:"column:at"`
}

func (tipEventSQLite) TableName() string { return "tip_events" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas. The repositories under test still query through the domain models;
// only the DDL differs.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userSQLite{},
		&loanSQLite{},
		&loanRequestSQLite{},
		&billSplitReportSQLite{},
		&transactionSQLite{},
		&chatReportSQLite{},
		&investmentSQLite{},
		&scoreEventSQLite{},
		&activitySQLite{},
		&tipEventSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
