package billsplit

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("bill split report not found")
	ErrInvalidInput = errors.New("invalid bill split input")
)

// PaymentTermDays is the fixed settlement term for a bill share.
const PaymentTermDays = 30

// Report is one overdue bill-split complaint against a user. Deleted once
// solved.
type Report struct {
	ID                uint64          `gorm:"primaryKey;column:id" json:"-"`
	ReportID          string          `gorm:"column:report_id;size:32;uniqueIndex:ux_bill_split_reports_report_id" json:"report_id"`
	ReportedUserCNP   string          `gorm:"column:reported_user_cnp;type:char(13);index" json:"reported_user_cnp"`
	BillShare         decimal.Decimal `gorm:"column:bill_share;type:decimal(18,2)" json:"bill_share"`
	DateOfTransaction time.Time       `gorm:"column:date_of_transaction;type:date" json:"date_of_transaction"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Report) TableName() string { return "bill_split_reports" }

// Transaction is the account-movement history the penalty multipliers read
// (could-have-paid, frequent-transfers). Only this engine queries it.
type Transaction struct {
	ID      uint64          `gorm:"primaryKey;column:id" json:"-"`
	UserCNP string          `gorm:"column:user_cnp;type:char(13);index:idx_transactions_user_date" json:"user_cnp"`
	Amount  decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	// Kind distinguishes inbound credits from outbound transfers.
	Kind string    `gorm:"column:kind;size:16" json:"kind"`
	Date time.Time `gorm:"column:date;index:idx_transactions_user_date" json:"date"`
}

func (Transaction) TableName() string { return "transactions" }

const (
	TransactionCredit   = "credit"
	TransactionTransfer = "transfer"
)
