package user

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid user input")
	// ErrZeroIncome guards every formula that divides by income.
	ErrZeroIncome = errors.New("user income must be positive")
)

type User struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// CNP is the national-id string used as the public key everywhere.
	CNP            string          `gorm:"column:cnp;type:char(13);not null;uniqueIndex:ux_users_cnp" json:"cnp"`
	CreditScore    int             `gorm:"column:credit_score;not null;default:300" json:"credit_score"`
	RiskScore      int             `gorm:"column:risk_score;not null;default:50" json:"risk_score"`
	ROI            decimal.Decimal `gorm:"column:roi;type:decimal(10,4);not null;default:1" json:"roi"`
	GemBalance     int             `gorm:"column:gem_balance;not null;default:0" json:"gem_balance"`
	NoOffenses     int             `gorm:"column:no_offenses;not null;default:0" json:"no_offenses"`
	Income         decimal.Decimal `gorm:"column:income;type:decimal(18,2);not null" json:"income"`
	PaidBillShares int             `gorm:"column:paid_bill_shares;not null;default:0" json:"paid_bill_shares"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }
