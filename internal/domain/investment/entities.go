package investment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("investment not found")

// Investment is an immutable trade-history record. The scoring engine only
// reads it; closing an investment happens elsewhere.
type Investment struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID   string          `gorm:"column:investment_id;size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	InvestorCNP    string          `gorm:"column:investor_cnp;type:char(13);index:idx_investments_investor" json:"investor_cnp"`
	AmountInvested decimal.Decimal `gorm:"column:amount_invested;type:decimal(18,2)" json:"amount_invested"`
	// AmountReturned is -1 while the position is still open.
	AmountReturned decimal.Decimal `gorm:"column:amount_returned;type:decimal(18,2);default:-1" json:"amount_returned"`
	InvestmentDate time.Time       `gorm:"column:investment_date" json:"investment_date"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Investment) TableName() string { return "investments" }

// Open reports whether the position has not been closed yet (sentinel -1).
func (i Investment) Open() bool { return i.AmountReturned.IsNegative() }

// Profitable reports whether a closed position returned more than was invested.
func (i Investment) Profitable() bool {
	return !i.Open() && i.AmountReturned.GreaterThan(i.AmountInvested)
}
