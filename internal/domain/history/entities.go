package history

import (
	"time"
)

// CreditScoreEvent is one append-only credit-history row.
type CreditScoreEvent struct {
	ID      uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserCNP string    `gorm:"column:user_cnp;type:char(13);index:idx_score_events_user" json:"user_cnp"`
	Score   int       `gorm:"column:score;not null" json:"score"`
	Reason  string    `gorm:"column:reason;size:64" json:"reason"`
	At      time.Time `gorm:"column:at;autoCreateTime" json:"at"`
}

func (CreditScoreEvent) TableName() string { return "credit_score_events" }

// Reasons recorded with score events.
const (
	ReasonLoanOverdue      = "loan_overdue"
	ReasonLoanCompleted    = "loan_completed"
	ReasonBillSplitPenalty = "bill_split_penalty"
	ReasonChatPunishment   = "chat_punishment"
	ReasonRiskRebalance    = "risk_rebalance"
)

// ActivityLogEntry records an administrative penalty amount against a user.
type ActivityLogEntry struct {
	ID      uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserCNP string    `gorm:"column:user_cnp;type:char(13);index:idx_activity_user" json:"user_cnp"`
	Amount  int       `gorm:"column:amount;not null" json:"amount"`
	Detail  string    `gorm:"column:detail;size:128" json:"detail"`
	At      time.Time `gorm:"column:at;autoCreateTime" json:"at"`
}

func (ActivityLogEntry) TableName() string { return "activity_log" }

// TipEvent marks one consolation tip granted to a user; the tip count is the
// row count per CNP.
type TipEvent struct {
	ID      uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserCNP string    `gorm:"column:user_cnp;type:char(13);index:idx_tips_user" json:"user_cnp"`
	Bracket string    `gorm:"column:bracket;size:16" json:"bracket"`
	At      time.Time `gorm:"column:at;autoCreateTime" json:"at"`
}

func (TipEvent) TableName() string { return "tip_events" }
