package chatreport

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("chat report not found")

// Report is a pending moderation complaint. Deleted once punished or
// dismissed; the offense count itself lives on the user record.
type Report struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	ReportID        string    `gorm:"column:report_id;size:32;uniqueIndex:ux_chat_reports_report_id" json:"report_id"`
	ReportedUserCNP string    `gorm:"column:reported_user_cnp;type:char(13);index" json:"reported_user_cnp"`
	SubmitterCNP    string    `gorm:"column:submitter_cnp;type:char(13)" json:"submitter_cnp"`
	Reason          string    `gorm:"column:reason;type:text" json:"reason"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Report) TableName() string { return "chat_reports" }
