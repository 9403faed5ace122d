package punishment

import (
	"context"
	"log"

	"credscore-service/internal/domain/chatreport"
	"credscore-service/internal/domain/history"
	"credscore-service/internal/domain/score"
	"credscore-service/internal/domain/user"
	"credscore-service/internal/notify"
)

const (
	flatPenalty = 15
	// repeatThreshold is the offense count at which the penalty starts
	// scaling with the count instead of staying flat.
	repeatThreshold = 3
	// every tipMessageInterval-th tip triggers an extra message.
	tipMessageInterval = 3
	// messageScoreBar decides congratulatory vs roast.
	messageScoreBar = 550
)

type Result struct {
	ReportID     string `json:"report_id"`
	UserCNP      string `json:"user_cnp"`
	Penalty      int    `json:"penalty"`
	GemBalance   int    `json:"gem_balance"`
	NoOffenses   int    `json:"no_offenses"`
	UpdatedScore int    `json:"updated_score"`
}

type Engine struct {
	users    user.Repository
	reports  chatreport.Repository
	history  history.Repository
	tips     notify.TipService
	messages notify.MessageService
}

func NewEngine(users user.Repository, reports chatreport.Repository, hist history.Repository, tips notify.TipService, messages notify.MessageService) *Engine {
	return &Engine{
		users:    users,
		reports:  reports,
		history:  hist,
		tips:     tips,
		messages: messages,
	}
}

// Penalty is the escalating gem penalty for a user with the given offense
// count: flat 15 below the repeat threshold, 15 per offense at or above it.
func Penalty(offenses int) int {
	if offenses >= repeatThreshold {
		return flatPenalty * offenses
	}
	return flatPenalty
}

// Punish resolves a chat report against its reported user. The gem/offense
// write is fatal; everything after it (history, report cleanup, tip, message,
// activity log) is best-effort and never unwinds the punishment.
func (e *Engine) Punish(ctx context.Context, reportID string) (*Result, error) {
	r, err := e.reports.GetByReportID(ctx, reportID)
	if err != nil {
		return nil, chatreport.ErrNotFound
	}
	u, err := e.users.GetByCNP(ctx, r.ReportedUserCNP)
	if err != nil {
		return nil, user.ErrNotFound
	}

	penalty := Penalty(u.NoOffenses)
	u, err = e.applyPunishment(ctx, u, penalty)
	if err != nil {
		return nil, err
	}

	updatedScore := score.ClampCredit(u.CreditScore - penalty)
	if err := e.history.AppendScoreEvent(ctx, &history.CreditScoreEvent{
		UserCNP: u.CNP,
		Score:   updatedScore,
		Reason:  history.ReasonChatPunishment,
	}); err != nil {
		log.Printf("punish: history append for %s: %v", u.CNP, err)
	}

	if err := e.reports.Delete(ctx, r.ReportID); err != nil {
		log.Printf("punish: delete report %s: %v", r.ReportID, err)
	}

	e.grantTip(ctx, u)

	if err := e.history.AppendActivity(ctx, &history.ActivityLogEntry{
		UserCNP: u.CNP,
		Amount:  penalty,
		Detail:  "chat punishment",
	}); err != nil {
		log.Printf("punish: activity log for %s: %v", u.CNP, err)
	}

	return &Result{
		ReportID:     r.ReportID,
		UserCNP:      u.CNP,
		Penalty:      penalty,
		GemBalance:   u.GemBalance,
		NoOffenses:   u.NoOffenses,
		UpdatedScore: updatedScore,
	}, nil
}

// applyPunishment prefers the store's own punish capability and falls back to
// read-modify-write when the store does not implement it.
func (e *Engine) applyPunishment(ctx context.Context, u *user.User, penalty int) (*user.User, error) {
	if applier, ok := e.users.(user.PunishmentApplier); ok {
		return applier.ApplyPunishment(ctx, u.CNP, penalty, 1)
	}
	u.GemBalance -= penalty
	if u.GemBalance < 0 {
		u.GemBalance = 0
	}
	u.NoOffenses++
	if err := e.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// grantTip hands out a consolation tip by score bracket; every third tip for
// the same user also sends a congratulatory or roast message.
func (e *Engine) grantTip(ctx context.Context, u *user.User) {
	bracket := notify.BracketFor(u.CreditScore)
	if err := e.tips.GiveTip(ctx, u.CNP, bracket); err != nil {
		log.Printf("punish: tip for %s: %v", u.CNP, err)
		return
	}
	if err := e.history.AddTip(ctx, &history.TipEvent{UserCNP: u.CNP, Bracket: string(bracket)}); err != nil {
		log.Printf("punish: record tip for %s: %v", u.CNP, err)
		return
	}
	count, err := e.history.CountTips(ctx, u.CNP)
	if err != nil {
		log.Printf("punish: tip count for %s: %v", u.CNP, err)
		return
	}
	if count%tipMessageInterval != 0 {
		return
	}
	kind := notify.MessageRoast
	if u.CreditScore >= messageScoreBar {
		kind = notify.MessageCongratulatory
	}
	if err := e.messages.GiveMessage(ctx, u.CNP, kind); err != nil {
		log.Printf("punish: message for %s: %v", u.CNP, err)
	}
}

// Dismiss drops a chat report with no score effect.
func (e *Engine) Dismiss(ctx context.Context, reportID string) error {
	if _, err := e.reports.GetByReportID(ctx, reportID); err != nil {
		return chatreport.ErrNotFound
	}
	return e.reports.Delete(ctx, reportID)
}
