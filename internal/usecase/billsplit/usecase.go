package billsplit

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	domain "credscore-service/internal/domain/billsplit"
	"credscore-service/internal/domain/history"
	"credscore-service/internal/domain/score"
	"credscore-service/internal/domain/user"
)

const (
	// factorCap bounds both the time and amount factors.
	factorCap = 50
	// frequentTransferCount in the 30 days before the transaction counts as a
	// mitigating habit.
	frequentTransferCount = 5
)

var (
	one       = decimal.NewFromInt(1)
	capDec    = decimal.NewFromInt(factorCap)
	timeSpan  = decimal.NewFromInt(20)
	amtSpan   = decimal.NewFromInt(999)
	tenPct    = decimal.RequireFromString("0.10")
	twentyPct = decimal.RequireFromString("0.20")
)

type Resolution struct {
	ReportID string          `json:"report_id"`
	UserCNP  string          `json:"user_cnp"`
	Gravity  decimal.Decimal `json:"gravity"`
	Penalty  int             `json:"penalty"`
	NewScore int             `json:"new_score"`
}

type Engine struct {
	reports domain.Repository
	users   user.Repository
	history history.Repository
	now     func() time.Time
}

func NewEngine(reports domain.Repository, users user.Repository, hist history.Repository) *Engine {
	return &Engine{
		reports: reports,
		users:   users,
		history: hist,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Solve settles an overdue bill-split report: computes the gravity-factor
// penalty, applies it to the responsible user's credit score, and removes the
// report. The user write is fatal; history append and report deletion are
// best-effort.
func (e *Engine) Solve(ctx context.Context, reportID string) (*Resolution, error) {
	r, err := e.reports.GetByReportID(ctx, reportID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	u, err := e.users.GetByCNP(ctx, r.ReportedUserCNP)
	if err != nil {
		return nil, user.ErrNotFound
	}

	today := e.now()
	gravity := baseGravity(r, today)

	// Aggravating/mitigating multipliers, applied in sequence against the
	// running gravity.
	couldHavePaid, err := e.couldHavePaid(ctx, u, r)
	if err != nil {
		return nil, err
	}
	if couldHavePaid {
		gravity = gravity.Add(gravity.Mul(tenPct))
	}
	if u.PaidBillShares == 0 {
		gravity = gravity.Add(gravity.Mul(twentyPct))
	}
	frequent, err := e.frequentTransfers(ctx, u.CNP, r.DateOfTransaction)
	if err != nil {
		return nil, err
	}
	if frequent {
		gravity = gravity.Sub(gravity.Mul(tenPct))
	}
	if u.NoOffenses > 0 {
		gravity = gravity.Add(gravity.Mul(tenPct).Mul(decimal.NewFromInt(int64(u.NoOffenses))))
	}

	penalty := int(gravity.Floor().IntPart())
	newScore := score.ClampCredit(u.CreditScore - penalty)

	u.CreditScore = newScore
	u.PaidBillShares++
	if err := e.users.Save(ctx, u); err != nil {
		return nil, err
	}

	if err := e.history.AppendScoreEvent(ctx, &history.CreditScoreEvent{
		UserCNP: u.CNP,
		Score:   newScore,
		Reason:  history.ReasonBillSplitPenalty,
	}); err != nil {
		log.Printf("bill split: history append for %s: %v", u.CNP, err)
	}
	if err := e.reports.Delete(ctx, r.ReportID); err != nil {
		log.Printf("bill split: delete report %s: %v", r.ReportID, err)
	}

	return &Resolution{
		ReportID: r.ReportID,
		UserCNP:  u.CNP,
		Gravity:  gravity,
		Penalty:  penalty,
		NewScore: newScore,
	}, nil
}

// baseGravity is timeFactor + amountFactor, each capped to [0, 50].
func baseGravity(r *domain.Report, today time.Time) decimal.Decimal {
	dueDate := r.DateOfTransaction.AddDate(0, 0, domain.PaymentTermDays)
	daysPastDue := daysBetween(dueDate, today)
	if daysPastDue < 0 {
		daysPastDue = 0
	}

	timeFactor := decimal.NewFromInt(int64(daysPastDue - 1)).
		Mul(capDec).Div(timeSpan)
	amountFactor := r.BillShare.Sub(one).Mul(capDec).Div(amtSpan)

	return capFactor(timeFactor).Add(capFactor(amountFactor))
}

func capFactor(f decimal.Decimal) decimal.Decimal {
	if f.IsNegative() {
		return decimal.Zero
	}
	if f.GreaterThan(capDec) {
		return capDec
	}
	return f
}

// couldHavePaid checks whether the user's means since the transaction date
// would have covered the bill share.
func (e *Engine) couldHavePaid(ctx context.Context, u *user.User, r *domain.Report) (bool, error) {
	credits, err := e.reports.SumCreditsSince(ctx, u.CNP, r.DateOfTransaction)
	if err != nil {
		return false, err
	}
	means := decimal.NewFromInt(int64(u.CreditScore)).Add(credits)
	return means.GreaterThanOrEqual(r.BillShare), nil
}

func (e *Engine) frequentTransfers(ctx context.Context, cnp string, txDate time.Time) (bool, error) {
	since := txDate.AddDate(0, 0, -domain.PaymentTermDays)
	n, err := e.reports.CountTransfersSince(ctx, cnp, since)
	if err != nil {
		return false, err
	}
	return n >= frequentTransferCount, nil
}

func daysBetween(a, b time.Time) int {
	a = truncateDay(a)
	b = truncateDay(b)
	return int(b.Sub(a) / (24 * time.Hour))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
