package loanengine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"credscore-service/internal/domain/history"
	"credscore-service/internal/domain/loan"
	"credscore-service/internal/domain/score"
	"credscore-service/internal/domain/user"
	"credscore-service/pkg/id"
)

var (
	ten     = decimal.NewFromInt(10)
	hundred = decimal.NewFromInt(100)
	// penaltyPerOverdueDay accrues on every missed-installment day.
	penaltyPerOverdueDay = decimal.RequireFromString("0.1")
)

type Engine struct {
	loans    loan.Repository
	requests loan.RequestRepository
	users    user.Repository
	history  history.Repository
	now      func() time.Time
}

func NewEngine(loans loan.Repository, requests loan.RequestRepository, users user.Repository, hist history.Repository) *Engine {
	return &Engine{
		loans:    loans,
		requests: requests,
		users:    users,
		history:  hist,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateFromRequest turns an approved loan request into an active loan.
// Interest rate is derived once here and never recomputed.
func (e *Engine) CreateFromRequest(ctx context.Context, requestID string) (*LoanDTO, error) {
	req, err := e.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, loan.ErrRequestNotFound
	}
	if req.Status == loan.RequestSolved {
		return nil, loan.ErrAlreadySolved
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", loan.ErrInvalidInput)
	}

	u, err := e.users.GetByCNP(ctx, req.UserCNP)
	if err != nil {
		return nil, user.ErrNotFound
	}

	months := monthsBetween(req.ApplicationDate, req.RepaymentDate)
	if months <= 0 {
		return nil, loan.ErrInvalidTerm
	}

	// interestRate = riskScore / creditScore * 100 (percentage). The credit
	// score floor of 100 keeps the divisor non-zero.
	rate := decimal.NewFromInt(int64(u.RiskScore)).
		Div(decimal.NewFromInt(int64(u.CreditScore))).
		Mul(hundred)
	monthly := req.Amount.
		Mul(decimal.NewFromInt(1).Add(rate.Div(hundred))).
		Div(decimal.NewFromInt(int64(months))).
		Round(2)

	l := &loan.Loan{
		LoanID:               id.NewID32(),
		UserCNP:              req.UserCNP,
		Amount:               req.Amount,
		ApplicationDate:      req.ApplicationDate,
		RepaymentDate:        req.RepaymentDate,
		InterestRate:         rate.Round(4),
		NumberOfMonths:       months,
		MonthlyPaymentAmount: monthly,
		RepaidAmount:         decimal.Zero,
		Penalty:              decimal.Zero,
		Status:               loan.StatusActive,
	}
	if err := e.loans.Add(ctx, l); err != nil {
		return nil, err
	}
	if err := e.requests.MarkSolved(ctx, req.RequestID); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// CheckLoans is the periodic sweep over every active-or-overdue loan. A loan
// that fails to persist is logged and retried naturally on the next tick.
func (e *Engine) CheckLoans(ctx context.Context) (*SweepResult, error) {
	today := e.now()
	ls, err := e.loans.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{}
	for i := range ls {
		l := &ls[i]
		if l.Status == loan.StatusCompleted {
			continue
		}
		res.Checked++
		completed, wentOverdue, err := e.checkLoan(ctx, l, today)
		if err != nil {
			res.Failed++
			log.Printf("loan sweep: loan %s: %v", l.LoanID, err)
			continue
		}
		if completed {
			res.Completed++
		}
		if wentOverdue {
			res.Overdue++
		}
	}
	return res, nil
}

func (e *Engine) checkLoan(ctx context.Context, l *loan.Loan, today time.Time) (completed, wentOverdue bool, err error) {
	// All payments made: terminal score update, then drop the loan.
	if l.MonthlyPaymentsCompleted >= l.NumberOfMonths {
		reason := history.ReasonLoanCompleted
		if err := e.applyScoreUpdate(ctx, l, today, reason); err != nil {
			return false, false, err
		}
		l.Status = loan.StatusCompleted
		if err := e.loans.Delete(ctx, l.LoanID); err != nil {
			return false, false, err
		}
		return true, false, nil
	}

	// Behind schedule: penalty accrues per day past the due date of the next
	// unpaid installment.
	monthsPassed := monthsBetween(l.ApplicationDate, today)
	if monthsPassed > l.MonthlyPaymentsCompleted {
		due := l.ApplicationDate.AddDate(0, l.MonthlyPaymentsCompleted, 0)
		overdueDays := daysBetween(due, today)
		if overdueDays < 0 {
			overdueDays = 0
		}
		l.Penalty = penaltyPerOverdueDay.Mul(decimal.NewFromInt(int64(overdueDays)))
	} else {
		l.Penalty = decimal.Zero
	}

	if today.After(l.RepaymentDate) && l.Status == loan.StatusActive {
		if err := e.applyScoreUpdate(ctx, l, today, history.ReasonLoanOverdue); err != nil {
			return false, false, err
		}
		l.Status = loan.StatusOverdue
		wentOverdue = true
	}

	if err := e.loans.Save(ctx, l); err != nil {
		return false, wentOverdue, err
	}
	return false, wentOverdue, nil
}

// applyScoreUpdate recomputes the borrower's credit score and persists it.
// The user write is fatal; the history append is best-effort.
func (e *Engine) applyScoreUpdate(ctx context.Context, l *loan.Loan, today time.Time, reason string) error {
	u, err := e.users.GetByCNP(ctx, l.UserCNP)
	if err != nil {
		return fmt.Errorf("borrower %s: %w", l.UserCNP, user.ErrNotFound)
	}
	newScore, err := e.computeNewCreditScore(u, l, today)
	if err != nil {
		return err
	}
	u.CreditScore = newScore
	if err := e.users.Save(ctx, u); err != nil {
		return err
	}
	if err := e.history.AppendScoreEvent(ctx, &history.CreditScoreEvent{
		UserCNP: u.CNP,
		Score:   newScore,
		Reason:  reason,
	}); err != nil {
		log.Printf("loan sweep: history append for %s: %v", u.CNP, err)
	}
	return nil
}

// computeNewCreditScore applies the loan term to the borrower's score:
// score + floor(amount*10/income) + clamp(repaymentDate-today, -100, 30),
// clamped back into the valid credit range.
func (e *Engine) computeNewCreditScore(u *user.User, l *loan.Loan, today time.Time) (int, error) {
	if !u.Income.IsPositive() {
		return 0, user.ErrZeroIncome
	}
	daysAhead := score.ClampDaysAhead(daysBetween(today, l.RepaymentDate))
	bump := int(l.Amount.Mul(ten).Div(u.Income).Floor().IntPart())
	return score.ClampCredit(u.CreditScore + bump + daysAhead), nil
}

// IncrementPayment records one installment plus any penalty carried with it.
// Authorization (ownership or admin) is the caller's problem.
func (e *Engine) IncrementPayment(ctx context.Context, loanID string, penalty decimal.Decimal) (*LoanDTO, error) {
	if penalty.IsNegative() {
		return nil, fmt.Errorf("%w: penalty must not be negative", loan.ErrInvalidInput)
	}
	l, err := e.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, loan.ErrNotFound
	}
	if l.Status == loan.StatusCompleted {
		return nil, loan.ErrInvalidTransition
	}
	l.MonthlyPaymentsCompleted++
	l.RepaidAmount = l.RepaidAmount.Add(l.MonthlyPaymentAmount.Add(penalty))
	if err := e.loans.Save(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:                   l.LoanID,
		UserCNP:                  l.UserCNP,
		Amount:                   l.Amount,
		ApplicationDate:          l.ApplicationDate,
		RepaymentDate:            l.RepaymentDate,
		InterestRate:             l.InterestRate,
		NumberOfMonths:           l.NumberOfMonths,
		MonthlyPaymentAmount:     l.MonthlyPaymentAmount,
		MonthlyPaymentsCompleted: l.MonthlyPaymentsCompleted,
		RepaidAmount:             l.RepaidAmount,
		Penalty:                  l.Penalty,
		Status:                   string(l.Status),
	}
}

// monthsBetween counts whole calendar months elapsed from a to b.
func monthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// daysBetween counts whole days from a to b; negative when b precedes a.
func daysBetween(a, b time.Time) int {
	a = truncateDay(a)
	b = truncateDay(b)
	return int(b.Sub(a) / (24 * time.Hour))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
