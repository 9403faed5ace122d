package loanengine

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"credscore-service/internal/domain/loan"
	"credscore-service/internal/domain/user"
)

const suggestionPrefix = "User does not qualify for loan: "

// GiveSuggestion is a stateless qualification check on a pending request.
// It returns an empty string when the user qualifies, otherwise the
// comma-joined disqualifying reasons. No state is mutated.
func GiveSuggestion(req *loan.Request, u *user.User) string {
	var reasons []string
	if req.Amount.GreaterThan(u.Income.Mul(ten)) {
		reasons = append(reasons, "requested amount exceeds 10x income")
	}
	if u.CreditScore < 300 {
		reasons = append(reasons, "credit score below 300")
	}
	if u.RiskScore > 70 {
		reasons = append(reasons, "risk score above 70")
	}
	if len(reasons) == 0 {
		return ""
	}
	return suggestionPrefix + strings.Join(reasons, ", ")
}

// Suggest looks up the request and its user, then delegates to GiveSuggestion.
func (e *Engine) Suggest(ctx context.Context, requestID string) (string, error) {
	req, err := e.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return "", loan.ErrRequestNotFound
	}
	u, err := e.users.GetByCNP(ctx, req.UserCNP)
	if err != nil {
		return "", user.ErrNotFound
	}
	return GiveSuggestion(req, u), nil
}

// PastUnpaidLoans reports whether the user holds any active loan already past
// its repayment date.
func (e *Engine) PastUnpaidLoans(ctx context.Context, cnp string) (bool, error) {
	ls, err := e.loans.GetByUserCNP(ctx, cnp)
	if err != nil {
		return false, err
	}
	today := truncateDay(e.now())
	for _, l := range ls {
		if l.Status == loan.StatusActive && truncateDay(l.RepaymentDate).Before(today) {
			return true, nil
		}
	}
	return false, nil
}

// ComputeMonthlyDebtAmount sums monthly payments over the user's active loans.
func (e *Engine) ComputeMonthlyDebtAmount(ctx context.Context, cnp string) (decimal.Decimal, error) {
	ls, err := e.loans.GetByUserCNP(ctx, cnp)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, l := range ls {
		if l.Status == loan.StatusActive {
			total = total.Add(l.MonthlyPaymentAmount)
		}
	}
	return total, nil
}
