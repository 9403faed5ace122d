package riskengine

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"credscore-service/internal/domain/history"
	"credscore-service/internal/domain/investment"
	"credscore-service/internal/domain/score"
	"credscore-service/internal/domain/user"
)

const (
	riskWindowDays = 7
	riskStep       = 5
)

var (
	ten          = decimal.NewFromInt(10)
	neutralROI   = decimal.NewFromInt(1)
	lossRateBar  = decimal.RequireFromString("0.35")
	lowFrequency = decimal.NewFromInt(2)
	hiFrequency  = decimal.NewFromInt(5)
	lowExposure  = decimal.RequireFromString("0.1")
	hiExposure   = decimal.RequireFromString("0.3")
)

type Engine struct {
	users       user.Repository
	investments investment.Repository
	history     history.Repository
	now         func() time.Time
}

func NewEngine(users user.Repository, investments investment.Repository, hist history.Repository) *Engine {
	return &Engine{
		users:       users,
		investments: investments,
		history:     hist,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RecalculateAll runs the three passes in their required order: risk scores,
// then ROI, then the credit rebalance derived from both.
func (e *Engine) RecalculateAll(ctx context.Context) (*RecalcResult, error) {
	res := &RecalcResult{}
	if err := e.UpdateRiskScores(ctx, res); err != nil {
		return nil, err
	}
	if err := e.UpdateROIs(ctx, res); err != nil {
		return nil, err
	}
	if err := e.RebalanceCreditScores(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateRiskScores recomputes every user's risk score from the trailing
// 7-day window anchored at their most recent investment. Users with no trades
// in that window are skipped.
func (e *Engine) UpdateRiskScores(ctx context.Context, res *RecalcResult) error {
	users, byCNP, err := e.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		u := &users[i]
		res.UsersSeen++
		window := recentWindow(byCNP[u.CNP])
		if len(window) == 0 {
			res.Skipped++
			continue
		}
		if !u.Income.IsPositive() {
			res.Skipped++
			log.Printf("risk recalc: user %s has non-positive income, skipping", u.CNP)
			continue
		}
		u.RiskScore = score.ClampRisk(u.RiskScore + riskDelta(window, u.Income))
		if err := e.users.Save(ctx, u); err != nil {
			res.WriteFailures++
			log.Printf("risk recalc: save user %s: %v", u.CNP, err)
			continue
		}
		res.RiskUpdated++
	}
	return nil
}

// riskDelta scores one window of trades. Each rule moves the delta by a fixed
// step of 5.
func riskDelta(window []investment.Investment, income decimal.Decimal) int {
	profitable := 0
	closed := 0
	totalInvested := decimal.Zero
	days := map[string]bool{}
	for _, inv := range window {
		if inv.Profitable() {
			profitable++
		}
		if !inv.Open() {
			closed++
		}
		totalInvested = totalInvested.Add(inv.AmountInvested)
		days[inv.InvestmentDate.UTC().Format("2006-01-02")] = true
	}

	delta := 0

	lossRate := decimal.Zero
	if closed > 0 {
		lossRate = decimal.NewFromInt(int64(closed - profitable)).
			Div(decimal.NewFromInt(int64(closed)))
	}
	if lossRate.GreaterThan(lossRateBar) {
		// Penalize the volume of risky activity.
		delta += len(window) * riskStep
	} else {
		delta -= profitable * riskStep
	}

	avgTradesPerDay := decimal.NewFromInt(int64(len(days))).
		Div(decimal.NewFromInt(riskWindowDays))
	if avgTradesPerDay.LessThan(lowFrequency) {
		delta -= riskStep
	}
	if avgTradesPerDay.GreaterThan(hiFrequency) {
		delta += riskStep
	}

	exposure := totalInvested.Div(income)
	if exposure.LessThan(lowExposure) {
		delta -= riskStep
	}
	if exposure.GreaterThan(hiExposure) {
		delta += riskStep
	}
	return delta
}

// recentWindow returns the user's investments inside the trailing 7 days of
// their most recent investment date.
func recentWindow(invs []investment.Investment) []investment.Investment {
	if len(invs) == 0 {
		return nil
	}
	latest := invs[0].InvestmentDate
	for _, inv := range invs[1:] {
		if inv.InvestmentDate.After(latest) {
			latest = inv.InvestmentDate
		}
	}
	cutoff := latest.AddDate(0, 0, -riskWindowDays)
	var out []investment.Investment
	for _, inv := range invs {
		if !inv.InvestmentDate.Before(cutoff) && !inv.InvestmentDate.After(latest) {
			out = append(out, inv)
		}
	}
	return out
}

// UpdateROIs sets each user's ROI from their closed positions; no closed
// positions (or nothing invested) means neutral 1.
func (e *Engine) UpdateROIs(ctx context.Context, res *RecalcResult) error {
	users, byCNP, err := e.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		u := &users[i]
		roi := computeROI(byCNP[u.CNP])
		if u.ROI.Equal(roi) {
			continue
		}
		u.ROI = roi
		if err := e.users.Save(ctx, u); err != nil {
			res.WriteFailures++
			log.Printf("roi recalc: save user %s: %v", u.CNP, err)
			continue
		}
		res.ROIUpdated++
	}
	return nil
}

func computeROI(invs []investment.Investment) decimal.Decimal {
	totalInvested := decimal.Zero
	totalReturned := decimal.Zero
	closed := 0
	for _, inv := range invs {
		if inv.Open() {
			continue
		}
		closed++
		totalInvested = totalInvested.Add(inv.AmountInvested)
		totalReturned = totalReturned.Add(inv.AmountReturned)
	}
	if closed == 0 || totalInvested.IsZero() {
		return neutralROI
	}
	return totalReturned.Div(totalInvested)
}

// RebalanceCreditScores re-derives every user's credit score from the risk
// score and ROI computed above: higher risk erodes the score proportionally,
// then the ROI term is applied and the result clamped.
func (e *Engine) RebalanceCreditScores(ctx context.Context, res *RecalcResult) error {
	users, err := e.users.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		u := &users[i]
		newScore := rebalancedScore(u.CreditScore, u.RiskScore, u.ROI)
		if newScore == u.CreditScore {
			continue
		}
		u.CreditScore = newScore
		if err := e.users.Save(ctx, u); err != nil {
			res.WriteFailures++
			log.Printf("credit rebalance: save user %s: %v", u.CNP, err)
			continue
		}
		res.Rebalanced++
		if err := e.history.AppendScoreEvent(ctx, &history.CreditScoreEvent{
			UserCNP: u.CNP,
			Score:   newScore,
			Reason:  history.ReasonRiskRebalance,
		}); err != nil {
			log.Printf("credit rebalance: history append for %s: %v", u.CNP, err)
		}
	}
	return nil
}

func rebalancedScore(creditScore, riskScore int, roi decimal.Decimal) int {
	s := creditScore - creditScore*riskScore/100
	switch {
	case !roi.IsPositive():
		s -= 100
	case roi.LessThan(neutralROI):
		s -= int(ten.Div(roi).Floor().IntPart())
	default:
		s += int(ten.Mul(roi).Floor().IntPart())
	}
	return score.ClampCredit(s)
}

// PortfolioSummaries is a read-only projection over users with at least one
// investment. Nothing is mutated.
func (e *Engine) PortfolioSummaries(ctx context.Context) ([]PortfolioSummary, error) {
	users, byCNP, err := e.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []PortfolioSummary
	for i := range users {
		u := &users[i]
		invs := byCNP[u.CNP]
		if len(invs) == 0 {
			continue
		}
		totalInvested := decimal.Zero
		totalReturned := decimal.Zero
		for _, inv := range invs {
			totalInvested = totalInvested.Add(inv.AmountInvested)
			if !inv.Open() {
				totalReturned = totalReturned.Add(inv.AmountReturned)
			}
		}
		avgROI := decimal.Zero
		if !totalInvested.IsZero() {
			avgROI = totalReturned.Div(totalInvested)
		}
		out = append(out, PortfolioSummary{
			UserCNP:       u.CNP,
			TotalInvested: totalInvested,
			TotalReturned: totalReturned,
			AverageROI:    avgROI,
			TradeCount:    len(invs),
			RiskScore:     u.RiskScore,
		})
	}
	return out, nil
}

func (e *Engine) load(ctx context.Context) ([]user.User, map[string][]investment.Investment, error) {
	users, err := e.users.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	invs, err := e.investments.GetAllHistory(ctx)
	if err != nil {
		return nil, nil, err
	}
	byCNP := map[string][]investment.Investment{}
	for _, inv := range invs {
		byCNP[inv.InvestorCNP] = append(byCNP[inv.InvestorCNP], inv)
	}
	return users, byCNP, nil
}
