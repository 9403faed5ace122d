package riskengine

import "github.com/shopspring/decimal"

type PortfolioSummary struct {
	UserCNP       string          `json:"user_cnp"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	TotalReturned decimal.Decimal `json:"total_returned"`
	AverageROI    decimal.Decimal `json:"average_roi"`
	TradeCount    int             `json:"trade_count"`
	RiskScore     int             `json:"risk_score"`
}

type RecalcResult struct {
	UsersSeen     int `json:"users_seen"`
	RiskUpdated   int `json:"risk_updated"`
	ROIUpdated    int `json:"roi_updated"`
	Rebalanced    int `json:"rebalanced"`
	Skipped       int `json:"skipped"`
	WriteFailures int `json:"write_failures"`
}
