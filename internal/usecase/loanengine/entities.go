package loanengine

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanDTO struct {
	LoanID                   string          `json:"loan_id"`
	UserCNP                  string          `json:"user_cnp"`
	Amount                   decimal.Decimal `json:"amount"`
	ApplicationDate          time.Time       `json:"application_date"`
	RepaymentDate            time.Time       `json:"repayment_date"`
	InterestRate             decimal.Decimal `json:"interest_rate"`
	NumberOfMonths           int             `json:"number_of_months"`
	MonthlyPaymentAmount     decimal.Decimal `json:"monthly_payment_amount"`
	MonthlyPaymentsCompleted int             `json:"monthly_payments_completed"`
	RepaidAmount             decimal.Decimal `json:"repaid_amount"`
	Penalty                  decimal.Decimal `json:"penalty"`
	Status                   string          `json:"status"`
}

type SweepResult struct {
	Checked   int `json:"checked"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	Failed    int `json:"failed"`
}
