package score

// Valid ranges enforced after every engine write. Storage does not enforce
// these; callers clamp before persisting.
const (
	CreditMin = 100
	CreditMax = 700

	RiskMin = 1
	RiskMax = 100
)

// Day-advance term bounds used by the loan credit recomputation.
const (
	DaysAheadMin = -100
	DaysAheadMax = 30
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampCredit forces a credit score into [100, 700].
func ClampCredit(v int) int { return clamp(v, CreditMin, CreditMax) }

// ClampRisk forces a risk score into [1, 100].
func ClampRisk(v int) int { return clamp(v, RiskMin, RiskMax) }

// ClampDaysAhead forces the repayment-date advance term into [-100, 30].
func ClampDaysAhead(v int) int { return clamp(v, DaysAheadMin, DaysAheadMax) }
