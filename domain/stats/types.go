package stats

import "math"

// SignificanceAlpha is the fixed two-tailed decision threshold for the
// one-sample t-test verdict. Not user-configurable.
const SignificanceAlpha = 0.05

// DescriptiveSummary is an immutable snapshot of the units_sold column of one
// table. All float fields are NaN when the table is empty; Count stays 0.
// StdDev uses the sample estimator (divisor n-1) and is NaN when n < 2.
type DescriptiveSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
	Mode   float64 `json:"mode"`
}

// ConfidenceInterval is the two-sided interval for the population mean at the
// stated level. Degenerate (NaN bounds) when the sample size is <= 1.
type ConfidenceInterval struct {
	Level float64 `json:"level"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// IsDefined reports whether both bounds are real numbers.
func (ci ConfidenceInterval) IsDefined() bool {
	return !math.IsNaN(ci.Lower) && !math.IsNaN(ci.Upper)
}

// Width returns upper - lower (NaN when undefined).
func (ci ConfidenceInterval) Width() float64 {
	return ci.Upper - ci.Lower
}

// Verdict labels the outcome of the significance test.
type Verdict string

const (
	VerdictSignificant      Verdict = "significantly_different"
	VerdictNotSignificant   Verdict = "not_significantly_different"
	VerdictInsufficientData Verdict = "insufficient_data"
)

// HypothesisTestResult is the one-sample t-test of units_sold against a
// hypothesized mean. TStatistic and PValue are NaN when n <= 1.
type HypothesisTestResult struct {
	HypothesizedMean float64 `json:"hypothesized_mean"`
	TStatistic       float64 `json:"t_statistic"`
	PValue           float64 `json:"p_value"`
}

// IsDefined reports whether the test produced real numbers.
func (r HypothesisTestResult) IsDefined() bool {
	return !math.IsNaN(r.TStatistic) && !math.IsNaN(r.PValue)
}

// Verdict applies the fixed significance threshold to the p-value.
func (r HypothesisTestResult) Verdict() Verdict {
	if !r.IsDefined() {
		return VerdictInsufficientData
	}
	if r.PValue < SignificanceAlpha {
		return VerdictSignificant
	}
	return VerdictNotSignificant
}
