package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"salescope/domain/sales"
	domainstats "salescope/domain/stats"
	apperrors "salescope/internal/errors"
)

// Infer computes the confidence interval for the mean of units_sold and the
// one-sample t-test against the hypothesized mean. With one row or fewer the
// interval and test come back with NaN fields so the caller can render an
// insufficient-data message instead of failing.
func Infer(t sales.Table, confidence, hypothesizedMean float64) (domainstats.ConfidenceInterval, domainstats.HypothesisTestResult, error) {
	if confidence <= 0 || confidence >= 1 || math.IsNaN(confidence) {
		return domainstats.ConfidenceInterval{}, domainstats.HypothesisTestResult{},
			apperrors.InvalidInput("confidence level must lie strictly between 0 and 1")
	}

	nan := math.NaN()
	interval := domainstats.ConfidenceInterval{Level: confidence, Lower: nan, Upper: nan}
	test := domainstats.HypothesisTestResult{HypothesizedMean: hypothesizedMean, TStatistic: nan, PValue: nan}

	values := t.UnitsSold()
	n := len(values)
	if n <= 1 {
		return interval, test, nil
	}

	data := mstats.Float64Data(values)
	mean, _ := mstats.Mean(data)
	stddev, _ := mstats.StandardDeviationSample(data)
	se := stddev / math.Sqrt(float64(n))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}

	critical := dist.Quantile((1 + confidence) / 2)
	interval.Lower = mean - critical*se
	interval.Upper = mean + critical*se

	// With zero spread the t statistic is degenerate: a sample that sits
	// exactly on the hypothesized mean carries no evidence against it.
	if se == 0 {
		if mean == hypothesizedMean {
			test.TStatistic = 0
			test.PValue = 1
		} else {
			test.TStatistic = math.Inf(sign(mean - hypothesizedMean))
			test.PValue = 0
		}
		return interval, test, nil
	}

	test.TStatistic = (mean - hypothesizedMean) / se
	test.PValue = 2 * dist.CDF(-math.Abs(test.TStatistic))

	return interval, test, nil
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}
