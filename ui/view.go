package ui

import (
	"fmt"
	"html/template"

	"salescope/app"
	"salescope/domain/sales"
	domainstats "salescope/domain/stats"
)

// CategoryOption is one sidebar filter checkbox.
type CategoryOption struct {
	Name     string
	Selected bool
}

// ViewData is everything index.html renders. All formatting decisions that
// need NaN awareness go through the fmt2/fmt4 template funcs instead.
type ViewData struct {
	Error string

	UploadName string
	HasUpload  bool

	Table    sales.Table
	Summary  domainstats.DescriptiveSummary
	Interval domainstats.ConfidenceInterval
	Test     domainstats.HypothesisTestResult

	Categories []CategoryOption
	Confidence float64
	Mean       float64

	ConfidencePct string
	VerdictText   string
	VerdictClass  string

	// Query is the current parameter set, re-attached to chart image URLs so
	// every panel reflects the same evaluation.
	Query template.URL
}

func newViewData(in app.Inputs, out *app.Outputs, uploadName, rawQuery string) ViewData {
	v := ViewData{
		UploadName:    uploadName,
		HasUpload:     uploadName != "",
		Table:         out.Table,
		Summary:       out.Summary,
		Interval:      out.Interval,
		Test:          out.Test,
		Confidence:    in.Confidence,
		Mean:          in.HypothesizedMean,
		ConfidencePct: fmt.Sprintf("%.0f%%", in.Confidence*100),
		Query:         template.URL(rawQuery),
	}

	if out.Err != nil {
		v.Error = out.Err.Error()
	}

	selected := make(map[string]bool, len(in.Categories))
	for _, c := range in.Categories {
		selected[c] = true
	}
	for _, c := range sales.DefaultCategories {
		v.Categories = append(v.Categories, CategoryOption{Name: c, Selected: selected[c]})
	}

	switch out.Test.Verdict() {
	case domainstats.VerdictSignificant:
		v.VerdictText = fmt.Sprintf("The mean units sold is significantly different from %.2f (p < %.2f).", in.HypothesizedMean, domainstats.SignificanceAlpha)
		v.VerdictClass = "significant"
	case domainstats.VerdictNotSignificant:
		v.VerdictText = fmt.Sprintf("No significant difference from %.2f at the %.2f level.", in.HypothesizedMean, domainstats.SignificanceAlpha)
		v.VerdictClass = "not-significant"
	default:
		v.VerdictText = "Not enough data points to run the hypothesis test."
		v.VerdictClass = "insufficient"
	}

	return v
}
