// Command cli evaluates a sales dataset headlessly: CSV or Excel in, a JSON
// statistics report on stdout, optional chart PNGs to a directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"salescope/adapters/ingest"
	"salescope/app"
	domainstats "salescope/domain/stats"
	"salescope/internal"
	"salescope/internal/config"
)

type report struct {
	Source     string                           `json:"source"`
	Rows       int                              `json:"rows"`
	Categories []string                         `json:"categories"`
	Summary    domainstats.DescriptiveSummary   `json:"summary"`
	Interval   domainstats.ConfidenceInterval   `json:"confidence_interval"`
	Test       domainstats.HypothesisTestResult `json:"hypothesis_test"`
	Verdict    domainstats.Verdict              `json:"verdict"`
}

func main() {
	input := flag.String("input", "", "path to a .csv/.xlsx/.xls dataset (empty = synthetic sample)")
	confidence := flag.Float64("confidence", 0.95, "confidence level in (0,1)")
	mean := flag.Float64("mean", 20.0, "hypothesized mean for the one-sample t-test")
	categories := flag.String("categories", "", "comma-separated category filter (empty = all)")
	chartsDir := flag.String("charts", "", "directory to write chart PNGs into (empty = skip)")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		internal.DefaultLogger.Debug("loaded environment from .env")
	}

	appConfig, err := config.Load()
	if err != nil {
		fatalf("failed to load configuration: %v", err)
	}

	sampleConfig := ingest.DefaultSampleConfig()
	sampleConfig.Seed = appConfig.Data.SampleSeed
	sampleConfig.Rows = appConfig.Data.SampleRows
	sampleConfig.PoissonMean = appConfig.Data.PoissonMean

	pipeline := app.NewPipeline(ingest.NewResolver(sampleConfig), internal.DefaultLogger)

	in := app.Inputs{
		Confidence:       *confidence,
		HypothesizedMean: *mean,
	}
	source := "sample"
	if *input != "" {
		data, err := os.ReadFile(*input)
		if err != nil {
			fatalf("failed to read %s: %v", *input, err)
		}
		in.Upload = data
		in.Filename = filepath.Base(*input)
		source = in.Filename
	}
	if *categories != "" {
		for _, c := range strings.Split(*categories, ",") {
			if c = strings.TrimSpace(c); c != "" {
				in.Categories = append(in.Categories, c)
			}
		}
	}

	out, err := pipeline.Evaluate(context.Background(), in)
	if err != nil {
		fatalf("evaluation failed: %v", err)
	}
	if out.Failed() {
		fatalf("%v", out.Err)
	}

	if *chartsDir != "" {
		if err := writeCharts(*chartsDir, out); err != nil {
			fatalf("failed to write charts: %v", err)
		}
	}

	rep := report{
		Source:     source,
		Rows:       out.Table.Len(),
		Categories: out.Table.Categories(),
		Summary:    out.Summary,
		Interval:   out.Interval,
		Test:       out.Test,
		Verdict:    out.Test.Verdict(),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sanitize(rep)); err != nil {
		fatalf("failed to encode report: %v", err)
	}
}

// sanitize rewrites NaN fields to null through a generic map, since
// encoding/json rejects NaN outright.
func sanitize(rep report) map[string]interface{} {
	raw := map[string]interface{}{
		"source":     rep.Source,
		"rows":       rep.Rows,
		"categories": rep.Categories,
		"verdict":    rep.Verdict,
		"summary": map[string]interface{}{
			"count":   rep.Summary.Count,
			"mean":    nanToNil(rep.Summary.Mean),
			"std_dev": nanToNil(rep.Summary.StdDev),
			"min":     nanToNil(rep.Summary.Min),
			"q25":     nanToNil(rep.Summary.Q25),
			"median":  nanToNil(rep.Summary.Median),
			"q75":     nanToNil(rep.Summary.Q75),
			"max":     nanToNil(rep.Summary.Max),
			"mode":    nanToNil(rep.Summary.Mode),
		},
		"confidence_interval": map[string]interface{}{
			"level": rep.Interval.Level,
			"lower": nanToNil(rep.Interval.Lower),
			"upper": nanToNil(rep.Interval.Upper),
		},
		"hypothesis_test": map[string]interface{}{
			"hypothesized_mean": rep.Test.HypothesizedMean,
			"t_statistic":       nanToNil(rep.Test.TStatistic),
			"p_value":           nanToNil(rep.Test.PValue),
		},
	}
	return raw
}

// nanToNil maps NaN and infinite values to null; encoding/json rejects both.
func nanToNil(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func writeCharts(dir string, out *app.Outputs) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := map[string][]byte{
		"histogram.png": out.HistogramPNG,
		"boxplot.png":   out.BoxplotPNG,
		"bar.png":       out.BarPNG,
	}
	for name, data := range files {
		if data == nil {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
