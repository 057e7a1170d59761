// Package app wires the dashboard's single computation: resolve a table,
// compute statistics, render charts, encode the export. One Evaluate call
// per distinct input set; everything downstream of identical inputs is
// served from the memo cache.
package app

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"salescope/adapters/charts"
	"salescope/adapters/export"
	"salescope/adapters/ingest"
	statsadapter "salescope/adapters/stats"
	"salescope/domain/core"
	"salescope/domain/sales"
	domainstats "salescope/domain/stats"
	"salescope/internal"
	apperrors "salescope/internal/errors"
)

// Inputs is the complete, explicit input set for one evaluation. Two Inputs
// with equal Key() produce the same Outputs.
type Inputs struct {
	Upload           []byte
	Filename         string
	Categories       []string
	Confidence       float64
	HypothesizedMean float64
}

// Key derives the memo key: upload content hash plus every parameter that
// influences the result. Category order does not matter.
func (in Inputs) Key() core.Hash {
	categories := append([]string(nil), in.Categories...)
	sort.Strings(categories)

	return core.NewHashFromParts(
		core.NewHash(in.Upload).String(),
		in.Filename,
		strings.Join(categories, ","),
		strconv.FormatFloat(in.Confidence, 'g', -1, 64),
		strconv.FormatFloat(in.HypothesizedMean, 'g', -1, 64),
	)
}

// Outputs holds everything the presentation layer renders for one input set.
// Err carries a user-facing ingestion or validation failure; when it is set
// the statistical fields and charts are absent but the struct is still
// renderable.
type Outputs struct {
	ID    core.EvaluationID
	Table sales.Table

	Summary  domainstats.DescriptiveSummary
	Interval domainstats.ConfidenceInterval
	Test     domainstats.HypothesisTestResult

	HistogramPNG []byte
	BoxplotPNG   []byte
	BarPNG       []byte

	ExportCSV []byte

	Err error
}

// Failed reports whether this evaluation carries a user-facing failure.
func (o *Outputs) Failed() bool {
	return o.Err != nil
}

// Pipeline evaluates inputs into outputs, memoizing by input key. Concurrent
// evaluations of the same key collapse onto one computation.
type Pipeline struct {
	resolver *ingest.Resolver
	logger   *internal.Logger

	mu    sync.RWMutex
	memo  map[core.Hash]*Outputs
	group singleflight.Group
}

// NewPipeline creates a pipeline over the given source resolver.
func NewPipeline(resolver *ingest.Resolver, logger *internal.Logger) *Pipeline {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Pipeline{
		resolver: resolver,
		logger:   logger,
		memo:     make(map[core.Hash]*Outputs),
	}
}

// Evaluate returns the outputs for the given inputs, computing them at most
// once per key. User-facing failures (bad upload, invalid parameters) come
// back inside Outputs; the error return is reserved for internal faults.
func (p *Pipeline) Evaluate(ctx context.Context, in Inputs) (*Outputs, error) {
	key := in.Key()

	p.mu.RLock()
	cached, ok := p.memo[key]
	p.mu.RUnlock()
	if ok {
		p.logger.Debug("evaluation cache hit: %s", key)
		return cached, nil
	}

	result, err, _ := p.group.Do(key.String(), func() (interface{}, error) {
		out := p.evaluate(in)

		p.mu.Lock()
		p.memo[key] = out
		p.mu.Unlock()

		return out, nil
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result.(*Outputs), nil
}

func (p *Pipeline) evaluate(in Inputs) *Outputs {
	out := &Outputs{ID: core.EvaluationID(core.NewID())}

	table, err := p.resolver.Resolve(in.Upload, in.Filename, in.Categories)
	if err != nil {
		p.logger.Warn("source resolution failed (%s): %v", apperrors.GetCode(err), err)
		out.Err = err
		return out
	}
	out.Table = table

	out.Summary = statsadapter.Describe(table)

	interval, test, err := statsadapter.Infer(table, in.Confidence, in.HypothesizedMean)
	if err != nil {
		p.logger.Warn("inference rejected inputs (%s): %v", apperrors.GetCode(err), err)
		out.Err = err
		return out
	}
	out.Interval = interval
	out.Test = test

	// Chart failures degrade that panel only; the rest of the page renders.
	if png, err := charts.Histogram(table, out.Summary); err != nil {
		p.logger.Error("histogram render failed: %v", err)
	} else {
		out.HistogramPNG = png
	}
	if png, err := charts.Boxplot(table); err != nil {
		p.logger.Error("boxplot render failed: %v", err)
	} else {
		out.BoxplotPNG = png
	}
	if png, err := charts.Bar(table); err != nil {
		p.logger.Error("bar chart render failed: %v", err)
	} else {
		out.BarPNG = png
	}

	if csv, err := export.Encode(table); err != nil {
		p.logger.Error("csv export encoding failed: %v", err)
	} else {
		out.ExportCSV = csv
	}

	p.logger.Info("evaluated %s: %d rows, mean=%.4f", out.ID, table.Len(), out.Summary.Mean)
	return out
}
