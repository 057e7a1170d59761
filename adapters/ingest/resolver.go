package ingest

import (
	"path/filepath"
	"strings"
	"sync"

	"salescope/domain/core"
	"salescope/domain/sales"
)

// Resolver supplies the table for one evaluation pass: the deterministic
// synthetic sample when no upload is present, otherwise the parsed upload.
// Parsed tables are memoized by content hash; the sample is generated once.
// Downstream components never see which source was chosen.
type Resolver struct {
	generator *SampleGenerator

	mu     sync.Mutex
	sample *sales.Table
	parsed map[core.Hash]sales.Table
}

// NewResolver creates a resolver around the given sample configuration.
func NewResolver(config SampleConfig) *Resolver {
	return &Resolver{
		generator: NewSampleGenerator(config),
		parsed:    make(map[core.Hash]sales.Table),
	}
}

// Resolve returns the (possibly filtered) table for the given upload.
// A nil/empty upload selects the synthetic sample. The filename extension
// picks the parse path: .xlsx/.xls via excelize, everything else as CSV.
// An empty category filter means no filtering.
func (r *Resolver) Resolve(upload []byte, filename string, categories []string) (sales.Table, error) {
	table, err := r.source(upload, filename)
	if err != nil {
		return sales.Table{}, err
	}
	return table.FilterCategories(categories), nil
}

func (r *Resolver) source(upload []byte, filename string) (sales.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(upload) == 0 {
		if r.sample == nil {
			t := r.generator.Generate()
			r.sample = &t
		}
		return *r.sample, nil
	}

	key := core.NewHash(upload)
	if t, ok := r.parsed[key]; ok {
		return t, nil
	}

	var t sales.Table
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		t, err = ParseExcel(upload)
	default:
		t, err = ParseCSV(upload)
	}
	if err != nil {
		return sales.Table{}, err
	}

	r.parsed[key] = t
	return t, nil
}
