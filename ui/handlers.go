package ui

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"salescope/app"
)

const (
	defaultConfidence = 0.95
	minConfidence     = 0.80
	maxConfidence     = 0.99

	defaultHypothesizedMean = 20.0
)

var allowedUploadExts = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// requestInputs builds the pipeline inputs for a request: the stored upload
// (if any) plus the query parameters. Out-of-range confidence values clamp
// to the slider range instead of erroring.
func (a *App) requestInputs(r *http.Request) app.Inputs {
	q := r.URL.Query()

	confidence := defaultConfidence
	if v, err := strconv.ParseFloat(q.Get("confidence"), 64); err == nil {
		confidence = v
	}
	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	mean := defaultHypothesizedMean
	if v, err := strconv.ParseFloat(q.Get("mean"), 64); err == nil {
		mean = v
	}

	a.mu.RLock()
	upload := a.upload
	filename := a.filename
	a.mu.RUnlock()

	return app.Inputs{
		Upload:           upload,
		Filename:         filename,
		Categories:       q["category"],
		Confidence:       confidence,
		HypothesizedMean: mean,
	}
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	in := a.requestInputs(r)

	out, err := a.pipeline.Evaluate(r.Context(), in)
	if err != nil {
		a.logger.Error("evaluation failed: %v", err)
		http.Error(w, "evaluation failed", http.StatusInternalServerError)
		return
	}

	a.mu.RLock()
	uploadName := a.filename
	a.mu.RUnlock()

	a.renderTemplate(w, "index.html", newViewData(in, out, uploadName, r.URL.RawQuery))
}

func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		http.Error(w, "upload too large or malformed", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("dataset")
	if err != nil {
		http.Error(w, "missing dataset file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		http.Error(w, "unsupported file type, expected .csv, .xlsx or .xls", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusInternalServerError)
		return
	}

	a.mu.Lock()
	a.upload = data
	a.filename = header.Filename
	a.mu.Unlock()

	a.logger.Info("stored upload %q (%d bytes)", header.Filename, len(data))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *App) handleClear(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.upload = nil
	a.filename = ""
	a.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	out, err := a.pipeline.Evaluate(r.Context(), a.requestInputs(r))
	if err != nil {
		http.Error(w, "evaluation failed", http.StatusInternalServerError)
		return
	}
	if out.Failed() || out.ExportCSV == nil {
		http.Error(w, "no table available for export", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_data.csv"`)
	w.Write(out.ExportCSV)
}

func (a *App) handleChart(w http.ResponseWriter, r *http.Request) {
	out, err := a.pipeline.Evaluate(r.Context(), a.requestInputs(r))
	if err != nil {
		http.Error(w, "evaluation failed", http.StatusInternalServerError)
		return
	}

	var png []byte
	switch chi.URLParam(r, "name") {
	case "histogram":
		png = out.HistogramPNG
	case "boxplot":
		png = out.BoxplotPNG
	case "bar":
		png = out.BarPNG
	default:
		http.NotFound(w, r)
		return
	}
	if png == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
