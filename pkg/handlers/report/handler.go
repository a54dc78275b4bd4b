package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"path/filepath"
	"slices"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	reports    report.Service
	sourcesDir string
}

// NewHandler serves reports. Source profiles are looked up in sourcesDir.
func NewHandler(reports report.Service, sourcesDir string) *Handler {
	return &Handler{
		reports:    reports,
		sourcesDir: sourcesDir,
	}
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var dataset api.Dataset
	if err := json.NewDecoder(r.Body).Decode(&dataset); err != nil {
		logger.Warn().Err(err).Msg("failed to decode dataset")
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	rep, err := h.reports.Generate(ctx, r.URL.Query().Get("title"), adapters.MapApiDatasetToDomain(dataset))
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapSalesReportDomainToApi(rep))
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	names := h.reports.ListSources()
	response := make([]api.Source, 0, len(names))
	for _, name := range names {
		response = append(response, api.Source{Name: name})
	}

	writeJSON(w, r, http.StatusOK, response)
}

// CreateSourceReport loads the dataset from a registered source. The profile
// defaults to <source>.yaml and can be overridden with ?config=<file>; only
// the base name is honoured so lookups stay inside the sources directory.
func (h *Handler) CreateSourceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "source")

	if !slices.Contains(h.reports.ListSources(), name) {
		writeError(w, r, http.StatusNotFound, errors.New("unknown source: "+name))
		return
	}

	profile := name + ".yaml"
	if override := r.URL.Query().Get("config"); override != "" {
		profile = filepath.Base(override)
	}

	rep, err := h.reports.GenerateFromSource(
		ctx,
		r.URL.Query().Get("title"),
		name,
		filepath.Join(h.sourcesDir, profile),
	)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("source", name).Msg("failed to generate report")
		writeError(w, r, statusFor(err), err)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapSalesReportDomainToApi(rep))
}

func statusFor(err error) int {
	var invalid *sales.InvalidInputError
	var missing *sales.MissingPolicyError
	if errors.As(err, &invalid) || errors.As(err, &missing) {
		return http.StatusBadRequest
	}
	if errors.Is(err, fs.ErrNotExist) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, api.Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
