// Package planapi maps the planning core onto HTTP: one synchronous plan
// endpoint, asynchronous export jobs, and health. Core errors surface as
// client-visible 4xx failures; internal invariant violations become 5xx.
package planapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"platecore/internal/export"
	"platecore/internal/planner"
	"platecore/pkg/plate"
)

// Planner evaluates one planning request.
type Planner interface {
	Plan(ctx context.Context, req planner.Request) (planner.Result, error)
}

// ExportScheduler queues export requests and exposes their status.
type ExportScheduler interface {
	EnqueueExport(ctx context.Context, input ExportInput) (ExportRecord, error)
	GetExport(id string) (ExportRecord, bool)
}

// Handler provides HTTP access to plate planning and exports.
type Handler struct {
	Planner Planner
	Exports ExportScheduler
}

// NewHandler constructs a plan HTTP handler.
func NewHandler(p Planner) *Handler {
	return &Handler{Planner: p}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Planner == nil {
		writeError(w, http.StatusInternalServerError, "planner not configured")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case path == "/healthz":
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case path == "/api/v1/plan":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handlePlan(w, r)
	case strings.HasPrefix(path, "/api/v1/plan/exports"):
		if h.Exports == nil {
			http.NotFound(w, r)
			return
		}
		h.handleExports(w, r, path)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planner.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan request payload")
		return
	}

	format := negotiateFormat(r)
	if format == "" {
		writeError(w, http.StatusNotAcceptable, "requested format not supported")
		return
	}

	res, err := h.Planner.Plan(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	if format == export.FormatCSV {
		streamCSV(w, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleExports(w http.ResponseWriter, r *http.Request, path string) {
	if path == "/api/v1/plan/exports" {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleExportCreate(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(path, "/api/v1/plan/exports/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	record, ok := h.Exports.GetExport(id)
	if !ok {
		writeError(w, http.StatusNotFound, "export not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"export": record})
}

type exportRequest struct {
	planner.Request
	Formats     []string `json:"formats"`
	RequestedBy string   `json:"requested_by"`
}

func (h *Handler) handleExportCreate(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid export request payload")
		return
	}

	formats := make([]export.Format, 0, len(req.Formats))
	for _, f := range req.Formats {
		parsed, err := export.ParseFormat(f)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		formats = append(formats, parsed)
	}

	record, err := h.Exports.EnqueueExport(r.Context(), ExportInput{
		Request:     req.Request,
		Formats:     formats,
		RequestedBy: req.RequestedBy,
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"export": record})
}

// statusFor maps core errors onto HTTP status codes. Input-validation
// failures are the caller's to fix; anything else, including a plate
// overflow, is a core bug and stays a 500.
func statusFor(err error) int {
	if plate.IsInputError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func negotiateFormat(r *http.Request) export.Format {
	wanted := strings.ToLower(r.URL.Query().Get("format"))
	if wanted == "" {
		if strings.Contains(r.Header.Get("Accept"), "text/csv") {
			wanted = string(export.FormatCSV)
		} else {
			wanted = string(export.FormatJSON)
		}
	}
	switch export.Format(wanted) {
	case export.FormatJSON, export.FormatCSV:
		return export.Format(wanted)
	}
	return ""
}

func streamCSV(w http.ResponseWriter, res planner.Result) {
	payload, err := export.LayoutCSV(res)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	filename := fmt.Sprintf("plate-plan-%s.csv", time.Now().UTC().Format("20060102T150405Z"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
