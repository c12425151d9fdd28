package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/Vandita-014/incident-parser/internal/auth"
)

// ParseRequest is the body of POST /api/v1/parse.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse always comes back with status 200: either a coerced record or
// an explicit error message. Callers never see an unhandled failure.
type ParseResponse struct {
	Success bool            `json:"success"`
	Data    *IncidentRecord `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type ParseHandler struct {
	Parser      *Parser
	Store       *Store
	Logger      *slog.Logger
	IngestToken string
	MinLength   int
}

func (h *ParseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.IngestToken != "" {
		if r.Header.Get("X-Api-Key") != h.IngestToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	minLen := h.MinLength
	if minLen <= 0 {
		minLen = 10
	}
	if len(strings.TrimSpace(req.Text)) < minLen {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "incident text must be at least " + strconv.Itoa(minLen) + " characters long",
		})
		return
	}

	resp := ParseResponse{Success: true}
	rec, err := h.Parser.Parse(r.Context(), req.Text)
	if err != nil {
		h.Logger.Error("parse incident", "err", err)
		resp = ParseResponse{Success: false, Error: errorMessage(err)}
	} else {
		resp.Data = rec
	}

	if h.Store != nil {
		outcome := &ParseOutcome{
			ReportText: req.Text,
			Success:    resp.Success,
			Record:     rec,
			Error:      resp.Error,
		}
		if err := h.Store.Insert(r.Context(), outcome); err != nil {
			// Archiving is best effort; the caller still gets their result.
			h.Logger.Error("archive parse outcome", "err", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func errorMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return "model request failed: " + err.Error()
}

type ListHandler struct {
	Store  *Store
	Logger *slog.Logger
}

func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := auth.UserFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := ListFilter{}
	filter.Severity = q.Get("severity")
	filter.Component = q.Get("component")
	if successStr := q.Get("success"); successStr != "" {
		if b, err := strconv.ParseBool(successStr); err == nil {
			filter.Success = &b
		}
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = l
		}
	}

	outcomes, err := h.Store.List(r.Context(), filter)
	if err != nil {
		h.Logger.Error("list parse outcomes", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(outcomes)
}

type DetailHandler struct {
	Store  *Store
	Logger *slog.Logger
}

func (h *DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := auth.UserFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Path is /api/v1/records/{id}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 4 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := h.Store.Get(r.Context(), id)
	if err != nil {
		h.Logger.Error("get parse outcome", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(outcome)
}
