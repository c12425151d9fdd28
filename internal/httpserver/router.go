package httpserver

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/Vandita-014/incident-parser/internal/auth"
	"github.com/Vandita-014/incident-parser/internal/records"
)

func NewRouter(
	logger *slog.Logger,
	authSvc *auth.Service,
	parser *records.Parser,
	store *records.Store,
	ingestToken string,
	minReportLen int,
) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Auth
	mux.Handle("/api/v1/auth/login", loginHandler(authSvc, logger))

	// Parsing
	parseHandler := &records.ParseHandler{
		Parser:      parser,
		Store:       store,
		Logger:      logger,
		IngestToken: ingestToken,
		MinLength:   minReportLen,
	}
	mux.Handle("/api/v1/parse", parseHandler)

	// Archived parse outcomes
	listHandler := &records.ListHandler{
		Store:  store,
		Logger: logger,
	}
	detailHandler := &records.DetailHandler{
		Store:  store,
		Logger: logger,
	}
	secured := auth.JWTMiddleware(authSvc)
	mux.Handle("/api/v1/records", secured(listHandler))
	mux.Handle("/api/v1/records/", secured(detailHandler))

	// CORS wrapper (simple, for the local dashboard UI).
	return withCORS(mux)
}
