// Package server exposes a paradigma index as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/lookup?q=<word>
//	POST /api/lookup/batch   body: {"words":["...", ...]}, at most query.max_batch_words
//	GET  /api/complete?prefix=<text>[&limit=n]
//	GET  /api/paradigm?q=<word>
//	GET  /api/stats
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-latin/paradigma"
	"github.com/cours-de-latin/paradigma/internal/config"
)

const defaultCompleteLimit = 10

// ---- JSON response types ------------------------------------------------

type lemmaJSON struct {
	Canonical string `json:"canonical"`
	POS       string `json:"pos"`
	Meaning   string `json:"meaning,omitempty"`
}

type formJSON struct {
	Form        string `json:"form"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type analysisJSON struct {
	Lemma lemmaJSON  `json:"lemma"`
	Forms []formJSON `json:"forms"`
}

type lookupResponse struct {
	Query    string         `json:"query"`
	Analyses []analysisJSON `json:"analyses"`
}

type batchResponse struct {
	Results []lookupResponse `json:"results"`
}

type completeResponse struct {
	Prefix string   `json:"prefix"`
	Forms  []string `json:"forms"`
}

type paradigmResponse struct {
	Query     string         `json:"query"`
	Paradigms []analysisJSON `json:"paradigms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toLemmaJSON(l paradigma.Lemma) lemmaJSON {
	return lemmaJSON{
		Canonical: paradigma.CanonicalForm(l),
		POS:       l.POS().String(),
		Meaning:   l.Gloss(),
	}
}

func toFormJSON(surface string, e paradigma.Entry) formJSON {
	return formJSON{
		Form:        surface,
		Code:        e.Code(),
		Description: paradigma.Describe(e),
	}
}

// toAnalysesJSON groups entries by lemma, keeping the order in which
// lemmas and entries were found.
func toAnalysesJSON(entries []paradigma.Entry) []analysisJSON {
	out := make([]analysisJSON, 0, len(entries))
	for _, l := range paradigma.Lemmas(entries) {
		a := analysisJSON{Lemma: toLemmaJSON(l)}
		for _, e := range entries {
			if e.Lemma.Equal(l) {
				a.Forms = append(a.Forms, toFormJSON(paradigma.RenderSurface(e), e))
			}
		}
		out = append(out, a)
	}
	return out
}

func toParadigmJSON(l paradigma.Lemma) analysisJSON {
	forms := paradigma.Paradigm(l)
	a := analysisJSON{Lemma: toLemmaJSON(l), Forms: make([]formJSON, 0, len(forms))}
	for _, f := range forms {
		a.Forms = append(a.Forms, toFormJSON(f.Surface, f.Entry))
	}
	return a
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// queryStatus maps a query guard error to its HTTP status.
func queryStatus(err error) int {
	switch {
	case errors.Is(err, paradigma.ErrInputTooLong):
		return http.StatusBadRequest
	case errors.Is(err, paradigma.ErrTooAmbiguous):
		return http.StatusUnprocessableEntity
	case errors.Is(err, config.ErrBatchTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// ---- server -------------------------------------------------------------

// Server answers API requests from one index.
type Server struct {
	idx    *paradigma.Index
	limits config.QueryConfig
	logger *zap.Logger
}

// New returns a server over idx. logger may be nil.
func New(idx *paradigma.Index, limits config.QueryConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{idx: idx, limits: limits, logger: logger}
}

// Handler returns the API routes wrapped in CORS handling for origins.
func (s *Server) Handler(origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/lookup/batch", s.handleBatch)
	mux.HandleFunc("/api/lookup", s.handleLookup)
	mux.HandleFunc("/api/complete", s.handleComplete)
	mux.HandleFunc("/api/paradigm", s.handleParadigm)
	mux.HandleFunc("/api/stats", s.handleStats)

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.logRequests(mux))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'q' query parameter")
		return
	}
	entries, err := s.limits.Query(s.idx, q)
	if err != nil {
		s.writeError(w, queryStatus(err), err.Error())
		return
	}

	status := http.StatusOK
	if len(entries) == 0 {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, lookupResponse{Query: q, Analyses: toAnalysesJSON(entries)})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	if n := s.limits.MaxBatchBytes(); n > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, n)
	}
	var body struct {
		Words []string `json:"words"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Words) == 0 {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("body over %d bytes: %s", tooLarge.Limit, config.ErrBatchTooLarge))
			return
		}
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'words' array")
		return
	}
	if err := s.limits.CheckBatch(body.Words); err != nil {
		s.writeError(w, queryStatus(err), err.Error())
		return
	}

	results, err := s.idx.QueryBatch(r.Context(), body.Words, s.limits.BatchWorkers)
	if err != nil {
		s.logger.Warn("batch lookup aborted", zap.Int("words", len(body.Words)), zap.Error(err))
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	out := make([]lookupResponse, 0, len(results))
	for i, entries := range results {
		out = append(out, lookupResponse{Query: body.Words[i], Analyses: toAnalysesJSON(entries)})
	}
	s.writeJSON(w, http.StatusOK, batchResponse{Results: out})
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'prefix' query parameter")
		return
	}
	limit := defaultCompleteLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", v))
			return
		}
		limit = n
	}
	if err := s.limits.Check(prefix); err != nil {
		s.writeError(w, queryStatus(err), err.Error())
		return
	}

	forms := s.idx.Complete(prefix, limit)
	if forms == nil {
		forms = []string{}
	}
	s.writeJSON(w, http.StatusOK, completeResponse{Prefix: prefix, Forms: forms})
}

func (s *Server) handleParadigm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'q' query parameter")
		return
	}
	if err := s.limits.Check(q); err != nil {
		s.writeError(w, queryStatus(err), err.Error())
		return
	}
	_, entries, ok := s.idx.First(q)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("no form matches %q", q))
		return
	}

	lemmas := paradigma.Lemmas(entries)
	out := make([]analysisJSON, 0, len(lemmas))
	for _, l := range lemmas {
		out = append(out, toParadigmJSON(l))
	}
	s.writeJSON(w, http.StatusOK, paradigmResponse{Query: q, Paradigms: out})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	s.writeJSON(w, http.StatusOK, s.idx.Stats())
}
