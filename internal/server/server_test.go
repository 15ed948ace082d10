package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/paradigma"
	"github.com/cours-de-latin/paradigma/internal/config"
)

var testLimits = config.QueryConfig{MaxInputRunes: 32, MaxCandidates: 100, BatchWorkers: 2, MaxBatchWords: 3}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	idx, err := paradigma.LoadIndex(os.DirFS("../../testdata"))
	require.NoError(t, err)
	return New(idx, testLimits, nil).Handler([]string{"http://example.com"})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestLookup(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/lookup?q=amo", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode[lookupResponse](t, rec)
	assert.Equal(t, "amo", resp.Query)
	require.Len(t, resp.Analyses, 1)
	assert.Equal(t, lemmaJSON{Canonical: "amō, amāre, amāvī, amātum", POS: "VERB", Meaning: "love"}, resp.Analyses[0].Lemma)
	assert.Equal(t, []formJSON{{
		Form:        "amō",
		Code:        "IND_ACT_SIM_PRE_1SG",
		Description: "present active indicative, 1st singular",
	}}, resp.Analyses[0].Forms)
}

func TestLookup_GroupsByLemma(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/lookup?q=reges", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[lookupResponse](t, rec)
	require.Len(t, resp.Analyses, 2)
	assert.Equal(t, "VERB", resp.Analyses[0].Lemma.POS)
	assert.Len(t, resp.Analyses[0].Forms, 1)
	assert.Equal(t, "rēx, rēgis (M)", resp.Analyses[1].Lemma.Canonical)

	var codes []string
	for _, f := range resp.Analyses[1].Forms {
		codes = append(codes, f.Code)
	}
	assert.Equal(t, []string{"NOM_PL", "ACC_PL", "VOC_PL"}, codes)
}

func TestLookup_Errors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"no match", http.MethodGet, "/api/lookup?q=xyz", http.StatusNotFound},
		{"missing parameter", http.MethodGet, "/api/lookup", http.StatusBadRequest},
		{"wrong method", http.MethodPost, "/api/lookup?q=amo", http.StatusMethodNotAllowed},
		{"too long", http.MethodGet, "/api/lookup?q=" + strings.Repeat("x", 33), http.StatusBadRequest},
		{"too ambiguous", http.MethodGet, "/api/lookup?q=amantissimus", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestBatch(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/lookup/batch", `{"words":["puella","xyz","regam"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[batchResponse](t, rec)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "puella", resp.Results[0].Query)
	require.Len(t, resp.Results[0].Analyses, 1)
	assert.Len(t, resp.Results[0].Analyses[0].Forms, 3)
	assert.Empty(t, resp.Results[1].Analyses)
	assert.Len(t, resp.Results[2].Analyses[0].Forms, 2)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/lookup/batch", `{"words":[]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/lookup/batch", `not json`).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, h, http.MethodPost, "/api/lookup/batch", `{"words":["amo","amantissimus"]}`).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/api/lookup/batch", "").Code)
}

func TestBatch_Limits(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"at word limit", `{"words":["amo","rosa","rex"]}`, http.StatusOK},
		{"too many words", `{"words":["amo","rosa","rex","puella"]}`, http.StatusRequestEntityTooLarge},
		{"word too long", `{"words":["` + strings.Repeat("a", 33) + `"]}`, http.StatusBadRequest},
		{"body too large", `{"words":["` + strings.Repeat("a", 5000) + `"]}`, http.StatusRequestEntityTooLarge},
		{"padded body", `{"words":["amo"]` + strings.Repeat(" ", 5000) + `}`, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/lookup/batch", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestComplete(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/complete?prefix=ama&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[completeResponse](t, rec)
	assert.Equal(t, []string{"amanda", "amandae", "amandam", "amande", "amandum"}, resp.Forms)

	rec = do(t, h, http.MethodGet, "/api/complete?prefix=ama", "")
	assert.Len(t, decode[completeResponse](t, rec).Forms, defaultCompleteLimit)

	rec = do(t, h, http.MethodGet, "/api/complete?prefix=zz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"prefix":"zz","forms":[]}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/complete?prefix=ama&limit=x", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/complete?prefix=ama&limit=0", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/complete", "").Code)
}

func TestParadigm(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/paradigm?q=rosa", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[paradigmResponse](t, rec)
	require.Len(t, resp.Paradigms, 1)
	p := resp.Paradigms[0]
	assert.Equal(t, "rosa, rosae (F)", p.Lemma.Canonical)
	require.Len(t, p.Forms, 12)
	assert.Equal(t, formJSON{Form: "rosa", Code: "NOM_SG", Description: "nominative singular"}, p.Forms[0])

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/paradigm?q=xyz", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/paradigm", "").Code)
}

func TestStats(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"lemmas":10,"derived":16,"forms":508,"entries":960}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", "http://elsewhere.org")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
