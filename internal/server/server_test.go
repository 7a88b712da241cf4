package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/canon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/conversation"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/heuristics"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/language"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/lexicon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/reconcile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/sheet"
)

type fieldStub struct{}

func (fieldStub) ExtractProfile(context.Context, string) (profile.RawExtraction, error) {
	return profile.RawExtraction{}, nil
}

func (fieldStub) ExtractField(_ context.Context, f profile.Field, text string) (profile.RawExtraction, error) {
	var raw profile.RawExtraction
	if f == profile.FieldFirstName {
		raw.FirstName = strings.TrimSpace(text)
	}
	return raw, nil
}

func (fieldStub) SuggestCapabilities(context.Context, profile.ApplicantProfile) ([]string, []string, error) {
	return nil, nil, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	lex := lexicon.NewStore()
	c := canon.New(lex)
	rec := reconcile.New(lex, c, nil, nil)
	pipeline := reconcile.NewPipeline(heuristics.New(lex), nil, language.New(nil, nil), rec, nil)
	engine := conversation.NewEngine(conversation.NewMemoryStore(), fieldStub{}, c, nil)
	store := sheet.NewStore(filepath.Join(t.TempDir(), "applicants.csv"))

	return New(pipeline, engine, nil, nil, store, nil)
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestParseHandlerExtractsProfile(t *testing.T) {
	router := newTestServer(t).Router()

	rec := postJSON(t, router, "/nlp/parse", `{"text": "من علی رضایی هستم، ساکن تهران"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var p profile.ApplicantProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.FirstName != "علی" || p.City != "تهران" {
		t.Fatalf("profile = %+v", p)
	}
}

func TestParseHandlerGarbageYieldsEmptyProfileWith200(t *testing.T) {
	router := newTestServer(t).Router()

	rec := postJSON(t, router, "/nlp/parse", `{"text": "!!!"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var p profile.ApplicantProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Age.Set || p.City != "" {
		t.Fatalf("profile = %+v, want empty", p)
	}
}

func TestParseHandlerRejectsGet(t *testing.T) {
	router := newTestServer(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/nlp/parse", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestConversationFlow(t *testing.T) {
	router := newTestServer(t).Router()

	start := postJSON(t, router, "/conversation/start", `{"session_id": "s1"}`)
	if start.Code != http.StatusOK {
		t.Fatalf("start status = %d", start.Code)
	}

	var started struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(start.Body.Bytes(), &started); err != nil {
		t.Fatalf("decode start: %v", err)
	}
	if started.SessionID != "s1" {
		t.Fatalf("session id = %q", started.SessionID)
	}
	if started.Message != profile.FieldFirstName.Question() {
		t.Fatalf("first question = %q", started.Message)
	}

	resp := postJSON(t, router, "/conversation/respond", `{"session_id": "s1", "text": "علی"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("respond status = %d", resp.Code)
	}

	var answered struct {
		Message string   `json:"message"`
		Updated []string `json:"updated"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &answered); err != nil {
		t.Fatalf("decode respond: %v", err)
	}
	if answered.Message != profile.FieldLastName.Question() {
		t.Fatalf("next question = %q", answered.Message)
	}
	if len(answered.Updated) != 1 || answered.Updated[0] != string(profile.FieldFirstName) {
		t.Fatalf("updated = %v", answered.Updated)
	}
}

func TestApplicantsHandlerAppends(t *testing.T) {
	router := newTestServer(t).Router()

	body := profile.New()
	body.FirstName = "علی"
	raw, _ := json.Marshal(body)

	rec := postJSON(t, router, "/applicants", string(raw))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
}

func TestAdvisorUnconfiguredReturns503(t *testing.T) {
	router := newTestServer(t).Router()

	rec := postJSON(t, router, "/ai/recommend-jobs", `{}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}
