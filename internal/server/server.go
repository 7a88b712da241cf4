// Package server exposes the intake engine over HTTP. Handlers follow the
// plain net/http mux convention: method check, decode, call, encode.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/conversation"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/docs"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/reconcile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/sheet"
)

const maxUploadBytes = 10 << 20

// Server bundles the extraction pipeline, the conversation engine and the
// optional model-backed advisor behind an http.Handler.
type Server struct {
	pipeline  *reconcile.Pipeline
	engine    *conversation.Engine
	advisor   ai.Advisor
	converter *docs.Converter
	sheet     *sheet.Store
	logger    *zap.Logger
}

func New(pipeline *reconcile.Pipeline, engine *conversation.Engine, advisor ai.Advisor, converter *docs.Converter, sheetStore *sheet.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		pipeline:  pipeline,
		engine:    engine,
		advisor:   advisor,
		converter: converter,
		sheet:     sheetStore,
		logger:    logger,
	}
}

// Router builds the HTTP mux for the server.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.HandleFunc("/nlp/parse", s.ParseHandler)
	mux.HandleFunc("/parse/resume", s.ResumeHandler)
	mux.HandleFunc("/conversation/start", s.ConversationStartHandler)
	mux.HandleFunc("/conversation/respond", s.ConversationRespondHandler)
	mux.HandleFunc("/ai/recommend-jobs", s.RecommendJobsHandler)
	mux.HandleFunc("/ai/generate-summary", s.SummaryHandler)
	mux.HandleFunc("/applicants", s.ApplicantsHandler)

	return mux
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

// ParseHandler runs the full extraction pipeline over free text. Extraction
// has no failure mode: unmatched input yields an empty profile with 200.
func (s *Server) ParseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p := s.pipeline.Extract(r.Context(), req.Text)
	s.writeJSON(w, http.StatusOK, p)
}

// ResumeHandler accepts a multipart resume upload, extracts its text and
// runs it through the same pipeline as spoken input.
func (s *Server) ResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	path, err := s.converter.SaveUpload(header.Filename, file)
	if err != nil {
		s.logger.Error("save upload failed", zap.Error(err))
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}

	text, err := docs.ExtractText(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := s.pipeline.Extract(r.Context(), text)
	s.writeJSON(w, http.StatusOK, p)
}

type conversationRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

type conversationResponse struct {
	SessionID string `json:"session_id"`
	conversation.Turn
}

// ConversationStartHandler creates (or restarts) an intake session and
// returns the first question.
func (s *Server) ConversationStartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req conversationRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	sid := s.sessionID(r, req.SessionID)
	turn := s.engine.Start(sid)
	s.writeJSON(w, http.StatusOK, conversationResponse{SessionID: sid, Turn: turn})
}

// ConversationRespondHandler feeds an answer into the session's pending
// question.
func (s *Server) ConversationRespondHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req conversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sid := s.sessionID(r, req.SessionID)
	turn := s.engine.Respond(r.Context(), sid, req.Text)
	s.writeJSON(w, http.StatusOK, conversationResponse{SessionID: sid, Turn: turn})
}

// RecommendJobsHandler asks the advisor for job suggestions for a profile.
func (s *Server) RecommendJobsHandler(w http.ResponseWriter, r *http.Request) {
	s.adviseHandler(w, r, func(ctx context.Context, p profile.ApplicantProfile) (string, error) {
		return s.advisor.RecommendJobs(ctx, p)
	})
}

// SummaryHandler asks the advisor for an introduction paragraph.
func (s *Server) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	s.adviseHandler(w, r, func(ctx context.Context, p profile.ApplicantProfile) (string, error) {
		return s.advisor.Summarize(ctx, p)
	})
}

func (s *Server) adviseHandler(w http.ResponseWriter, r *http.Request, call func(context.Context, profile.ApplicantProfile) (string, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.advisor == nil {
		http.Error(w, "ai advisor is not configured", http.StatusServiceUnavailable)
		return
	}

	var p profile.ApplicantProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	text, err := call(r.Context(), p)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, ai.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		s.logger.Warn("advisor call failed", zap.Error(err))
		http.Error(w, "ai advisor failed", status)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// ApplicantsHandler appends a validated profile to the sheet store.
func (s *Server) ApplicantsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.sheet == nil {
		http.Error(w, "sheet store is not configured", http.StatusServiceUnavailable)
		return
	}

	var p profile.ApplicantProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.sheet.Append(p); err != nil {
		s.logger.Error("sheet append failed", zap.Error(err))
		http.Error(w, "failed to save applicant", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

// sessionID picks the conversation key: an explicit id from the request,
// else the remote address, else a fresh UUID.
func (s *Server) sessionID(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return uuid.NewString()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response failed", zap.Error(err))
	}
}
