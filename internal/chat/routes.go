package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/reqlens/srsbot/internal/report"
	"github.com/reqlens/srsbot/internal/session"
)

// Handler serves the chat HTTP surface.
type Handler struct {
	engine   *Engine
	store    *session.Store
	log      *zap.Logger
	validate *validator.Validate
}

// NewHandler creates the chat HTTP handler.
func NewHandler(engine *Engine, store *session.Store, log *zap.Logger) *Handler {
	return &Handler{
		engine:   engine,
		store:    store,
		log:      log,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the chat endpoints on the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/chat", h.handleChat)
	r.Get("/welcome", h.handleWelcome)
	r.Get("/download-pdf/{sessionID}", h.handleDownloadPDF)
	r.Get("/download-report/{sessionID}", h.handleDownloadReport)
	r.Get("/health", h.handleHealth)
	r.Get("/ws", h.handleWebSocket)
}

// Message is a pointer so a missing key can be told apart from an empty
// string: only the former is a 400. An empty message flows to the engine,
// which answers with the in-chat "Too short" reply.
type chatRequest struct {
	Message   *string `json:"message" validate:"required"`
	SessionID string  `json:"session_id"`
}

type chatResponse struct {
	BotMessages           []session.Message `json:"bot_messages"`
	SessionID             string            `json:"session_id"`
	Timestamp             time.Time         `json:"timestamp"`
	AwaitingClarification bool              `json:"awaiting_clarification"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required field: message")
		return
	}

	result := h.engine.HandleTurn(req.SessionID, *req.Message)

	writeJSON(w, http.StatusOK, chatResponse{
		BotMessages:           result.Messages,
		SessionID:             result.SessionID,
		Timestamp:             time.Now().UTC(),
		AwaitingClarification: result.Awaiting,
	})
}

func (h *Handler) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": WelcomeMessages(),
	})
}

func (h *Handler) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, found := h.store.Get(sessionID)
	if !found {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	// A concurrent turn may reset the session mid-read; copy the PDF under
	// the session lock.
	unlock := h.store.Lock(sessionID)
	pdfBytes := sess.PDFBytes
	filename := sess.PDFFilename
	unlock()

	if len(pdfBytes) == 0 {
		writeError(w, http.StatusNotFound, "PDF not found for this session")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func (h *Handler) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, found := h.store.Get(sessionID)
	if !found {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	// Synthesize under the session lock so a concurrent turn's ResetCycle
	// cannot mutate the requirement and clarification state mid-read.
	unlock := h.store.Lock(sessionID)
	if len(sess.Requirements) == 0 {
		unlock()
		writeError(w, http.StatusNotFound, "No report available for this session")
		return
	}
	doc := report.Synthesize(sess.Requirements, sess.Clarifications, sess.ClarifiedTerms)
	unlock()

	if r.URL.Query().Get("format") == "md" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(report.RenderMarkdown(doc)))
		return
	}

	out, err := report.RenderHTML(doc)
	if err != nil {
		h.log.Error("report rendering failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "report rendering failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"message":         "SRS clarity assistant is running",
		"active_sessions": h.store.Count(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
