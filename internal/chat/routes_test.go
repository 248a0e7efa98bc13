package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/reqlens/srsbot/internal/analysis"
	"github.com/reqlens/srsbot/internal/session"
	"github.com/reqlens/srsbot/internal/vocabulary"
)

func newTestRouter(t *testing.T) (chi.Router, *session.Store) {
	t.Helper()
	store := session.NewStore(time.Hour, time.Hour)
	vocab := vocabulary.Default()
	engine := NewEngine(store, analysis.New(vocab), vocab, zap.NewNop(), 10)

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(engine, store, zap.NewNop()))
	return r, store
}

func postChat(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatMissingMessage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postChat(t, r, `{"session_id":"abc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if !strings.Contains(body["error"], "message") {
		t.Errorf("expected error naming the missing field, got %q", body["error"])
	}
}

func TestChatInvalidJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := postChat(t, r, `{not json`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChatTurnResponseShape(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postChat(t, r, `{"message":"1. The system should be fast and secure. 2. Users can login with their email."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("expected assigned session_id")
	}
	if !resp.AwaitingClarification {
		t.Error("expected awaiting_clarification=true")
	}
	if len(resp.BotMessages) == 0 {
		t.Error("expected bot messages")
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected timestamp")
	}
}

func TestWelcome(t *testing.T) {
	r, store := newTestRouter(t)

	req := httptest.NewRequest("GET", "/welcome", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Messages []session.Message `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Messages) != 3 {
		t.Errorf("expected 3 onboarding messages, got %d", len(body.Messages))
	}

	// No session side effects.
	if store.Count() != 0 {
		t.Errorf("welcome must not create sessions, have %d", store.Count())
	}
}

func TestHealth(t *testing.T) {
	r, store := newTestRouter(t)
	store.GetOrCreate("one")
	store.GetOrCreate("two")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Status         string `json:"status"`
		ActiveSessions int    `json:"active_sessions"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Status != "healthy" {
		t.Errorf("expected healthy, got %q", body.Status)
	}
	if body.ActiveSessions != 2 {
		t.Errorf("expected 2 active sessions, got %d", body.ActiveSessions)
	}
}

func TestDownloadPDFUnknownSession(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/download-pdf/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDownloadPDFBeforeGeneration(t *testing.T) {
	r, store := newTestRouter(t)
	store.GetOrCreate("pending-session")

	req := httptest.NewRequest("GET", "/download-pdf/pending-session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when no PDF exists, got %d", w.Code)
	}
}

func TestFullFlowAndDownloads(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postChat(t, r, `{"message":"1. The system should be fast and secure. 2. Users can login with their email."}`)
	var first chatResponse
	json.Unmarshal(w.Body.Bytes(), &first)

	postChat(t, r, `{"message":"2 seconds","session_id":"`+first.SessionID+`"}`)
	w = postChat(t, r, `{"message":"using AES-256","session_id":"`+first.SessionID+`"}`)

	var last chatResponse
	json.Unmarshal(w.Body.Bytes(), &last)
	if last.AwaitingClarification {
		t.Fatal("expected completed conversation")
	}

	// PDF download.
	req := httptest.NewRequest("GET", "/download-pdf/"+first.SessionID, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for PDF download, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}

	// Markdown report.
	req = httptest.NewRequest("GET", "/download-report/"+first.SessionID+"?format=md", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for report download, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "# Improved SRS Document") {
		t.Error("expected markdown report content")
	}

	// HTML report.
	req = httptest.NewRequest("GET", "/download-report/"+first.SessionID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<h1") {
		t.Errorf("expected HTML report, got %d %q", rec.Code, rec.Body.String()[:min(120, rec.Body.Len())])
	}
}

func TestChatEmptyMessageAnsweredInChat(t *testing.T) {
	r, _ := newTestRouter(t)

	// An empty-but-present message is not a protocol error; the bot answers
	// with the too-short reply instead of a 400.
	w := postChat(t, r, `{"message":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.BotMessages) == 0 || !strings.Contains(resp.BotMessages[0].Content, "Too short") {
		t.Errorf("expected too-short reply, got %+v", resp.BotMessages)
	}
}

func TestConcurrentTurnAndReportDownload(t *testing.T) {
	r, _ := newTestRouter(t)

	doc := "Users can login with their email address and submit a new order form."

	w := postChat(t, r, fmt.Sprintf(`{"message":%q}`, doc))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var first chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// One goroutine keeps re-analyzing (each turn resets the session's
	// requirement state), the other keeps downloading the report. The
	// download must never observe a half-reset session.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		body := fmt.Sprintf(`{"message":%q,"session_id":%q}`, doc, first.SessionID)
		for i := 0; i < 25; i++ {
			if w := postChat(t, r, body); w.Code != http.StatusOK {
				t.Errorf("turn %d: expected 200, got %d", i, w.Code)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			req := httptest.NewRequest("GET", "/download-report/"+first.SessionID, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK && rec.Code != http.StatusNotFound {
				t.Errorf("download %d: unexpected status %d", i, rec.Code)
				return
			}
		}
	}()
	wg.Wait()
}
