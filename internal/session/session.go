// Package session holds per-conversation state and the in-memory store that
// owns it. A session lives for one analysis cycle at a time: document in,
// clarifications collected one turn at a time, improved report out.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/reqlens/srsbot/internal/analysis"
)

// State is the conversation phase of a session.
type State string

const (
	// StateInitial: no document yet, or the last turn was not an analysis.
	StateInitial State = "initial"
	// StateAwaiting: one or more ambiguous terms are queued for clarification.
	StateAwaiting State = "awaiting_clarification"
	// StateCompleted: all clarifications resolved, or none were needed. A new
	// document submitted in this state starts a fresh cycle.
	StateCompleted State = "completed"
)

// Message roles and content types.
const (
	RoleUser = "user"
	RoleBot  = "bot"

	TypeText     = "text"
	TypeDownload = "download"
)

// Message is one append-only history entry.
type Message struct {
	Role      string         `json:"role,omitempty"`
	Content   string         `json:"content"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Session is the accumulated state of one conversation. It is owned by the
// Store and must only be mutated while holding the session's lock.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	State     State     `json:"state"`
	Messages  []Message `json:"messages"`

	// PendingClarifications is the ordered queue of distinct ambiguous terms
	// still awaiting a user answer. Only terms that appeared in at least one
	// requirement of this session are ever queued.
	PendingClarifications []string `json:"pending_clarifications"`

	// Clarifications maps a resolved term to the user-supplied replacement.
	// Its keys are always a subset of terms that were once pending.
	Clarifications map[string]string `json:"clarifications"`

	// ClarifiedTerms records resolution order, since map iteration would not.
	ClarifiedTerms []string `json:"clarified_terms"`

	OriginalDocument string                 `json:"original_document"`
	Requirements     []analysis.Requirement `json:"requirements"`

	// Rendered PDF for download, kept in memory for the session's lifetime.
	PDFBytes    []byte `json:"-"`
	PDFFilename string `json:"-"`
}

// NewSession creates an empty session. A zero id gets a fresh UUID.
func NewSession(id string) *Session {
	if id == "" {
		id = uuid.New().String()
	}
	return &Session{
		ID:             id,
		CreatedAt:      time.Now().UTC(),
		State:          StateInitial,
		Clarifications: make(map[string]string),
	}
}

// Append adds a message to the history.
func (s *Session) Append(msg Message) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	s.Messages = append(s.Messages, msg)
}

// ResolveNext pops the head of the clarification queue and records the user's
// answer for it. It returns the resolved term, or ok=false when the queue is
// empty.
func (s *Session) ResolveNext(answer string) (term string, ok bool) {
	if len(s.PendingClarifications) == 0 {
		return "", false
	}
	term = s.PendingClarifications[0]
	s.PendingClarifications = s.PendingClarifications[1:]
	if _, seen := s.Clarifications[term]; !seen {
		s.ClarifiedTerms = append(s.ClarifiedTerms, term)
	}
	s.Clarifications[term] = answer
	return term, true
}

// ResetCycle clears analysis state for a newly submitted document while
// keeping the message history.
func (s *Session) ResetCycle() {
	s.State = StateInitial
	s.PendingClarifications = nil
	s.Clarifications = make(map[string]string)
	s.ClarifiedTerms = nil
	s.OriginalDocument = ""
	s.Requirements = nil
	s.PDFBytes = nil
	s.PDFFilename = ""
}
