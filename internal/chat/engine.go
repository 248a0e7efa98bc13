// Package chat drives the clarification conversation: it analyzes submitted
// documents, sequences one clarification question per turn, and synthesizes
// the improved report when the queue drains.
package chat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/reqlens/srsbot/internal/analysis"
	"github.com/reqlens/srsbot/internal/report"
	"github.com/reqlens/srsbot/internal/session"
	"github.com/reqlens/srsbot/internal/vocabulary"
)

const (
	// minDocumentLen is the shortest message treated as an analyzable document.
	minDocumentLen = 20
	// maxShownTerms limits how many ambiguous terms the notice lists.
	maxShownTerms = 8
	// maxShownImprovements limits the before/after pairs shown in chat.
	maxShownImprovements = 10
)

// Engine processes chat turns against the session store. All mutation of a
// session happens inside HandleTurn while holding that session's lock.
type Engine struct {
	store             *session.Store
	analyzer          *analysis.Analyzer
	vocab             *vocabulary.Vocabulary
	log               *zap.Logger
	maxClarifications int
}

// NewEngine creates an Engine. maxClarifications caps how many distinct terms
// are queued per document.
func NewEngine(store *session.Store, analyzer *analysis.Analyzer, vocab *vocabulary.Vocabulary, log *zap.Logger, maxClarifications int) *Engine {
	if maxClarifications <= 0 {
		maxClarifications = 10
	}
	return &Engine{
		store:             store,
		analyzer:          analyzer,
		vocab:             vocab,
		log:               log,
		maxClarifications: maxClarifications,
	}
}

// TurnResult is the outcome of one chat turn.
type TurnResult struct {
	SessionID string
	Messages  []session.Message
	Awaiting  bool
}

// HandleTurn runs one user message through the conversation state machine.
// An empty or unknown session id starts a new session. Only the
// awaiting_clarification state is treated specially; any other state analyzes
// the message as a new document, which is what lets a completed session
// accept another document without an explicit reset command.
func (e *Engine) HandleTurn(sessionID, message string) *TurnResult {
	sess := e.store.GetOrCreate(sessionID)
	unlock := e.store.Lock(sess.ID)
	defer unlock()

	sess.Append(session.Message{Role: session.RoleUser, Content: message, Type: session.TypeText})

	var bot []session.Message
	if sess.State == session.StateAwaiting {
		bot = e.handleClarification(sess, message)
	} else {
		bot = e.handleDocument(sess, message)
	}

	for _, msg := range bot {
		sess.Append(msg)
	}
	e.store.Save(sess)

	return &TurnResult{
		SessionID: sess.ID,
		Messages:  bot,
		Awaiting:  sess.State == session.StateAwaiting,
	}
}

// handleDocument treats the message as a fresh SRS document (or greeting).
func (e *Engine) handleDocument(sess *session.Session, message string) []session.Message {
	if isGreeting(message) {
		sess.State = session.StateInitial
		return []session.Message{botText(greetingReply)}
	}

	text := analysis.NormalizeWhitespace(message)
	if len(text) < minDocumentLen {
		return []session.Message{botText(tooShortReply)}
	}

	// Starting a new analysis cycle; completed state restarts implicitly.
	sess.ResetCycle()

	result := e.analyzer.AnalyzeDocument(text)
	if len(result.Requirements) == 0 {
		return []session.Message{botText(noRequirementsReply)}
	}

	sess.OriginalDocument = text
	sess.Requirements = result.Requirements

	messages := []session.Message{botText(analysisSummary(result))}

	if result.TotalAmbiguities == 0 {
		sess.State = session.StateCompleted
		e.log.Info("document analyzed, no ambiguities",
			zap.String("session_id", sess.ID),
			zap.Int("requirements", len(result.Requirements)))
		return append(messages, botText(noAmbiguityReply))
	}

	pending := result.DistinctTerms
	if len(pending) > e.maxClarifications {
		pending = pending[:e.maxClarifications]
	}
	sess.PendingClarifications = append([]string(nil), pending...)
	sess.State = session.StateAwaiting

	e.log.Info("document analyzed",
		zap.String("session_id", sess.ID),
		zap.Int("requirements", len(result.Requirements)),
		zap.Int("ambiguities", result.TotalAmbiguities),
		zap.Int("queued", len(pending)))

	messages = append(messages,
		botText(ambiguityNotice(result.TotalAmbiguities, result.DistinctTerms)),
		botText(questionPrompt("First", pending[0], e.vocab.Question(pending[0]))),
	)
	return messages
}

// handleClarification consumes the head of the clarification queue.
func (e *Engine) handleClarification(sess *session.Session, answer string) []session.Message {
	term, ok := sess.ResolveNext(answer)
	if !ok {
		// Queue drained unexpectedly; fall back to completing the cycle.
		sess.State = session.StateCompleted
		return e.finalize(sess)
	}

	messages := []session.Message{
		botText(fmt.Sprintf("Got it! I'll use **%q** instead of %q.", answer, term)),
	}

	if len(sess.PendingClarifications) > 0 {
		next := sess.PendingClarifications[0]
		return append(messages, botText(questionPrompt("Next", next, e.vocab.Question(next))))
	}

	sess.State = session.StateCompleted
	return append(messages, e.finalize(sess)...)
}

// finalize synthesizes the improved report, renders the PDF, and closes the
// cycle. PDF failures degrade to a warning message; the session still
// completes.
func (e *Engine) finalize(sess *session.Session) []session.Message {
	messages := []session.Message{botText(generatingReply)}

	doc := report.Synthesize(sess.Requirements, sess.Clarifications, sess.ClarifiedTerms)
	messages = append(messages, botText(improvementsSummary(doc)))

	pdfBytes, err := report.GeneratePDF(doc)
	if err != nil {
		e.log.Error("pdf generation failed",
			zap.String("session_id", sess.ID),
			zap.Error(err))
		messages = append(messages, botText(fmt.Sprintf("PDF generation encountered an issue: %v", err)))
	} else {
		sess.PDFBytes = pdfBytes
		sess.PDFFilename = pdfFilename(sess.ID)
		messages = append(messages, session.Message{
			Role:    session.RoleBot,
			Content: pdfReadyReply,
			Type:    session.TypeDownload,
			Data: map[string]any{
				"session_id":   sess.ID,
				"filename":     sess.PDFFilename,
				"download_url": "/download-pdf/" + sess.ID,
			},
		})
	}

	e.log.Info("analysis cycle completed",
		zap.String("session_id", sess.ID),
		zap.Int("clarifications", len(sess.Clarifications)))

	return append(messages, botText(doneReply))
}

func pdfFilename(sessionID string) string {
	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("improved_srs_%s.pdf", short)
}
