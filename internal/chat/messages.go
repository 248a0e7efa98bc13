package chat

import (
	"fmt"
	"strings"

	"github.com/reqlens/srsbot/internal/analysis"
	"github.com/reqlens/srsbot/internal/report"
	"github.com/reqlens/srsbot/internal/session"
)

// Canned copy for the conversation. Content is markdown; the web client
// renders it.
const (
	greetingReply = "**Hello!** I'm your SRS clarity assistant.\n\n" +
		"I analyze entire SRS documents with **interactive clarification**:\n" +
		"- Detect ambiguous terms\n" +
		"- Ask you for specific values\n" +
		"- Generate personalized improvements\n" +
		"- Classify requirements (Functional vs Non-Functional)\n\n" +
		"**Please paste your complete SRS document** (it can contain multiple requirements)."

	tooShortReply = "**Too short!** Please provide a complete SRS document or at least one full requirement statement (minimum 20 characters)."

	noRequirementsReply = "**No valid requirements found.** Please provide clear requirement statements."

	noAmbiguityReply = "**No ambiguous terms detected!** Your requirements are well-defined.\n\n" +
		"Your SRS is clear and well-structured. Feel free to analyze another document!"

	generatingReply = "**All clarifications received!** Generating your improved SRS..."

	pdfReadyReply = "**PDF ready for download!**\n\nYour improved SRS has been generated as a PDF document."

	doneReply = "**Done!** Your requirements are now clearer and more specific. Feel free to analyze another document!"
)

// greetingWords short-circuit analysis for conversational openers.
var greetingWords = []string{"hi", "hello", "hey", "start", "help", "what can you do"}

func isGreeting(message string) bool {
	if len(message) >= 50 {
		return false
	}
	lower := strings.ToLower(message)
	for _, g := range greetingWords {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}

func botText(content string) session.Message {
	return session.Message{Role: session.RoleBot, Content: content, Type: session.TypeText}
}

// WelcomeMessages is the static onboarding sequence for GET /welcome. It has
// no session side effects.
func WelcomeMessages() []session.Message {
	return []session.Message{
		botText("**Hello!** I'm your SRS clarity assistant."),
		botText("I analyze entire SRS documents with **interactive clarification**:\n" +
			"- Detect ambiguous terms\n" +
			"- Ask you for specific values\n" +
			"- Generate personalized improvements\n" +
			"- Classify requirements (Functional vs Non-Functional)"),
		botText("**Please paste your complete SRS document** (it can contain multiple requirements)."),
	}
}

func analysisSummary(result *analysis.DocumentAnalysis) string {
	var b strings.Builder
	b.WriteString("**Document analysis complete**\n")
	fmt.Fprintf(&b, "Analyzed **%d requirements** from your SRS document.\n\n", len(result.Requirements))
	b.WriteString("**Classification results:**\n")
	fmt.Fprintf(&b, "- **Functional Requirements (FR): %d**\n", result.FunctionalCount)
	b.WriteString("  _FR specify what the system should DO (features, actions, functions)_\n")
	fmt.Fprintf(&b, "- **Non-Functional Requirements (NFR): %d**\n", result.NonFunctionalCount)
	b.WriteString("  _NFR specify how the system should BE (quality, performance, security)_")
	return b.String()
}

func ambiguityNotice(total int, terms []string) string {
	shown := terms
	if len(shown) > maxShownTerms {
		shown = shown[:maxShownTerms]
	}
	quoted := make([]string, len(shown))
	for i, term := range shown {
		quoted[i] = fmt.Sprintf("%q", term)
	}
	ellipsis := ""
	if len(terms) > maxShownTerms {
		ellipsis = "..."
	}
	return fmt.Sprintf("**Found %d ambiguous terms:** %s%s\n\n"+
		"**Let me clarify these with you!** I'll ask a few quick questions to make your requirements more specific.",
		total, strings.Join(quoted, ", "), ellipsis)
}

func questionPrompt(position, term, question string) string {
	return fmt.Sprintf("**%s ambiguous term: %q**\n\n%s", position, term, question)
}

func improvementsSummary(doc report.Document) string {
	parts := []string{"**Your improved requirements:**\n"}

	shown := 0
	for i, req := range doc.Requirements {
		if shown >= maxShownImprovements {
			break
		}
		if !req.Changed() {
			continue
		}
		shown++
		parts = append(parts, fmt.Sprintf("**%d. %s**", i+1, req.Category))
		parts = append(parts, "   **Before:** "+truncate(req.Original, 80))
		parts = append(parts, "   **After:** "+truncate(req.Improved, 100)+"\n")
	}

	if shown == 0 {
		parts = append(parts, "_No requirement text changed; clarifications were recorded for reference._")
	}
	return strings.Join(parts, "\n")
}

// truncate shortens s to at most limit runes, never splitting a multibyte
// character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
