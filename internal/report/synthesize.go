// Package report turns a completed analysis cycle into deliverables: the
// improved requirement set, and its markdown, HTML, and PDF renderings.
package report

import (
	"time"

	"github.com/reqlens/srsbot/internal/analysis"
)

// Clarification is one resolved term and the user's replacement text.
type Clarification struct {
	Term  string `json:"term"`
	Value string `json:"value"`
}

// ImprovedRequirement pairs a requirement with its clarified rewrite.
type ImprovedRequirement struct {
	Original  string            `json:"original"`
	Improved  string            `json:"improved"`
	Category  analysis.Category `json:"category"`
	Ambiguous []string          `json:"ambiguous"`
}

// Document is a fully synthesized report, ready for rendering.
type Document struct {
	GeneratedAt    time.Time
	Requirements   []ImprovedRequirement
	Clarifications []Clarification
}

// Changed reports whether the clarifications altered the requirement text.
func (r ImprovedRequirement) Changed() bool {
	return r.Original != r.Improved
}

// Improve applies the collected clarifications to one requirement. Each
// clarified term is substituted once, case-insensitively, at its first
// occurrence, in the order the terms were detected on that requirement. The
// original text is left untouched.
func Improve(req analysis.Requirement, clarifications map[string]string) ImprovedRequirement {
	improved := req.Original
	for _, term := range req.Ambiguous {
		if value, ok := clarifications[term]; ok {
			improved = analysis.ReplaceFirstInsensitive(improved, term, value)
		}
	}
	return ImprovedRequirement{
		Original:  req.Original,
		Improved:  improved,
		Category:  req.Category,
		Ambiguous: req.Ambiguous,
	}
}

// Synthesize builds the report document for a completed session.
// clarifiedTerms fixes the display order of the clarification table, since the
// map itself has none.
func Synthesize(reqs []analysis.Requirement, clarifications map[string]string, clarifiedTerms []string) Document {
	doc := Document{GeneratedAt: time.Now().UTC()}

	for _, req := range reqs {
		doc.Requirements = append(doc.Requirements, Improve(req, clarifications))
	}
	for _, term := range clarifiedTerms {
		if value, ok := clarifications[term]; ok {
			doc.Clarifications = append(doc.Clarifications, Clarification{Term: term, Value: value})
		}
	}
	return doc
}
