// Package analysis implements the per-statement SRS checks: ambiguity
// scanning, functional / non-functional classification, and suggested
// rewrites. All checks are pure dictionary lookups over the vocabulary
// tables; results for a given statement and vocabulary are deterministic.
package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/reqlens/srsbot/internal/vocabulary"
)

// Category classifies what kind of requirement a statement is.
type Category string

const (
	CategoryFunctional    Category = "Functional Requirement"
	CategoryNonFunctional Category = "Non-Functional Requirement"
	CategoryUnclassified  Category = "Unclassified"
)

// Requirement is the analysis result for a single statement. It is created
// once during document analysis and never mutated afterwards; improved-text
// views are derived separately.
type Requirement struct {
	Original   string   `json:"original"`
	Ambiguous  []string `json:"ambiguous"`
	Category   Category `json:"category"`
	Confidence int      `json:"confidence"`
	Suggested  string   `json:"suggested"`
}

// DocumentAnalysis aggregates the results for a whole document.
type DocumentAnalysis struct {
	Requirements       []Requirement
	FunctionalCount    int
	NonFunctionalCount int

	// TotalAmbiguities counts term hits across all requirements, including a
	// term found in several requirements more than once.
	TotalAmbiguities int

	// DistinctTerms lists each ambiguous term once, in the order it was first
	// seen across the document. This fixed ordering is what makes the
	// clarification queue reproducible.
	DistinctTerms []string
}

// Analyzer runs the dictionary-driven checks against one vocabulary.
type Analyzer struct {
	vocab *vocabulary.Vocabulary

	// suggestion terms sorted longest-first so e.g. "high quality" is
	// rewritten before "quality" could pre-empt it.
	orderedSuggestions []string
}

// New creates an Analyzer over the given vocabulary.
func New(v *vocabulary.Vocabulary) *Analyzer {
	terms := make([]string, 0, len(v.Suggestions))
	for term := range v.Suggestions {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return &Analyzer{vocab: v, orderedSuggestions: terms}
}

// Detect returns the ambiguous terms found in the statement, without
// duplicates. Matching is case-insensitive substring containment, not
// word-bounded: "fast" matches inside "breakfast". That recall trade-off is
// deliberate and mirrors how the keyword tables were tuned.
func (a *Analyzer) Detect(statement string) []string {
	lower := strings.ToLower(statement)
	var found []string
	for _, term := range a.vocab.AmbiguousTerms {
		if strings.Contains(lower, term) && !containsString(found, term) {
			found = append(found, term)
		}
	}
	return found
}

// Classify scores the statement against both keyword lists. Each keyword
// contributes at most one to its counter regardless of how often it occurs.
// Ties with at least one match go to Functional.
func (a *Analyzer) Classify(statement string) Category {
	functional, nonFunctional := a.keywordCounts(statement)

	switch {
	case functional > nonFunctional:
		return CategoryFunctional
	case nonFunctional > functional:
		return CategoryNonFunctional
	case functional > 0:
		return CategoryFunctional
	default:
		return CategoryUnclassified
	}
}

// Confidence scores how strongly the keyword evidence supports the assigned
// category, in [0,100]. Unclassified statements always score 0.
func (a *Analyzer) Confidence(statement string, category Category) int {
	functional, nonFunctional := a.keywordCounts(statement)
	total := functional + nonFunctional
	if total == 0 {
		return 0
	}

	var confidence float64
	switch category {
	case CategoryFunctional:
		confidence = float64(functional) / float64(total) * 100
	case CategoryNonFunctional:
		confidence = float64(nonFunctional) / float64(total) * 100
	default:
		return 0
	}

	if total >= 3 {
		confidence += 10
		if confidence > 100 {
			confidence = 100
		}
	}
	return int(confidence)
}

// MatchedKeywords returns the keywords of the given category found in the
// statement, in table order.
func (a *Analyzer) MatchedKeywords(statement string, category Category) []string {
	var keywords []string
	switch category {
	case CategoryFunctional:
		keywords = a.vocab.FunctionalKeywords
	case CategoryNonFunctional:
		keywords = a.vocab.NonFunctionalKeywords
	default:
		return nil
	}

	lower := strings.ToLower(statement)
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) && !containsString(matched, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// Suggest rewrites the statement by substituting each ambiguous term that has
// a configured measurable phrasing. Terms are processed longest-first and each
// is substituted at most once, at its first occurrence.
func (a *Analyzer) Suggest(statement string) string {
	improved := statement
	for _, term := range a.orderedSuggestions {
		if strings.Contains(strings.ToLower(improved), term) {
			improved = ReplaceFirstInsensitive(improved, term, a.vocab.Suggestions[term])
		}
	}
	return improved
}

// AnalyzeStatement runs all checks against one statement.
func (a *Analyzer) AnalyzeStatement(statement string) Requirement {
	category := a.Classify(statement)
	return Requirement{
		Original:   statement,
		Ambiguous:  a.Detect(statement),
		Category:   category,
		Confidence: a.Confidence(statement, category),
		Suggested:  a.Suggest(statement),
	}
}

// AnalyzeDocument normalizes, splits, and analyzes a whole document.
func (a *Analyzer) AnalyzeDocument(text string) *DocumentAnalysis {
	result := &DocumentAnalysis{}

	for _, statement := range Split(NormalizeWhitespace(text)) {
		req := a.AnalyzeStatement(statement)

		switch req.Category {
		case CategoryFunctional:
			result.FunctionalCount++
		case CategoryNonFunctional:
			result.NonFunctionalCount++
		}

		result.TotalAmbiguities += len(req.Ambiguous)
		for _, term := range req.Ambiguous {
			if !containsString(result.DistinctTerms, term) {
				result.DistinctTerms = append(result.DistinctTerms, term)
			}
		}

		result.Requirements = append(result.Requirements, req)
	}

	return result
}

// ReplaceFirstInsensitive substitutes the first case-insensitive occurrence of
// term within text.
func ReplaceFirstInsensitive(text, term, replacement string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + replacement + text[loc[1]:]
}

func (a *Analyzer) keywordCounts(statement string) (functional, nonFunctional int) {
	lower := strings.ToLower(statement)
	for _, kw := range a.vocab.FunctionalKeywords {
		if strings.Contains(lower, kw) {
			functional++
		}
	}
	for _, kw := range a.vocab.NonFunctionalKeywords {
		if strings.Contains(lower, kw) {
			nonFunctional++
		}
	}
	return functional, nonFunctional
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
