// Package vocabulary holds the word tables that drive SRS analysis: the
// ambiguous-term list, suggested measurable phrasings, clarification
// questions, and the functional / non-functional keyword lists.
package vocabulary

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the full set of analysis tables. All matching against these
// tables is case-insensitive; entries are stored lowercase.
type Vocabulary struct {
	// AmbiguousTerms is the ordered list of terms considered too vague for a
	// requirement. Order matters: it fixes the detection order reported for
	// each statement.
	AmbiguousTerms []string `yaml:"ambiguous_terms"`

	// Suggestions maps an ambiguous term to a specific, measurable phrasing.
	Suggestions map[string]string `yaml:"suggestions"`

	// Questions maps an ambiguous term to the clarification question asked
	// for it during the interactive flow.
	Questions map[string]string `yaml:"questions"`

	// FunctionalKeywords indicate behavior the system performs.
	FunctionalKeywords []string `yaml:"functional_keywords"`

	// NonFunctionalKeywords indicate quality attributes.
	NonFunctionalKeywords []string `yaml:"non_functional_keywords"`
}

// Load reads a vocabulary override file in YAML format. Tables omitted from
// the file keep their built-in defaults, so a file may override just the
// ambiguous-term list, for example.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary %s: %w", path, err)
	}

	var override Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing vocabulary %s: %w", path, err)
	}

	v := Default()
	if len(override.AmbiguousTerms) > 0 {
		v.AmbiguousTerms = lowerAll(override.AmbiguousTerms)
	}
	if len(override.Suggestions) > 0 {
		v.Suggestions = lowerKeys(override.Suggestions)
	}
	if len(override.Questions) > 0 {
		v.Questions = lowerKeys(override.Questions)
	}
	if len(override.FunctionalKeywords) > 0 {
		v.FunctionalKeywords = lowerAll(override.FunctionalKeywords)
	}
	if len(override.NonFunctionalKeywords) > 0 {
		v.NonFunctionalKeywords = lowerAll(override.NonFunctionalKeywords)
	}
	return v, nil
}

// Question returns the clarification question configured for the given term,
// or a generic prompt asking for measurable criteria when none is configured.
func (v *Vocabulary) Question(term string) string {
	if q, ok := v.Questions[strings.ToLower(term)]; ok {
		return q
	}
	return fmt.Sprintf("Can you provide specific criteria for %q? (e.g., measurable values, standards, or benchmarks)", term)
}

// Suggestion returns the configured measurable phrasing for a term, if any.
func (v *Vocabulary) Suggestion(term string) (string, bool) {
	s, ok := v.Suggestions[strings.ToLower(term)]
	return s, ok
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(strings.ToLower(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func lowerKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
