package vocabulary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTablesPopulated(t *testing.T) {
	v := Default()

	if len(v.AmbiguousTerms) == 0 {
		t.Fatal("expected ambiguous terms")
	}
	if len(v.FunctionalKeywords) == 0 || len(v.NonFunctionalKeywords) == 0 {
		t.Fatal("expected keyword lists")
	}

	// Every table entry must be lowercase; matching is case-insensitive
	// against lowered input.
	for _, term := range v.AmbiguousTerms {
		if term != strings.ToLower(term) {
			t.Errorf("term %q is not lowercase", term)
		}
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.AmbiguousTerms[0] = "mutated"
	a.Suggestions["fast"] = "mutated"

	b := Default()
	if b.AmbiguousTerms[0] == "mutated" {
		t.Error("mutating one copy leaked into the defaults")
	}
	if b.Suggestions["fast"] == "mutated" {
		t.Error("mutating suggestions leaked into the defaults")
	}
}

func TestQuestionFallback(t *testing.T) {
	v := Default()

	if q := v.Question("FAST"); !strings.Contains(q, "How fast") {
		t.Errorf("expected configured question for 'fast', got %q", q)
	}

	q := v.Question("frobnicate")
	if !strings.Contains(q, "frobnicate") || !strings.Contains(q, "measurable") {
		t.Errorf("expected generic fallback question, got %q", q)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yml")
	content := `ambiguous_terms:
  - Sluggish
  - laggy
questions:
  sluggish: "How sluggish is too sluggish?"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	v, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(v.AmbiguousTerms) != 2 || v.AmbiguousTerms[0] != "sluggish" {
		t.Errorf("expected lowered override terms, got %v", v.AmbiguousTerms)
	}
	if q := v.Question("Sluggish"); q != "How sluggish is too sluggish?" {
		t.Errorf("unexpected question: %q", q)
	}

	// Tables omitted from the file keep their built-ins.
	if len(v.FunctionalKeywords) == 0 {
		t.Error("expected built-in functional keywords to survive a partial override")
	}
	if _, ok := v.Suggestion("fast"); !ok {
		t.Error("expected built-in suggestions to survive a partial override")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
