package analysis

import (
	"fmt"
	"strings"
	"testing"
)

func TestNormalizeWhitespace(t *testing.T) {
	got := NormalizeWhitespace("  The system\tshall\n\n respond  quickly.  ")
	want := "The system shall respond quickly."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSplitNumberedList(t *testing.T) {
	text := "1. The system shall allow users to login with email. 2) The system shall export reports as CSV files."
	segments := Split(text)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(segments), segments)
	}
	if !strings.Contains(segments[0], "login with email") {
		t.Errorf("unexpected first segment: %q", segments[0])
	}
	if !strings.Contains(segments[1], "export reports") {
		t.Errorf("unexpected second segment: %q", segments[1])
	}
}

func TestSplitBullets(t *testing.T) {
	text := "• The system shall display a dashboard • The system shall notify users by email"
	segments := Split(text)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(segments), segments)
	}
}

func TestSplitSentenceFallback(t *testing.T) {
	text := "The system shall validate all form input. Users can search the product catalog! Ok."
	segments := Split(text)

	// "Ok" is below the length floor and must be dropped.
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(segments), segments)
	}
}

func TestSplitNumberedTakesPriorityOverSentences(t *testing.T) {
	// Contains both numbering and terminal punctuation; the numbered strategy
	// must win because strategy selection is ordered, not a vote.
	text := "1. The system shall store records. 2. The system shall delete records."
	segments := Split(text)

	if len(segments) != 2 {
		t.Fatalf("expected numbered split, got %v", segments)
	}
	for _, s := range segments {
		if strings.ContainsAny(s, "12") && strings.HasPrefix(s, "1") {
			t.Errorf("segment retained its list number: %q", s)
		}
	}
}

func TestSplitFiltersShortSegments(t *testing.T) {
	for _, s := range Split("1. Short one. 2. The system shall generate monthly reports.") {
		if len(s) <= minSegmentLen {
			t.Errorf("segment %q is below the length floor", s)
		}
	}
}

func TestSplitCapsSegmentCount(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 80; i++ {
		fmt.Fprintf(&b, "%d. The system shall perform scheduled task number %d. ", i, i)
	}

	segments := Split(b.String())
	if len(segments) != maxSegments {
		t.Fatalf("expected cap of %d segments, got %d", maxSegments, len(segments))
	}
}

func TestHyphenBulletOnlyNearStart(t *testing.T) {
	// A hyphen past the first 50 characters must not trigger bullet mode.
	text := "The system shall provide read access for all users and read-only mode for guests."
	segments := Split(text)
	if len(segments) != 1 {
		t.Fatalf("expected sentence split, got %v", segments)
	}
}
