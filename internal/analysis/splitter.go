package analysis

import (
	"regexp"
	"strings"
)

const (
	// minSegmentLen is the shortest segment kept as a requirement.
	minSegmentLen = 15
	// maxSegments caps how many requirements are extracted from one document.
	maxSegments = 50
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	numberedRe   = regexp.MustCompile(`\d+[.)]\s+`)
	bulletRe     = regexp.MustCompile(`[•*\-]\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
)

// NormalizeWhitespace collapses runs of whitespace to single spaces and trims
// the ends.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Split segments a document into candidate requirement statements. Exactly one
// strategy is chosen, in priority order: numbered lists, then bullet markers,
// then sentence terminators. The heuristic expects well-formatted input and
// will mis-segment free-form prose that has no numbering, bullets, or terminal
// punctuation; that is a known limitation of the format detection.
func Split(text string) []string {
	var segments []string

	switch {
	case numberedRe.MatchString(text):
		segments = trimNonEmpty(numberedRe.Split(text, -1))
	case hasBulletMarkers(text):
		segments = trimNonEmpty(bulletRe.Split(text, -1))
	default:
		for _, s := range trimNonEmpty(sentenceRe.Split(text, -1)) {
			if len(s) > minSegmentLen {
				segments = append(segments, s)
			}
		}
	}

	kept := segments[:0]
	for _, s := range segments {
		if len(s) > minSegmentLen {
			kept = append(kept, s)
		}
	}

	if len(kept) > maxSegments {
		kept = kept[:maxSegments]
	}
	return kept
}

// hasBulletMarkers reports whether the text looks bullet-formatted. A hyphen
// only counts when it appears within the first 50 characters.
func hasBulletMarkers(text string) bool {
	if strings.Contains(text, "•") || strings.Contains(text, "*") {
		return true
	}
	head := text
	if len(head) > 50 {
		head = head[:50]
	}
	return strings.Contains(head, "-")
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
