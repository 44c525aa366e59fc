// Package scheme parses phonotactic scheme documents.
//
// A scheme is a line-oriented text format describing which sound or
// letter sequences are legal in a language: single-character classes
// standing for pattern fragments, ordered match rules with pass/fail
// intent and optional human-readable reasons, and example words with an
// expected verdict. Parsing either yields a complete Scheme or fails
// with a *ParseError; there is no partial result.
package scheme

import "regexp"

// ReasonRef is a handle into a Scheme's reason table.
type ReasonRef int

// NoReason marks a rule with no attached reason.
const NoReason ReasonRef = -1

// Rule is one ordered constraint. Rules are immutable after parsing and
// evaluated in document order.
type Rule struct {
	// Intent selects the rule polarity: true means a match makes the
	// word invalid, false means a match is required for the word to be
	// valid.
	Intent bool

	// Pattern is the compiled pattern, after class substitution.
	Pattern *regexp.Regexp

	// Reason points into the scheme's reason table, or NoReason.
	Reason ReasonRef
}

// ItemKind discriminates entries in a Scheme's item list.
type ItemKind int

const (
	// KindTest is a word with an expected verdict.
	KindTest ItemKind = iota

	// KindNote is free display text carried through to the report.
	KindNote
)

// Item is one declared test or note, in document order.
type Item struct {
	Kind ItemKind

	// Intent is the expected outcome for tests: true expects the word
	// to be invalid, false expects it to be valid.
	Intent bool

	// Word is the literal string to validate (tests only).
	Word string

	// Note is the display text (notes only).
	Note string
}

// Scheme is a parsed document: ordered rules, the reason table they
// reference, and the interleaved test/note list. Classes are consumed
// during parsing and do not survive into the Scheme.
type Scheme struct {
	Rules   []Rule
	Reasons []string
	Items   []Item
}

// Reason resolves a reason handle to its text. ok is false for NoReason
// and for handles outside the table.
func (s *Scheme) Reason(ref ReasonRef) (string, bool) {
	if ref < 0 || int(ref) >= len(s.Reasons) {
		return "", false
	}
	return s.Reasons[ref], true
}

// TestCount returns the number of test items, excluding notes.
func (s *Scheme) TestCount() int {
	n := 0
	for _, item := range s.Items {
		if item.Kind == KindTest {
			n++
		}
	}
	return n
}
