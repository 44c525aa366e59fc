package runner

import "github.com/c360studio/phonotact/scheme"

// FailKind classifies why a test failed, for display.
type FailKind int

const (
	// FailNone marks a passing test; no reason is displayed.
	FailNone FailKind = iota

	// FailNoReason marks a failure whose disqualifying rule carried no
	// reason text.
	FailNoReason

	// FailUnexpectedValid marks a word the engine accepted although the
	// test expected it to be invalid.
	FailUnexpectedValid

	// FailCustom carries the disqualifying rule's reason text.
	FailCustom
)

// FailReason is the resolved display reason for one test outcome.
type FailReason struct {
	Kind FailKind

	// Text is set for FailCustom only.
	Text string
}

// Outcome is one line of the report: a carried-through note, or a test
// result with its expected intent, word, pass flag, and reason.
type Outcome struct {
	Kind scheme.ItemKind

	// Note is the display text (notes only).
	Note string

	// Intent is the test's expected outcome: true expects invalid.
	Intent bool

	// Word is the tested word.
	Word string

	// Pass reports whether the verdict matched the intent.
	Pass bool

	// Reason explains the failure; FailNone for passing tests.
	Reason FailReason
}

// TestResults is the aggregate report for one scheme run. The outcome
// order matches document declaration order.
type TestResults struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// List holds every note and test outcome in order.
	List []Outcome

	// FailCount is the number of failed tests.
	FailCount int

	// MaxWordLen is the longest tested word, in runes, counted across
	// every test whether or not the renderer will display it. The
	// renderer uses it for column alignment.
	MaxWordLen int
}
