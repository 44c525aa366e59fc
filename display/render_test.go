package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/c360studio/phonotact/runner"
	"github.com/c360studio/phonotact/scheme"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "all", want: ShowAll},
		{in: "a", want: ShowAll},
		{in: "ALL", want: ShowAll},
		{in: "notes", want: NotesAndFails},
		{in: "n", want: NotesAndFails},
		{in: "fails", want: JustFails},
		{in: " fails ", want: JustFails},
		{in: "everything", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	for _, level := range []Level{ShowAll, NotesAndFails, JustFails} {
		parsed, err := ParseLevel(level.String())
		if err != nil {
			t.Fatalf("round-trip of %v: %v", level, err)
		}
		if parsed != level {
			t.Errorf("round-trip of %v gave %v", level, parsed)
		}
	}
}

// render runs an uncolored renderer over results and returns the text.
func render(level Level, results *runner.TestResults) string {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Level: level, Color: false}
	r.Render(results)
	return buf.String()
}

func sampleResults() *runner.TestResults {
	return &runner.TestResults{
		RunID: "test-run",
		List: []runner.Outcome{
			{Kind: scheme.KindNote, Note: "Clusters"},
			{Kind: scheme.KindTest, Intent: false, Word: "tapa", Pass: true,
				Reason: runner.FailReason{Kind: runner.FailNone}},
			{Kind: scheme.KindTest, Intent: true, Word: "taapa", Pass: false,
				Reason: runner.FailReason{Kind: runner.FailUnexpectedValid}},
			{Kind: scheme.KindTest, Intent: false, Word: "ŋaː", Pass: false,
				Reason: runner.FailReason{Kind: runner.FailCustom, Text: "Two adjacent vowels"}},
		},
		FailCount:  2,
		MaxWordLen: 5,
	}
}

func TestRender_Empty(t *testing.T) {
	out := render(ShowAll, &runner.TestResults{})
	if !strings.Contains(out, "No tests to run.") {
		t.Errorf("expected empty-report message, got %q", out)
	}
	if strings.Contains(out, "All tests pass!") {
		t.Error("empty report must not print a summary")
	}
}

func TestRender_ShowAll(t *testing.T) {
	out := render(ShowAll, sampleResults())

	for _, want := range []string{
		"Running 3 tests...",
		"Clusters",
		"tapa",
		"pass",
		"FAIL",
		"Matched, but should not have",
		"Two adjacent vowels",
		"2 tests failed!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\noutput:\n%s", want, out)
		}
	}
}

func TestRender_NotesAndFails(t *testing.T) {
	out := render(NotesAndFails, sampleResults())

	if !strings.Contains(out, "Clusters") {
		t.Error("notes level must show notes")
	}
	if !strings.Contains(out, "taapa") {
		t.Error("notes level must show failing tests")
	}
	if strings.Contains(out, "pass") {
		t.Errorf("notes level must hide passing tests\noutput:\n%s", out)
	}
}

func TestRender_JustFails(t *testing.T) {
	out := render(JustFails, sampleResults())

	if strings.Contains(out, "Clusters") {
		t.Error("fails level must hide notes")
	}
	if !strings.Contains(out, "taapa") {
		t.Error("fails level must show failing tests")
	}
	if strings.Contains(out, "tapa ") && strings.Contains(out, "pass") {
		t.Errorf("fails level must hide passing tests\noutput:\n%s", out)
	}
}

func TestRender_SingleFailureSummary(t *testing.T) {
	results := &runner.TestResults{
		List: []runner.Outcome{
			{Kind: scheme.KindTest, Intent: true, Word: "ab", Pass: false,
				Reason: runner.FailReason{Kind: runner.FailNoReason}},
		},
		FailCount:  1,
		MaxWordLen: 2,
	}
	out := render(ShowAll, results)

	if !strings.Contains(out, "1 test failed!") {
		t.Errorf("expected singular summary, got %q", out)
	}
	if !strings.Contains(out, "No reason given") {
		t.Errorf("expected placeholder reason, got %q", out)
	}
}

func TestRender_AllPassSummary(t *testing.T) {
	results := &runner.TestResults{
		List: []runner.Outcome{
			{Kind: scheme.KindTest, Intent: false, Word: "ab", Pass: true,
				Reason: runner.FailReason{Kind: runner.FailNone}},
		},
		MaxWordLen: 2,
	}
	out := render(ShowAll, results)

	if !strings.Contains(out, "All tests pass!") {
		t.Errorf("expected all-pass summary, got %q", out)
	}
}

func TestRender_AlignmentCountsRunes(t *testing.T) {
	out := render(ShowAll, sampleResults())

	// Every word column is padded to MaxWordLen runes, so the status
	// that follows starts at the same column; ŋaː (3 runes) gets two
	// pad spaces even though it is longer in bytes than "tapa".
	if !strings.Contains(out, "ŋaː    FAIL") {
		t.Errorf("expected rune-based padding for ŋaː\noutput:\n%s", out)
	}
	if !strings.Contains(out, "taapa  FAIL") {
		t.Errorf("expected zero padding for the longest word\noutput:\n%s", out)
	}
}

func TestRender_ColorTogglesEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Level: ShowAll, Color: true}
	r.Render(sampleResults())
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected ANSI escapes with color enabled")
	}

	if strings.Contains(render(ShowAll, sampleResults()), "\x1b[") {
		t.Error("expected no ANSI escapes with color disabled")
	}
}
