package display

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/c360studio/phonotact/runner"
	"github.com/c360studio/phonotact/scheme"
)

// ANSI SGR fragments used by the renderer.
const (
	sgrReset      = "\x1b[0m"
	sgrYellow     = "\x1b[33m"
	sgrItalYellow = "\x1b[3;33m"
	sgrBlue       = "\x1b[34m"
	sgrCyan       = "\x1b[36m"
	sgrMagenta    = "\x1b[35m"
	sgrBoldGreen  = "\x1b[1;32m"
	sgrBoldRed    = "\x1b[1;31m"
	sgrItalGreen  = "\x1b[1;3;32m"
	sgrItalRed    = "\x1b[1;3;31m"
	sgrItalBold   = "\x1b[0;3;1m"
)

// Renderer prints a report to Out at the configured verbosity. With
// Color disabled every escape sequence is dropped, for piped output.
type Renderer struct {
	Out   io.Writer
	Level Level
	Color bool
}

// Render prints the whole report: header, the outcome lines the level
// admits, and the summary line.
func (r *Renderer) Render(results *runner.TestResults) {
	if len(results.List) == 0 {
		r.printf("\n%s\n", r.paint(sgrYellow, "No tests to run."))
		return
	}

	tests := 0
	for _, item := range results.List {
		if item.Kind == scheme.KindTest {
			tests++
		}
	}
	r.printf("\n%s\n", r.paint(sgrItalYellow, fmt.Sprintf("Running %d tests...", tests)))

	printed := false
	for _, item := range results.List {
		if item.Kind == scheme.KindNote {
			if !r.Level.showsNotes() {
				continue
			}
			r.gap(&printed)
			r.printf("%s\n", r.paint(sgrBlue, item.Note))
			continue
		}

		if !r.Level.showsTest(item.Pass) {
			continue
		}
		r.gap(&printed)
		r.printTest(item, results.MaxWordLen)
	}
	if printed {
		r.printf("\n")
	}

	if results.FailCount == 0 {
		r.printf("%s\n", r.paint(sgrItalGreen, "All tests pass!"))
		return
	}
	plural := "s"
	if results.FailCount == 1 {
		plural = ""
	}
	r.printf("%s\n", r.paint(sgrItalRed, fmt.Sprintf("%d test%s failed!", results.FailCount, plural)))
}

// printTest prints one aligned test outcome line.
func (r *Renderer) printTest(item runner.Outcome, maxWordLen int) {
	// The glyph shows the declared intent: a cross for words expected
	// to be invalid, a check for words expected to be valid.
	glyph := r.paint(sgrCyan, "✔")
	if item.Intent {
		glyph = r.paint(sgrMagenta, "✗")
	}

	status := r.paint(sgrBoldGreen, "pass")
	if !item.Pass {
		status = r.paint(sgrBoldRed, "FAIL")
	}

	pad := strings.Repeat(" ", maxWordLen-utf8.RuneCountInString(item.Word))
	r.printf("  %s %s%s  %s %s\n", glyph, item.Word, pad, status, r.reason(item.Reason))
}

// reason formats the failure reason for display.
func (r *Renderer) reason(reason runner.FailReason) string {
	switch reason.Kind {
	case runner.FailUnexpectedValid:
		return r.paint(sgrYellow, "Matched, but should not have")
	case runner.FailNoReason:
		return "No reason given"
	case runner.FailCustom:
		return r.paint(sgrItalBold, reason.Text)
	}
	return ""
}

// gap prints the blank line separating the header from the first
// outcome, once.
func (r *Renderer) gap(printed *bool) {
	if !*printed {
		r.printf("\n")
		*printed = true
	}
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}

// paint wraps s in the given SGR sequence when color is enabled.
func (r *Renderer) paint(sgr, s string) string {
	if !r.Color {
		return s
	}
	return sgr + s + sgrReset
}
