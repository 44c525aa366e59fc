package runner

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/c360studio/phonotact/scheme"
)

// Run validates every declared test word against the scheme's rules and
// assembles the ordered report. A scheme with no test or note items
// yields an empty, zero-failure report.
func Run(s *scheme.Scheme) *TestResults {
	results := &TestResults{RunID: uuid.NewString()}
	if len(s.Items) == 0 {
		return results
	}

	for _, item := range s.Items {
		if item.Kind == scheme.KindNote {
			results.List = append(results.List, Outcome{Kind: scheme.KindNote, Note: item.Note})
			continue
		}

		verdict := Validate(item.Word, s.Rules)

		// A test passes when the verdict agrees with its intent: an
		// expect-invalid test on an Invalid verdict, an expect-valid
		// test on a Valid one.
		pass := !verdict.IsValid() == item.Intent

		reason := FailReason{Kind: FailNone}
		if !pass {
			results.FailCount++
			reason = failReason(s, verdict)
		}

		if n := utf8.RuneCountInString(item.Word); n > results.MaxWordLen {
			results.MaxWordLen = n
		}

		results.List = append(results.List, Outcome{
			Kind:   scheme.KindTest,
			Intent: item.Intent,
			Word:   item.Word,
			Pass:   pass,
			Reason: reason,
		})
	}

	return results
}

// failReason derives the display reason for a failed test.
func failReason(s *scheme.Scheme, verdict Validity) FailReason {
	// The word was valid, but the test meant to demonstrate invalidity.
	if verdict.IsValid() {
		return FailReason{Kind: FailUnexpectedValid}
	}

	// The word was invalid against an expect-valid test: surface the
	// disqualifying rule's reason when it has one.
	ref, ok := verdict.Reason()
	if !ok {
		return FailReason{Kind: FailNoReason}
	}
	text, found := s.Reason(ref)
	if !found {
		// A handle outside the table cannot come from a consistent
		// parse, but a stale reference degrades to the placeholder
		// rather than a panic.
		return FailReason{Kind: FailNoReason}
	}
	return FailReason{Kind: FailCustom, Text: text}
}
