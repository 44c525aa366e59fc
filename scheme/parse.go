package scheme

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line operators. The first non-whitespace rune of a line selects how
// the remainder is read.
const (
	opComment = '#'
	opClass   = '$'
	opReason  = '@'
	opRule    = '&'
	opTest    = '*'
	opNote    = '~'
)

// rawRule buffers a rule line until the whole document has been
// scanned. Class substitution and compilation happen afterwards, so a
// rule may reference a class defined later in the document.
type rawRule struct {
	intent  bool
	pattern string
	reason  ReasonRef
	line    int
}

// Parse reads a whole scheme document and returns the parsed Scheme.
// Any grammar violation aborts with a *ParseError; no partial scheme is
// ever returned.
func Parse(text string) (*Scheme, error) {
	classes := classTable{}
	sch := &Scheme{}
	var raw []rawRule

	// Pending reason state for the current position in the scan. A
	// plain `@` reason attaches to the next rule only; a sticky `@@`
	// reason keeps attaching until replaced.
	pending := NoReason
	sticky := false

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		op, rest := splitOperator(line)

		switch op {
		case opComment:
			// Ignored to end of line.

		case opClass:
			// Last definition of a class wins.
			if name, value, ok := splitClass(rest); ok {
				classes[name] = value
			}

		case opReason:
			if strings.HasPrefix(rest, string(opReason)) {
				sticky = true
				rest = rest[1:]
			} else {
				sticky = false
			}
			sch.Reasons = append(sch.Reasons, strings.TrimSpace(rest))
			pending = ReasonRef(len(sch.Reasons) - 1)

		case opRule:
			intent, ok, err := parseIntent(rest)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			if !ok {
				continue
			}
			raw = append(raw, rawRule{
				intent:  intent,
				pattern: stripSpace(rest[1:]),
				reason:  pending,
				line:    lineNo,
			})
			if !sticky {
				pending = NoReason
			}

		case opTest:
			intent, ok, err := parseIntent(rest)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			if !ok {
				continue
			}
			word := strings.TrimSpace(rest[1:])
			if word == "" {
				continue
			}
			sch.Items = append(sch.Items, Item{Kind: KindTest, Intent: intent, Word: word})

		case opNote:
			sch.Items = append(sch.Items, Item{Kind: KindNote, Note: strings.TrimSpace(rest)})

		default:
			return nil, &ParseError{Line: lineNo, Err: &UnknownOperatorError{Char: op}}
		}
	}

	// The class table is complete; substitute and compile the buffered
	// rules in declaration order.
	for _, r := range raw {
		pattern, err := classes.substitute(r.pattern)
		if err != nil {
			return nil, &ParseError{Line: r.line, Err: err}
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &ParseError{Line: r.line, Err: &PatternError{Pattern: pattern, Err: err}}
		}
		sch.Rules = append(sch.Rules, Rule{Intent: r.intent, Pattern: re, Reason: r.reason})
	}

	return sch, nil
}

// splitOperator returns the first rune of a non-empty line and the
// remainder after it.
func splitOperator(line string) (rune, string) {
	r, size := utf8.DecodeRuneInString(line)
	return r, line[size:]
}

// splitClass splits a class definition into its one-rune name and
// trimmed value. ok is false when nothing follows the operator, in
// which case the line is ignored.
func splitClass(rest string) (rune, string, bool) {
	if rest == "" {
		return 0, "", false
	}
	name, size := utf8.DecodeRuneInString(rest)
	return name, strings.TrimSpace(rest[size:]), true
}

// parseIntent reads the intent rune following a rule or test operator:
// `+` means a match signals invalidity (or, for tests, that the word is
// expected to be invalid), `!` the opposite. ok is false when the line
// ends right after the operator; such lines are skipped.
func parseIntent(rest string) (intent, ok bool, err error) {
	if rest == "" {
		return false, false, nil
	}
	switch r, _ := utf8.DecodeRuneInString(rest); r {
	case '+':
		return true, true, nil
	case '!':
		return false, true, nil
	default:
		return false, false, &UnknownIntentError{Char: r}
	}
}

// stripSpace removes every whitespace rune from a rule pattern.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
