// Package runner evaluates words against a parsed scheme and assembles
// the pass/fail report.
package runner

import "github.com/c360studio/phonotact/scheme"

// Validity is the engine's verdict on a single word.
type Validity struct {
	invalid bool
	reason  scheme.ReasonRef
}

// Valid is the verdict for a word no rule disqualified.
func Valid() Validity {
	return Validity{reason: scheme.NoReason}
}

// Invalid is the verdict for a disqualified word, carrying the
// disqualifying rule's reason handle (which may be NoReason).
func Invalid(reason scheme.ReasonRef) Validity {
	return Validity{invalid: true, reason: reason}
}

// IsValid reports whether the word passed every rule.
func (v Validity) IsValid() bool { return !v.invalid }

// Reason returns the disqualifying rule's reason handle. ok is false
// for valid verdicts and for rules that carried no reason.
func (v Validity) Reason() (ref scheme.ReasonRef, ok bool) {
	if !v.invalid || v.reason == scheme.NoReason {
		return scheme.NoReason, false
	}
	return v.reason, true
}

// Validate judges one word against the ordered rule list. A rule
// disqualifies the word when its match outcome equals its intent: an
// intent-true rule by matching, an intent-false rule by failing to
// match. The first disqualifying rule wins and evaluation stops there;
// a word is invalid for at most one reason even if later rules would
// also reject it.
//
// Validate is a pure function over the compiled rules and is safe to
// call concurrently.
func Validate(word string, rules []scheme.Rule) Validity {
	for _, rule := range rules {
		if rule.Pattern.MatchString(word) == rule.Intent {
			return Invalid(rule.Reason)
		}
	}
	return Valid()
}
