package scheme

import (
	"strings"
	"unicode"
)

// classTable maps single-rune class names to literal pattern fragments.
// Uppercase runes inside rule patterns are class references.
type classTable map[rune]string

// substitute replaces every uppercase rune in raw with its class value
// expanded to a grouped alternation of the value's characters, so that
// $Vaeiou turns V into (a|e|i|o|u): the class matches any one of its
// listed characters, and the parentheses keep precedence against the
// surrounding pattern syntax. The scan runs over the runes of the
// original string only; substituted values are not re-scanned, so a
// value that reintroduces a class name leaves that name unresolved.
// That is the defined behavior, a documented scheme-authoring hazard.
func (c classTable) substitute(raw string) (string, error) {
	out := raw
	for _, r := range raw {
		if !unicode.IsUpper(r) {
			continue
		}
		value, ok := c[r]
		if !ok {
			return "", &UnknownClassError{Name: r}
		}
		out = strings.ReplaceAll(out, string(r), alternation(value))
	}
	return out, nil
}

// alternation expands a class value into a grouped alternation of its
// characters: "aeiou" becomes "(a|e|i|o|u)".
func alternation(value string) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for _, r := range value {
		if !first {
			b.WriteByte('|')
		}
		first = false
		b.WriteRune(r)
	}
	b.WriteByte(')')
	return b.String()
}
