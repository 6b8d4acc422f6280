package license

import "strings"

// WordKind distinguishes literal template words from variable placeholders.
type WordKind int

const (
	WordLiteral WordKind = iota
	WordVariable
)

// Word is a single whitespace-delimited token of a compiled template.
type Word struct {
	Kind WordKind
	// Text is the token as written in the template. Variables keep their
	// ${name} spelling.
	Text string
}

// Literal returns a literal word.
func Literal(text string) Word {
	return Word{Kind: WordLiteral, Text: text}
}

// Variable returns a variable word for the given name.
func Variable(name string) Word {
	return Word{Kind: WordVariable, Text: "${" + name + "}"}
}

// IsVariable reports whether w is a wildcard.
func (w Word) IsVariable() bool {
	return w.Kind == WordVariable
}

// Name returns the variable name, or "" for literal words.
func (w Word) Name() string {
	if !w.IsVariable() {
		return ""
	}

	return w.Text[2 : len(w.Text)-1]
}

// isPlaceholder reports whether a token has the ${...} shape.
func isPlaceholder(token string) bool {
	return len(token) >= 3 && strings.HasPrefix(token, "${") && strings.HasSuffix(token, "}")
}

// Pattern is the ordered word sequence of a compiled template.
type Pattern []Word

// Len returns the number of words.
func (p Pattern) Len() int {
	return len(p)
}

// Words returns a copy of the pattern words.
func (p Pattern) Words() []Word {
	out := make([]Word, len(p))
	copy(out, p)

	return out
}

// Matches reports whether text contains the pattern.
//
// Text is tokenized on whitespace. A cursor into the pattern advances when the
// current word is a variable or equals the token, and resets to zero otherwise.
// The token that caused a reset is not retried against the first word.
// A match is reported once the cursor reaches Len()-1, so the final pattern
// word is never required.
func (p Pattern) Matches(text string) bool {
	if len(p) == 0 {
		return false
	}

	threshold := len(p) - 1
	cursor := 0

	for _, token := range strings.Fields(text) {
		if cursor < len(p) && (p[cursor].IsVariable() || p[cursor].Text == token) {
			cursor++
		} else {
			cursor = 0
		}

		if cursor >= threshold {
			return true
		}
	}

	return false
}
