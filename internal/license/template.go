package license

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"unicode"
)

// Bindings maps variable names to their replacement text.
type Bindings map[string]string

// Clone returns an independent copy of b. A nil receiver yields an empty map.
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	maps.Copy(out, b)

	return out
}

// Template is a compiled license template. It is immutable and safe for
// concurrent use.
type Template struct {
	pattern  Pattern
	text     string
	bindings Bindings
}

// Pattern returns the word pattern used for matching.
func (t *Template) Pattern() Pattern {
	return t.pattern
}

// Text returns the resolved license text.
func (t *Template) Text() string {
	return t.text
}

// Bindings returns a copy of the bindings the template was resolved with.
func (t *Template) Bindings() Bindings {
	return t.bindings.Clone()
}

// Matches reports whether text contains the license.
func (t *Template) Matches(text string) bool {
	return t.pattern.Matches(text)
}

// Compile builds a template from its lines.
//
// Every line is split on single whitespace runes. Non-empty tokens form the
// pattern. The resolved text keeps the token layout, with each line prefixed
// by one space and lines joined by '\n'. Unbound variables stay as written.
func Compile(lines []string, bindings Bindings) *Template {
	bound := bindings.Clone()

	var (
		pattern Pattern
		text    strings.Builder
	)

	for i, line := range lines {
		text.WriteByte(' ')

		tokens := splitSpaces(line)
		for j, token := range tokens {
			switch {
			case token == "":
			case isPlaceholder(token):
				word := Word{Kind: WordVariable, Text: token}
				pattern = append(pattern, word)

				if value, ok := bound[word.Name()]; ok {
					token = value
				}
			default:
				pattern = append(pattern, Literal(token))
			}

			text.WriteString(token)

			if j+1 < len(tokens) {
				text.WriteByte(' ')
			}
		}

		if i+1 < len(lines) {
			text.WriteByte('\n')
		}
	}

	return &Template{
		pattern:  pattern,
		text:     text.String(),
		bindings: bound,
	}
}

// splitSpaces splits s on every whitespace rune, so consecutive separators
// produce empty tokens. Trailing whitespace produces no tokens.
func splitSpaces(s string) []string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)

	var (
		tokens []string
		start  int
	)

	for i, r := range s {
		if unicode.IsSpace(r) {
			tokens = append(tokens, s[start:i])
			start = i + len(string(r))
		}
	}

	return append(tokens, s[start:])
}

// Parse compiles template text. A trailing newline does not produce an
// extra empty line.
func Parse(data []byte, bindings Bindings) *Template {
	return Compile(splitLines(string(data)), bindings)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}

// Load reads and compiles a template from r.
func Load(r io.Reader, bindings Bindings) (*Template, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: missing license source", ErrConfiguration)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read license: %w", ErrConfiguration, err)
	}

	return Parse(data, bindings), nil
}

// LoadFile reads and compiles the template stored at path.
func LoadFile(path string, bindings Bindings) (tmpl *Template, err error) {
	if path == "" {
		return nil, fmt.Errorf("%w: missing license file", ErrConfiguration)
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: license file %s does not exist", ErrConfiguration, path)
	}

	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: license file %s cannot be read", ErrConfiguration, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: license file %s cannot be read: %w", ErrConfiguration, path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			tmpl = nil
			err = fmt.Errorf("%w: license file %s cannot be closed: %w", ErrIO, path, cerr)
		}
	}()

	return Load(f, bindings)
}
