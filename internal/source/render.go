package source

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"

	"license-applier/internal/header"
)

type edit struct {
	span
	text string
}

// Render returns the source text with the unit's comments replaced by
// out.Comments.
//
// Original comments missing from out are cut. Comments without a position
// are written as block comments after the preceding surviving comment, or at
// the top of the file. The result is gofmt-formatted.
func (u *Unit) Render(out header.Outcome) ([]byte, error) {
	kept := make(map[header.Position]bool, len(out.Comments))
	for _, c := range out.Comments {
		if c.Pos.IsValid() {
			kept[c.Pos] = true
		}
	}

	var edits []edit

	for _, c := range u.comments {
		if !kept[c.Pos] {
			edits = append(edits, edit{span: u.spans[c.Pos]})
		}
	}

	at := 0
	for _, c := range out.Comments {
		if s, ok := u.spans[c.Pos]; ok && c.Pos.IsValid() {
			at = s.end

			continue
		}

		edits = append(edits, edit{span: span{start: at, end: at}, text: BlockText(c.Text) + "\n\n"})
	}

	// Insertions go before a cut that starts at the same offset.
	slices.SortStableFunc(edits, func(a, b edit) int {
		if a.start != b.start {
			return a.start - b.start
		}

		return (a.end - a.start) - (b.end - b.start)
	})

	var buf bytes.Buffer

	last := 0
	for _, e := range edits {
		if e.start > last {
			buf.Write(u.src[last:e.start])
		}

		buf.WriteString(e.text)
		last = max(last, e.end)
	}

	buf.Write(u.src[last:])

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format %s: %w", u.filename, err)
	}

	return formatted, nil
}

// BlockText wraps text in block comment delimiters.
func BlockText(text string) string {
	return "/*" + text + "\n*/"
}
