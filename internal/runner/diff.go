package runner

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Patch renders a line-oriented diff between before and after. Unchanged
// lines are omitted.
func Patch(path string, before, after []byte) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	sb.WriteString("--- " + path + "\n")
	sb.WriteString("+++ " + path + "\n")

	for _, d := range diffs {
		var prefix string

		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}

	return sb.String()
}
