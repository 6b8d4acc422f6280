package header

// Matcher decides whether a comment text contains the license.
type Matcher interface {
	Matches(text string) bool
}

// ScanResult is the outcome of scanning the header region of a file.
type ScanResult struct {
	// Found is true when a comment in the region matched.
	Found bool
	// MatchIndex is the index of the matching comment, or -1.
	MatchIndex int
	// Region is the number of leading comments positioned before the anchor.
	Region int
}

// InRegion reports whether c belongs to the header region bounded by anchor.
// Every comment is in the region when there is no anchor.
func InRegion(c Comment, anchor *Anchor) bool {
	return anchor == nil || c.Pos.Before(anchor.Pos)
}

// RegionLen returns the length of the comment prefix positioned before anchor.
// The first comment outside the region ends it.
func RegionLen(comments []Comment, anchor *Anchor) int {
	for i, c := range comments {
		if !InRegion(c, anchor) {
			return i
		}
	}

	return len(comments)
}

// Scan matches the header region comments in order and stops at the first
// match. Comments after the region are never inspected.
func Scan(comments []Comment, anchor *Anchor, m Matcher) ScanResult {
	res := ScanResult{
		MatchIndex: -1,
		Region:     RegionLen(comments, anchor),
	}

	for i, c := range comments[:res.Region] {
		if m.Matches(c.Text) {
			res.Found = true
			res.MatchIndex = i

			break
		}
	}

	return res
}
