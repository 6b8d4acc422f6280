package header

// Position is an opaque, totally ordered source location.
type Position int

// NoPosition marks a comment that has no source location yet.
const NoPosition Position = 0

// IsValid reports whether p refers to a source location.
func (p Position) IsValid() bool {
	return p > NoPosition
}

// Before reports whether p is strictly before other. A comment without a
// position has not been placed yet and precedes everything.
func (p Position) Before(other Position) bool {
	return !p.IsValid() || (other.IsValid() && p < other)
}

// CommentKind tells line comments from block comments.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

// String returns "line" or "block".
func (k CommentKind) String() string {
	if k == BlockComment {
		return "block"
	}

	return "line"
}

// Comment is a comment attached to a file.
type Comment struct {
	Kind CommentKind
	// Text is the comment content without delimiters.
	Text string
	Pos  Position
}

// IsBlock reports whether c is a block comment.
func (c Comment) IsBlock() bool {
	return c.Kind == BlockComment
}

// AnchorKind is the kind of declaration that bounds the header region.
type AnchorKind int

const (
	AnchorPackage AnchorKind = iota
	AnchorImport
	AnchorType
)

// String returns a human-readable anchor kind.
func (k AnchorKind) String() string {
	switch k {
	case AnchorPackage:
		return "package"
	case AnchorImport:
		return "import"
	case AnchorType:
		return "type"
	default:
		return "unknown"
	}
}

// Anchor is the first meaningful declaration of a file.
type Anchor struct {
	Kind AnchorKind
	Pos  Position
}

// Declarations lists the positions used to select an anchor.
// A Package of NoPosition means the file has no package declaration.
type Declarations struct {
	Package Position
	Imports []Position
	Types   []Position
}

// SelectAnchor returns the package declaration, else the first import,
// else the first type. It returns nil when there is none of them.
func SelectAnchor(d Declarations) *Anchor {
	switch {
	case d.Package.IsValid():
		return &Anchor{Kind: AnchorPackage, Pos: d.Package}
	case len(d.Imports) > 0:
		return &Anchor{Kind: AnchorImport, Pos: d.Imports[0]}
	case len(d.Types) > 0:
		return &Anchor{Kind: AnchorType, Pos: d.Types[0]}
	default:
		return nil
	}
}

// File is the header-relevant view of a source file.
type File struct {
	// Comments in source order. A nil slice means the file has no comments.
	Comments []Comment
	Anchor   *Anchor
}
