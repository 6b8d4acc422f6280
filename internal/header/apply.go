package header

import (
	"fmt"
	"slices"

	"license-applier/internal/common"
	"license-applier/internal/license"
)

// Notification messages emitted by Apply.
const (
	MsgMissing  = "missing license"
	MsgAdded    = "license added"
	MsgRemoved  = "license removed"
	MsgUpdating = "updating license"
)

// Outcome is the result of applying an action to one file.
type Outcome struct {
	// Comments is the new comment list. Nil means the file has no comments.
	Comments []Comment
	// Message is the notification for this file. It is empty when a present
	// license needs no attention.
	Message string
	// Found reports whether the license was present before the action.
	Found bool
	// Changed reports whether the comment list differs from the input.
	Changed bool
}

// Applier applies a configured action using a compiled license template.
// It holds no per-file state and is safe for concurrent use.
type Applier struct {
	tmpl   *license.Template
	action Action
}

// NewApplier creates an Applier. An invalid action falls back to DefaultAction.
func NewApplier(tmpl *license.Template, action Action) *Applier {
	if !action.IsValid() {
		action = DefaultAction
	}

	return &Applier{
		tmpl:   tmpl,
		action: action,
	}
}

// Action returns the configured action.
func (a *Applier) Action() Action {
	return a.action
}

// Template returns the compiled license template.
func (a *Applier) Template() *license.Template {
	return a.tmpl
}

// Apply runs the configured action against f.
// It fails only when no license template was configured.
func (a *Applier) Apply(f File) (Outcome, error) {
	if a == nil || a.tmpl == nil {
		return Outcome{}, fmt.Errorf("%w: missing license file", license.ErrConfiguration)
	}

	scan := Scan(f.Comments, f.Anchor, a.tmpl)
	out := Outcome{
		Comments: f.Comments,
		Found:    scan.Found,
	}

	switch a.action {
	case ActionCheck:
		if !scan.Found {
			out.Message = MsgMissing
		}
	case ActionReformat:
		if !scan.Found {
			out.Comments = a.prepend(f.Comments)
			out.Changed = true
			out.Message = MsgAdded
		}
	case ActionRemove:
		out.Comments, out.Changed = removeHeader(f, scan.Region)
		if common.IsEmpty(out.Comments) {
			out.Comments = nil
		}

		out.Message = MsgRemoved
	case ActionUpdate:
		remaining, _ := removeHeader(f, scan.Region)
		out.Comments = a.prepend(remaining)
		out.Changed = !slices.Equal(out.Comments, f.Comments)
		out.Message = MsgUpdating
	}

	return out, nil
}

// licenseComment returns a new block comment holding the resolved license.
func (a *Applier) licenseComment() Comment {
	return Comment{Kind: BlockComment, Text: a.tmpl.Text(), Pos: NoPosition}
}

func (a *Applier) prepend(comments []Comment) []Comment {
	out := make([]Comment, 0, len(comments)+1)
	out = append(out, a.licenseComment())

	return append(out, comments...)
}

// removeHeader drops the comments of the first region entries that are block
// comments, or any comment when the anchor is a package declaration.
func removeHeader(f File, region int) ([]Comment, bool) {
	anyKind := f.Anchor != nil && f.Anchor.Kind == AnchorPackage

	out := make([]Comment, 0, len(f.Comments))
	for i, c := range f.Comments {
		if i < region && (anyKind || c.IsBlock()) {
			continue
		}

		out = append(out, c)
	}

	return out, len(out) != len(f.Comments)
}
