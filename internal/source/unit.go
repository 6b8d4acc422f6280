package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"license-applier/internal/header"
)

// span is a byte range of the original source.
type span struct {
	start, end int
}

// Unit is a parsed Go file.
type Unit struct {
	filename string
	src      []byte
	comments []header.Comment
	spans    map[header.Position]span
	decls    header.Declarations
}

// Parse parses a Go file and extracts its comments and declarations.
func Parse(filename string, src []byte) (*Unit, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	tf := fset.File(f.Pos())
	pos := func(p token.Pos) header.Position {
		return header.Position(tf.Offset(p) + 1)
	}

	u := &Unit{
		filename: filename,
		src:      src,
		spans:    make(map[header.Position]span, len(f.Comments)),
	}

	for _, cg := range f.Comments {
		c := header.Comment{
			Kind: groupKind(cg),
			Text: groupText(cg),
			Pos:  pos(cg.Pos()),
		}

		u.comments = append(u.comments, c)
		u.spans[c.Pos] = span{start: tf.Offset(cg.Pos()), end: tf.Offset(cg.End())}
	}

	u.decls = declarations(f, pos)

	return u, nil
}

// Filename returns the name the unit was parsed with.
func (u *Unit) Filename() string {
	return u.filename
}

// Source returns the original source text.
func (u *Unit) Source() []byte {
	return u.src
}

// Declarations returns the positions used for anchor selection.
func (u *Unit) Declarations() header.Declarations {
	return u.decls
}

// File returns the header view of the unit.
func (u *Unit) File() header.File {
	var comments []header.Comment
	if len(u.comments) > 0 {
		comments = append(comments, u.comments...)
	}

	return header.File{
		Comments: comments,
		Anchor:   header.SelectAnchor(u.decls),
	}
}

func groupKind(cg *ast.CommentGroup) header.CommentKind {
	if strings.HasPrefix(cg.List[0].Text, "/*") {
		return header.BlockComment
	}

	return header.LineComment
}

// groupText strips comment delimiters and joins the group with newlines.
func groupText(cg *ast.CommentGroup) string {
	lines := make([]string, 0, len(cg.List))

	for _, c := range cg.List {
		text := c.Text
		if strings.HasPrefix(text, "/*") {
			text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
		} else {
			text = strings.TrimPrefix(text, "//")
		}

		lines = append(lines, text)
	}

	return strings.Join(lines, "\n")
}

func declarations(f *ast.File, pos func(token.Pos) header.Position) header.Declarations {
	var d header.Declarations

	anchor := f.Package
	if f.Doc != nil && f.Doc.Pos() < anchor {
		anchor = f.Doc.Pos()
	}

	for _, cg := range f.Comments {
		if cg.Pos() >= anchor {
			break
		}

		if hasBuildConstraint(cg) {
			anchor = cg.Pos()

			break
		}
	}

	d.Package = pos(anchor)

	for _, imp := range f.Imports {
		d.Imports = append(d.Imports, pos(imp.Pos()))
	}

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			d.Types = append(d.Types, pos(spec.Pos()))
		}
	}

	return d
}

func hasBuildConstraint(cg *ast.CommentGroup) bool {
	for _, c := range cg.List {
		if strings.HasPrefix(c.Text, "//go:build") || strings.HasPrefix(c.Text, "// +build") {
			return true
		}
	}

	return false
}
