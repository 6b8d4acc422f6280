// Package source adapts Go source files to the header model.
//
// Parse reduces a file to its comment groups and declaration anchor, and
// Unit.Render splices an edited comment list back into the original text.
// Discover expands paths and package patterns into the Go files to process.
//
// The package clause anchor is moved up to the package doc comment, or to
// the first build constraint group when that comes earlier, so neither is
// ever treated as part of the license header.
package source
