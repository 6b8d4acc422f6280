// Package header finds and edits the license header of a source file.
//
// A file is reduced to its ordered comment list and a declaration anchor.
// The header region is the prefix of comments positioned before the anchor.
// Scan runs a license matcher over that region and an Applier performs one
// of four actions on it:
//   - check: report files that are missing the license
//   - reformat: insert the license when it is missing
//   - update: replace the header with the license
//   - remove: delete the header
//
// Apply never mutates its input. It returns the new comment list together
// with a single notification message.
package header
