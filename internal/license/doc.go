// Package license compiles license templates and matches them against
// existing comment text.
//
// A template is plain text that may contain ${name} placeholders. Compiling
// it yields two things:
//   - Pattern: the whitespace-delimited words of the template, each either a
//     literal or a variable wildcard
//   - Text: the template with every bound placeholder substituted, keeping the
//     original line breaks
//
// Pattern.Matches decides whether arbitrary text contains the license. It
// ignores whitespace layout and accepts any word at a variable position.
package license
