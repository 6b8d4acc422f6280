// Package diagnostic collects per-file results of a license run.
//
// Every processed file produces at most one diagnostic derived from its
// header outcome:
//   - missing-license warnings for files without the license in check mode
//   - license-added, license-removed and license-updated infos for edits
//   - file-error and invalid-config errors for files or settings that could
//     not be processed
package diagnostic
