// Package runner drives the per-file license lifecycle.
//
// A Runner reads each Go file, applies the configured header action, renders
// the result and writes it back when the content changed. Files are
// processed concurrently; the compiled license template is the only state
// they share. Watch keeps reprocessing files as they change on disk.
package runner
