package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"license-applier/internal/diagnostic"
	"license-applier/internal/header"
	"license-applier/internal/license"
	"license-applier/internal/source"
)

// Runner applies a license action to a set of files.
type Runner struct {
	Applier *header.Applier
	Logger  *zap.Logger
	// Jobs bounds the number of files processed at once. Zero or less means
	// no limit.
	Jobs int
	// DryRun skips writing files.
	DryRun bool
	// Diff, when set, receives a patch for every changed file.
	Diff io.Writer

	diffMu sync.Mutex
}

// Report summarizes a run.
type Report struct {
	Diagnostics diagnostic.Diagnostics
	Processed   int
	Changed     int
}

// MissingLicense reports whether any file was found without the license.
func (r *Report) MissingLicense() bool {
	if !r.Diagnostics.HasWarnings() {
		return false
	}

	for _, w := range r.Diagnostics.Warnings {
		if w.Code == diagnostic.CodeMissingLicense {
			return true
		}
	}

	return false
}

type fileResult struct {
	diags   diagnostic.Diagnostics
	changed bool
}

// Run processes paths and returns the combined report. Errors reading or
// parsing a single file are reported as diagnostics; configuration errors
// abort the run.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	if r.Applier == nil || r.Applier.Template() == nil {
		return nil, fmt.Errorf("%w: missing license file", license.ErrConfiguration)
	}

	results := make([]fileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if r.Jobs > 0 {
		g.SetLimit(r.Jobs)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := r.processFile(path)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Processed: len(paths)}
	for _, res := range results {
		report.Diagnostics.Merge(res.diags)

		if res.changed {
			report.Changed++
		}
	}

	return report, nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}

func (r *Runner) processFile(path string) (fileResult, error) {
	log := r.logger().With(zap.String("file", path))
	action := r.Applier.Action()

	fail := func(err error) (fileResult, error) {
		log.Error("failed to process file", zap.Error(err))

		var res fileResult
		res.diags.AddError(diagnostic.CodeFileError, err.Error(), path, action.String())

		return res, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fail(fmt.Errorf("failed to read file: %w", err))
	}

	unit, err := source.Parse(path, src)
	if err != nil {
		return fail(err)
	}

	out, err := r.Applier.Apply(unit.File())
	if err != nil {
		return fileResult{}, err
	}

	var res fileResult
	res.diags.AddOutcome(path, action, out)

	if out.Changed {
		rendered, err := unit.Render(out)
		if err != nil {
			return fail(err)
		}

		res.changed = !bytes.Equal(rendered, src)

		if res.changed {
			if err := r.emit(path, src, rendered); err != nil {
				return fail(err)
			}
		}
	}

	switch {
	case res.diags.HasWarnings():
		log.Warn(out.Message, zap.Stringer("action", action))
	case res.changed:
		log.Info(out.Message, zap.Stringer("action", action), zap.Bool("dry_run", r.DryRun))
	default:
		log.Debug("file unchanged", zap.Stringer("action", action), zap.Bool("found", out.Found))
	}

	return res, nil
}

// emit writes the diff and the new file content.
func (r *Runner) emit(path string, before, after []byte) error {
	if r.Diff != nil {
		r.diffMu.Lock()
		_, err := io.WriteString(r.Diff, Patch(path, before, after))
		r.diffMu.Unlock()

		if err != nil {
			return fmt.Errorf("failed to write diff: %w", err)
		}
	}

	if r.DryRun {
		return nil
	}

	return source.WriteFile(path, after)
}

// IsConfigurationError reports whether err aborted a run because of its
// configuration.
func IsConfigurationError(err error) bool {
	return errors.Is(err, license.ErrConfiguration) || errors.Is(err, license.ErrIO)
}
