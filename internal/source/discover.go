package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"license-applier/internal/common"
)

// File permission used when a written file did not exist before.
const filePerm = 0o644

// DiscoverMode specifies what information to load for package patterns.
const DiscoverMode = packages.NeedName | packages.NeedFiles

// Discover expands args into a sorted list of Go files.
//
// Existing files and directories are used directly, directories are walked
// recursively. Any other argument is a package pattern such as "./..." and is
// resolved with go/packages, test files included.
func Discover(ctx context.Context, args ...string) ([]string, error) {
	var (
		files    []string
		patterns []string
	)

	for _, arg := range args {
		info, err := os.Stat(arg)

		switch {
		case errors.Is(err, fs.ErrNotExist):
			patterns = append(patterns, arg)
		case err != nil:
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		case info.IsDir():
			found, err := walkDir(arg)
			if err != nil {
				return nil, err
			}

			files = append(files, found...)
		case isGoFile(arg):
			files = append(files, arg)
		}
	}

	if len(patterns) > 0 {
		found, err := loadPatterns(ctx, patterns)
		if err != nil {
			return nil, err
		}

		files = append(files, found...)
	}

	return common.SortedUnique(files), nil
}

func isGoFile(path string) bool {
	return strings.HasSuffix(path, ".go")
}

func walkDir(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && common.SkipDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if isGoFile(path) {
			files = append(files, filepath.Clean(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

func loadPatterns(ctx context.Context, patterns []string) ([]string, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    DiscoverMode,
		Tests:   true,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var (
		files []string
		errs  []error
	)

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}

		// Synthesized test mains live in the build cache.
		if strings.HasSuffix(pkg.ID, ".test") {
			continue
		}

		files = append(files, pkg.GoFiles...)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	return files, nil
}

// WriteFile replaces the contents of path, keeping its permissions.
func WriteFile(path string, data []byte) error {
	perm := os.FileMode(filePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
