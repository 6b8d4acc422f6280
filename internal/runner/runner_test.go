package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"license-applier/internal/diagnostic"
	"license-applier/internal/header"
	"license-applier/internal/license"
)

const plainFile = `package demo

func Demo() {}
`

const licensedFile = `/* Copyright 2020 Acme Corp.
 All rights reserved.
*/

package demo
`

func newRunner(t *testing.T, action header.Action) (*Runner, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	tmpl := license.Compile([]string{"Copyright ${year} Acme Corp.", "All rights reserved."}, license.Bindings{"year": "2024"})

	return &Runner{
		Applier: header.NewApplier(tmpl, action),
		Logger:  zap.New(core),
		Jobs:    2,
	}, logs
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	missing := writeFile(t, dir, "a.go", plainFile)
	present := writeFile(t, dir, "b.go", licensedFile)

	r, logs := newRunner(t, header.ActionCheck)

	report, err := r.Run(context.Background(), []string{missing, present})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Processed)
	assert.Zero(t, report.Changed)
	assert.True(t, report.MissingLicense())
	require.Len(t, report.Diagnostics.Warnings, 1)
	assert.Equal(t, missing, report.Diagnostics.Warnings[0].File)
	require.Len(t, report.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeLicensePresent, report.Diagnostics.Infos[0].Code)

	assert.Equal(t, plainFile, readFile(t, missing))
	assert.Equal(t, 1, logs.FilterMessage(header.MsgMissing).Len())
}

func TestRun_Reformat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.go", plainFile)

	r, logs := newRunner(t, header.ActionReformat)

	report, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Changed)
	assert.False(t, report.MissingLicense())

	got := readFile(t, path)
	assert.True(t, strings.HasPrefix(got, "/* Copyright 2024 Acme Corp.\n"), got)
	assert.True(t, strings.HasSuffix(got, plainFile), got)
	assert.Equal(t, 1, logs.FilterMessage(header.MsgAdded).Len())

	again, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Zero(t, again.Changed)
	assert.Equal(t, got, readFile(t, path))
}

func TestRun_UpdateIsStable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.go", licensedFile)

	r, _ := newRunner(t, header.ActionUpdate)

	first, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Changed)
	assert.Contains(t, readFile(t, path), "2024")
	assert.NotContains(t, readFile(t, path), "2020")

	second, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Zero(t, second.Changed)
}

func TestRun_Remove(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.go", licensedFile)

	r, _ := newRunner(t, header.ActionRemove)

	report, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Changed)
	assert.Equal(t, "package demo\n", readFile(t, path))
}

func TestRun_DryRunWithDiff(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.go", plainFile)

	r, _ := newRunner(t, header.ActionReformat)
	r.DryRun = true

	var diff bytes.Buffer
	r.Diff = &diff

	report, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Changed)
	assert.Equal(t, plainFile, readFile(t, path))
	assert.Contains(t, diff.String(), "--- "+path+"\n")
	assert.Contains(t, diff.String(), "+/* Copyright 2024 Acme Corp.\n")
	assert.NotContains(t, diff.String(), "-package demo")
}

func TestRun_FileErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.go", "this is not go")
	good := writeFile(t, dir, "good.go", plainFile)
	missing := filepath.Join(dir, "missing.go")

	r, _ := newRunner(t, header.ActionReformat)

	report, err := r.Run(context.Background(), []string{broken, good, missing})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 1, report.Changed)
	require.Len(t, report.Diagnostics.Errors, 2)

	for _, e := range report.Diagnostics.Errors {
		assert.Equal(t, diagnostic.CodeFileError, e.Code)
	}
}

func TestRun_MissingTemplate(t *testing.T) {
	r := &Runner{Applier: header.NewApplier(nil, header.ActionCheck)}

	_, err := r.Run(context.Background(), []string{"a.go"})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.go", plainFile)

	r, _ := newRunner(t, header.ActionReformat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, []string{path})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, plainFile, readFile(t, path))
}

func TestPatch(t *testing.T) {
	got := Patch("a.go", []byte("one\ntwo\nthree\n"), []byte("one\n2\nthree\n"))

	assert.Equal(t, "--- a.go\n+++ a.go\n-two\n+2\n", got)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.go", licensedFile)

	r, _ := newRunner(t, header.ActionReformat)

	var (
		mu      sync.Mutex
		reports []*Report
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- r.Watch(ctx, []string{path}, 20*time.Millisecond, func(rep *Report) {
			mu.Lock()
			reports = append(reports, rep)
			mu.Unlock()
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	sibling := writeFile(t, dir, "b.go", plainFile)
	writeFile(t, dir, "a.go", plainFile)

	assert.Eventually(t, func() bool {
		return strings.HasPrefix(readFile(t, path), "/* Copyright 2024 Acme Corp.")
	}, 5*time.Second, 20*time.Millisecond)

	// b.go shares the watched directory but was never selected.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, plainFile, readFile(t, sibling))

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, reports)
}
