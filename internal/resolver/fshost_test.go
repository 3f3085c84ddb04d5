// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFSHostResolve_ExtensionProbing verifies extensionless specifiers find
// their source file in probe order.
func TestFSHostResolve_ExtensionProbing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	want := filepath.Join(dir, "time.ts")
	require.NoError(t, os.WriteFile(want, []byte("export {}"), 0o644))

	resolved, err := FSHost{}.Resolve(context.Background(), filepath.Join(dir, "time"))

	require.NoError(t, err)
	assert.Equal(t, want, resolved)
}

// TestFSHostResolve_ExplicitExtension verifies a specifier naming an existing
// file resolves as-is.
func TestFSHostResolve_ExplicitExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	want := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(want, []byte("{}"), 0o644))

	resolved, err := FSHost{}.Resolve(context.Background(), want)

	require.NoError(t, err)
	assert.Equal(t, want, resolved)
}

// TestFSHostResolve_DirectoryIndex verifies a directory specifier resolves to
// its index module.
func TestFSHostResolve_DirectoryIndex(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	pkg := filepath.Join(dir, "widgets")
	require.NoError(t, os.MkdirAll(pkg, 0o755))
	want := filepath.Join(pkg, "index.tsx")
	require.NoError(t, os.WriteFile(want, []byte("export {}"), 0o644))

	resolved, err := FSHost{}.Resolve(context.Background(), pkg)

	require.NoError(t, err)
	assert.Equal(t, want, resolved)
}

// TestFSHostResolve_Miss verifies an unresolvable specifier errors.
func TestFSHostResolve_Miss(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := FSHost{}.Resolve(context.Background(), filepath.Join(dir, "ghost"))

	assert.Error(t, err)
}

// TestFSHostResolve_Cancelled verifies cancellation short-circuits the probe.
func TestFSHostResolve_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FSHost{}.Resolve(ctx, "anything")

	assert.ErrorIs(t, err, context.Canceled)
}
