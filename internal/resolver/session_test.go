// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tspath/tspath/internal/alias"
)

// echoHost resolves everything to the rewritten specifier itself.
var echoHost = HostFunc(func(_ context.Context, specifier string) (string, error) {
	return specifier, nil
})

// TestSessionResolve_PrefixMatch verifies a matching rule rewrites the prefix
// and returns the host's resolution.
func TestSessionResolve_PrefixMatch(t *testing.T) {
	t.Parallel()
	s := NewSession([]alias.Rule{
		{Find: "@app", Replacement: "/proj/src/app"},
	})

	match, ok, err := s.Resolve(context.Background(), "@app/utils/time", echoHost)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/proj/src/app/utils/time", match.Rewritten)
	assert.Equal(t, "/proj/src/app/utils/time", match.Resolved)
	assert.Equal(t, "@app", match.Rule.Find)
}

// TestSessionResolve_ExactMatch verifies the find prefix matches the whole
// specifier with nothing left over.
func TestSessionResolve_ExactMatch(t *testing.T) {
	t.Parallel()
	s := NewSession([]alias.Rule{
		{Find: "@app", Replacement: "/proj/src/app"},
	})

	match, ok, err := s.Resolve(context.Background(), "@app", echoHost)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/proj/src/app", match.Rewritten)
}

// TestSessionResolve_PathBoundary verifies matching stops at a path boundary,
// so "@app" never intercepts "@apple/juice".
func TestSessionResolve_PathBoundary(t *testing.T) {
	t.Parallel()
	s := NewSession([]alias.Rule{
		{Find: "@app", Replacement: "/proj/src/app"},
	})

	_, ok, err := s.Resolve(context.Background(), "@apple/juice", echoHost)

	require.NoError(t, err)
	assert.False(t, ok)
}

// TestSessionResolve_Decline verifies an unmatched specifier declines without
// error so the host's own resolution proceeds.
func TestSessionResolve_Decline(t *testing.T) {
	t.Parallel()
	s := NewSession([]alias.Rule{
		{Find: "@app", Replacement: "/proj/src/app"},
	})

	called := false
	host := HostFunc(func(_ context.Context, specifier string) (string, error) {
		called = true
		return specifier, nil
	})

	match, ok, err := s.Resolve(context.Background(), "lodash", host)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, match.Rewritten)
	assert.False(t, called)
}

// TestSessionResolve_FirstMatchWins verifies rules are tried strictly in
// order even when a later rule also matches.
func TestSessionResolve_FirstMatchWins(t *testing.T) {
	t.Parallel()
	s := NewSession([]alias.Rule{
		{Find: "@app", Replacement: "/first"},
		{Find: "@app", Replacement: "/second"},
	})

	match, ok, err := s.Resolve(context.Background(), "@app/x", echoHost)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/first/x", match.Rewritten)
}

// TestSessionResolve_HostFailureFallsThrough verifies a host failure on one
// rule moves on to the next matching rule instead of failing the lookup.
func TestSessionResolve_HostFailureFallsThrough(t *testing.T) {
	t.Parallel()
	s := NewSession([]alias.Rule{
		{Find: "@app", Replacement: "/missing"},
		{Find: "@app", Replacement: "/present"},
	})

	host := HostFunc(func(_ context.Context, specifier string) (string, error) {
		if specifier == "/missing/x" {
			return "", errors.New("no such module")
		}
		return specifier, nil
	})

	match, ok, err := s.Resolve(context.Background(), "@app/x", host)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/present/x", match.Rewritten)
}

// TestSessionResolve_AllHostsFail verifies the lookup declines when every
// matching rule's host attempt fails.
func TestSessionResolve_AllHostsFail(t *testing.T) {
	t.Parallel()
	s := NewSession([]alias.Rule{
		{Find: "@app", Replacement: "/missing"},
	})

	host := HostFunc(func(_ context.Context, _ string) (string, error) {
		return "", errors.New("no such module")
	})

	_, ok, err := s.Resolve(context.Background(), "@app/x", host)

	require.NoError(t, err)
	assert.False(t, ok)
}

// TestSessionResolve_ContextCancelled verifies cancellation abandons the
// lookup with the context's error.
func TestSessionResolve_ContextCancelled(t *testing.T) {
	t.Parallel()
	s := NewSession([]alias.Rule{
		{Find: "@app", Replacement: "/proj/src/app"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := s.Resolve(ctx, "@app/x", echoHost)

	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSessionRules_Snapshot verifies the snapshot is isolated from both the
// input slice and the Rules() copy.
func TestSessionRules_Snapshot(t *testing.T) {
	t.Parallel()
	input := []alias.Rule{{Find: "@app", Replacement: "/a"}}
	s := NewSession(input)

	input[0].Replacement = "/mutated"
	got := s.Rules()
	require.Len(t, got, 1)
	assert.Equal(t, "/a", got[0].Replacement)

	got[0].Replacement = "/mutated-again"
	assert.Equal(t, "/a", s.Rules()[0].Replacement)
}

// TestMatchFind covers the boundary rules directly.
func TestMatchFind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		specifier string
		find      string
		rest      string
		ok        bool
	}{
		{name: "exact", specifier: "@app", find: "@app", rest: "", ok: true},
		{name: "subpath", specifier: "@app/x/y", find: "@app", rest: "/x/y", ok: true},
		{name: "partial segment", specifier: "@apple", find: "@app", ok: false},
		{name: "unrelated", specifier: "react", find: "@app", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rest, ok := matchFind(tt.specifier, tt.find)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.rest, rest)
		})
	}
}
