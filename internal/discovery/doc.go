// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package discovery enumerates candidate tsconfig files under a project
// root. Candidates inside node_modules never participate, and in recursive
// scope a candidate is dropped when any directory between the root and the
// candidate hosts its own build-tool config file, so that nested
// sub-projects do not leak their aliases into the parent build.
package discovery
