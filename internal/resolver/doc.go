// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package resolver applies a compiled rule snapshot to import specifiers.
// A Session is immutable once built; a configuration-resolve event produces
// a wholly new Session rather than mutating the old one, so the hook never
// observes a partially-built rule list and no locking is needed.
package resolver
