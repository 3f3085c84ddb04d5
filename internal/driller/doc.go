// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller navigates JSON documents using dotted paths with optional
// array index segments, e.g. "rule.find" or "targets[0]". It backs the
// attribute and filter handling of the query commands.
package driller
