// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ renders JSON diffs between two alias datasets: the rule
// lists the two target-selection strategies compile, or the contributions of
// two discovered config files.
package differ
