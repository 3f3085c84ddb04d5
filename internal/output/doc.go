// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders command result sets. A dataset flows through
// filtering, sorting and finally one of the render formats: a lipgloss text
// table, JSON, YAML, or the raw payload.
package output
