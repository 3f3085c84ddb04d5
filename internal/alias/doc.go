// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package alias compiles raw {baseUrl, paths} pairs into the ordered
// {find, replacement} rule list consulted on every import specifier. Rules
// keep discovery order and are never deduplicated; matching downstream is
// first-match-wins, so an earlier rule always shadows a later duplicate.
package alias
