// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package plugin ties discovery, extends expansion, compilation and the
// resolution hook together behind the three lifecycle callbacks a host build
// tool drives: observe the host's declared aliases, react to the settled
// configuration by building a fresh rule snapshot, and intercept each module
// specifier resolution attempt.
package plugin
