// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the tspath CLI: the urfave/cli application, the
// query subcommands (aq, cq, rq), shared flags and completion.
package command
