// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tspath/tspath/internal/alias"
	"github.com/tspath/tspath/internal/config"
	"github.com/tspath/tspath/internal/meta"
	"github.com/tspath/tspath/internal/resolver"
)

// rqRow is one specifier run through the resolution hook.
type rqRow struct {
	Specifier string `json:"specifier"`
	Find      string `json:"find"`
	Rewritten string `json:"rewritten"`
	Resolved  string `json:"resolved"`
	Matched   bool   `json:"matched"`
}

// rqCommandAction is the action handler for the "rq" subcommand. It compiles
// the rule list for the root, then runs each positional specifier through the
// hook against a filesystem host, showing what fired and where it landed. A
// declined specifier is reported, not an error; the host's own resolution
// would handle it.
func rqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "rq") {
		return nil
	}

	config.Config.Namespace = "rq"

	if DumpSchemaIfRequested(cmd, reflect.TypeOf(rqRow{})) {
		return nil
	}

	strategy, err := alias.ParseStrategy(cmd.String("strategy"))
	if err != nil {
		return err
	}

	rules, err := compileRules(cmd, m, strategy)
	if err != nil {
		return err
	}

	session := resolver.NewSession(rules)
	host := resolver.FSHost{}

	// The first positional is the RootDir injected by arg processing; the
	// specifiers follow it.
	specifiers := cmd.Args().Slice()
	if len(specifiers) > 0 && len(m.Args) > 2 && specifiers[0] == m.Args[2] {
		specifiers = specifiers[1:]
	}

	//nolint:prealloc // specifiers may be absent
	var rows []rqRow
	for _, specifier := range specifiers {
		match, ok, err := session.Resolve(ctx, specifier, host)
		if err != nil {
			return err
		}

		row := rqRow{Specifier: specifier, Matched: ok}
		if ok {
			row.Find = match.Rule.Find
			row.Rewritten = match.Rewritten
			row.Resolved = match.Resolved
		}
		rows = append(rows, row)
	}

	al := BuildAttrs(cmd, "specifier", "find", "!rewritten", "resolved", "matched")

	return EmitDataset(rows, al, cmd)
}

// rqCommandBuilder constructs the cli.Command for "rq", wiring metadata,
// flags, and action/validator handlers.
func rqCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rq",
		Usage:     "resolve query",
		UsageText: "tspath rq [RootDir] specifier... [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			recursiveFlag,
			schemaFlag,
			tldrFlag,
			NewStrategyFlag("rq", meta.Config.Source),
			NewConfigNameFlag("rq", meta.Config.Source),
		}, NewGlobalFlags()...),
		Action: rqCommandAction,
	}
}
