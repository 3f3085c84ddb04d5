// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/apex/log"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/tspath/tspath/internal/alias"
	"github.com/tspath/tspath/internal/config"
	"github.com/tspath/tspath/internal/differ"
	"github.com/tspath/tspath/internal/harvest"
	"github.com/tspath/tspath/internal/meta"
)

// aqCommandAction is the action handler for the "aq" subcommand. It runs the
// discover-expand-compile pipeline and emits the compiled rule list per
// common flags. --diff instead compares the rule sets the two strategies
// produce; --emit-paths additionally persists the rules as a tsconfig-shaped
// paths document.
func aqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "aq") {
		return nil
	}

	config.Config.Namespace = "aq"

	if DumpSchemaIfRequested(cmd, reflect.TypeOf(alias.Rule{})) {
		return nil
	}

	// Short circuit --diff mode: compile under both strategies and show what
	// the policy choice changes.
	if cmd.Bool("diff") {
		probe, err := compileRules(cmd, m, alias.StrategyProbe)
		if err != nil {
			return err
		}
		first, err := compileRules(cmd, m, alias.StrategyFirst)
		if err != nil {
			return err
		}
		return differ.DiffDocs(probe, first)
	}

	strategy, err := alias.ParseStrategy(cmd.String("strategy"))
	if err != nil {
		return err
	}

	rules, err := compileRules(cmd, m, strategy)
	if err != nil {
		return err
	}
	log.Debugf("compiled rules: count=%d strategy=%s", len(rules), strategy)

	if cmd.Bool("emit-paths") {
		aliases := lo.Map(rules, func(r alias.Rule, _ int) harvest.HostAlias {
			return harvest.HostAlias{Find: r.Find, Replacement: r.Replacement}
		})
		if err := harvest.Write(harvest.Build(aliases), ""); err != nil {
			return err
		}
	}

	al := BuildAttrs(cmd, "find", "replacement")

	return EmitDataset(rules, al, cmd)
}

// aqCommandBuilder constructs the cli.Command for "aq", wiring metadata,
// flags, and action/validator handlers.
func aqCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "aq",
		Usage:     "alias query",
		UsageText: "tspath aq [RootDir] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "diff the rule sets the probe and first strategies compile",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "emit-paths",
				Usage: "persist the compiled rules as " + harvest.FileName,
				Value: false,
			},
			recursiveFlag,
			schemaFlag,
			tldrFlag,
			NewStrategyFlag("aq", meta.Config.Source),
			NewConfigNameFlag("aq", meta.Config.Source),
		}, NewGlobalFlags()...),
		Action: aqCommandAction,
	}
}
