// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tspath/tspath/internal/config"
	"github.com/tspath/tspath/internal/differ"
	"github.com/tspath/tspath/internal/discovery"
	"github.com/tspath/tspath/internal/meta"
	"github.com/tspath/tspath/internal/tsconfig"
)

// cqRow is one discovered config file with its contribution summary.
type cqRow struct {
	Path     string `json:"path"`
	Size     string `json:"size"`
	Modified string `json:"modified"`
	Sets     int    `json:"sets"`
	Patterns int    `json:"patterns"`
}

// cqCommandAction is the action handler for the "cq" subcommand. It lists the
// discovered config files and what each contributes after extends expansion.
// --diff compares the contributions of two discovered configs, prompting for
// the pair when more than two are found.
func cqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "cq") {
		return nil
	}

	config.Config.Namespace = "cq"

	if DumpSchemaIfRequested(cmd, reflect.TypeOf(cqRow{})) {
		return nil
	}

	files, err := discovery.Discover(m.RootDir, discoveryOptions(cmd, m))
	if err != nil {
		return err
	}

	if cmd.Bool("diff") {
		return diffConfigs(files, m)
	}

	//nolint:prealloc // rows can be dropped on expand errors
	var rows []cqRow
	for _, file := range files {
		sets, err := tsconfig.Expand(file, m.RootDir)
		if err != nil {
			return err
		}

		row := cqRow{Path: file, Sets: len(sets)}
		for _, set := range sets {
			row.Patterns += len(set.Paths)
		}

		if fi, err := os.Stat(file); err == nil {
			row.Size = humanize.Bytes(uint64(fi.Size()))
			row.Modified = humanize.RelTime(fi.ModTime(), time.Now(), "ago", "from now")
		}

		rows = append(rows, row)
	}

	al := BuildAttrs(cmd, "path", "size", "modified", "sets", "patterns")

	return EmitDataset(rows, al, cmd)
}

// diffConfigs picks two of the discovered configs and diffs their expanded
// contributions. Exactly two discovered configs skip the picker.
func diffConfigs(files []string, m meta.Meta) error {
	if len(files) < 2 {
		return fmt.Errorf("need at least two discovered configs to diff, found %d", len(files))
	}

	pair := files
	if len(files) > 2 {
		pair = differ.SelectConfigs(files)
		if pair == nil {
			return nil
		}
	}

	left, err := tsconfig.Expand(pair[0], m.RootDir)
	if err != nil {
		return err
	}
	right, err := tsconfig.Expand(pair[1], m.RootDir)
	if err != nil {
		return err
	}

	return differ.DiffDocs(left, right)
}

// cqCommandBuilder constructs the cli.Command for "cq", wiring metadata,
// flags, and action/validator handlers.
func cqCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "cq",
		Usage:     "config query",
		UsageText: "tspath cq [RootDir] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "diff the contributions of two discovered configs",
				Value: false,
			},
			recursiveFlag,
			schemaFlag,
			tldrFlag,
			NewConfigNameFlag("cq", meta.Config.Source),
		}, NewGlobalFlags()...),
		Action: cqCommandAction,
	}
}
