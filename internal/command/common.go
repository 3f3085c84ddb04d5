// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/tspath/tspath/internal/alias"
	"github.com/tspath/tspath/internal/attrs"
	"github.com/tspath/tspath/internal/discovery"
	"github.com/tspath/tspath/internal/meta"
	"github.com/tspath/tspath/internal/output"
	"github.com/tspath/tspath/internal/tsconfig"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	for _, d := range defaults {
		al.Set(d)
	}
	if extras := cmd.String("attrs"); extras != "" {
		al.Set(extras)
	}
	return
}

// DumpSchemaIfRequested writes the JSON schema for the provided type to stdout
// when --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t, nil)
		return true
	}
	return false
}

// EmitDataset marshals a result slice as JSON and passes it to the common
// output routine.
func EmitDataset(results any, al attrs.AttrList, cmd *cli.Command) error {
	var raw bytes.Buffer
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	raw.Write(data)
	output.Spit(raw, al, cmd, "", os.Stdout, nil)
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr tspath <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "tspath", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// discoveryOptions assembles the discovery options shared by the query
// commands. The ::configName override on the RootDir argument wins over the
// --config-name flag.
func discoveryOptions(cmd *cli.Command, m meta.Meta) discovery.Options {
	scope := discovery.ScopeRoot
	if cmd.Bool("recursive") {
		scope = discovery.ScopeRecursive
	}

	configName := cmd.String("config-name")
	if m.ConfigName != "" {
		configName = m.ConfigName
	}

	return discovery.Options{Scope: scope, ConfigName: configName}
}

// collectAliasSets discovers config files and expands each through its
// extends chain, preserving discovery order.
func collectAliasSets(cmd *cli.Command, m meta.Meta) ([]string, []tsconfig.AliasSet, error) {
	files, err := discovery.Discover(m.RootDir, discoveryOptions(cmd, m))
	if err != nil {
		return nil, nil, err
	}

	var sets []tsconfig.AliasSet
	for _, file := range files {
		expanded, err := tsconfig.Expand(file, m.RootDir)
		if err != nil {
			return nil, nil, err
		}
		sets = append(sets, expanded...)
	}

	return files, sets, nil
}

// compileRules runs the full discover-expand-compile pipeline for a command.
func compileRules(cmd *cli.Command, m meta.Meta, strategy alias.Strategy) ([]alias.Rule, error) {
	_, sets, err := collectAliasSets(cmd, m)
	if err != nil {
		return nil, err
	}
	return alias.Compile(sets, m.RootDir, strategy), nil
}
