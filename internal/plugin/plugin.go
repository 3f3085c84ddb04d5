// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"context"
	"fmt"

	"github.com/tspath/tspath/internal/alias"
	"github.com/tspath/tspath/internal/discovery"
	"github.com/tspath/tspath/internal/harvest"
	"github.com/tspath/tspath/internal/log"
	"github.com/tspath/tspath/internal/resolver"
	"github.com/tspath/tspath/internal/tsconfig"
)

// Options configures a Plugin instance for one integration.
type Options struct {
	// GeneratePathsFromHostConfig additionally harvests the host's native
	// alias table and persists it as a tsconfig-shaped document when the
	// configuration settles.
	GeneratePathsFromHostConfig bool

	// Strategy selects the alias target-selection policy.
	Strategy alias.Strategy

	// Scope selects flat or recursive config discovery.
	Scope discovery.Scope

	// ConfigName overrides the config file name looked for
	// (default tsconfig.json).
	ConfigName string

	// EmitDir overrides where the harvested document is written
	// (default: the working directory).
	EmitDir string
}

// Plugin is one configuration session of the alias engine. The resolve phase
// runs on a single goroutine, so no locking guards the session pointer; a
// new ConfigResolved call publishes a wholly new snapshot.
type Plugin struct {
	opts    Options
	host    resolver.Host
	aliases []harvest.HostAlias
	session *resolver.Session
}

// New builds a Plugin delegating rewritten specifiers to host.
func New(opts Options, host resolver.Host) *Plugin {
	return &Plugin{opts: opts, host: host}
}

// ObserveConfig captures the host's own declared alias table. It runs when
// the host reads its config, before ConfigResolved.
func (p *Plugin) ObserveConfig(aliases []harvest.HostAlias) {
	p.aliases = aliases
}

// ConfigResolved runs once the host's final configuration is settled, with
// the authoritative project root. It discovers config files, expands their
// extends chains, compiles the rule list and publishes a new resolver
// session. The previous session, if any, is replaced whole.
func (p *Plugin) ConfigResolved(ctx context.Context, root string) error {
	files, err := discovery.Discover(root, discovery.Options{
		Scope:      p.opts.Scope,
		ConfigName: p.opts.ConfigName,
	})
	if err != nil {
		return err
	}
	log.Debugf("discovered configs: root=%s count=%d", root, len(files))

	var sets []tsconfig.AliasSet
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		expanded, err := tsconfig.Expand(file, root)
		if err != nil {
			return fmt.Errorf("failed to resolve aliases: %w", err)
		}
		sets = append(sets, expanded...)
	}

	rules := alias.Compile(sets, root, p.opts.Strategy)
	log.Debugf("compiled rules: count=%d strategy=%s", len(rules), p.opts.Strategy)

	p.session = resolver.NewSession(rules)

	if p.opts.GeneratePathsFromHostConfig {
		if err := harvest.Write(harvest.Build(p.aliases), p.opts.EmitDir); err != nil {
			return err
		}
	}

	return nil
}

// ResolveID is the per-import hook. ok=false declines the interception so
// the host's default resolution proceeds for the original specifier.
func (p *Plugin) ResolveID(ctx context.Context, specifier string) (string, bool, error) {
	if p.session == nil {
		return "", false, nil
	}

	match, ok, err := p.session.Resolve(ctx, specifier, p.host)
	if err != nil || !ok {
		return "", false, err
	}
	return match.Resolved, true, nil
}

// Rules exposes the current snapshot for inspection.
func (p *Plugin) Rules() []alias.Rule {
	if p.session == nil {
		return nil
	}
	return p.session.Rules()
}
