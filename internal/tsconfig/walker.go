// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tsconfig

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/tspath/tspath/internal/log"
)

// AliasSet is one {baseUrl, paths} pair contributed by a configuration file,
// either the discovered root config or an ancestor in its extends chain.
// ConfigDir is the directory of the discovered root config; it is the
// substitution value for the ${configDir} placeholder in everything its
// chain contributed, matching how TypeScript anchors the placeholder to the
// final consuming config rather than the declaring one.
type AliasSet struct {
	ConfigDir string      `yaml:"configDir" json:"configDir"`
	BaseURL   string      `yaml:"baseUrl" json:"baseUrl"`
	Paths     []PathEntry `yaml:"paths" json:"paths"`
}

// Expand reads the config at path and collects every alias set contributed by
// it and its immediate extends parents. root is the project root used to
// locate package-referenced parents under node_modules.
//
// Only the first level of the extends chain is expanded; a parent's own
// extends entries are not followed. This is a documented limitation.
//
// A missing config contributes nothing. A malformed config (root or parent)
// is fatal.
func Expand(path string, root string) ([]AliasSet, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	cfg, ok, err := Read(abs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	dir := filepath.Dir(abs)

	var sets []AliasSet

	// The root config's own pair is usable when it anchors somewhere: an
	// explicit baseUrl, or at least one placeholder-bearing target.
	if len(cfg.Paths) > 0 && (cfg.BaseURL != "" || hasPlaceholderTarget(cfg.Paths)) {
		sets = append(sets, AliasSet{
			ConfigDir: dir,
			BaseURL:   cfg.BaseURL,
			Paths:     cfg.Paths,
		})
	}

	for _, entry := range cfg.Extends {
		parentPath := resolveExtends(entry, dir, root)

		parent, ok, err := Read(parentPath)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Debugf("extends target not found, skipping: entry=%s path=%s", entry, parentPath)
			continue
		}

		set, ok := parentContribution(parent, dir)
		if !ok {
			// Without the placeholder a parent's mappings would resolve
			// relative to the dependency's own directory, not the consuming
			// project, so they are unreachable and dropped.
			log.Debugf("extends target contributes nothing: path=%s", parentPath)
			continue
		}
		sets = append(sets, set)
	}

	return sets, nil
}

// resolveExtends maps a single extends entry to the file it references.
// Entries that are not absolute and carry no explicit relative marker are
// package references resolved inside the project's node_modules, appending a
// .json suffix when absent.
func resolveExtends(entry string, configDir string, root string) string {
	if filepath.IsAbs(entry) {
		return entry
	}

	if isRelative(entry) {
		return filepath.Join(configDir, entry)
	}

	if !strings.HasSuffix(entry, ".json") {
		entry += ".json"
	}
	return filepath.Join(root, "node_modules", entry)
}

// parentContribution applies the placeholder eligibility rules to an extends
// parent. A parent with a placeholder-bearing baseUrl contributes all of its
// paths verbatim; otherwise only the patterns with at least one placeholder-
// bearing target survive, with the unusable baseUrl dropped.
func parentContribution(parent RawConfig, configDir string) (AliasSet, bool) {
	if strings.Contains(parent.BaseURL, ConfigDirPlaceholder) {
		if len(parent.Paths) == 0 {
			return AliasSet{}, false
		}
		return AliasSet{
			ConfigDir: configDir,
			BaseURL:   parent.BaseURL,
			Paths:     parent.Paths,
		}, true
	}

	kept := lo.Filter(parent.Paths, func(entry PathEntry, _ int) bool {
		return lo.SomeBy(entry.Targets, func(t string) bool {
			return strings.Contains(t, ConfigDirPlaceholder)
		})
	})
	if len(kept) == 0 {
		return AliasSet{}, false
	}

	return AliasSet{
		ConfigDir: configDir,
		Paths:     kept,
	}, true
}

func hasPlaceholderTarget(entries []PathEntry) bool {
	return lo.SomeBy(entries, func(entry PathEntry) bool {
		return lo.SomeBy(entry.Targets, func(t string) bool {
			return strings.Contains(t, ConfigDirPlaceholder)
		})
	})
}

// isRelative reports whether an extends entry carries an explicit relative
// marker, distinguishing it from a package reference.
func isRelative(entry string) bool {
	return entry == "." || entry == ".." ||
		strings.HasPrefix(entry, "./") || strings.HasPrefix(entry, "../")
}
