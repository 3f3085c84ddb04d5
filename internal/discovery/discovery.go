// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tspath/tspath/internal/log"
)

// Scope selects how far below the project root config files are looked for.
type Scope int

const (
	// ScopeRoot matches the config file exactly at the project root.
	ScopeRoot Scope = iota
	// ScopeRecursive matches the config file anywhere under the root,
	// excluding node_modules and nested build-tool projects.
	ScopeRecursive
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	if s == ScopeRecursive {
		return "recursive"
	}
	return "root"
}

// ParseScope converts a flag value to a Scope.
func ParseScope(value string) (Scope, error) {
	switch value {
	case "root":
		return ScopeRoot, nil
	case "recursive":
		return ScopeRecursive, nil
	default:
		return ScopeRoot, fmt.Errorf("invalid scope %q, must be one of [root recursive]", value)
	}
}

const (
	// DefaultConfigName is the config file name looked for when none is
	// specified.
	DefaultConfigName = "tsconfig.json"

	// DefaultHostConfigGlob matches the host build tool's own config file. A
	// directory hosting one is treated as a nested sub-project.
	DefaultHostConfigGlob = "vite.config.*"
)

// Options controls a discovery pass.
type Options struct {
	Scope          Scope
	ConfigName     string
	HostConfigGlob string
}

// Discover returns the config files under root that should contribute
// aliases to the current build, shallowest first so that the root project's
// own mappings win ties downstream. A root with no config at all is a normal
// outcome and returns an empty list.
func Discover(root string, opts Options) ([]string, error) {
	name := opts.ConfigName
	if name == "" {
		name = DefaultConfigName
	}

	if opts.Scope == ScopeRoot {
		candidate := filepath.Join(root, name)
		if fi, err := os.Stat(candidate); err != nil || fi.IsDir() {
			return nil, nil
		}
		return []string{candidate}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), "**/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for %s: %w", root, name, err)
	}

	hostGlob := opts.HostConfigGlob
	if hostGlob == "" {
		hostGlob = DefaultHostConfigGlob
	}

	var found []string
	for _, match := range matches {
		if underNodeModules(match) {
			continue
		}
		if dir, ok := nestedProjectDir(root, match, hostGlob); ok {
			log.Debugf("excluding %s, nested project at %s", match, dir)
			continue
		}
		found = append(found, filepath.Join(root, filepath.FromSlash(match)))
	}

	// Shallow configs before deep ones, lexical within a depth.
	sort.SliceStable(found, func(i, j int) bool {
		di := strings.Count(found[i], string(filepath.Separator))
		dj := strings.Count(found[j], string(filepath.Separator))
		if di != dj {
			return di < dj
		}
		return found[i] < found[j]
	})

	return found, nil
}

// nestedProjectDir walks every directory between the root (exclusive) and the
// candidate config (inclusive) and reports the first one hosting a host
// build-tool config of its own. The root itself is never a nested project.
func nestedProjectDir(root string, match string, hostGlob string) (string, bool) {
	dir := ""
	for seg := range strings.SplitSeq(filepath.ToSlash(filepath.Dir(filepath.FromSlash(match))), "/") {
		if seg == "." || seg == "" {
			continue
		}
		dir = filepath.Join(dir, seg)
		hits, err := doublestar.FilepathGlob(filepath.Join(root, dir, hostGlob))
		if err == nil && len(hits) > 0 {
			return filepath.Join(root, dir), true
		}
	}
	return "", false
}

func underNodeModules(match string) bool {
	for seg := range strings.SplitSeq(filepath.ToSlash(match), "/") {
		if seg == "node_modules" {
			return true
		}
	}
	return false
}
