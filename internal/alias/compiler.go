// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package alias

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tspath/tspath/internal/log"
	"github.com/tspath/tspath/internal/tsconfig"
)

// Strategy selects how a pattern with multiple declared targets is compiled.
type Strategy int

const (
	// StrategyProbe evaluates targets in priority order and takes the first
	// whose resolved directory exists on disk. A pattern with no existing
	// target is dropped.
	StrategyProbe Strategy = iota
	// StrategyFirst always takes the highest-priority (first-listed) target
	// without an existence check.
	StrategyFirst
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s == StrategyFirst {
		return "first"
	}
	return "probe"
}

// ParseStrategy converts a flag value to a Strategy.
func ParseStrategy(value string) (Strategy, error) {
	switch value {
	case "probe":
		return StrategyProbe, nil
	case "first":
		return StrategyFirst, nil
	default:
		return StrategyProbe, fmt.Errorf("invalid strategy %q, must be one of [probe first]", value)
	}
}

// Rule is one compiled alias: a literal specifier prefix and the absolute
// directory it maps to. Rules are immutable after compilation.
type Rule struct {
	Find        string `yaml:"find" json:"find"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// wildcardSuffix is the trailing marker a pattern and its targets must carry
// to act as a prefix alias.
const wildcardSuffix = "/*"

// Compile turns the collected alias sets into the ordered rule list. root is
// the project root; it anchors pairs that declare no baseUrl and pairs whose
// baseUrl is the bare current-directory literal. Every replacement is an
// absolute, cleaned path with the ${configDir} placeholder fully substituted.
func Compile(sets []tsconfig.AliasSet, root string, strategy Strategy) []Rule {
	var rules []Rule

	for _, set := range sets {
		base := effectiveBase(set, root)

		for _, entry := range set.Paths {
			find, ok := strings.CutSuffix(entry.Pattern, wildcardSuffix)
			if !ok {
				// Not a prefix alias.
				continue
			}
			if find == "" {
				// A bare wildcard matches everything and discriminates
				// nothing.
				continue
			}

			replacement, ok := selectTarget(entry.Targets, base, set.ConfigDir, strategy)
			if !ok {
				log.Debugf("no usable target for pattern: pattern=%s", entry.Pattern)
				continue
			}

			rules = append(rules, Rule{Find: find, Replacement: replacement})
		}
	}

	return rules
}

// selectTarget applies the strategy to the ordered target list and returns
// the resolved absolute directory for the winning target.
func selectTarget(targets []string, base string, configDir string, strategy Strategy) (string, bool) {
	for _, target := range targets {
		dir := resolveTarget(target, base, configDir)

		if strategy == StrategyFirst {
			return dir, true
		}

		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir, true
		}
		log.Tracef("target directory missing, trying next: dir=%s", dir)
	}

	return "", false
}

// resolveTarget strips the target's own wildcard suffix, substitutes the
// placeholder and anchors the result at the effective base directory.
func resolveTarget(target string, base string, configDir string) string {
	t := strings.TrimSuffix(target, wildcardSuffix)
	if t == "" {
		// The target was the bare wildcard pair, so it maps to the base
		// itself.
		t = "."
	}
	t = substituteConfigDir(t, configDir)

	if filepath.IsAbs(t) {
		return filepath.Clean(t)
	}
	return filepath.Join(base, t)
}

// effectiveBase determines the directory a set's targets resolve against.
func effectiveBase(set tsconfig.AliasSet, root string) string {
	b := set.BaseURL
	switch {
	case b == "", b == ".":
		return root
	case strings.Contains(b, tsconfig.ConfigDirPlaceholder):
		return filepath.Clean(substituteConfigDir(b, set.ConfigDir))
	case filepath.IsAbs(b):
		return filepath.Clean(b)
	default:
		return filepath.Join(set.ConfigDir, b)
	}
}

func substituteConfigDir(s string, configDir string) string {
	return strings.ReplaceAll(s, tsconfig.ConfigDirPlaceholder, configDir)
}
