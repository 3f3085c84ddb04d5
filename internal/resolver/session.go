// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"strings"

	"github.com/tspath/tspath/internal/alias"
	"github.com/tspath/tspath/internal/log"
)

// Host is the module resolution capability of the host build tool. Resolve
// returns the location the host resolved the specifier to, or an error when
// the host cannot resolve it.
type Host interface {
	Resolve(ctx context.Context, specifier string) (string, error)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(ctx context.Context, specifier string) (string, error)

// Resolve implements Host.
func (f HostFunc) Resolve(ctx context.Context, specifier string) (string, error) {
	return f(ctx, specifier)
}

// Match describes a successful interception: the rule that fired, the
// rewritten specifier handed to the host, and what the host resolved it to.
type Match struct {
	Rule      alias.Rule `yaml:"rule" json:"rule"`
	Rewritten string     `yaml:"rewritten" json:"rewritten"`
	Resolved  string     `yaml:"resolved" json:"resolved"`
}

// Session holds one published rule snapshot.
type Session struct {
	rules []alias.Rule
}

// NewSession copies the rule list into a fresh snapshot.
func NewSession(rules []alias.Rule) *Session {
	s := &Session{rules: make([]alias.Rule, len(rules))}
	copy(s.rules, rules)
	return s
}

// Rules returns a copy of the snapshot in match order.
func (s *Session) Rules() []alias.Rule {
	rules := make([]alias.Rule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// Resolve runs one specifier through the snapshot. Rules are tried strictly
// in order; on a prefix match the specifier is rewritten and delegated to the
// host. A host failure falls through to the next rule rather than failing the
// lookup. ok=false means no rule intercepted the specifier and the host's own
// unmodified resolution should proceed. Cancellation of ctx abandons the
// lookup between rule attempts.
func (s *Session) Resolve(ctx context.Context, specifier string, host Host) (Match, bool, error) {
	for _, rule := range s.rules {
		if err := ctx.Err(); err != nil {
			return Match{}, false, err
		}

		rest, ok := matchFind(specifier, rule.Find)
		if !ok {
			continue
		}

		rewritten := rule.Replacement + rest
		resolved, err := host.Resolve(ctx, rewritten)
		if err != nil {
			if ctx.Err() != nil {
				return Match{}, false, ctx.Err()
			}
			log.Tracef("host could not resolve, trying next rule: id=%s", rewritten)
			continue
		}

		return Match{Rule: rule, Rewritten: rewritten, Resolved: resolved}, true, nil
	}

	return Match{}, false, nil
}

// matchFind tests a specifier against a rule's find prefix. The prefix must
// match the whole specifier or end at a path boundary, so "@app" matches
// "@app" and "@app/utils" but not "@apple".
func matchFind(specifier string, find string) (string, bool) {
	if specifier == find {
		return "", true
	}
	if strings.HasPrefix(specifier, find+"/") {
		return specifier[len(find):], true
	}
	return "", false
}
