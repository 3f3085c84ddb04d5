// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"tspath", "aq"},
			expected: []string{"tspath", "aq"},
		},
		{
			name:     "no duplicates",
			args:     []string{"tspath", "aq", "--output", "text", "--titles"},
			expected: []string{"tspath", "aq", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"tspath", "aq", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"tspath", "aq", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"tspath", "aq", "--titles", "--recursive", "--titles"},
			expected: []string{"tspath", "aq", "--recursive", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"tspath", "aq", "--output=json", "--titles", "--output=text"},
			expected: []string{"tspath", "aq", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"tspath", "aq", "--output=json", "--output", "text"},
			expected: []string{"tspath", "aq", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"tspath", "rq", "--strategy", "probe", "--config-name", "tsconfig.json", "--strategy", "first", "--config-name", "jsconfig.json"},
			expected: []string{"tspath", "rq", "--strategy", "first", "--config-name", "jsconfig.json"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"tspath", "aq", "/path/to/project", "--output", "json", "--output", "text"},
			expected: []string{"tspath", "aq", "/path/to/project", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"tspath", "aq", "-o", "json", "-o", "text"},
			expected: []string{"tspath", "aq", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"tspath", "aq", "--color", "--no-color"},
			expected: []string{"tspath", "aq", "--color", "--no-color"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"tspath", "aq", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"tspath", "aq", "--output", "c"},
		},
		{
			name:     "flag at end with no value treated as boolean",
			args:     []string{"tspath", "aq", "--titles", "--recursive", "--titles"},
			expected: []string{"tspath", "aq", "--recursive", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	// Ensure non-duplicate flags maintain their relative order.
	args := []string{"tspath", "aq", "--alpha", "--beta", "--gamma"}
	result := deduplicateFlags(args)
	expected := []string{"tspath", "aq", "--alpha", "--beta", "--gamma"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Order not preserved: got %v, want %v", result, expected)
	}
}

func TestDeduplicateFlagsWithPositionalAfterFlags(t *testing.T) {
	// Positional args after flags should be preserved.
	args := []string{"tspath", "aq", "--output", "json", "/path", "--output", "text"}
	result := deduplicateFlags(args)
	expected := []string{"tspath", "aq", "/path", "--output", "text"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", args, expected)
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		key       string
		insertIdx int
		configVal []string
		expected  []string
	}{
		{
			name:      "empty config returns args unchanged",
			args:      []string{"tspath", "aq", "--titles"},
			key:       "defaults",
			insertIdx: 2,
			configVal: nil,
			expected:  []string{"tspath", "aq", "--titles"},
		},
		{
			name:      "single entry injected",
			args:      []string{"tspath", "aq", "--titles"},
			key:       "defaults",
			insertIdx: 2,
			configVal: []string{"--recursive"},
			expected:  []string{"tspath", "aq", "--recursive", "--titles"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"tspath", "aq", "--titles"},
			key:       "defaults",
			insertIdx: 2,
			configVal: []string{"--output text"},
			expected:  []string{"tspath", "aq", "--output", "text", "--titles"},
		},
		{
			name:      "multiple entries",
			args:      []string{"tspath", "aq"},
			key:       "defaults",
			insertIdx: 2,
			configVal: []string{"--recursive", "--output json"},
			expected:  []string{"tspath", "aq", "--recursive", "--output", "json"},
		},
		{
			name:      "insert at index 3",
			args:      []string{"tspath", "aq", "/path/to/project", "--titles"},
			key:       "defaults",
			insertIdx: 3,
			configVal: []string{"--recursive"},
			expected:  []string{"tspath", "aq", "/path/to/project", "--recursive", "--titles"},
		},
		{
			name:      "complex multi-word entries",
			args:      []string{"tspath", "rq"},
			key:       "rq.defaults",
			insertIdx: 2,
			configVal: []string{"--strategy first", "--config-name jsconfig.json"},
			expected:  []string{"tspath", "rq", "--strategy", "first", "--config-name", "jsconfig.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := injectConfigSetTestable(tt.args, tt.configVal, tt.insertIdx)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("injectConfigSet() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// injectConfigSetTestable is a test-friendly version that accepts config values
// directly instead of reading from global config.
func injectConfigSetTestable(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, splitFields(entry)...)
	}

	return append(args[:insertIdx], append(expanded, args[insertIdx:]...)...)
}

// splitFields splits a string by whitespace, matching strings.Fields behavior.
func splitFields(s string) []string {
	var result []string
	start := -1

	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if start >= 0 {
				result = append(result, s[start:i])
				start = -1
			}
		} else {
			if start < 0 {
				start = i
			}
		}
	}

	if start >= 0 {
		result = append(result, s[start:])
	}

	return result
}
