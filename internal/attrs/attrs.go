// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"strings"

	"github.com/tspath/tspath/internal/log"
)

// Attr represents each of the keys to be included in the output. These are
// typically identified by the JSON attributes key, thus the name.
type Attr struct {
	// The JSON key to extract from each result row.
	Key string `yaml:"key" json:"Key"`
	// Should this Attr be included in output or is it just
	// intended for filtering and sorting?
	Include bool `yaml:"include" json:"Include"`
	// The key to use in the output. This is also used as the column title when
	// output=text.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
}

// AttrList is the ordered set of attributes a command emits.
type AttrList []*Attr

// Set parses a comma-separated attribute spec and appends the entries.
// Each entry is "key" or "key:outputKey"; a leading "!" keeps the attribute
// available for filtering and sorting without emitting it. Nested keys use
// dots, and the output key defaults to the last path segment. Re-specifying
// an existing output key toggles its visibility instead of appending.
func (al *AttrList) Set(spec string) {
	for entry := range strings.SplitSeq(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		include := !strings.HasPrefix(entry, "!")
		entry = strings.TrimPrefix(entry, "!")

		key, outputKey, found := strings.Cut(entry, ":")
		if !found || outputKey == "" {
			segments := strings.Split(key, ".")
			outputKey = segments[len(segments)-1]
		}
		if key == "" {
			log.Errorf("invalid attr: empty key in %q", spec)
			continue
		}

		if existing := al.find(outputKey); existing != nil {
			existing.Include = include
			continue
		}

		*al = append(*al, &Attr{Key: key, Include: include, OutputKey: outputKey})
	}
}

func (al *AttrList) find(outputKey string) *Attr {
	for _, a := range *al {
		if a.OutputKey == outputKey {
			return a
		}
	}
	return nil
}
