// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package harvest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tspath/tspath/internal/log"
)

// FileName is the fixed artifact location, relative to the working
// directory, mirroring the tsconfig shape so editor tooling can consume it.
const FileName = "tsconfig.paths.json"

// HostAlias is one entry observed in the host build tool's own alias table.
// Pattern marks entries whose matcher is a full pattern object rather than a
// literal prefix; those cannot be expressed as a tsconfig paths entry and
// are skipped.
type HostAlias struct {
	Find        string
	Pattern     bool
	Replacement string
}

// Document is the emitted artifact, shaped like the consumed config format.
type Document struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
}

// CompilerOptions carries the two synthesized fields.
type CompilerOptions struct {
	BaseURL string              `json:"baseUrl"`
	Paths   map[string][]string `json:"paths"`
}

// Build synthesizes a paths document from the host's alias table.
func Build(aliases []HostAlias) Document {
	paths := map[string][]string{}
	for _, a := range aliases {
		if a.Pattern || a.Find == "" {
			continue
		}
		paths[a.Find+"/*"] = []string{a.Replacement + "/*"}
	}

	return Document{CompilerOptions: CompilerOptions{BaseURL: ".", Paths: paths}}
}

// Write persists the document under dir, or the working directory when dir
// is empty. This is an explicit side effect for external consumers, not part
// of the resolution path.
func Write(doc Document, dir string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal paths document: %w", err)
	}
	data = append(data, '\n')

	path := FileName
	if dir != "" {
		path = filepath.Join(dir, FileName)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Debugf("wrote harvested paths: path=%s entries=%d", path, len(doc.CompilerOptions.Paths))
	return nil
}
