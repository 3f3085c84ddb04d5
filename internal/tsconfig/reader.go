// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tsconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// ConfigDirPlaceholder is the templated token tsconfig documents may use in
// baseUrl and paths targets. It is substituted at compile time with the
// directory of the discovered root config file.
const ConfigDirPlaceholder = "${configDir}"

// PathEntry is one pattern in a compilerOptions.paths object with its ordered
// target list. Document order of the patterns is preserved because rule
// matching downstream is first-match-wins.
type PathEntry struct {
	Pattern string   `yaml:"pattern" json:"pattern"`
	Targets []string `yaml:"targets" json:"targets"`
}

// RawConfig is the per-file read result. It is ephemeral; one instance exists
// per file read and is discarded once its contribution has been collected.
// An empty BaseURL means the document did not declare one.
type RawConfig struct {
	BaseURL string
	Paths   []PathEntry
	Extends []string
}

// Read loads a single configuration document. The path is resolved to an
// absolute path first. A missing file is a normal outcome and returns
// (zero, false, nil); a document that is not valid JSONC is a hard error
// since proceeding with partial alias data would silently resolve modules
// to the wrong locations.
func Read(path string) (RawConfig, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return RawConfig{}, false, fmt.Errorf("failed to resolve config path (%s): %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, fmt.Errorf("failed to read config (%s): %w", abs, err)
	}

	// Strip comments and trailing commas before parsing. tsconfig documents
	// are JSONC in the wild even when the file is named .json.
	doc := jsonc.ToJSON(data)
	if !gjson.ValidBytes(doc) {
		return RawConfig{}, false, fmt.Errorf("malformed config (%s)", abs)
	}

	root := gjson.ParseBytes(doc)

	cfg := RawConfig{
		BaseURL: root.Get("compilerOptions.baseUrl").String(),
	}

	// ForEach preserves document order, which matters because the compiled
	// rule list is matched sequentially.
	root.Get("compilerOptions.paths").ForEach(func(key, value gjson.Result) bool {
		cfg.Paths = append(cfg.Paths, PathEntry{
			Pattern: key.String(),
			Targets: lo.Map(value.Array(), func(t gjson.Result, _ int) string {
				return t.String()
			}),
		})
		return true
	})

	// extends is a single string in most documents but may be an array.
	ext := root.Get("extends")
	switch {
	case ext.IsArray():
		cfg.Extends = lo.Map(ext.Array(), func(e gjson.Result, _ int) string {
			return e.String()
		})
	case ext.Type == gjson.String:
		cfg.Extends = []string{ext.String()}
	}

	return cfg, true, nil
}
