// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// fsExtensions are the suffixes probed by the filesystem host, in the order
// a bundler's default resolution would try them.
var fsExtensions = []string{"", ".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs", ".json"}

// FSHost is a filesystem-backed Host used by the CLI, standing in for the
// build tool's own resolution. It probes the rewritten specifier as a file
// with the usual extensions and as a directory index.
type FSHost struct{}

// Resolve implements Host.
func (FSHost) Resolve(ctx context.Context, specifier string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, ext := range fsExtensions {
		candidate := specifier + ext
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return candidate, nil
		}
	}

	// Directory import, look for an index module.
	if fi, err := os.Stat(specifier); err == nil && fi.IsDir() {
		for _, ext := range fsExtensions[1:] {
			candidate := filepath.Join(specifier, "index"+ext)
			if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("failed to resolve %s", specifier)
}
