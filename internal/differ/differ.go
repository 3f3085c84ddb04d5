// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff compares two JSON documents and writes an ascii diff to stdout. The
// left document provides the context lines.
func Diff(left []byte, right []byte) error {
	log.Debugf(">> differ()")

	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	differ := gojsondiff.New()

	delta, err := differ.Compare(left, right)
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(os.Stdout, "The rule sets are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal document: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       true,
	}

	formatter := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := formatter.Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, diffString)
	return nil
}

// DiffDocs marshals two arbitrary payloads under a "rules" key and diffs
// them. gojsondiff compares objects, not bare arrays, so the wrapper key is
// load-bearing.
func DiffDocs(left any, right any) error {
	lbytes, err := json.Marshal(map[string]any{"rules": left})
	if err != nil {
		return fmt.Errorf("failed to marshal left document: %w", err)
	}
	rbytes, err := json.Marshal(map[string]any{"rules": right})
	if err != nil {
		return fmt.Errorf("failed to marshal right document: %w", err)
	}

	return Diff(lbytes, rbytes)
}
