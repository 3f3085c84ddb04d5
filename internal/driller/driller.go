// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRegex parses one path segment into a key and an optional [N] or [*]
// array index suffix.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d|\*)?\])?$`)

// Driller navigates JSON using a flexible dot path supporting arrays
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for part := range strings.SplitSeq(path, ".") {
		matches := segmentRegex.FindStringSubmatch(part)
		if len(matches) == 0 {
			return gjson.Result{} // Invalid path segment
		}

		key := matches[1]

		// matches[2] is the [], which we can throw away.

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				// No index specified. A single-element array collapses to its
				// element; otherwise the whole list is kept.
				if len(arr) == 1 {
					val = arr[0]
				}
			case index >= 0 && index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}
