// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrList_Set(t *testing.T) {
	tests := []struct {
		name    string
		initial AttrList
		value   string
		want    []Attr
	}{
		{
			name:  "single attr",
			value: "find",
			want:  []Attr{{Key: "find", Include: true, OutputKey: "find"}},
		},
		{
			name:  "comma separated",
			value: "find,replacement",
			want: []Attr{
				{Key: "find", Include: true, OutputKey: "find"},
				{Key: "replacement", Include: true, OutputKey: "replacement"},
			},
		},
		{
			name:  "explicit output key",
			value: "rule.find:alias",
			want:  []Attr{{Key: "rule.find", Include: true, OutputKey: "alias"}},
		},
		{
			name:  "nested key defaults to last segment",
			value: "rule.find",
			want:  []Attr{{Key: "rule.find", Include: true, OutputKey: "find"}},
		},
		{
			name:  "hidden attr",
			value: "!rewritten",
			want:  []Attr{{Key: "rewritten", Include: false, OutputKey: "rewritten"}},
		},
		{
			name: "re-spec toggles visibility",
			initial: AttrList{
				{Key: "rewritten", Include: false, OutputKey: "rewritten"},
			},
			value: "rewritten",
			want:  []Attr{{Key: "rewritten", Include: true, OutputKey: "rewritten"}},
		},
		{
			name: "re-spec hides visible attr",
			initial: AttrList{
				{Key: "resolved", Include: true, OutputKey: "resolved"},
			},
			value: "!resolved",
			want:  []Attr{{Key: "resolved", Include: false, OutputKey: "resolved"}},
		},
		{
			name:  "whitespace and empties skipped",
			value: " find , ,replacement ",
			want: []Attr{
				{Key: "find", Include: true, OutputKey: "find"},
				{Key: "replacement", Include: true, OutputKey: "replacement"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.initial
			a.Set(tt.value)

			require.Len(t, a, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Key, a[i].Key, "attr[%d].Key", i)
				assert.Equal(t, want.OutputKey, a[i].OutputKey, "attr[%d].OutputKey", i)
				assert.Equal(t, want.Include, a[i].Include, "attr[%d].Include", i)
			}
		})
	}
}

func TestAttrList_SetAccumulates(t *testing.T) {
	var a AttrList
	a.Set("find")
	a.Set("replacement")

	require.Len(t, a, 2)
	assert.Equal(t, "find", a[0].OutputKey)
	assert.Equal(t, "replacement", a[1].OutputKey)
}
