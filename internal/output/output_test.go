// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"

	"github.com/tspath/tspath/internal/attrs"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"find": "zebra", "sets": 3.0, "replacement": "/proj/z"},
		{"find": "alpha", "sets": 1.0, "replacement": "/proj/a"},
		{"find": "beta", "sets": 2.0, "replacement": "/proj/b"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by find",
			spec:      "find",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by find",
			spec:      "-find",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "ascending by sets",
			spec:      "sets",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by sets",
			spec:      "-sets",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "case sensitive",
			spec:      "!find",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "multiple fields",
			spec:      "sets,find",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"zebra", "alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expected := range tt.wantOrder {
				assert.Equal(t, expected, data[i]["find"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float64",
			value: 42.5,
			want:  "42",
		},
		{
			name:  "float64 with decimal",
			value: 42.7,
			want:  "43",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "bool false is zero value",
			value: false,
			want:  "",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
		{
			name:  "zero value int",
			value: 0,
			want:  "",
		},
		{
			name:     "zero value with custom empty",
			value:    0,
			emptyVal: "N/A",
			want:     "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDumpSchemaWalker(t *testing.T) {
	type SimpleStruct struct {
		Find        string `json:"find"`
		Replacement string `json:"replacement"`
		ignored     string //nolint:unused
	}

	type NestedStruct struct {
		Rewritten string        `json:"rewritten"`
		Rule      SimpleStruct  `json:"rule"`
		Ptr       *SimpleStruct `json:"ptr_rule"`
		Skipped   string        `json:"-"`
	}

	tests := []struct {
		name      string
		prefix    string
		typ       reflect.Type
		wantNames []string
	}{
		{
			name: "simple struct",
			typ:  reflect.TypeOf(SimpleStruct{}),
			wantNames: []string{
				"find",
				"replacement",
			},
		},
		{
			name:   "nested struct with prefix",
			prefix: "parent",
			typ:    reflect.TypeOf(NestedStruct{}),
			wantNames: []string{
				"parent.rewritten",
				"parent.rule",
				"parent.rule.find",
				"parent.rule.replacement",
				"parent.ptr_rule",
				"parent.ptr_rule.find",
				"parent.ptr_rule.replacement",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dumpSchemaWalker(tt.prefix, tt.typ, 0)

			names := make([]string, 0, len(got))
			for _, tag := range got {
				names = append(names, tag.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}

func TestDumpSchema(t *testing.T) {
	type row struct {
		Find        string `json:"find"`
		Replacement string `json:"replacement"`
	}

	var buf bytes.Buffer
	DumpSchema("", reflect.TypeOf(row{}), &buf)

	out := buf.String()
	assert.Contains(t, out, "find")
	assert.Contains(t, out, "replacement")
}

func TestGetColors(t *testing.T) {
	// This test verifies that getColors returns color.Color values.
	header, even, odd := getColors("colors")

	// Should return non-nil color.Color values.
	assert.NotNil(t, header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)
}

func TestSpit_Raw(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteString(`[{"find":"@app"}]`)

	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "raw"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
		},
	}

	var out bytes.Buffer
	Spit(raw, attrs.AttrList{}, cmd, "", &out, nil)

	assert.Equal(t, `[{"find":"@app"}]`, out.String())
}

func TestSpit_JSON(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteString(`[
		{"find": "@lib", "replacement": "/proj/src/lib"},
		{"find": "@app", "replacement": "/proj/src/app"}
	]`)

	var al attrs.AttrList
	al.Set("find,replacement")

	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "json"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort", Value: "find"},
		},
	}

	var out bytes.Buffer
	Spit(raw, al, cmd, "", &out, nil)

	assert.JSONEq(t,
		`[
			{"find": "@app", "replacement": "/proj/src/app"},
			{"find": "@lib", "replacement": "/proj/src/lib"}
		]`,
		out.String())
}

func TestSpit_ParentKey(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteString(`{"rules": [{"find": "@app", "replacement": "/proj/src/app"}]}`)

	var al attrs.AttrList
	al.Set("find")

	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "json"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
		},
	}

	var out bytes.Buffer
	Spit(raw, al, cmd, "rules", &out, nil)

	assert.JSONEq(t, `[{"find": "@app"}]`, out.String())
}

func TestSpit_PostProcess(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteString(`[{"find": "@app", "replacement": "/proj/src/app"}]`)

	var al attrs.AttrList
	al.Set("find,replacement")

	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "json"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
		},
	}

	var out bytes.Buffer
	Spit(raw, al, cmd, "", &out, func(rows []map[string]interface{}) error {
		for _, row := range rows {
			row["replacement"] = "masked"
		}
		return nil
	})

	assert.Contains(t, out.String(), `"masked"`)
}

func BenchmarkSortDataset(b *testing.B) {
	testData := []map[string]interface{}{
		{"find": "zebra", "sets": 3.0},
		{"find": "alpha", "sets": 1.0},
		{"find": "beta", "sets": 2.0},
	}

	spec := "find"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := make([]map[string]interface{}, len(testData))
		copy(data, testData)
		SortDataset(data, spec)
	}
}

func BenchmarkInterfaceToString(b *testing.B) {
	values := []interface{}{
		"string",
		42,
		42.5,
		true,
		nil,
		[]string{"a", "b"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			InterfaceToString(v)
		}
	}
}
