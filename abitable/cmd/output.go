// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/abitable/abitable/abitable/config"
	"gopkg.in/yaml.v3"
)

// Table is the result of a command: a header and rows of the same width.
type Table struct {
	Header []string
	Rows   [][]string
}

// Append adds a row to the table.
func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

type outputFunc func(io.Writer, *Table) error

// A map of output format names to output functions.
var outputMap = map[string]outputFunc{
	config.FormatText: outputTable,
	config.FormatJSON: outputJSON,
	config.FormatCSV:  outputCSV,
	config.FormatYAML: outputYAML,
}

// Write renders t to w in the given format.
func (t *Table) Write(w io.Writer, format string) error {
	out, ok := outputMap[format]
	if !ok {
		return fmt.Errorf("unsupported output format %q", format)
	}
	return out(w, t)
}

// outputTable outputs the table in aligned columns.
func outputTable(w io.Writer, t *Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(t.Header, "\t")); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// outputJSON outputs the table as a JSON array of objects keyed by the
// lower-cased header.
func outputJSON(w io.Writer, t *Table) error {
	objs := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		obj := make(map[string]string, len(row))
		for i, v := range row {
			obj[strings.ToLower(t.Header[i])] = v
		}
		objs = append(objs, obj)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(objs)
}

// outputCSV outputs the table as CSV, header first.
func outputCSV(w io.Writer, t *Table) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(t.Header); err != nil {
		return err
	}
	if err := csvWriter.WriteAll(t.Rows); err != nil {
		return err
	}
	return csvWriter.Error()
}

// outputYAML outputs the table as a YAML sequence of mappings. Keys keep the
// column order and every value is a string.
func outputYAML(w io.Writer, t *Table) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, v := range row {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strings.ToLower(t.Header[i])},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle},
			)
		}
		seq.Content = append(seq.Content, m)
	}
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(seq); err != nil {
		return err
	}
	return e.Close()
}
