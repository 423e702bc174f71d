// Package render formats Data payloads for the primary output.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/joeblew999/corrosion/internal/config"
)

const (
	// FormatJSON selects JSON.
	FormatJSON = "json"
	// FormatTable selects Table.
	FormatTable = "table"
)

// Compile-time verification that the renderers match config.Renderer.
var (
	_ config.Renderer = JSON
	_ config.Renderer = Table
)

// ByName returns the renderer for an output format name.
// An empty name selects JSON.
func ByName(name string) (config.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatJSON:
		return JSON, nil
	case FormatTable:
		return Table, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", name, FormatJSON, FormatTable)
	}
}

// JSON writes value indented by two spaces and followed by a newline.
func JSON(w io.Writer, value json.RawMessage) error {
	if len(bytes.TrimSpace(value)) == 0 {
		value = json.RawMessage("null")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, value, "", "  "); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}

	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}

// Table writes arrays of objects as one row per element and objects as
// key/value rows. Any other shape is written as JSON.
func Table(w io.Writer, value json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return JSON(w, value)
	}

	switch v := decoded.(type) {
	case []any:
		rows, ok := objectRows(v)
		if !ok {
			return JSON(w, value)
		}

		return renderRows(w, rows)
	case map[string]any:
		return renderObject(w, v)
	default:
		return JSON(w, value)
	}
}

// objectRows reports whether every element of items is an object.
func objectRows(items []any) ([]map[string]any, bool) {
	rows := make([]map[string]any, 0, len(items))

	for _, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}

		rows = append(rows, row)
	}

	return rows, true
}

func renderRows(w io.Writer, rows []map[string]any) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")

		return err
	}

	columns := make(map[string]struct{})
	for _, row := range rows {
		for key := range row {
			columns[key] = struct{}{}
		}
	}

	cols := slices.Sorted(maps.Keys(columns))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col
	}

	t.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(cols))
		for i, col := range cols {
			r[i] = formatCell(row[col])
		}

		t.AppendRow(r)
	}

	t.Render()

	_, err := fmt.Fprintf(w, "(%d rows)\n", len(rows))

	return err
}

func renderObject(w io.Writer, obj map[string]any) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"key", "value"})

	for _, key := range slices.Sorted(maps.Keys(obj)) {
		t.AppendRow(table.Row{key, formatCell(obj[key])})
	}

	t.Render()

	return nil
}

// formatCell renders scalars as text and nested values as compact JSON.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}

		return string(data)
	}
}
