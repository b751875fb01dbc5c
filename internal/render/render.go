// Package render implements the text output of registers and candidate lists.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/regview/internal/register"
)

type row int

const (
	bitsRow row = iota
	namesRow
	valuesRow
)

// column holds the labels of one field.
type column struct {
	bits  string
	name  string
	value string
	width int
}

// Register writes the layout of the selected register as a table with one
// column per field, highest bit first. If the selection carries a value,
// an additional row shows the decoded field values.
func Register(w io.Writer, sel register.Selection) error {
	desc := sel.Register

	if _, err := fmt.Fprintln(w, header(sel)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	columns := buildColumns(sel)
	rows := []row{bitsRow, namesRow}
	if sel.HasValue {
		rows = append(rows, valuesRow)
	}

	buf := &strings.Builder{}
	writeBorder(buf, columns)
	for _, r := range rows {
		writeRow(buf, columns, r)
		writeBorder(buf, columns)
	}

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return fmt.Errorf("writing register %s: %w", desc.Name, err)
	}
	return nil
}

// Candidates writes the numbered list of candidates, the number being the
// index to select the candidate with.
func Candidates(w io.Writer, candidates []register.Selection) error {
	for i, candidate := range candidates {
		if _, err := fmt.Fprintf(w, "%d) %s\n", i, candidate.Name()); err != nil {
			return fmt.Errorf("writing candidate: %w", err)
		}
	}
	return nil
}

// Names writes one register name per line.
func Names(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("writing name: %w", err)
		}
	}
	return nil
}

func header(sel register.Selection) string {
	desc := sel.Register
	s := desc.Name
	if desc.Array != nil {
		s += fmt.Sprintf(" [%d..%d]", desc.Array.From, desc.Array.To)
	}
	if sel.HasValue {
		s += fmt.Sprintf(" = 0x%x", sel.Value)
	}
	return s
}

func buildColumns(sel register.Selection) []column {
	desc := sel.Register

	var values []uint64
	if sel.HasValue {
		values = desc.Decode(sel.Value)
	}

	columns := make([]column, len(desc.Fields))
	for i, field := range desc.Fields {
		c := column{
			bits: cell(field.Label()),
			name: cell(field.Name),
		}
		if sel.HasValue {
			c.value = cell(fmt.Sprintf("%d", values[i]))
		}
		c.width = max(len(c.bits), len(c.name), len(c.value))
		columns[i] = c
	}
	return columns
}

// cell pads a label with one space on each side.
func cell(label string) string {
	return " " + label + " "
}

func writeBorder(buf *strings.Builder, columns []column) {
	for _, c := range columns {
		buf.WriteByte('+')
		buf.WriteString(strings.Repeat("-", c.width))
	}
	buf.WriteString("+\n")
}

// writeRow writes the labels of a row, each centered in its column.
func writeRow(buf *strings.Builder, columns []column, r row) {
	for _, c := range columns {
		var label string
		switch r {
		case bitsRow:
			label = c.bits
		case namesRow:
			label = c.name
		case valuesRow:
			label = c.value
		}

		left := (c.width - len(label)) / 2
		right := c.width - len(label) - left

		buf.WriteByte('|')
		buf.WriteString(strings.Repeat(" ", left))
		buf.WriteString(label)
		buf.WriteString(strings.Repeat(" ", right))
	}
	buf.WriteString("|\n")
}
