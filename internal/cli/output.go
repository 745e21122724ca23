package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseFormat validates a --format value. The empty string means table.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return OutputFormatTable, nil
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Result is one command's output. Rows feed the table; Data is what json
// and yaml encode.
type Result struct {
	Columns []string
	Rows    [][]interface{}
	Footer  []interface{}
	Data    interface{}
	// Empty is printed instead of an empty table.
	Empty string
}

// Printer writes results in the selected format.
type Printer struct {
	Format OutputFormat
	Out    io.Writer
}

// NewPrinter returns a printer writing to out.
func NewPrinter(format OutputFormat, out io.Writer) *Printer {
	return &Printer{Format: format, Out: out}
}

// Print renders r.
func (p *Printer) Print(r Result) error {
	switch p.Format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(r.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.Out, string(data))
		return err
	case OutputFormatYAML:
		data, err := yaml.Marshal(r.Data)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = fmt.Fprint(p.Out, string(data))
		return err
	case OutputFormatTable, "":
		return p.table(r)
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}

func (p *Printer) table(r Result) error {
	if len(r.Rows) == 0 {
		msg := r.Empty
		if msg == "" {
			msg = "No items found"
		}
		_, err := fmt.Fprintln(p.Out, text.FgYellow.Sprint(msg))
		return err
	}

	t := NewTable(p.Out, r.Columns...)
	for _, row := range r.Rows {
		t.AppendRow(row)
	}
	if len(r.Footer) > 0 {
		t.AppendFooter(r.Footer)
	}
	t.Render()
	return nil
}

// NewTable returns a rounded table writing to w with cyan upper-case headers.
func NewTable(w io.Writer, headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = text.FgHiCyan.Sprint(strings.ToUpper(h))
	}
	t.AppendHeader(row)
	return t
}

// Dash stands in for an empty cell.
func Dash(s string) string {
	if s == "" {
		return text.FgHiBlack.Sprint("-")
	}
	return s
}
