package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// table renders aligned text rows with a styled header. Styles come from a
// renderer bound to the destination writer, so plain buffers get no escapes.
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cells ...string) { t.rows = append(t.rows, cells) }

func (t *table) render(w io.Writer, title string) error {
	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle := r.NewStyle().Bold(true).Underline(true)
	cellStyle := r.NewStyle().PaddingRight(2)

	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if cw := lipgloss.Width(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = cellStyle.Render(style.Render(c) + strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
		}

		return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(line(t.header, headerStyle))
	sb.WriteString("\n")
	for _, row := range t.rows {
		sb.WriteString(line(row, r.NewStyle()))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// writeJSON writes v as two-space indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}

// writeYAML writes v as a YAML document with two-space indentation.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// writeStructured writes v in the machine-readable format, reporting false
// when format asks for the text table instead.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case formatJSON:
		return true, writeJSON(w, v)
	case formatYAML:
		return true, writeYAML(w, v)
	}

	return false, nil
}
