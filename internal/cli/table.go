package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/opencode-ai/neumorph/internal/presets"
)

const tablePadding = 2

var presetTableHeaders = []string{"NAME", "SIZE", "RADIUS", "THEME", "COLOR", "SOURCE", "DESCRIPTION"}

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// presetRows flattens presets into table cells, one row per preset.
func presetRows(items []*presets.Preset) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		params := item.Params
		rows = append(rows, []string{
			item.Name,
			fmt.Sprintf("%dpx", params.Size),
			fmt.Sprintf("%d%%", params.CornerRadius),
			formatTheme(params.DarkMode),
			params.Color,
			item.Source,
			item.Description,
		})
	}
	return rows
}

func formatTheme(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
