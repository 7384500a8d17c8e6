package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/foldertemplate/ftg/cli/materialize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary returns a human-readable overview of a materialization run: the number
// of created items, the skipped items table and the warnings.
func Summary(result *materialize.Result, targetPath string, opts Opts) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d of %d item(s) in %s\n",
		colorize("Created", opts, color.FgGreen, color.Bold), result.Created,
		result.Created+len(result.Skipped), targetPath)

	if len(result.Skipped) > 0 {
		fmt.Fprintf(&sb, "%s %d item(s):\n", colorize("Skipped", opts, color.FgYellow,
			color.Bold), len(result.Skipped))
		t := newTableWriter(table.Row{"File", "Reason", "Details"}, opts)
		for _, skipped := range result.Skipped {
			t.AppendRow(table.Row{skipped.FileName, string(skipped.Reason), skipped.Details})
		}
		sb.WriteString(renderTable(t, opts))
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(&sb, "%s %s\n", colorize("Warning:", opts, color.FgYellow), warning)
	}
	return sb.String()
}
