package formatter

import (
	"strings"

	"github.com/fatih/color"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	statusOk      = "ok"
	statusInvalid = "invalid"
)

func variableNames(s *structure.Structure) string {
	names := make([]string, 0, len(s.Variables))
	for _, variable := range s.Variables {
		names = append(names, variable.VarName)
	}
	return strings.Join(names, ", ")
}

func optionalNames(s *structure.Structure) string {
	names := make([]string, 0, len(s.Optionals))
	for _, optional := range s.Optionals {
		names = append(names, optional.OptName)
	}
	return strings.Join(names, ", ")
}

// CatalogTable returns the catalog as a table. Every structure is validated and
// its status is shown in the last column.
func CatalogTable(catalog structure.Catalog, opts Opts) string {
	t := newTableWriter(table.Row{
		"Name", "Items", "Variables", "Optionals", "New folder", "Status",
	}, opts)

	for i := range catalog {
		s := &catalog[i]
		status := colorize(statusOk, opts, color.FgGreen)
		if err := structure.ValidateStructure(s); err != nil {
			status = colorize(statusInvalid+": "+string(structure.GetCode(err)), opts,
				color.FgRed)
		}
		newFolder := "no"
		if s.CreateNewFolder {
			newFolder = "yes"
		}
		t.AppendRow(table.Row{
			s.Name, len(s.Items), variableNames(s), optionalNames(s), newFolder, status,
		})
	}

	return renderTable(t, opts)
}
