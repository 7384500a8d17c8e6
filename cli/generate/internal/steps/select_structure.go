package steps

import (
	"fmt"

	"github.com/apex/log"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/structure"
)

// SelectStructure picks the structure to generate.
type SelectStructure struct {
	// Prompter is used to show the structures menu.
	Prompter Prompter
}

// Run selects the structure by name, or asks the user to choose one.
func (selectStructure SelectStructure) Run(ctx *generate_ctx.GenerateCtx,
	runCtx *RunCtx) error {
	catalog := ctx.CliOpts.Structures
	name := ctx.StructureName

	if name == "" {
		switch {
		case len(catalog) == 1:
			name = catalog[0].Name
		case ctx.SilentMode:
			return fmt.Errorf("structure name is required in non-interactive mode, "+
				"available structures: %v", catalog.Names())
		default:
			var err error
			if name, err = selectStructure.Prompter.Select("Select a structure",
				catalog.Names()); err != nil {
				return err
			}
		}
	}

	s, found := catalog.Find(name)
	if !found {
		return structure.NewError(structure.CodeStructureNotFound, name,
			"structure %q is not found, available structures: %v", name, catalog.Names())
	}
	log.Debugf("Selected structure: %s", s.Name)
	runCtx.Structure = s
	return nil
}
