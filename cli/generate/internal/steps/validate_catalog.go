package steps

import (
	"github.com/foldertemplate/ftg/cli/configure"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/templates"
)

// ValidateCatalog checks the configuration before anything is asked from the user.
type ValidateCatalog struct {
}

// Run checks the templates directory and the structures catalog and selects the
// template engine.
func (ValidateCatalog) Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error {
	if err := configure.CheckTemplatesDirectory(ctx.CliOpts); err != nil {
		return err
	}
	if err := structure.ValidateCatalog(ctx.CliOpts.Structures); err != nil {
		return err
	}

	engine, err := templates.NewEngine(ctx.CliOpts.MarkerSyntax)
	if err != nil {
		return err
	}
	runCtx.Engine = engine
	return nil
}
