package steps

import (
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/materialize"
)

// MaterializeStructure creates the structure items.
type MaterializeStructure struct {
}

// Run materializes the selected structure with the collected bindings.
func (MaterializeStructure) Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error {
	if runCtx.Materializer == nil {
		runCtx.Materializer = materialize.NewOS(runCtx.Engine)
	}

	result, err := runCtx.Materializer.Materialize(materialize.Request{
		Structure:          runCtx.Structure,
		TargetPath:         runCtx.TargetPath,
		TemplatesDirectory: ctx.CliOpts.TemplatesDirectory,
		Bindings:           runCtx.Bindings,
	})
	if err != nil {
		return err
	}
	runCtx.Result = &result
	return nil
}
