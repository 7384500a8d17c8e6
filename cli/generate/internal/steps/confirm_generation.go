package steps

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/foldertemplate/ftg/cli/formatter"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/util"
)

// ConfirmGeneration shows what is going to be generated and asks for confirmation.
type ConfirmGeneration struct {
	// Prompter is used to ask for confirmation.
	Prompter Prompter
	// Writer is used to write the preview.
	Writer io.Writer
}

// Run asks the user to confirm the generation. Nothing is written on refusal.
func (confirmGeneration ConfirmGeneration) Run(ctx *generate_ctx.GenerateCtx,
	runCtx *RunCtx) error {
	if ctx.SilentMode || ctx.AutoConfirm {
		return nil
	}

	if err := formatter.RenderTree(confirmGeneration.Writer,
		filepath.Base(runCtx.TargetPath), runCtx.Structure, &runCtx.Bindings); err != nil {
		return err
	}

	confirmed, err := confirmGeneration.Prompter.Confirm(
		fmt.Sprintf("Generate %s in %s", util.Bold(runCtx.Structure.Name),
			runCtx.TargetPath), true)
	if err != nil {
		return err
	}
	if !confirmed {
		return util.ErrCmdAbort
	}
	return nil
}
