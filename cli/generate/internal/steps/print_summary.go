package steps

import (
	"io"

	"github.com/foldertemplate/ftg/cli/formatter"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
)

// PrintSummary represents the generation overview step.
type PrintSummary struct {
	// Writer is used to write the summary.
	Writer io.Writer
	// Opts are the formatting options.
	Opts formatter.Opts
}

// Run prints the created and skipped items.
func (printSummary PrintSummary) Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error {
	if runCtx.Result == nil {
		return nil
	}
	_, err := io.WriteString(printSummary.Writer,
		formatter.Summary(runCtx.Result, runCtx.TargetPath, printSummary.Opts))
	return err
}
