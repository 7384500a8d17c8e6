// Package generate creates folder structures described in the configuration.
package generate

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/foldertemplate/ftg/cli/config"
	"github.com/foldertemplate/ftg/cli/formatter"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/generate/internal/steps"
	"github.com/foldertemplate/ftg/cli/util"
	"github.com/foldertemplate/ftg/cli/version"
)

// FillCtx fills generate context.
func FillCtx(cliOpts *config.CliOpts, genCtx *generate_ctx.GenerateCtx, args []string) error {
	if len(args) > 1 {
		return util.NewArgError(fmt.Sprintf("only one structure name is expected, got %d",
			len(args)))
	}
	if len(args) == 1 {
		genCtx.StructureName = args[0]
	}
	genCtx.CliOpts = cliOpts

	if genCtx.WorkDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return err
		}
		genCtx.WorkDir = workingDir
	}
	return nil
}

// rollbackOnErr removes everything created by an unfinished run.
func rollbackOnErr(runCtx *steps.RunCtx) {
	if err := steps.RollbackRun(runCtx); err != nil {
		log.Warnf("Failed to roll back generated files: %s", err)
	}
}

// Interaction holds the user interaction implementations used by the run.
type Interaction struct {
	// Reader reads lines of user input.
	Reader steps.Reader
	// Prompter shows menus and yes/no questions.
	Prompter steps.Prompter
	// Writer receives the preview and the summary.
	Writer io.Writer
	// Opts are the summary formatting options.
	Opts formatter.Opts
}

// ConsoleInteraction returns the terminal interaction.
func ConsoleInteraction() Interaction {
	return Interaction{
		Reader:   steps.NewConsoleReader(),
		Prompter: steps.NewConsolePrompter(),
		Writer:   os.Stdout,
	}
}

// Run generates a structure in the terminal.
func Run(genCtx *generate_ctx.GenerateCtx) error {
	return RunWith(genCtx, ConsoleInteraction(), steps.NewRunContext())
}

// RunWith generates a structure using the passed interaction and run context.
func RunWith(genCtx *generate_ctx.GenerateCtx, interaction Interaction,
	runCtx steps.RunCtx) error {
	if err := checkCtx(genCtx); err != nil {
		return util.InternalError("Generate context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.ValidateCatalog{},
		steps.SelectStructure{Prompter: interaction.Prompter},
		steps.ValidateStructure{},
		steps.ResolveTargetPath{Reader: interaction.Reader},
		steps.LoadVarsFile{},
		steps.FillVarsFromCli{},
		steps.FillOptionalsFromCli{},
		steps.CollectVariables{Reader: interaction.Reader},
		steps.CollectOptionals{Prompter: interaction.Prompter},
		steps.ConfirmGeneration{Prompter: interaction.Prompter, Writer: interaction.Writer},
		steps.MaterializeStructure{},
		steps.PrintSummary{Writer: interaction.Writer, Opts: interaction.Opts},
		steps.OfferRollback{Prompter: interaction.Prompter},
	}

	for _, step := range stepsChain {
		if err := step.Run(genCtx, &runCtx); err != nil {
			rollbackOnErr(&runCtx)
			return err
		}
	}

	return nil
}

// checkCtx checks generate context for validity.
func checkCtx(ctx *generate_ctx.GenerateCtx) error {
	if ctx.CliOpts == nil {
		return fmt.Errorf("configuration is not loaded")
	}
	if ctx.WorkDir == "" {
		return fmt.Errorf("working directory is not set")
	}
	return nil
}
