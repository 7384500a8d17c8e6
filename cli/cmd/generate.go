package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/foldertemplate/ftg/cli/cmdcontext"
	"github.com/foldertemplate/ftg/cli/generate"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var genCtx generate_ctx.GenerateCtx

// NewGenerateCmd creates a command generating a structure.
func NewGenerateCmd() *cobra.Command {
	var generateCmd = &cobra.Command{
		Use:               "generate [STRUCTURE_NAME] [flags]",
		Aliases:           []string{"gen"},
		Short:             "Generate files and folders from a structure",
		Run:               RunModuleFunc(internalGenerateModule),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: structureNames,
		Long: `Generate files and folders from a structure of the configuration.

Missing variables and optionals are asked interactively. Every created path is
recorded, so the generated files can be removed right after the generation.`,
		Example: `
# Select a structure and generate it in the current directory.

    $ ftg generate

# Generate the Project structure in a new folder acme. User interaction is disabled.

    $ ftg generate Project --name acme --var NAME=acme --opt DEBUG=false -s

# Generate using variables from a file and keep the files without asking.

    $ ftg generate Project --dst ./services --vars-file project.vars --keep`,
	}

	generateCmd.Flags().StringVarP(&genCtx.FolderName, "name", "n", "",
		"Name of a new folder to generate into")
	generateCmd.Flags().StringVarP(&genCtx.DestinationDir, "dst", "d", "",
		"Path to the directory where the structure will be generated")
	generateCmd.Flags().StringArrayVar(&genCtx.VarsFromCli, "var", []string{},
		"Variable definition. Usage: --var var_name=value")
	generateCmd.Flags().StringArrayVar(&genCtx.OptionalsFromCli, "opt", []string{},
		"Optional definition. Usage: --opt opt_name=true|false")
	generateCmd.Flags().StringVar(&genCtx.VarsFile, "vars-file", "",
		"Variables definition file path")
	generateCmd.Flags().BoolVarP(&genCtx.SilentMode, "non-interactive", "s", false,
		"Non-interactive mode")
	generateCmd.Flags().BoolVarP(&genCtx.AutoConfirm, "yes", "y", false,
		"Do not ask for confirmation before generating")
	generateCmd.Flags().BoolVar(&genCtx.KeepMode, "keep", false,
		"Keep generated files without asking")

	return generateCmd
}

// isInteractiveInput returns true if stdin is a terminal.
func isInteractiveInput() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// internalGenerateModule is a default generate module.
func internalGenerateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if !isConfigExist(cmdCtx) {
		return errNoConfig
	}

	if !genCtx.SilentMode && !isInteractiveInput() {
		log.Debug("Standard input is not a terminal, interactive mode is disabled.")
		genCtx.SilentMode = true
	}

	if err := generate.FillCtx(cliOpts, &genCtx, args); err != nil {
		return err
	}

	return generate.Run(&genCtx)
}
