package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/foldertemplate/ftg/cli/cmdcontext"
	"github.com/foldertemplate/ftg/cli/configure"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates a command checking the configured structures.
func NewValidateCmd() *cobra.Command {
	var validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Check the templates directory and every configured structure",
		Run:   RunModuleFunc(internalValidateModule),
		Args:  cobra.NoArgs,
	}

	return validateCmd
}

// collectProblems returns every configuration and structure problem.
func collectProblems() []error {
	var problems []error
	if err := configure.CheckTemplatesDirectory(cliOpts); err != nil {
		problems = append(problems, err)
	}
	return append(problems, structure.ValidateAll(cliOpts.Structures)...)
}

// internalValidateModule is a default validate module.
func internalValidateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if !isConfigExist(cmdCtx) {
		return errNoConfig
	}

	problems := collectProblems()
	if len(problems) > 0 {
		for _, problem := range problems {
			log.Error(problem.Error())
		}
		return fmt.Errorf("%s has %d problem(s)", cmdCtx.Cli.ConfigPath, len(problems))
	}

	log.Infof("%s is valid: %d structure(s)", cmdCtx.Cli.ConfigPath,
		len(cliOpts.Structures))
	return nil
}
