package cmd

import (
	"errors"

	"github.com/foldertemplate/ftg/cli/cmdcontext"
	"github.com/foldertemplate/ftg/cli/configure"
	"github.com/foldertemplate/ftg/cli/util"
	"github.com/spf13/cobra"
)

// internalFunc is a command implementation.
type internalFunc func(cmdCtx *cmdcontext.CmdCtx, args []string) error

// RunModuleFunc returns a cobra run function calling the command implementation
// and handling its error.
func RunModuleFunc(internal internalFunc) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		err := internal(&cmdCtx, args)
		util.HandleCmdErr(cmd, err)
	}
}

// errNoConfig is returned if the configuration file ftg.yaml is not found.
var errNoConfig = errors.New(configure.ConfigName +
	" not found, you need to create ftg config with 'ftg init'" +
	" or provide exact config location with --cfg option")

// isConfigExist returns `true` if the configuration file ftg.yaml exist.
func isConfigExist(cmdCtx *cmdcontext.CmdCtx) bool {
	return cmdCtx.Cli.ConfigPath != ""
}

// structureNames returns structure names for shell completion.
func structureNames(cmd *cobra.Command, args []string,
	toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 || cliOpts == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return cliOpts.Structures.Names(), cobra.ShellCompDirectiveNoFileComp
}
