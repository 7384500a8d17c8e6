package cmd

import (
	"fmt"

	"github.com/foldertemplate/ftg/cli/cmdcontext"
	"github.com/foldertemplate/ftg/cli/configure"
	init_pkg "github.com/foldertemplate/ftg/cli/init"
	"github.com/spf13/cobra"
)

var initCtx init_pkg.InitCtx

// NewInitCmd writes a starter ftg.yaml with an example structure and its templates.
func NewInitCmd() *cobra.Command {
	var initCmd = &cobra.Command{
		Use:   "init [flags]",
		Short: "Create ftg config with an example structure in current directory",
		Run:   RunModuleFunc(internalInitModule),
		Args:  cobra.NoArgs,
	}

	initCmd.Flags().BoolVarP(&initCtx.ForceMode, "force", "f", false,
		fmt.Sprintf(`Force re-write existing %s`, configure.ConfigName))
	initCmd.Flags().BoolVarP(&initCtx.Global, "global", "g", false,
		"Write the config to the user configuration directory")

	return initCmd
}

// internalInitModule is a default init module.
func internalInitModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if err := init_pkg.FillCtx(&initCtx); err != nil {
		return err
	}
	return init_pkg.Run(&initCtx)
}
