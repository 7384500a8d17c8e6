package cmd

import (
	"fmt"
	"os"

	"github.com/foldertemplate/ftg/cli/cmdcontext"
	"github.com/foldertemplate/ftg/cli/formatter"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/util"
	"github.com/spf13/cobra"
)

// NewShowCmd creates a command showing a structure tree.
func NewShowCmd() *cobra.Command {
	var showCmd = &cobra.Command{
		Use:               "show <STRUCTURE_NAME>",
		Short:             "Show the tree of files and folders of a structure",
		Run:               RunModuleFunc(internalShowModule),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: structureNames,
	}

	return showCmd
}

// internalShowModule is a default show module.
func internalShowModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if !isConfigExist(cmdCtx) {
		return errNoConfig
	}

	s, found := cliOpts.Structures.Find(args[0])
	if !found {
		return structure.NewError(structure.CodeStructureNotFound, args[0],
			"structure %q is not found, available structures: %v", args[0],
			cliOpts.Structures.Names())
	}
	if err := structure.ValidateStructure(s); err != nil {
		return err
	}

	fmt.Println(util.Bold(s.Name))
	return formatter.RenderTree(os.Stdout, ".", s, nil)
}
