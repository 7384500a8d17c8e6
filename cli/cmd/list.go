package cmd

import (
	"fmt"

	"github.com/foldertemplate/ftg/cli/cmdcontext"
	"github.com/foldertemplate/ftg/cli/formatter"
	"github.com/spf13/cobra"
)

var listFormatOpts struct {
	format  string
	noColor bool
}

// NewListCmd creates a command listing the configured structures.
func NewListCmd() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the configured structures",
		Run:     RunModuleFunc(internalListModule),
		Args:    cobra.NoArgs,
	}

	listCmd.Flags().StringVar(&listFormatOpts.format, "format",
		formatter.DefaultTableDialect.String(),
		fmt.Sprintf("Table format: %v", formatter.TableDialects()))
	listCmd.Flags().BoolVar(&listFormatOpts.noColor, "no-color", false,
		"Disable colored output")

	return listCmd
}

// internalListModule is a default list module.
func internalListModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if !isConfigExist(cmdCtx) {
		return errNoConfig
	}

	dialect, err := formatter.ParseTableDialect(listFormatOpts.format)
	if err != nil {
		return err
	}

	fmt.Print(formatter.CatalogTable(cliOpts.Structures, formatter.Opts{
		TableDialect: dialect,
		NoColor:      listFormatOpts.noColor,
	}))
	return nil
}
