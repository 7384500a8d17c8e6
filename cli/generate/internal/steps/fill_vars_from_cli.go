package steps

import (
	"fmt"

	"github.com/apex/log"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/util"
)

const formatError = `Wrong variable definition format: %s
Usage: --var "var-name=value"`

// FillVarsFromCli represents the command line variables step.
type FillVarsFromCli struct {
}

// Run collects variables passed using command line args.
func (FillVarsFromCli) Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error {
	for _, varDefinition := range ctx.VarsFromCli {
		varName, value, err := util.ParseVarDefinition(varDefinition)
		if err != nil || value == "" {
			return fmt.Errorf(formatError, varDefinition)
		}
		if !runCtx.Structure.HasVariable(varName) {
			log.Warnf("Variable %s is not declared by structure %s.", varName,
				runCtx.Structure.Name)
		}
		log.Debugf("Setting var from CLI: %s = %s", varName, value)
		runCtx.Bindings.Variables[varName] = value
	}
	return nil
}
