package steps

import (
	"fmt"
	"strconv"

	"github.com/apex/log"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/util"
)

const optFormatError = `Wrong optional definition format: %s
Usage: --opt "opt-name=true|false"`

// FillOptionalsFromCli represents the command line optionals step.
type FillOptionalsFromCli struct {
}

// Run collects optionals passed using command line args.
func (FillOptionalsFromCli) Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error {
	for _, optDefinition := range ctx.OptionalsFromCli {
		optName, rawValue, err := util.ParseVarDefinition(optDefinition)
		if err != nil {
			return fmt.Errorf(optFormatError, optDefinition)
		}
		value, err := strconv.ParseBool(rawValue)
		if err != nil {
			return fmt.Errorf(optFormatError, optDefinition)
		}
		if !runCtx.Structure.HasOptional(optName) {
			log.Warnf("Optional %s is not declared by structure %s.", optName,
				runCtx.Structure.Name)
		}
		log.Debugf("Setting optional from CLI: %s = %t", optName, value)
		runCtx.Bindings.Optionals[optName] = value
	}
	return nil
}
