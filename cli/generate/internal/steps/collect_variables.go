package steps

import (
	"fmt"

	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
)

// CollectVariables represents interactive variables collection step.
type CollectVariables struct {
	// Reader is used to get user input.
	Reader Reader
}

// Run collects values of the structure variables which are not set yet. Every
// variable gets a non-empty value or the run is aborted.
func (collectVariables CollectVariables) Run(ctx *generate_ctx.GenerateCtx,
	runCtx *RunCtx) error {
	var err error
	for _, variable := range runCtx.Structure.Variables {
		if runCtx.Bindings.Variables[variable.VarName] != "" {
			continue
		}

		if ctx.SilentMode {
			if variable.Default == "" {
				return fmt.Errorf("%s variable value is not set", variable.VarName)
			}
			runCtx.Bindings.Variables[variable.VarName] = variable.Default
			continue
		}

		var input string
		for input == "" {
			if variable.Default == "" {
				fmt.Printf("%s: ", variable.VarName)
			} else {
				fmt.Printf("%s (default: %s): ", variable.VarName, variable.Default)
			}

			if input, err = collectVariables.Reader.readLine(); err != nil {
				return inputError(err)
			}

			if input == "" {
				if variable.Default == "" {
					fmt.Println("Please enter a value.")
				} else {
					input = variable.Default
				}
			}
		}
		runCtx.Bindings.Variables[variable.VarName] = input
	}

	return nil
}
