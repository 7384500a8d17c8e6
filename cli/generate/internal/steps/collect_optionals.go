package steps

import (
	"fmt"

	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
)

// CollectOptionals represents interactive optionals collection step.
type CollectOptionals struct {
	// Prompter is used to ask yes/no questions.
	Prompter Prompter
}

// Run resolves the structure optionals which are not set yet. Defaults are used in
// non-interactive mode.
func (collectOptionals CollectOptionals) Run(ctx *generate_ctx.GenerateCtx,
	runCtx *RunCtx) error {
	for _, optional := range runCtx.Structure.Optionals {
		if _, found := runCtx.Bindings.Optionals[optional.OptName]; found {
			continue
		}

		if ctx.SilentMode {
			runCtx.Bindings.Optionals[optional.OptName] = optional.Value
			continue
		}

		value, err := collectOptionals.Prompter.Confirm(
			fmt.Sprintf("Include %s", optional.OptName), optional.Value)
		if err != nil {
			return err
		}
		runCtx.Bindings.Optionals[optional.OptName] = value
	}
	return nil
}
