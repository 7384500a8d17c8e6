// Package steps provides a set of handlers for generate command chain of responsibility.
package steps

import (
	"errors"
	"fmt"
	"io"

	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/util"
)

// Step is an interface for single step in generate chain.
type Step interface {
	Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error
}

// inputError converts a user input error. End of input is a user abort.
func inputError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, util.ErrCmdAbort) {
		return util.ErrCmdAbort
	}
	return fmt.Errorf("error reading user input: %w", err)
}
