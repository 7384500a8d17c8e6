package steps

import (
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/structure"
)

// ValidateStructure checks the selected structure definition before any value is
// collected.
type ValidateStructure struct {
}

// Run validates the selected structure.
func (ValidateStructure) Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error {
	return structure.ValidateStructure(runCtx.Structure)
}
