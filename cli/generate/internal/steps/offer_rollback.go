package steps

import (
	"fmt"

	"github.com/apex/log"
	generate_ctx "github.com/foldertemplate/ftg/cli/generate/context"
	"github.com/foldertemplate/ftg/cli/rollback"
)

// OfferRollback asks the user whether generated files are kept.
type OfferRollback struct {
	// Prompter is used to ask the question.
	Prompter Prompter
}

// RollbackRun removes everything created by the run unless it is committed.
func RollbackRun(runCtx *RunCtx) error {
	if runCtx.Committed || runCtx.Result == nil || runCtx.Result.Ledger.Len() == 0 {
		return nil
	}

	ledger := runCtx.Result.Ledger
	failures := rollback.Rollback(runCtx.Materializer.Filesystem(), ledger.Paths())
	removed := ledger.Len() - len(failures)
	ledger.Reset()
	if len(failures) > 0 {
		for _, failure := range failures {
			log.Errorf("%s", failure)
		}
		return fmt.Errorf("rollback is incomplete: %d path(s) are not removed",
			len(failures))
	}
	log.Infof("Removed %d generated path(s).", removed)
	return nil
}

// Run keeps generated files or rolls them back.
func (offerRollback OfferRollback) Run(ctx *generate_ctx.GenerateCtx, runCtx *RunCtx) error {
	if runCtx.Result == nil || runCtx.Result.Ledger.Len() == 0 {
		runCtx.Committed = true
		return nil
	}

	keep := true
	if !ctx.SilentMode && !ctx.KeepMode {
		var err error
		if keep, err = offerRollback.Prompter.Confirm("Keep generated files", true); err != nil {
			return err
		}
	}

	if keep {
		runCtx.Committed = true
		return nil
	}
	return RollbackRun(runCtx)
}
