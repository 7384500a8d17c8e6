package steps

import (
	"github.com/foldertemplate/ftg/cli/materialize"
	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/templates"
)

// RunCtx contains the state of a single generation run.
type RunCtx struct {
	// Structure is the selected structure.
	Structure *structure.Structure
	// TargetPath is an absolute path of the directory to generate into.
	TargetPath string
	// Bindings are the variables and optionals values of the run.
	Bindings structure.Bindings
	// Engine is a template engine to use for templates rendering.
	Engine templates.TemplateEngine
	// Materializer creates the structure items. The OS filesystem one is used
	// if not set.
	Materializer *materialize.Materializer
	// Result is set once the structure is materialized.
	Result *materialize.Result
	// Committed is set when the user decided to keep generated files. Generated
	// files are never removed after that.
	Committed bool
}

// NewRunContext creates new generation run context.
func NewRunContext() RunCtx {
	return RunCtx{
		Bindings: structure.NewBindings(),
		Engine:   templates.NewDefaultEngine(),
	}
}
