package templates

import (
	"fmt"

	"github.com/foldertemplate/ftg/cli/templates/engines"
	"github.com/go-git/go-billy/v5"
)

// Supported marker syntaxes.
const (
	// SyntaxDouble is the "[[name]]" marker syntax.
	SyntaxDouble = "double"
	// SyntaxSingle is the legacy "[name]" marker syntax.
	SyntaxSingle = "single"
)

// TemplateEngine is an interface of a template engine used for structure items.
type TemplateEngine interface {
	// RenderFile reads the template from srcPath and applies the bindings to it.
	RenderFile(fsys billy.Filesystem, srcPath string, vars map[string]string,
		optionals map[string]bool) (string, error)

	// RenderText applies the bindings to the template text. Returns instantiated text.
	RenderText(in string, vars map[string]string, optionals map[string]bool) string
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return engines.NewDoubleBracket()
}

// NewEngine creates an engine for the marker syntax. Empty syntax selects the
// default one.
func NewEngine(syntax string) (TemplateEngine, error) {
	switch syntax {
	case "", SyntaxDouble:
		return engines.NewDoubleBracket(), nil
	case SyntaxSingle:
		return engines.NewSingleBracket(), nil
	}
	return nil, fmt.Errorf("unknown marker syntax %q: supported values are %q and %q",
		syntax, SyntaxDouble, SyntaxSingle)
}

// Render renders the template text with the default engine.
func Render(text string, vars map[string]string, optionals map[string]bool) string {
	return NewDefaultEngine().RenderText(text, vars, optionals)
}
