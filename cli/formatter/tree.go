package formatter

import (
	"io"

	"github.com/ddddddO/gtree"
	"github.com/foldertemplate/ftg/cli/structure"
)

// RenderTree writes a tree preview of the structure items under rootName. Items
// excluded by the bindings and items with invalid names are not shown. Nil
// bindings show every item.
func RenderTree(w io.Writer, rootName string, s *structure.Structure,
	bindings *structure.Bindings) error {
	root := gtree.NewRoot(rootName)
	for _, item := range s.Items {
		if _, invalid := structure.InvalidSegment(item.FileName); invalid {
			continue
		}
		if bindings != nil && item.Optional != "" && bindings.Excludes(item.Optional) {
			continue
		}
		// Nodes with the same name are merged by gtree, so shared parents are
		// shown once.
		node := root
		for _, segment := range structure.SplitPath(item.FileName) {
			node = node.Add(segment)
		}
	}
	return gtree.OutputProgrammably(w, root)
}
