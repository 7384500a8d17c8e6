// Package engines provides template engine implementations.
package engines

// NewDoubleBracket creates the default engine for "[[name]]" markers.
func NewDoubleBracket() MarkerEngine {
	return newMarkerEngine("[[", "]]")
}

// NewSingleBracket creates an engine for the legacy "[name]" markers.
func NewSingleBracket() MarkerEngine {
	return newMarkerEngine("[", "]")
}
