package formatter

import (
	"fmt"
	"strings"
)

// TableDialect defines a set of supported table dialect.
type TableDialect int

const (
	DefaultTableDialect TableDialect = iota
	PlainTableDialect
	MarkdownTableDialect
)

const (
	defaultTableDialectStr  = "default"
	plainTableDialectStr    = "plain"
	markdownTableDialectStr = "markdown"
)

// TableDialects returns string representations of the supported dialects.
func TableDialects() []string {
	return []string{defaultTableDialectStr, plainTableDialectStr, markdownTableDialectStr}
}

// ParseTableDialect parses a table dialect string representation. It supports
// mixed case letters.
func ParseTableDialect(str string) (TableDialect, error) {
	switch strings.ToLower(str) {
	case defaultTableDialectStr:
		return DefaultTableDialect, nil
	case plainTableDialectStr:
		return PlainTableDialect, nil
	case markdownTableDialectStr:
		return MarkdownTableDialect, nil
	}
	return DefaultTableDialect, fmt.Errorf("unknown table format %q, supported: %s", str,
		strings.Join(TableDialects(), ", "))
}

// String returns a string representation of the table dialect.
func (d TableDialect) String() string {
	switch d {
	case DefaultTableDialect:
		return defaultTableDialectStr
	case PlainTableDialect:
		return plainTableDialectStr
	case MarkdownTableDialect:
		return markdownTableDialectStr
	default:
		panic("Unknown table dialect")
	}
}
