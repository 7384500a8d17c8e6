package formatter

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// StyleWithoutGraphics defines a style without graphics like below:
// NAME  ITEMS  STATUS
// App   3      ok
// Lib   5      ok
var StyleWithoutGraphics = table.BoxStyle{
	BottomLeft:       " ",
	BottomRight:      " ",
	BottomSeparator:  " ",
	EmptySeparator:   text.RepeatAndTrim(" ", text.RuneWidthWithoutEscSequences(" ")),
	Left:             " ",
	LeftSeparator:    " ",
	MiddleHorizontal: " ",
	MiddleSeparator:  " ",
	MiddleVertical:   " ",
	PaddingLeft:      " ",
	PaddingRight:     " ",
	PageSeparator:    "\n",
	Right:            " ",
	RightSeparator:   " ",
	TopLeft:          " ",
	TopRight:         " ",
	TopSeparator:     " ",
	UnfinishedRow:    "  ",
}

// newTableWriter creates and configures new table writer.
func newTableWriter(header table.Row, opts Opts) table.Writer {
	t := table.NewWriter()
	if opts.TableDialect == PlainTableDialect {
		t.SetStyle(table.Style{
			Box:    StyleWithoutGraphics,
			Format: table.FormatOptions{Header: text.FormatUpper},
		})
	}
	t.AppendHeader(header)
	return t
}

// renderTable renders the table in the configured dialect.
func renderTable(t table.Writer, opts Opts) string {
	if opts.TableDialect == MarkdownTableDialect {
		return t.RenderMarkdown() + "\n"
	}
	return t.Render() + "\n"
}

// colorize applies the color attributes to s unless colors are disabled.
func colorize(s string, opts Opts, attrs ...color.Attribute) string {
	if opts.NoColor || opts.TableDialect == MarkdownTableDialect {
		return s
	}
	return color.New(attrs...).Sprint(s)
}
