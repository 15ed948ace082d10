package commands

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/cours-de-latin/paradigma"
)

// ANSI colours used for terminal output.
const (
	colorReset   = "\033[0m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorGray    = "\033[90m"
	colorCyan    = "\033[96m"
)

type style struct {
	color bool
}

// styleFor enables colour when w is a terminal.
func styleFor(w io.Writer) style {
	f, ok := w.(*os.File)
	if !ok {
		return style{}
	}
	return style{color: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (s style) paint(text, color string) string {
	if !s.color {
		return text
	}
	return color + text + colorReset
}

// entryLine renders one analysis as
//
//	amō	present active indicative, 1st singular of amō, amāre, amāvī, amātum [VERB]
func (s style) entryLine(e paradigma.Entry) string {
	var b strings.Builder
	b.WriteString(s.paint(paradigma.RenderSurface(e), colorCyan))
	b.WriteByte('\t')
	if _, ok := e.Lemma.(*paradigma.Adjective); ok {
		b.WriteString(s.paint(e.Inflection.String(), colorMagenta))
		b.WriteByte(' ')
		b.WriteString(s.paint(e.Gender.String(), colorYellow))
	} else {
		b.WriteString(s.paint(paradigma.Describe(e), colorMagenta))
	}
	b.WriteString(" of ")
	b.WriteString(s.paint(paradigma.RenderCanonical(e), colorGray))
	b.WriteString(" [" + e.POS().String() + "]")
	return b.String()
}
