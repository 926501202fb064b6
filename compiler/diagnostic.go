package compiler

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ---------------------------------------------------------------------------
// Diagnostic: human-readable rendering of source-anchored errors
// ---------------------------------------------------------------------------

var caretColor = color.New(color.FgRed, color.Bold)

// Diagnostic describes an error message anchored to a source position.
// When Excerpt is set, the rendering includes the source line with a
// caret run of Width columns under the offending span.
type Diagnostic struct {
	File    string // "" renders as <input>
	Pos     Position
	Message string
	Excerpt string
	Width   int
}

func (d Diagnostic) String() string {
	name := d.File
	if name == "" {
		name = "<input>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "./%s:%d:%d\n%s", name, d.Pos.Line, d.Pos.Column, d.Message)

	if d.Excerpt != "" {
		width := d.Width
		if width < 1 {
			width = 1
		}
		pad := d.Pos.Column - 1
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(&b, "\n%s\n%s%s",
			d.Excerpt,
			strings.Repeat(" ", pad),
			caretColor.Sprint(strings.Repeat("^", width)))
	}

	return b.String()
}
