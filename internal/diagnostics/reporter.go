/*
File   : lox/internal/diagnostics/reporter.go

Package diagnostics writes Lox's two error shapes (§6.3) to an error
sink. The lexer, parser, and resolver each already format their own
messages in full ("[line L] Error<where>: message") as they collect
them — this package's only job is printing each one plainly, and giving
the interpreter's runtime errors ("message\n[line L]") the same
treatment, the way go-mix's REPL calls a colored Fprintf per line rather
than building up a single report string.
*/
package diagnostics

import (
	"io"

	"github.com/fatih/color"
)

// Reporter writes formatted diagnostics to w in red. Static errors
// (scan/parse/resolve) and runtime errors use the same color; coloring is
// switched off by fatih/color's global NoColor setting (for example when
// stdout is not a terminal), not by inspecting w.
type Reporter struct {
	w   io.Writer
	red *color.Color
}

// New creates a Reporter writing to w (ordinarily os.Stderr).
func New(w io.Writer) *Reporter {
	return &Reporter{w: w, red: color.New(color.FgRed)}
}

// Static reports each lexer, parser, or resolver error in messages, one
// per line. messages are already in their final "[line L] Error<where>:
// message" form.
func (r *Reporter) Static(messages []string) {
	for _, m := range messages {
		r.red.Fprintln(r.w, m)
	}
}

// Runtime reports one runtime error. err.Error() is already in its
// final "message\n[line L]" form.
func (r *Reporter) Runtime(err error) {
	r.red.Fprintln(r.w, err.Error())
}
