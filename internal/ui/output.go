package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output writes status lines and message blocks for the operator.
type Output struct {
	w io.Writer
}

// NewOutput creates an Output writing to w, or stdout when w is nil.
func NewOutput(w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{w: w}
}

// Writer returns the underlying writer, for streaming subprocess output.
func (o *Output) Writer() io.Writer {
	return o.w
}

// Println writes a plain line.
func (o *Output) Println(a ...interface{}) {
	fmt.Fprintln(o.w, a...)
}

// Printf writes formatted text as is.
func (o *Output) Printf(format string, a ...interface{}) {
	fmt.Fprintf(o.w, format, a...)
}

// Check writes "<label> OK" or "<label> ⚠ Error" and returns ok, so a
// check can be reported and kept in one expression.
func (o *Output) Check(label string, ok bool) bool {
	status := SuccessStyle().Render("OK")
	if !ok {
		status = ErrorStyle().Render(SymbolWarning + " Error")
	}
	fmt.Fprintf(o.w, "%s %s\n", label, status)
	return ok
}

// Command echoes a command the tool is about to run on the operator's behalf.
func (o *Output) Command(cmd string) {
	fmt.Fprintln(o.w, MutedStyle().Render(SymbolCommand+" "+cmd))
}

// Passthrough writes output captured from another program, indented and muted.
func (o *Output) Passthrough(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(o.w, MutedStyle().Render("  "+line))
	}
}

// ErrorBlock reports a failure.
func (o *Output) ErrorBlock(msg string) {
	o.block(ErrorStyle().Bold(true), SymbolFail, msg)
}

// NoteBlock reports something the operator chose, like an abort.
func (o *Output) NoteBlock(msg string) {
	o.block(WarningStyle(), SymbolNote, msg)
}

// InfoBlock reports progress worth calling out.
func (o *Output) InfoBlock(msg string) {
	o.block(InfoStyle(), SymbolInfo, msg)
}

// SuccessBlock reports that the whole operation worked.
func (o *Output) SuccessBlock(msg string) {
	o.block(SuccessStyle().Bold(true), SymbolSuccess, msg)
}

func (o *Output) block(style lipgloss.Style, symbol, msg string) {
	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w, style.Render(symbol+" "+msg))
	fmt.Fprintln(o.w)
}
