package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var _ io.Writer = (*Printer)(nil)

// Printer writes user-visible output, which goes to STDERR by default.
type Printer struct {
	out   io.Writer
	color bool
}

func NewPrinter() *Printer {
	p := &Printer{}
	p.Redirect(os.Stderr)
	return p
}

// Redirect changes where output is written.
// Colored output is only used when writer is a terminal.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.color = false
	if f, ok := writer.(*os.File); ok {
		p.color = term.IsTerminal(int(f.Fd()))
	}
}

func (p *Printer) Write(data []byte) (int, error) {
	return p.out.Write(data)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Failuref prints a line highlighted in red when the output supports it.
func (p *Printer) Failuref(format string, args ...any) {
	c := color.New(color.FgRed, color.Bold)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, _ = c.Fprintf(p.out, format+"\n", args...)
}
