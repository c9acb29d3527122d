package showcase

import (
	"fmt"
	"io"
	"strings"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

// Printer writes formatted output and retains the first write error, after which nothing else is written.
type Printer struct {
	w   io.Writer
	err error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, err := fmt.Fprintf(p.w, format, args...)
	if err != nil {
		p.err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not write output")
	}
}

func (p *Printer) Println(args ...any) {
	p.Printf("%v", fmt.Sprintln(args...))
}

// Row prints values separated by a space, each padded to width, starting a new line every perLine values.
// A width of 0 means no padding and perLine of 0 means every value is on the same line.
func (p *Printer) Row(label string, values any, width, perLine int) {
	p.Printf("%v", label)
	items := toStrings(values)
	for i := range items {
		p.Printf("%*v", width, items[i])
		if perLine > 0 && (i+1)%perLine == 0 {
			p.Println()
		} else {
			p.Printf(" ")
		}
	}
	if len(items) == 0 || perLine == 0 || len(items)%perLine != 0 {
		p.Println()
	}
}

// Err returns the first error which happened while writing.
func (p *Printer) Err() error {
	return p.err
}

func toStrings(values any) []string {
	line := strings.Trim(fmt.Sprint(values), "[]")
	if line == "" {
		return nil
	}
	return strings.Fields(line)
}
