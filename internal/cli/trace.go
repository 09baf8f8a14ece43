package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/transit/pkg/ports"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Tracer steps a machine and prints one line per transition.
type Tracer struct {
	out *termenv.Output
}

// NewTracer creates a tracer writing to w. Colors are used only when color is
// true and w is a terminal.
func NewTracer(w io.Writer, color bool) *Tracer {
	profile := termenv.Ascii
	if color && isTerminal(w) {
		profile = termenv.EnvColorProfile()
	}
	return &Tracer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Trace performs up to steps transitions. It stops early when ctx is done
// between two steps, and returns the first step error.
func (t *Tracer) Trace(ctx context.Context, m ports.Stepper, steps int) error {
	fmt.Fprintf(t.out, "%s %s\n",
		t.out.String("states:").Bold(),
		fmt.Sprint(m.States()))
	fmt.Fprintf(t.out, "%4d  %s\n", 0, t.out.String(m.State()).Foreground(t.out.Color("12")))

	for i := 1; i <= steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		from := m.State()
		if err := m.Step(ctx); err != nil {
			fmt.Fprintf(t.out, "%4d  %s  %s\n", i, from,
				t.out.String(err.Error()).Foreground(t.out.Color("9")))
			return err
		}
		fmt.Fprintf(t.out, "%4d  %s -> %s\n", i, from,
			t.out.String(m.State()).Foreground(t.out.Color("10")))
	}
	return nil
}
