package core

import (
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

// Relay is the process-wide interrupt handler: it prints a termination
// notice, forwards the interrupt to the tracked child if there is one,
// and ends the shell. Interrupts are observed nowhere else.
type Relay struct {
	child *childHandle
	out   io.Writer
	exit  func(code int)
}

func NewRelay(launcher *Launcher) *Relay {
	return &Relay{
		child: &launcher.child,
		out:   os.Stdout,
		exit:  os.Exit,
	}
}

// Start installs the interrupt handler for the rest of the process's
// lifetime.
func (r *Relay) Start() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)

	go func() {
		<-sigs
		r.Fire()
	}()
}

// Fire runs the relay once: notice, best-effort forward, terminate. The
// child is not waited on; the shell exits immediately after signaling.
func (r *Relay) Fire() {
	color.New(color.Bold).Fprintf(r.out, "\n%s terminated\n", Name)

	if proc := r.child.get(); proc != nil {
		_ = proc.Signal(os.Interrupt)
	}

	r.exit(0)
}
