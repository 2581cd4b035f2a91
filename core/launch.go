package core

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync/atomic"
	"syscall"

	"github.com/simplesh/simplesh/builtins"
	"github.com/simplesh/simplesh/core/logger"
)

// childHandle is the single slot tracking the currently running child
// process. The launcher is the only writer; the signal relay only reads.
type childHandle struct {
	proc atomic.Pointer[os.Process]
}

func (h *childHandle) set(p *os.Process) { h.proc.Store(p) }
func (h *childHandle) clear()            { h.proc.Store(nil) }
func (h *childHandle) get() *os.Process  { return h.proc.Load() }

// Launcher starts external programs and waits for them to reach a
// terminal status.
type Launcher struct {
	child childHandle

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	events logger.Recorder

	// exit ends the whole shell process, replaceable for tests.
	exit func(code int)
}

func NewLauncher(events logger.Recorder) *Launcher {
	return &Launcher{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		events: events,
		exit:   os.Exit,
	}
}

// Run launches args[0], resolved against the shell's own PATH, passing
// the full argument vector through unchanged, and blocks until the child
// exits or is killed. The child's status never terminates the shell; a
// failure to create the process at all does.
func (l *Launcher) Run(args []string) builtins.Signal {
	execPath, err := exec.LookPath(args[0])
	if err != nil {
		fmt.Fprintf(l.stderr, "%s: %s: command not found\n", Name, args[0])
		l.events.Record(logger.Event{Kind: logger.KindUnknownCommand, Args: args, Error: err.Error()})
		return builtins.Continue
	}

	cmd := exec.Command(execPath)
	cmd.Args = args
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Start(); err != nil {
		// The program resolved but the process couldn't be created; the
		// OS is out of resources and the shell can't limp along.
		fmt.Fprintf(l.stderr, "%s: %v\n", Name, err)
		l.exit(1)
		return builtins.Terminate // only reached when exit is stubbed out
	}

	l.events.Record(logger.Event{Kind: logger.KindExec, Args: args})
	l.child.set(cmd.Process)

	// Wait resumes internally on non-terminal statuses, so a single call
	// observes only an exited or signaled child.
	waitErr := cmd.Wait()
	l.child.clear()

	l.events.Record(exitEvent(args, cmd.ProcessState, waitErr))
	return builtins.Continue
}

func exitEvent(args []string, state *os.ProcessState, waitErr error) logger.Event {
	ev := logger.Event{Kind: logger.KindExit, Args: args}

	if state == nil {
		ev.ExitStatus = -1
		if waitErr != nil {
			ev.Error = waitErr.Error()
		}
		return ev
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		ev.ExitStatus = -1
		ev.Signal = ws.Signal().String()
		return ev
	}

	ev.ExitStatus = state.ExitCode()
	return ev
}
