package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/simplesh/simplesh/builtins"
	"github.com/simplesh/simplesh/core/config"
	"github.com/simplesh/simplesh/core/logger"
)

// Name prefixes every diagnostic the shell prints about itself.
const Name = "simplesh"

var promptColor = color.New(color.FgGreen, color.Bold)

// LineReader is the prompt-and-read surface the loop needs; satisfied by
// readline.Instance and by scripted readers in tests.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Shell drives the read-eval loop over a line reader.
type Shell struct {
	config   *config.Configuration
	readline LineReader
	launcher *Launcher
	relay    *Relay
	events   logger.Recorder

	stdout io.Writer
	stderr io.Writer

	toClose listCloser
}

func NewShell(cfg *config.Configuration, events logger.Recorder) (*Shell, error) {
	rlConfig := &readline.Config{
		Stdin:       readline.NewCancelableStdin(os.Stdin),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		HistoryFile: cfg.HistoryPath(),
	}

	if err := rlConfig.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, err
	}

	launcher := NewLauncher(events)

	shell := &Shell{
		config:   cfg,
		readline: rl,
		launcher: launcher,
		relay:    NewRelay(launcher),
		events:   events,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	shell.toClose = append(shell.toClose, rl)

	return shell, nil
}

// Prompt returns the string shown before each read.
func (s *Shell) Prompt() string {
	prompt := s.config.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	return promptColor.Sprint(prompt)
}

// Run reads, tokenizes and dispatches commands until a builtin ends the
// session or input is exhausted. A closing newline is printed either way.
func (s *Shell) Run() error {
	s.relay.Start()

	for {
		s.readline.SetPrompt(s.Prompt())
		line, err := s.readline.Readline()

		switch {
		case errors.Is(err, io.EOF):
			// Input closed, quit.
			fmt.Fprintln(s.stdout)
			return nil

		case errors.Is(err, readline.ErrInterrupt):
			// Ctrl-C at the prompt; readline eats the signal so route it
			// into the relay by hand.
			s.relay.Fire()

		case err != nil:
			fmt.Fprintf(s.stderr, "%s: %v\n", Name, err)

		default:
			if s.Dispatch(Tokenize(line)) == builtins.Terminate {
				fmt.Fprintln(s.stdout)
				return nil
			}
		}
	}
}

// Dispatch routes one argument vector to a builtin or, failing that, the
// process launcher. An empty vector is a no-op.
func (s *Shell) Dispatch(args []string) builtins.Signal {
	if len(args) == 0 {
		return builtins.Continue
	}

	if builtin, ok := builtins.Find(args[0]); ok {
		s.events.Record(logger.Event{Kind: logger.KindBuiltin, Args: args})
		return builtin(s, args)
	}

	return s.launcher.Run(args)
}

// Stdout implements builtins.Env.
func (s *Shell) Stdout() io.Writer { return s.stdout }

// Stderr implements builtins.Env.
func (s *Shell) Stderr() io.Writer { return s.stderr }

// Chdir implements builtins.Env against the real working directory.
func (s *Shell) Chdir(dir string) error { return os.Chdir(dir) }

var _ builtins.Env = (*Shell)(nil)

func (s *Shell) Close() error {
	return s.toClose.Close()
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}
