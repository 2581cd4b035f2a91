// Package builtins holds the commands the shell runs in-process instead
// of launching a child program.
package builtins

import (
	"fmt"
	"io"
	"sort"

	getopt "github.com/pborman/getopt/v2"
)

// Signal tells the read-eval loop what to do after a command finishes.
type Signal int

const (
	// Continue keeps the loop reading commands.
	Continue Signal = iota
	// Terminate ends the session.
	Terminate
)

// Env is the slice of shell state a builtin runs against.
type Env interface {
	Stdout() io.Writer
	Stderr() io.Writer
	Chdir(dir string) error
}

// Func runs one builtin. The argument vector always includes the command
// name as args[0].
type Func func(env Env, args []string) Signal

// allBuiltins holds every registered builtin keyed by command name. The
// table is filled during init and never changes afterwards.
var allBuiltins = make(map[string]Func)

// mustAddBuiltin registers a builtin by name, panicking on duplicates.
func mustAddBuiltin(name string, cmd Func) {
	if _, ok := allBuiltins[name]; ok {
		panic(fmt.Sprintf("duplicate builtin: %q", name))
	}
	allBuiltins[name] = cmd
}

// Find looks up a builtin by command name.
func Find(name string) (Func, bool) {
	cmd, ok := allBuiltins[name]
	return cmd, ok
}

// Names lists the registered builtin names in sorted order.
func Names() []string {
	var out []string
	for name := range allBuiltins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag
	// isn't added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was successful call the callback.
func (s *SimpleCommand) Run(env Env, args []string, callback func() Signal) Signal {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(args, nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(env.Stderr(), "error: %s\n\n", err)

		s.PrintHelp(env.Stdout())
		return Continue
	}

	if *s.ShowHelp {
		s.PrintHelp(env.Stdout())
		return Continue
	}

	return callback()
}
