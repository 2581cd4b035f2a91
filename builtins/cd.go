package builtins

import (
	"fmt"
)

// Cd changes the shell's working directory. Without a target it leaves
// the working directory alone; a bad target is reported but never fatal.
func Cd(env Env, args []string) Signal {
	switch len(args) {
	case 1:
		// No target, nothing to do.
	case 2:
		if err := env.Chdir(args[1]); err != nil {
			fmt.Fprintf(env.Stderr(), "%s: %v\n", args[0], err)
		}
	default:
		fmt.Fprintf(env.Stderr(), "%s: too many arguments\n", args[0])
	}

	return Continue
}

var _ Func = Cd

func init() {
	mustAddBuiltin("cd", Cd)
}
