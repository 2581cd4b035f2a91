package builtins

import (
	"fmt"
	"strings"
)

// Help prints the list of commands the shell handles itself.
func Help(env Env, args []string) Signal {
	fmt.Fprintf(env.Stdout(), "Commands available: %s\n", strings.Join(Names(), ", "))
	return Continue
}

var _ Func = Help

func init() {
	mustAddBuiltin("help", Help)
}
