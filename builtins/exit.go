package builtins

// Exit ends the interactive session. Any arguments are ignored.
func Exit(env Env, args []string) Signal {
	return Terminate
}

var _ Func = Exit

func init() {
	mustAddBuiltin("exit", Exit)
}
