package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExit(t *testing.T) {
	cases := [][]string{
		{"exit"},
		{"exit", "0"},
		{"exit", "anything", "at", "all"},
	}

	for _, args := range cases {
		env := &testEnv{}
		assert.Equal(t, Terminate, Exit(env, args))
		assert.Empty(t, env.combined.String())
	}
}
