package builtins

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCdChangesDirectory(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	target, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	env := &testEnv{}
	sig := Cd(env, []string{"cd", target})

	assert.Equal(t, Continue, sig)
	assert.Empty(t, env.combined.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, target, wd)
}

func TestCdNoTarget(t *testing.T) {
	env := &testEnv{
		chdir: func(dir string) error {
			t.Fatal("chdir called without a target", dir)
			return nil
		},
	}

	sig := Cd(env, []string{"cd"})
	assert.Equal(t, Continue, sig)
	assert.Empty(t, env.combined.String())
}

func TestCdBadPath(t *testing.T) {
	env := &testEnv{
		chdir: func(dir string) error {
			return errors.New("no such file or directory")
		},
	}

	sig := Cd(env, []string{"cd", "/does/not/exist"})
	assert.Equal(t, Continue, sig)
	assert.Contains(t, env.combined.String(), "cd: no such file or directory")
}

func TestCdTooManyArguments(t *testing.T) {
	env := &testEnv{
		chdir: func(dir string) error {
			t.Fatal("chdir called with too many arguments", dir)
			return nil
		},
	}

	sig := Cd(env, []string{"cd", "a", "b"})
	assert.Equal(t, Continue, sig)
	assert.Contains(t, env.combined.String(), "cd: too many arguments")
}
