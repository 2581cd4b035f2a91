package core

import (
	"bytes"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplesh/simplesh/core/logger"
)

func newTestRelay(l *Launcher) (*Relay, *bytes.Buffer, *int) {
	out := &bytes.Buffer{}
	exitCode := -1
	r := NewRelay(l)
	r.out = out
	r.exit = func(code int) { exitCode = code }
	return r, out, &exitCode
}

func TestRelayWithoutChild(t *testing.T) {
	color.NoColor = true

	l, _ := newTestLauncher(logger.Nop{})
	r, out, exitCode := newTestRelay(l)

	r.Fire()

	assert.Equal(t, "\nsimplesh terminated\n", out.String())
	assert.Equal(t, 0, *exitCode)
}

func TestRelayForwardsInterrupt(t *testing.T) {
	color.NoColor = true

	l, _ := newTestLauncher(logger.Nop{})
	r, _, exitCode := newTestRelay(l)

	// Stand in for a running external command.
	child := exec.Command("sleep", "30")
	require.NoError(t, child.Start())
	l.child.set(child.Process)

	r.Fire()
	assert.Equal(t, 0, *exitCode)

	done := make(chan error, 1)
	go func() { done <- child.Wait() }()

	select {
	case err := <-done:
		exitErr, ok := err.(*exec.ExitError)
		require.True(t, ok, "child should die from the forwarded signal")
		ws, ok := exitErr.Sys().(syscall.WaitStatus)
		require.True(t, ok)
		assert.True(t, ws.Signaled())
		assert.Equal(t, syscall.SIGINT, ws.Signal())
	case <-time.After(5 * time.Second):
		_ = child.Process.Kill()
		t.Fatal("child never observed the forwarded interrupt")
	}

	l.child.clear()
}
