// Package logger is a standardized event logging framework for the shell.
//
// Each interactive session appends one JSON object per line to its log,
// one object per command-level event.
package logger

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Kind names the type of a session event.
type Kind string

const (
	// KindBuiltin records a builtin handled in-process.
	KindBuiltin Kind = "builtin"
	// KindExec records an external program being started.
	KindExec Kind = "exec"
	// KindExit records an external program reaching a terminal status.
	KindExit Kind = "exit"
	// KindUnknownCommand records a command that resolved to nothing.
	KindUnknownCommand Kind = "unknown_command"
)

// Event is a single entry in the session log.
type Event struct {
	Time time.Time `json:"time"`
	Kind Kind      `json:"kind"`
	// Args holds the full argument vector, including the command name.
	Args []string `json:"args,omitempty"`
	// ExitStatus is the child's exit code, or -1 if it was signaled.
	ExitStatus int    `json:"exit_status,omitempty"`
	Signal     string `json:"signal,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Recorder accepts session events.
type Recorder interface {
	Record(ev Event) error
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) Record(Event) error { return nil }

// JSONLines records events as newline delimited JSON.
type JSONLines struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
}

func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

func (l *JSONLines) Record(ev Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ev.Time.IsZero() {
		ev.Time = l.now()
	}
	return l.enc.Encode(ev)
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(ev *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			return err
		}

		handler(&event)
	}
	return nil
}
