package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CommandTransport invokes the engine as a subprocess: the request is
// written to its stdin as one JSON document and the response is read from
// its stdout. Stderr is collected for diagnostics only.
type CommandTransport struct {
	program string
	args    []string
	timeout time.Duration
}

var _ Transport = (*CommandTransport)(nil)

// Config holds engine transport settings.
type Config struct {
	// Command is the engine program and its arguments.
	Command []string

	// Timeout bounds a single engine call. Default: 15s.
	Timeout time.Duration
}

// DefaultConfig returns sensible engine defaults.
func DefaultConfig() Config {
	return Config{
		Command: []string{"pydojo-engine"},
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
//
//	PYDOJO_ENGINE_CMD      engine command line, whitespace-split
//	PYDOJO_ENGINE_TIMEOUT  per-call timeout, Go duration syntax
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if c := os.Getenv("PYDOJO_ENGINE_CMD"); c != "" {
		cfg.Command = strings.Fields(c)
	}
	if t := os.Getenv("PYDOJO_ENGINE_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if len(c.Command) == 0 || c.Command[0] == "" {
		return fmt.Errorf("engine command is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("engine timeout must be positive")
	}
	return nil
}

// NewCommandTransport creates a subprocess transport from config.
func NewCommandTransport(cfg Config) (*CommandTransport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CommandTransport{
		program: cfg.Command[0],
		args:    cfg.Command[1:],
		timeout: cfg.Timeout,
	}, nil
}

func (t *CommandTransport) Invoke(ctx context.Context, req Request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Reason: "encode request", Err: err}
	}

	cmd := exec.CommandContext(ctx, t.program, t.args...)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &Error{
				Reason: fmt.Sprintf("engine call exceeded %s", t.timeout),
				Err:    context.DeadlineExceeded,
			}
		}
		reason := "engine process failed"
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			reason = fmt.Sprintf("engine process failed: %s", firstLine(msg))
		}
		return nil, &Error{Reason: reason, Err: err}
	}

	return stdout.Bytes(), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
