package engine

import (
	"context"
	"fmt"
)

// Op identifies the engine operation being requested.
type Op string

const (
	OpTrace Op = "trace"
	OpGrade Op = "grade"
)

// Request is the JSON document handed to the execution engine. User and
// checker source travel as plain JSON fields, never spliced into a
// script template, so source text containing any quoting sequence is
// passed through intact.
type Request struct {
	Op         Op     `json:"op"`
	Source     string `json:"source"`
	Checker    string `json:"checker,omitempty"`
	EntryPoint string `json:"entry_point,omitempty"`
}

// TraceFrame is one per-executed-line snapshot of local bindings. Values
// are display strings rendered by the engine; the rendering is lossy.
type TraceFrame struct {
	Line   int               `json:"line"`
	Locals map[string]string `json:"locals"`
}

// TraceResult is the engine's answer to a trace request. A parse error in
// the user source is reported through AST and does not abort the request.
// A non-empty Err means the user's program raised; Output holds whatever
// was written to stdout before that point.
type TraceResult struct {
	AST    string       `json:"ast"`
	Frames []TraceFrame `json:"trace"`
	Output string       `json:"output"`
	Err    string       `json:"error"`
}

// Failed reports whether the user's program raised an exception.
func (r *TraceResult) Failed() bool { return r.Err != "" }

// GradeResult is the engine's answer to a grading request. A non-empty
// Err is a user-program or checker diagnostic; it never indicates an
// engine failure (those surface as *Error from the gateway).
type GradeResult struct {
	Passed bool   `json:"passed"`
	Err    string `json:"error"`
	Output string `json:"output"`
}

// Error is an engine-level failure: the transport broke, the engine
// produced a malformed response, or the call timed out. It is distinct
// from a user-program failure, which is part of a well-formed result.
// Engine errors leave all progress state untouched and are retryable by
// re-invoking the action.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("engine: %s", e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// Engine is the execution gateway contract. Both calls are synchronous
// from the caller's perspective; the context carries the per-call
// timeout.
type Engine interface {
	// Trace executes source, recording a per-line trace of local
	// bindings, the captured stdout, and a structural (AST) dump.
	Trace(ctx context.Context, source string) (*TraceResult, error)

	// Grade executes source, then runs checker code in an isolated
	// namespace and invokes entryPoint with the captured stdout. The
	// entry point's truthiness is the verdict.
	Grade(ctx context.Context, source string, checker string, entryPoint string) (*GradeResult, error)
}

// Transport delivers a request to the engine process and returns its raw
// response bytes. Implementations must honor ctx cancellation.
type Transport interface {
	Invoke(ctx context.Context, req Request) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req Request) ([]byte, error)

func (f TransportFunc) Invoke(ctx context.Context, req Request) ([]byte, error) {
	return f(ctx, req)
}
