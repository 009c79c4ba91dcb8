package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Gateway implements Engine over a Transport. Every failure of the
// transport or of response parsing is caught here and converted to
// *Error; nothing below the gateway leaks to callers.
type Gateway struct {
	transport Transport
}

var _ Engine = (*Gateway)(nil)

// NewGateway creates a Gateway over the given transport.
func NewGateway(t Transport) *Gateway {
	return &Gateway{transport: t}
}

func (g *Gateway) Trace(ctx context.Context, source string) (*TraceResult, error) {
	raw, err := g.invoke(ctx, Request{Op: OpTrace, Source: source})
	if err != nil {
		return nil, err
	}

	if err := validateResponse("trace-response", traceResponseSchema, raw); err != nil {
		return nil, &Error{Reason: "malformed trace response", Err: err}
	}

	var res TraceResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &Error{Reason: "decode trace response", Err: err}
	}
	return &res, nil
}

func (g *Gateway) Grade(ctx context.Context, source, checker, entryPoint string) (*GradeResult, error) {
	req := Request{
		Op:         OpGrade,
		Source:     source,
		Checker:    checker,
		EntryPoint: entryPoint,
	}
	raw, err := g.invoke(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := validateResponse("grade-response", gradeResponseSchema, raw); err != nil {
		return nil, &Error{Reason: "malformed grade response", Err: err}
	}

	var res GradeResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &Error{Reason: "decode grade response", Err: err}
	}
	return &res, nil
}

func (g *Gateway) invoke(ctx context.Context, req Request) ([]byte, error) {
	raw, err := g.transport.Invoke(ctx, req)
	if err != nil {
		// Classify the failure; a timeout is still an engine error but
		// carries a clearer reason for the inline message.
		var engErr *Error
		if errors.As(err, &engErr) {
			return nil, engErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Reason: fmt.Sprintf("%s request timed out", req.Op), Err: err}
		}
		return nil, &Error{Reason: fmt.Sprintf("%s request failed", req.Op), Err: err}
	}
	if len(raw) == 0 {
		return nil, &Error{Reason: "empty engine response"}
	}
	return raw, nil
}
