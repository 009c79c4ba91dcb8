package engine

import (
	"context"
	"sync"
)

// MockResult is a canned answer for the Mock engine.
type MockResult struct {
	Trace *TraceResult
	Grade *GradeResult
	Err   error
}

// Mock is a deterministic Engine for tests. It returns canned results in
// FIFO order and records every call.
type Mock struct {
	mu      sync.Mutex
	results []MockResult

	TraceCalls []string
	GradeCalls []Request
}

var _ Engine = (*Mock)(nil)

// NewMock creates a Mock with the given canned results.
func NewMock(results ...MockResult) *Mock {
	return &Mock{results: results}
}

// AddResult appends a canned result to the queue.
func (m *Mock) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

func (m *Mock) Trace(_ context.Context, source string) (*TraceResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TraceCalls = append(m.TraceCalls, source)

	r, ok := m.next()
	if !ok {
		return nil, &Error{Reason: "mock queue empty"}
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Trace, nil
}

func (m *Mock) Grade(_ context.Context, source, checker, entryPoint string) (*GradeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GradeCalls = append(m.GradeCalls, Request{
		Op:         OpGrade,
		Source:     source,
		Checker:    checker,
		EntryPoint: entryPoint,
	})

	r, ok := m.next()
	if !ok {
		return nil, &Error{Reason: "mock queue empty"}
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Grade, nil
}

func (m *Mock) next() (MockResult, bool) {
	if len(m.results) == 0 {
		return MockResult{}, false
	}
	r := m.results[0]
	m.results = m.results[1:]
	return r, true
}
