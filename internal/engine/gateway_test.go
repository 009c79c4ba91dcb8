package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGateway_Trace_Ok(t *testing.T) {
	transport := TransportFunc(func(_ context.Context, req Request) ([]byte, error) {
		if req.Op != OpTrace {
			t.Errorf("op = %q, want trace", req.Op)
		}
		if req.Source != "x = 1\nprint(x)\n" {
			t.Errorf("source not passed through: %q", req.Source)
		}
		return []byte(`{
			"ast": "Module(body=[...])",
			"trace": [
				{"line": 1, "locals": {}},
				{"line": 2, "locals": {"x": "1"}}
			],
			"output": "1\n",
			"error": null
		}`), nil
	})

	g := NewGateway(transport)
	res, err := g.Trace(context.Background(), "x = 1\nprint(x)\n")
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if res.Failed() {
		t.Errorf("unexpected failure: %q", res.Err)
	}
	if len(res.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(res.Frames))
	}
	if res.Frames[1].Line != 2 || res.Frames[1].Locals["x"] != "1" {
		t.Errorf("frame 1 = %+v", res.Frames[1])
	}
	if res.Output != "1\n" {
		t.Errorf("output = %q", res.Output)
	}
	if res.AST == "" {
		t.Error("AST dump missing")
	}
}

func TestGateway_Trace_UserError_KeepsOutput(t *testing.T) {
	transport := TransportFunc(func(_ context.Context, _ Request) ([]byte, error) {
		return []byte(`{
			"ast": "Module(body=[...])",
			"trace": [{"line": 1, "locals": {}}],
			"output": "before\n",
			"error": "ZeroDivisionError: division by zero"
		}`), nil
	})

	g := NewGateway(transport)
	res, err := g.Trace(context.Background(), "print('before')\n1/0\n")
	if err != nil {
		t.Fatalf("user-program failure must not be an engine error: %v", err)
	}
	if !res.Failed() {
		t.Fatal("expected failed result")
	}
	if res.Output != "before\n" {
		t.Errorf("output collected before the exception was lost: %q", res.Output)
	}
}

func TestGateway_Grade_Verdicts(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		passed   bool
		errMatch string
	}{
		{"pass", `{"passed": true, "error": null, "output": "42\n"}`, true, ""},
		{"fail", `{"passed": false, "error": null, "output": "41\n"}`, false, ""},
		{
			"user exception",
			`{"passed": false, "error": "NameError: name 'pritn' is not defined", "output": ""}`,
			false, "NameError",
		},
		{
			"missing entry point",
			`{"passed": false, "error": "no checker entry point 'check'", "output": "ok\n"}`,
			false, "no checker entry point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := TransportFunc(func(_ context.Context, req Request) ([]byte, error) {
				if req.Checker == "" || req.EntryPoint == "" {
					t.Error("grade request must carry checker and entry point")
				}
				return []byte(tt.raw), nil
			})
			g := NewGateway(transport)
			res, err := g.Grade(context.Background(), "src", "def check(o): return True", "check")
			if err != nil {
				t.Fatalf("Grade: %v", err)
			}
			if res.Passed != tt.passed {
				t.Errorf("passed = %v, want %v", res.Passed, tt.passed)
			}
			if tt.errMatch != "" && !strings.Contains(res.Err, tt.errMatch) {
				t.Errorf("error = %q, want substring %q", res.Err, tt.errMatch)
			}
		})
	}
}

func TestGateway_TransportFailureIsEngineError(t *testing.T) {
	boom := errors.New("pipe closed")
	transport := TransportFunc(func(_ context.Context, _ Request) ([]byte, error) {
		return nil, boom
	})

	g := NewGateway(transport)
	_, err := g.Trace(context.Background(), "x = 1")
	var engErr *Error
	if !errors.As(err, &engErr) {
		t.Fatalf("err = %v, want *engine.Error", err)
	}
	if !errors.Is(err, boom) {
		t.Error("engine error must wrap the transport cause")
	}
}

func TestGateway_MalformedResponseIsEngineError(t *testing.T) {
	cases := map[string]string{
		"not json":      `garbage`,
		"wrong shape":   `{"unexpected": true}`,
		"bad frame":     `{"ast": "", "trace": [{"line": "one", "locals": {}}], "output": ""}`,
		"missing keys":  `{"trace": [], "output": ""}`,
		"non-string locals": `{"ast": "", "trace": [{"line": 1, "locals": {"x": 5}}], "output": ""}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			transport := TransportFunc(func(_ context.Context, _ Request) ([]byte, error) {
				return []byte(raw), nil
			})
			g := NewGateway(transport)
			_, err := g.Trace(context.Background(), "x")
			var engErr *Error
			if !errors.As(err, &engErr) {
				t.Fatalf("err = %v, want *engine.Error", err)
			}
		})
	}
}

func TestGateway_EmptyResponseIsEngineError(t *testing.T) {
	transport := TransportFunc(func(_ context.Context, _ Request) ([]byte, error) {
		return nil, nil
	})
	g := NewGateway(transport)
	_, err := g.Grade(context.Background(), "s", "c", "check")
	var engErr *Error
	if !errors.As(err, &engErr) {
		t.Fatalf("err = %v, want *engine.Error", err)
	}
}

func TestGateway_Timeout(t *testing.T) {
	transport := TransportFunc(func(ctx context.Context, _ Request) ([]byte, error) {
		return nil, context.DeadlineExceeded
	})
	g := NewGateway(transport)
	_, err := g.Trace(context.Background(), "while True: pass")
	var engErr *Error
	if !errors.As(err, &engErr) {
		t.Fatalf("err = %v, want *engine.Error", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("timeout cause not preserved")
	}
}
