package tutor

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForAdvice(t *testing.T, svc *Service) (*Advice, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if advice, ok := svc.ConsumeAdvice(); ok {
			return advice, true
		}
		if svc.LastError() != nil {
			return nil, false
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for advice")
	return nil, false
}

func TestServiceGeneratesAdvice(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{
			"diagnosis": "The loop never runs because range(0) is empty.",
			"suggestion": "Check the argument you pass to range.",
			"concept": "for loops"
		}`),
	})
	svc := NewService(mock, ServiceConfig{MaxTokens: 512, Temperature: 0.4})

	svc.RequestAdvice(context.Background(), AdviceInput{
		LessonTitle: "For Loops",
		Goal:        "Print the numbers 1 through 5",
		Source:      "for i in range(0):\n    print(i)\n",
		Diagnostic:  "expected output missing",
	})

	advice, ok := waitForAdvice(t, svc)
	require.True(t, ok)
	assert.Equal(t, "for loops", advice.Concept)
	assert.Contains(t, advice.Diagnosis, "range(0)")

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, AdviceSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "for i in range(0):")
	assert.Contains(t, req.Messages[0].Content, "expected output missing")
}

func TestServiceReportsProviderFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	svc := NewService(mock, ServiceConfig{MaxTokens: 512})

	svc.RequestAdvice(context.Background(), AdviceInput{LessonTitle: "Variables"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.LastError() != nil {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Error(t, svc.LastError())

	_, ok := svc.ConsumeAdvice()
	assert.False(t, ok)
	assert.NoError(t, svc.LastError(), "consume clears the error slot")
}

func TestServiceConsumeEmpty(t *testing.T) {
	svc := NewService(NewMockProvider(), ServiceConfig{})
	advice, ok := svc.ConsumeAdvice()
	assert.False(t, ok)
	assert.Nil(t, advice)
}
