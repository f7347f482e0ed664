package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunSteps_KeepsStepOrder(t *testing.T) {
	steps := []analysisStep{
		{"first", func() ([]string, error) { return []string{"a"}, nil }},
		{"second", func() ([]string, error) { return []string{"b", "c"}, nil }},
	}
	var buf bytes.Buffer
	written, err := runSteps(context.Background(), steps, newProgress(&buf, len(steps)))
	if err != nil {
		t.Fatalf("runSteps: %v", err)
	}
	if len(written) != 2 || written[0][0] != "a" || len(written[1]) != 2 || written[1][1] != "c" {
		t.Errorf("unexpected written paths %v", written)
	}
	if !strings.Contains(buf.String(), "100.00%") {
		t.Errorf("progress never completed: %q", buf.String())
	}
}

func TestRunSteps_WrapsFailure(t *testing.T) {
	boom := errors.New("boom")
	steps := []analysisStep{
		{"ok", func() ([]string, error) { return []string{"a"}, nil }},
		{"broken", func() ([]string, error) { return nil, boom }},
	}
	_, err := runSteps(context.Background(), steps, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "broken: ") {
		t.Errorf("error should name the step, got %q", err.Error())
	}
}

func TestRunSteps_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	steps := []analysisStep{{"never", func() ([]string, error) { ran = true; return nil, nil }}}
	if _, err := runSteps(ctx, steps, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if ran {
		t.Error("step ran after cancellation")
	}
}
