package services_test

import (
	"errors"
	"strings"
	"testing"

	"vccd/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrValidation, "compiler", "encode", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"compiler", "encode", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestExitCodeAndHint(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantHint string
	}{
		{name: "nil", err: nil, wantCode: 0, wantHint: ""},
		{name: "validation", err: services.Wrap(services.ErrValidation, "compiler", "parse", "bad", nil), wantCode: 2, wantHint: "fix the caption source"},
		{name: "not found", err: services.Wrap(services.ErrNotFound, "compiler", "read", "", nil), wantCode: 2, wantHint: "source path"},
		{name: "conflict", err: services.Wrap(services.ErrConflict, "compiler", "write", "", nil), wantCode: 1, wantHint: "another compile"},
		{name: "plain", err: errors.New("io"), wantCode: 1, wantHint: "check logs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.ExitCode(tt.err); got != tt.wantCode {
				t.Fatalf("ExitCode = %d, want %d", got, tt.wantCode)
			}
			if got := services.Hint(tt.err); !strings.Contains(got, tt.wantHint) {
				t.Fatalf("Hint = %q, want it to contain %q", got, tt.wantHint)
			}
		})
	}
}
