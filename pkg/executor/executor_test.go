package executor_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"webhookclient/pkg/executor"
)

func TestExpandPath(t *testing.T) {
	got := executor.ExpandPath("/api/v1/app/{app_id}", map[string]string{"app_id": "app_123"})
	if got != "/api/v1/app/app_123" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandPath_NoParams(t *testing.T) {
	got := executor.ExpandPath("/api/v1/app", nil)
	if got != "/api/v1/app" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandPath_UnknownPlaceholderKept(t *testing.T) {
	got := executor.ExpandPath("/api/v1/app/{app_id}", map[string]string{"other": "x"})
	if got != "/api/v1/app/{app_id}" {
		t.Fatalf("got %q", got)
	}
}

func TestStatusError_As(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &executor.StatusError{
		Method: "POST", Path: "/api/v1/app", Code: 500, ResponseBody: []byte("boom"),
	})

	var se *executor.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if se.Code != 500 {
		t.Fatalf("code=%d", se.Code)
	}
	if !strings.Contains(se.Error(), "POST /api/v1/app") {
		t.Fatalf("message=%q", se.Error())
	}
}
