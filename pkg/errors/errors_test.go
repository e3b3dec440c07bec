package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("socket closed")
	err := Wrap(CodeTransport, cause, "request failed")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if err.Code() != CodeTransport {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsFindsTypedErrorThroughWrapping(t *testing.T) {
	inner := New(CodeNotFound, "checklist not found")
	wrapped := fmt.Errorf("fetch checklist: %w", inner)

	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestCodeFromStatus(t *testing.T) {
	cases := map[int]Code{
		http.StatusBadRequest:          CodeValidation,
		http.StatusUnauthorized:        CodeUnauthorized,
		http.StatusForbidden:           CodeForbidden,
		http.StatusNotFound:            CodeNotFound,
		http.StatusConflict:            CodeConflict,
		http.StatusTooManyRequests:     CodeRateLimit,
		http.StatusBadGateway:          CodeDependency,
		http.StatusServiceUnavailable:  CodeDependency,
		http.StatusInternalServerError: CodeInternal,
		http.StatusTeapot:              CodeInternal,
	}
	for status, want := range cases {
		if got := CodeFromStatus(status); got != want {
			t.Fatalf("status %d: expected %s got %s", status, want, got)
		}
	}
}

func TestRetryableMetadata(t *testing.T) {
	if MetadataFor(CodeTransport).Retryable != true {
		t.Fatal("transport errors should be retryable")
	}
	if MetadataFor(CodeValidation).Retryable {
		t.Fatal("validation errors should not be retryable")
	}
	if MetadataFor(Code("BOGUS")).Retryable {
		t.Fatal("unknown codes should fall back to internal metadata")
	}
}

func TestDisplayMessagePrefersTypedMessage(t *testing.T) {
	err := fmt.Errorf("login: %w", New(CodeUnauthorized, "invalid credentials"))
	if got := DisplayMessage(err); got != "invalid credentials" {
		t.Fatalf("unexpected display message %q", got)
	}
	if got := DisplayMessage(stdErrors.New("plain failure")); got != "plain failure" {
		t.Fatalf("unexpected fallback message %q", got)
	}
}
