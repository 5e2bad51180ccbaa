package logging

import (
	"context"
	"testing"
)

func TestWithWeddingID(t *testing.T) {
	ctx := WithWeddingID(context.Background(), "kim-lee")

	if got := GetWeddingID(ctx); got != "kim-lee" {
		t.Errorf("GetWeddingID() = %q, want %q", got, "kim-lee")
	}
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("GetRequestID() = %q, want %q", got, "req-1")
	}
}

func TestGetIDs_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetWeddingID(ctx); got != "" {
		t.Errorf("GetWeddingID() = %q, want empty string", got)
	}
	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID() = %q, want empty string", got)
	}
}
