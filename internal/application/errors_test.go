package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestStaleError(t *testing.T) {
	tests := []struct {
		name    string
		err     *StaleError
		wantMsg string
	}{
		{"missing", &StaleError{Path: "FYSO-REFERENCE.md", Missing: true}, "FYSO-REFERENCE.md does not exist"},
		{"mismatch", &StaleError{Path: "FYSO-REFERENCE.md"}, "FYSO-REFERENCE.md does not match its sources"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, tt.err.Error())
			}
			wrapped := fmt.Errorf("check: %w", tt.err)
			if !errors.Is(wrapped, ErrStale) {
				t.Error("expected wrapped error to match ErrStale")
			}
			if errors.Is(wrapped, ErrOutOfOrder) {
				t.Error("did not expect ErrOutOfOrder")
			}
		})
	}
}

func TestOrderError(t *testing.T) {
	err := &OrderError{Expected: 3, Got: []int{1, 3, 2}}

	if !errors.Is(err, ErrOutOfOrder) {
		t.Error("expected OrderError to match ErrOutOfOrder")
	}
	if err.Error() != "expected 3 numbered sections in increasing order, got [1 3 2]" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
