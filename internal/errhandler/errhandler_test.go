package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
)

func TestHandleError_ExitCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, 0},
		{"survey interrupt", fmt.Errorf("prompt: %w", terminal.InterruptErr), 0},
		{"huh abort", huh.ErrUserAborted, 0},
		{"failure", errors.New("failed to load transactions"), 1},
	}
	for _, tc := range cases {
		if got := HandleError(tc.err); got != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.code, got)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct{ in, out string }{
		{"", ""},
		{"failed", "Failed"},
		{"élan", "Élan"},
		{"Already", "Already"},
	}
	for _, tc := range cases {
		if got := Capitalize(tc.in); got != tc.out {
			t.Fatalf("%q expected %q, got %q", tc.in, tc.out, got)
		}
	}
}
