package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bytestashy/bytestashy/internal/common"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid input", &common.InvalidInputError{Message: "m"}, ExitInput},
		{"file operation", &common.FileOperationError{Path: "a.py", Err: errors.New("x")}, ExitInput},
		{"auth", &common.AuthError{Message: "m"}, ExitAuth},
		{"api", &common.APIError{Status: 500, Body: "b"}, ExitAPI},
		{"validation", &common.ValidationError{Body: "b"}, ExitAPI},
		{"not found", common.ErrNotFound, ExitAPI},
		{"wrapped not found", fmt.Errorf("get: %w", common.ErrNotFound), ExitAPI},
		{"credential", &common.CredentialError{Err: errors.New("x")}, ExitFailure},
		{"plain", errors.New("boom"), ExitFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
