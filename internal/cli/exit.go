package cli

import (
	"errors"

	"github.com/bytestashy/bytestashy/internal/common"
)

// Exit codes, one per error category, so scripts can distinguish failure
// classes without parsing messages.
const (
	ExitOK      = 0
	ExitFailure = 1 // transport, credential store, anything uncategorized
	ExitInput   = 2 // local precondition failed, nothing was sent
	ExitAuth    = 3 // bad credentials or rejected API key
	ExitAPI     = 4 // server answered with a non-success status
)

// ExitCode maps an error from a command onto its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		inputErr *common.InvalidInputError
		fileErr  *common.FileOperationError
		authErr  *common.AuthError
		apiErr   *common.APIError
		valErr   *common.ValidationError
	)
	switch {
	case errors.As(err, &inputErr), errors.As(err, &fileErr):
		return ExitInput
	case errors.As(err, &authErr):
		return ExitAuth
	case errors.As(err, &apiErr), errors.As(err, &valErr), errors.Is(err, common.ErrNotFound):
		return ExitAPI
	default:
		return ExitFailure
	}
}
