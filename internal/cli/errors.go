package cli

import (
	"errors"

	"github.com/zamm-dev/paintboard/internal/models"
)

// ExitCode returns appropriate exit code based on error type
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var boardErr *models.BoardError
	if errors.As(err, &boardErr) {
		switch boardErr.Type {
		case models.ErrTypeValidation:
			return 1 // User error
		default:
			return 2
		}
	}
	return 2 // Default to system error
}
