package cli

import (
	"errors"
	"fmt"

	"github.com/joanaapp/joana-cli/internal/client/api"
	"github.com/joanaapp/joana-cli/internal/common"
)

// opError turns a service error into the message shown at the prompt,
// preferring the server-supplied text and falling back to a generic one
// per operation.
func opError(op string, err error) error {
	if he, ok := api.AsHTTPError(err); ok && he.Message != "" {
		return fmt.Errorf("%s: %s", op, he.Message)
	}
	if errors.Is(err, common.ErrUnavailable) {
		return fmt.Errorf("%s: server unreachable, try again: %w", op, err)
	}
	if errors.Is(err, common.ErrUnauthorized) {
		return fmt.Errorf("%s: session is no longer valid: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
