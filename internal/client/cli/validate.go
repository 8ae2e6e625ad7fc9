package cli

import (
	"fmt"
	"strings"

	"github.com/joanaapp/joana-cli/internal/common"
)

// Client-side validation, run before any network call. Violations wrap
// common.ErrValidation and never reach the HTTP pipeline.

func validateLogin(email string, password string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if !looksLikeEmail(email) {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	return nil
}

func validateRegister(name string, email string, birthday string, password string, confirm string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if !looksLikeEmail(email) {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	if strings.TrimSpace(birthday) == "" {
		return fmt.Errorf("%w: birthday is required", common.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	return nil
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}
