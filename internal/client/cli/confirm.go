package cli

import (
	"bufio"
	"io"
	"strings"
)

// Confirm asks a yes/no question and returns the decision synchronously.
// Only "y" and "yes" (case-insensitive) count as confirmation; anything
// else, including a read failure, is a refusal. Callers branch on the
// returned bool; no callbacks are involved.
func Confirm(reader *bufio.Reader, question string, w io.Writer) bool {
	answer, err := GetSimpleText(reader, question+" [y/N]", w)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
