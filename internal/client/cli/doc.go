// Package cli implements the interactive Joana client: a read–eval–print
// loop over the domain services, with prompts for input and confirmations
// for destructive actions.
package cli
