// Package apperrors defines the error taxonomy shared by the calculator:
// malformed console input, unmet command preconditions, degenerate point
// sets and configuration problems, together with the process exit codes.
//
// Error Wrapping Guidelines:
// Errors are wrapped with fmt.Errorf and %w. Struct error types implement
// Unwrap where they carry a cause so errors.Is and errors.As see through them.
package apperrors
