// Package logging provides the diagnostic logger used by the calculator.
// Diagnostics go to stderr so they never mix with the console transcript.
// The Logger interface is backed by zerolog or by the standard log package.
package logging
