package context

import "fmt"

// InvalidASTError reports that an interaction term references a lifeline,
// message or gate id the Context does not know about.
type InvalidASTError struct {
	Reason string
}

func (e *InvalidASTError) Error() string {
	return fmt.Sprintf("invalid interaction term: %s", e.Reason)
}

// InvalidMultiTraceError reports that a multi-trace's shape does not match
// the colocalizations it is meant to be recorded against.
type InvalidMultiTraceError struct {
	Reason string
}

func (e *InvalidMultiTraceError) Error() string {
	return fmt.Sprintf("invalid multi-trace: %s", e.Reason)
}
