// Package trace models the multi-trace an analysis run checks an
// interaction term against: one ordered sequence of concurrent
// action-sets per colocalization canal, plus the budgets and flags that
// drive simulation and local-analysis short-circuiting.
package trace

import "github.com/rfielding/hibou/internal/core/action"

// ActionSet is a set of actions observed as concurrent (same position in
// a canal's trace).
type ActionSet map[action.TraceAction]struct{}

// Trace is one canal's ordered sequence of concurrent action-sets.
type Trace []ActionSet

// Head returns the first action-set of the trace, or nil if empty.
func (t Trace) Head() ActionSet {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Tail returns the trace with its first action-set removed.
func (t Trace) Tail() Trace {
	if len(t) == 0 {
		return t
	}
	return t[1:]
}

// SimKind distinguishes where in a canal a simulated (unobserved) action
// is being inserted.
type SimKind int

const (
	// SimBeforeStart simulates an action ahead of a canal's own first
	// recorded action (consumed == 0 so far).
	SimBeforeStart SimKind = iota
	// SimAfterEnd simulates an action past a canal's last recorded one
	// (the canal's trace is already empty).
	SimAfterEnd
)
