// Package explore implements the degenerate, multi-trace-free walk of
// spec.md's semantics kernel: plain interaction-term state-space
// enumeration, with no conformance relation and no verdict folding.
// Grounded on process/explo_proc/manager.rs, reusing the same
// process/abstract framework as package ana.
package explore

import (
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/semantics"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/process/abstract"
)

// NodeKind is the remaining interaction term at an explored state, plus
// the loop depth accumulated to reach it.
type NodeKind struct {
	Interaction syntax.Interaction
	LoopDepth   uint32
}

// StepKind is one candidate frontier element to execute.
type StepKind struct {
	Elt semantics.FrontierElt
}

// FilterCriterion is what a Filter inspects before a step is applied.
type FilterCriterion struct {
	LoopDepth uint32
}

// Options configures one exploration run.
type Options struct {
	Strategy   abstract.Strategy
	Prioritize abstract.Prioritizer[StepKind]
	Filters    []abstract.Filter[FilterCriterion]
	Logger     Logger
}

// Logger receives the same callback sequence a Rust exploration logger
// would have.
type Logger interface {
	Init(i syntax.Interaction, ctx *context.Context)
	Explore(ctx *context.Context, parentID, childID uint32, elt semantics.FrontierElt, newInteraction syntax.Interaction)
	Filtered(parentID, childID uint32, reason abstract.FilterReason)
	Terminate(options []string)
}

// Result is what an exploration run reports: the total number of nodes
// visited and the number of structurally distinct interaction terms
// reached among them.
type Result struct {
	NodeCount       uint32
	ReachableStates uint32
}
