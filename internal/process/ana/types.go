// Package ana implements the multi-trace conformance analysis driver: it
// instantiates the generic process/abstract framework with an
// analysis-specific node/step/filter shape and folds every terminal
// node's local verdict into a single global one.
package ana

import (
	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/semantics"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
	"github.com/rfielding/hibou/internal/core/verdict"
	"github.com/rfielding/hibou/internal/process/abstract"
)

// Kind selects the analysis-step generation discipline a node is
// explored under.
type Kind int

const (
	// KindAccept requires the interaction to fully express_empty once the
	// multi-trace is exhausted: a proper, unfinished prefix is rejected.
	KindAccept Kind = iota
	// KindPrefix only matches head actions already present in the
	// multi-trace; no simulated (skipped) actions are allowed, and
	// stopping on a proper prefix of the interaction is accepted.
	KindPrefix
	// KindSimulate additionally allows simulated moves, bounded by the
	// node's remaining loop budget (RemLoopInSim). RemActInSim is
	// decremented on every simulated step, but no step is rejected on it.
	KindSimulate
	// KindEliminate additionally detects components that can never again
	// be observed and emits steps hiding their lifelines globally.
	KindEliminate
)

func (k Kind) String() string {
	switch k {
	case KindAccept:
		return "accept"
	case KindSimulate:
		return "simulate"
	case KindEliminate:
		return "eliminate"
	default:
		return "prefix"
	}
}

// NodeKind is the analysis-specific payload the generic framework
// memoizes per node: the remaining interaction term, the remaining
// multi-trace, and the loop depth accumulated to reach this node.
type NodeKind struct {
	Interaction syntax.Interaction
	MultiTrace  trace.Analysable
	LoopDepth   uint32
}

// StepKind is one candidate step out of a node: fire Elt, optionally
// simulating the canals named in SimMap rather than matching them
// against the multi-trace head. A non-nil EliminateLfIDs instead marks
// this as the removal-relation step: project away those lifelines
// globally rather than executing a frontier element.
type StepKind struct {
	Elt            semantics.FrontierElt
	SimMap         map[context.LfID]trace.SimKind
	EliminateLfIDs map[context.LfID]struct{}
}

// FilterCriterion is what a Filter inspects before a step is applied.
type FilterCriterion struct {
	LoopDepth uint32
}

// Priorities parameterizes the priority policy of §4.4.6.
type Priorities struct {
	Emission  int
	Reception int
	Loop      int
	InLoop    int
	Step      int
	Simu      int
}

// Priority computes a step's priority key: emission/reception base value
// plus a per-loop-depth bonus plus a flat per-step bonus, with an
// additional bonus for steps that simulate rather than plainly match.
func (p Priorities) Priority(s StepKind) int {
	base := p.Step
	kind := action.KindEmission
	if len(s.Elt.TargetActions) > 0 {
		kind = s.Elt.TargetActions[0].Kind
	}
	if kind == action.KindEmission {
		base += p.Emission
	} else {
		base += p.Reception
	}
	base += p.InLoop * int(s.Elt.MaxLoopDepth)
	if len(s.SimMap) > 0 {
		base += p.Simu
	}
	return base
}

// LocalAnalyzer is the pluggable local-analysis short-circuit hook: it
// inspects a node before its children are generated and, if some dirty
// canal's nested analysis already resolves to Fail/WeakFail, reports
// which canal and what local verdict the node should be assigned
// instead of expanding further. Defined here (consumed by Analyze) and
// implemented by package locana, which depends on ana — not the other
// way round — since Go forbids the mutual package recursion the
// original implementation used within one crate.
type LocalAnalyzer func(ctx *context.Context, colocs context.CoLocalizations, node NodeKind, opts Options) (updated trace.Analysable, failedCanal int, lv verdict.Local, found bool)

// Options configures one analysis run.
type Options struct {
	Strategy         abstract.Strategy
	Kind             Kind
	SimBefore        bool
	Priorities       Priorities
	Filters          []abstract.Filter[FilterCriterion]
	Goal             *verdict.Global
	UseLocalAnalysis bool
	LocalAnalysis    LocalAnalyzer
	Logger           Logger
}

// Logger receives the same callback sequence a Rust logger would have,
// kept minimal and optional (nil disables logging).
type Logger interface {
	Init(i syntax.Interaction, ctx *context.Context)
	NewStep(parentID, childID uint32, step StepKind)
	Filtered(parentID, childID uint32, reason abstract.FilterReason)
	Verdict(nodeID uint32, local verdict.Local)
	Terminate(global verdict.Global, options []string)
}

// Result is what an analysis run reports.
type Result struct {
	NodeCount uint32
	Verdict   verdict.Global
}
