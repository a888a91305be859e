package ana

import (
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
	"github.com/rfielding/hibou/internal/core/validate"
	"github.com/rfielding/hibou/internal/core/verdict"
	"github.com/rfielding/hibou/internal/process/abstract"
)

// Analyze runs a multi-trace conformance analysis of interaction against
// mtrace, folding every terminal node's local verdict into a single
// global one and short-circuiting as soon as opts.Goal is reached, if
// set.
func Analyze(ctx *context.Context, colocs context.CoLocalizations, interaction syntax.Interaction, mtrace trace.Analysable, opts Options) (Result, error) {
	if err := validate.Interaction(ctx, interaction); err != nil {
		return Result{}, err
	}
	if err := validate.MultiTrace(colocs, mtrace); err != nil {
		return Result{}, err
	}

	if opts.Logger != nil {
		opts.Logger.Init(interaction, ctx)
	}

	mgr := abstract.NewManager[NodeKind, StepKind, FilterCriterion](
		opts.Strategy,
		abstract.Prioritizer[StepKind](opts.Priorities.Priority),
		opts.Filters...,
	)

	global := verdict.InitialGlobal()
	filteredAny := false
	var nodeCount uint32
	var nextID uint32 = 1

	fold := func(lv verdict.Local, nodeID uint32) {
		global = verdict.Fold(global, lv)
		if opts.Logger != nil {
			opts.Logger.Verdict(nodeID, lv)
		}
	}

	rootID := nextID
	nextID++
	nodeCount++
	expandNode(ctx, colocs, mgr, rootID, NodeKind{Interaction: interaction, MultiTrace: mtrace, LoopDepth: 0}, 0, opts, fold)

	for !goalReached(opts.Goal, global) {
		step, ok := mgr.ExtractFromQueue()
		if !ok {
			break
		}
		parent, _ := mgr.PickMemorized(step.ParentID)
		newID := nextID
		nextID++

		reason, filtered := mgr.ApplyFilters(parent.Depth+1, nodeCount, FilterCriterion{LoopDepth: parent.Kind.LoopDepth + step.Kind.Elt.MaxLoopDepth})
		hadChild := true
		if filtered {
			filteredAny = true
			hadChild = false
			if opts.Logger != nil {
				opts.Logger.Filtered(step.ParentID, newID, reason)
			}
		} else {
			nodeCount++
			newNode := applyStep(parent.Kind, step.Kind)
			if opts.Logger != nil {
				opts.Logger.NewStep(step.ParentID, newID, step.Kind)
			}
			children := expandNode(ctx, colocs, mgr, newID, newNode, parent.Depth+1, opts, fold)
			hadChild = children
		}
		mgr.NotifyChildOutcome(hadChild)

		remaining := parent.RemainingChildIDs
		delete(remaining, step.ChildID)
		if len(remaining) == 0 {
			mgr.Forget(step.ParentID)
		} else {
			parent.RemainingChildIDs = remaining
			mgr.Remember(step.ParentID, parent)
		}
	}

	if filteredAny && global.Kind == verdict.Fail {
		global = verdict.NewGlobalInconc(verdict.FilteredNodes)
	}

	if opts.Logger != nil {
		opts.Logger.Terminate(global, []string{"process=analysis", "strategy=" + opts.Strategy.String(), "kind=" + opts.Kind.String()})
	}

	return Result{NodeCount: nodeCount, Verdict: global}, nil
}

func goalReached(goal *verdict.Global, current verdict.Global) bool {
	if goal == nil {
		return false
	}
	return !current.Less(*goal)
}

// expandNode generates id's children, memoizing it and enqueuing its
// steps if there are any, or folding its terminal verdict if not. It
// returns whether the node produced any children.
func expandNode(ctx *context.Context, colocs context.CoLocalizations, mgr *abstract.Manager[NodeKind, StepKind, FilterCriterion], id uint32, node NodeKind, depth uint32, opts Options, fold func(verdict.Local, uint32)) bool {
	if opts.UseLocalAnalysis && opts.LocalAnalysis != nil {
		updated, _, lv, found := opts.LocalAnalysis(ctx, colocs, node, opts)
		node.MultiTrace = updated
		if found {
			fold(lv, id)
			return false
		}
	}

	steps := generateSteps(node, opts)
	if len(steps) == 0 {
		fold(terminalVerdict(node, opts.Kind), id)
		return false
	}

	children := make([]abstract.Step[StepKind], len(steps))
	remaining := make(map[uint32]struct{}, len(steps))
	for idx, s := range steps {
		childID := uint32(idx + 1)
		children[idx] = abstract.Step[StepKind]{ParentID: id, ChildID: childID, Kind: s}
		remaining[childID] = struct{}{}
	}
	mgr.Remember(id, abstract.Node[NodeKind]{Kind: node, RemainingChildIDs: remaining, Depth: depth})
	mgr.EnqueueNewSteps(children)
	return true
}
