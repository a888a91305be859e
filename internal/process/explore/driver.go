package explore

import (
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/semantics"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/validate"
	"github.com/rfielding/hibou/internal/process/abstract"
)

var noPriority abstract.Prioritizer[StepKind] = func(StepKind) int { return 0 }

// Explore walks every state reachable from interaction, counting both the
// total nodes visited and the number of structurally distinct terms
// reached. There is no multi-trace, no verdict: a node with an empty
// frontier is simply a leaf of the walk.
func Explore(ctx *context.Context, interaction syntax.Interaction, opts Options) (Result, error) {
	if err := validate.Interaction(ctx, interaction); err != nil {
		return Result{}, err
	}

	if opts.Logger != nil {
		opts.Logger.Init(interaction, ctx)
	}

	prioritize := opts.Prioritize
	if prioritize == nil {
		prioritize = noPriority
	}
	mgr := abstract.NewManager[NodeKind, StepKind, FilterCriterion](opts.Strategy, prioritize, opts.Filters...)

	var nodeCount uint32
	var nextID uint32 = 1
	var distinct []syntax.Interaction

	remember := func(i syntax.Interaction) {
		for _, seen := range distinct {
			if syntax.Equal(seen, i) {
				return
			}
		}
		distinct = append(distinct, i)
	}

	rootID := nextID
	nextID++
	nodeCount++
	remember(interaction)
	enqueueNode(mgr, rootID, NodeKind{Interaction: interaction, LoopDepth: 0}, 0)

	for {
		step, ok := mgr.ExtractFromQueue()
		if !ok {
			break
		}
		parent, _ := mgr.PickMemorized(step.ParentID)
		newID := nextID
		nextID++

		loopDepthHere := parent.Kind.LoopDepth + syntax.LoopDepthAtPos(parent.Kind.Interaction, step.Kind.Elt.Position)
		reason, filtered := mgr.ApplyFilters(parent.Depth+1, nodeCount, FilterCriterion{LoopDepth: loopDepthHere})

		hadChild := false
		if filtered {
			if opts.Logger != nil {
				opts.Logger.Filtered(step.ParentID, newID, reason)
			}
		} else {
			nodeCount++
			res := semantics.Execute(parent.Kind.Interaction, step.Kind.Elt.Position, step.Kind.Elt.TargetLfIDs, false)
			remember(res.Interaction)
			if opts.Logger != nil {
				opts.Logger.Explore(ctx, step.ParentID, newID, step.Kind.Elt, res.Interaction)
			}
			hadChild = enqueueNode(mgr, newID, NodeKind{Interaction: res.Interaction, LoopDepth: loopDepthHere}, parent.Depth+1)
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

	if opts.Logger != nil {
		opts.Logger.Terminate([]string{"process=exploration", "strategy=" + opts.Strategy.String()})
	}

	return Result{NodeCount: nodeCount, ReachableStates: uint32(len(distinct))}, nil
}

// enqueueNode generates id's children and memoizes it. It returns whether
// any step was generated.
func enqueueNode(mgr *abstract.Manager[NodeKind, StepKind, FilterCriterion], id uint32, node NodeKind, depth uint32) bool {
	fronts := semantics.Frontier(node.Interaction, nil)
	if len(fronts) == 0 {
		return false
	}

	children := make([]abstract.Step[StepKind], len(fronts))
	remaining := make(map[uint32]struct{}, len(fronts))
	for idx, elt := range fronts {
		childID := uint32(idx + 1)
		children[idx] = abstract.Step[StepKind]{ParentID: id, ChildID: childID, Kind: StepKind{Elt: elt}}
		remaining[childID] = struct{}{}
	}
	mgr.Remember(id, abstract.Node[NodeKind]{Kind: node, RemainingChildIDs: remaining, Depth: depth})
	mgr.EnqueueNewSteps(children)
	return true
}
