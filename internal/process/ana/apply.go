package ana

import (
	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/projection"
	"github.com/rfielding/hibou/internal/core/semantics"
)

// applyStep fires step against node, producing the successor node. This
// is §4.4.2's step application: execute the rewrite, update the
// multi-trace's flags per colocalization, and charge the simulation
// budgets.
func applyStep(node NodeKind, step StepKind) NodeKind {
	if step.EliminateLfIDs != nil {
		return applyEliminateStep(node, step.EliminateLfIDs)
	}

	res := semantics.Execute(node.Interaction, step.Elt.Position, step.Elt.TargetLfIDs, true)

	mt := node.MultiTrace
	if len(step.SimMap) == 0 {
		mt = mt.UpdateOnExecution(res.AffectedLfIDs, res.ExecutedActions)
	} else {
		matched := matchedActions(step)
		mt = mt.UpdateOnExecution(res.AffectedLfIDs, matched)
		mt = mt.UpdateOnSimulation(step.SimMap, int(step.Elt.MaxLoopDepth))
	}

	return NodeKind{
		Interaction: res.Interaction,
		MultiTrace:  mt,
		LoopDepth:   node.LoopDepth + step.Elt.MaxLoopDepth,
	}
}

// applyEliminateStep fires a removal-relation step: project lfs out of
// the interaction and mark the corresponding canals hidden and
// no-longer-observed, per §4.4.2's Eliminate clause.
func applyEliminateStep(node NodeKind, lfs map[context.LfID]struct{}) NodeKind {
	return NodeKind{
		Interaction: projection.HideLifelines(node.Interaction, lfs),
		MultiTrace:  node.MultiTrace.UpdateOnHide(lfs),
		LoopDepth:   node.LoopDepth,
	}
}

// matchedActions returns the subset of step.Elt's target actions whose
// lifeline was not simulated — the actions genuinely matched against a
// canal's head, as opposed to skipped past.
func matchedActions(step StepKind) []action.TraceAction {
	if len(step.SimMap) == 0 {
		return step.Elt.TargetActions
	}
	out := make([]action.TraceAction, 0, len(step.Elt.TargetActions))
	for _, a := range step.Elt.TargetActions {
		if _, simulated := step.SimMap[a.LfID]; simulated {
			continue
		}
		out = append(out, a)
	}
	return out
}
