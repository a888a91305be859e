package ana

import (
	"sort"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/semantics"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
)

// generateSteps produces every candidate StepKind out of node, ported
// from proc_refactoring/ana_proc/matches.rs's add_action_matches_in_analysis
// and add_simulation_matches_in_analysis.
func generateSteps(node NodeKind, opts Options) []StepKind {
	head := node.MultiTrace.HeadActions()

	var out []StepKind
	for _, elt := range semantics.Frontier(node.Interaction, head) {
		out = append(out, StepKind{Elt: elt})
	}

	if opts.Kind == KindSimulate {
		out = append(out, generateSimulationSteps(node, opts)...)
	}

	if opts.Kind == KindEliminate {
		out = append(out, generateEliminateSteps(node)...)
	}

	return out
}

// generateEliminateSteps implements §4.4.1(4): a canal whose lifelines are
// all avoided by the current interaction can never again be observed, so
// its lifelines are hidden globally by a removal-relation step.
func generateEliminateSteps(node NodeKind) []StepKind {
	var out []StepKind
	for _, canal := range node.MultiTrace.Canals {
		if canal.Hidden || len(canal.Trace) == 0 {
			continue
		}
		unreachable := true
		for lf := range canal.Lifelines {
			if !semantics.Avoids(node.Interaction, lf) {
				unreachable = false
				break
			}
		}
		if !unreachable {
			continue
		}
		lfs := make(map[context.LfID]struct{}, len(canal.Lifelines))
		for lf := range canal.Lifelines {
			lfs[lf] = struct{}{}
		}
		out = append(out, StepKind{EliminateLfIDs: lfs})
	}
	return out
}

func generateSimulationSteps(node NodeKind, opts Options) []StepKind {
	var out []StepKind
	mt := node.MultiTrace

	for _, elt := range semantics.Frontier(node.Interaction, nil) {
		type matchOnCanal struct {
			lfID    context.LfID
			canalID int
		}
		var matches []matchOnCanal
		okLifelines := map[context.LfID]struct{}{}
		actLeftToMatch := map[action.TraceAction]struct{}{}
		for _, a := range elt.TargetActions {
			actLeftToMatch[a] = struct{}{}
		}

		for canalID, canal := range mt.Canals {
			headAct, ok := firstAction(canal.Trace)
			if !ok {
				continue
			}
			if _, wanted := actLeftToMatch[headAct]; wanted {
				matches = append(matches, matchOnCanal{lfID: headAct.LfID, canalID: canalID})
				delete(actLeftToMatch, headAct)
				for lf := range canal.Lifelines {
					okLifelines[lf] = struct{}{}
				}
			}
		}

		if mt.Length() == 0 {
			continue
		}

		okToSimulate := true
		loopDepth := syntax.LoopDepthAtPos(node.Interaction, elt.Position)
		if len(actLeftToMatch) > 0 && int(loopDepth) > mt.RemLoopInSim {
			okToSimulate = false
		}

		toSimulate := map[context.LfID]trace.SimKind{}
		for tract := range actLeftToMatch {
			if !okToSimulate {
				break
			}
			if _, already := okLifelines[tract.LfID]; already {
				continue
			}
			gotIt := false
			for _, canal := range mt.Canals {
				if _, inCanal := canal.Lifelines[tract.LfID]; !inCanal {
					continue
				}
				if len(canal.Trace) == 0 {
					toSimulate[tract.LfID] = trace.SimAfterEnd
					gotIt = true
					break
				}
				if opts.SimBefore && canal.Consumed == 0 {
					toSimulate[tract.LfID] = trace.SimBeforeStart
					gotIt = true
					break
				}
			}
			if !gotIt {
				okToSimulate = false
			}
		}

		if !okToSimulate {
			continue
		}

		out = append(out, StepKind{Elt: elt, SimMap: copySimMap(toSimulate)})

		if len(matches) > 0 && int(loopDepth) <= mt.RemLoopInSim {
			for _, combo := range powerset(matches) {
				if len(combo) == 0 {
					continue
				}
				ok := true
				extra := copySimMap(toSimulate)
				for _, m := range combo {
					if !ok {
						break
					}
					canal := mt.Canals[m.canalID]
					if len(canal.Trace) == 0 {
						extra[m.lfID] = trace.SimAfterEnd
					} else if opts.SimBefore && canal.Consumed == 0 {
						extra[m.lfID] = trace.SimBeforeStart
					} else {
						ok = false
					}
				}
				if ok {
					out = append(out, StepKind{Elt: elt, SimMap: extra})
				}
			}
		}
	}

	return out
}

// firstAction returns the head action-set's least action under the fixed
// lifeline/kind/message order, so a concurrent head with more than one
// action picks a deterministic candidate rather than an arbitrary one off
// Go's randomized map iteration (mirrors syntax's sortedActions).
func firstAction(t trace.Trace) (action.TraceAction, bool) {
	head := t.Head()
	if len(head) == 0 {
		return action.TraceAction{}, false
	}
	acts := make([]action.TraceAction, 0, len(head))
	for a := range head {
		acts = append(acts, a)
	}
	sort.Slice(acts, func(i, j int) bool {
		if acts[i].LfID != acts[j].LfID {
			return acts[i].LfID < acts[j].LfID
		}
		if acts[i].Kind != acts[j].Kind {
			return acts[i].Kind < acts[j].Kind
		}
		return acts[i].MsID < acts[j].MsID
	})
	return acts[0], true
}

func copySimMap(m map[context.LfID]trace.SimKind) map[context.LfID]trace.SimKind {
	out := make(map[context.LfID]trace.SimKind, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func powerset[T any](s []T) [][]T {
	n := len(s)
	out := make([][]T, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var subset []T
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, s[i])
			}
		}
		out = append(out, subset)
	}
	return out
}
