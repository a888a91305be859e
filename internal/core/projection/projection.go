// Package projection implements the two AST rewrites that restrict an
// interaction term to (or remove it from) a subset of lifelines.
package projection

import (
	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
)

// EliminateLifelines rewrites i, replacing every action wholly on a
// lifeline in S with Empty, and degenerating CoReg/Sync nodes whose
// exempted lifelines/synchronized actions are wholly contained in S.
func EliminateLifelines(i syntax.Interaction, s map[context.LfID]struct{}) syntax.Interaction {
	switch v := i.(type) {
	case *syntax.Empty:
		return v

	case *syntax.Emission:
		if subsetOf(v.OccupationAfter(), s) {
			return &syntax.Empty{}
		}
		return v

	case *syntax.Reception:
		if subsetOf(v.OccupationAfter(), s) {
			return &syntax.Empty{}
		}
		return v

	case *syntax.Strict:
		return syntax.NewStrict(EliminateLifelines(v.Left, s), EliminateLifelines(v.Right, s))

	case *syntax.Seq:
		return syntax.NewSeq(EliminateLifelines(v.Left, s), EliminateLifelines(v.Right, s))

	case *syntax.Par:
		return syntax.NewPar(EliminateLifelines(v.Left, s), EliminateLifelines(v.Right, s))

	case *syntax.And:
		return syntax.NewAnd(EliminateLifelines(v.Left, s), EliminateLifelines(v.Right, s))

	case *syntax.Alt:
		return syntax.NewAlt(EliminateLifelines(v.Left, s), EliminateLifelines(v.Right, s))

	case *syntax.CoReg:
		l2 := EliminateLifelines(v.Left, s)
		r2 := EliminateLifelines(v.Right, s)
		if syntax.IsEmpty(l2) {
			return r2
		}
		if syntax.IsEmpty(r2) {
			return l2
		}
		if subsetOf(v.Lifelines, s) {
			return &syntax.Seq{Left: l2, Right: r2}
		}
		remaining := map[context.LfID]struct{}{}
		for lf := range v.Lifelines {
			if _, gone := s[lf]; !gone {
				remaining[lf] = struct{}{}
			}
		}
		return syntax.NewCoReg(remaining, l2, r2)

	case *syntax.Sync:
		l2 := EliminateLifelines(v.Left, s)
		r2 := EliminateLifelines(v.Right, s)
		if syntax.IsEmpty(l2) {
			return r2
		}
		if syntax.IsEmpty(r2) {
			return l2
		}
		if actionsSubsetOf(v.Actions, s) {
			return &syntax.Par{Left: l2, Right: r2}
		}
		remaining := map[action.TraceAction]struct{}{}
		for a := range v.Actions {
			if _, gone := s[a.LfID]; !gone {
				remaining[a] = struct{}{}
			}
		}
		return syntax.NewSync(remaining, l2, r2)

	case *syntax.Loop:
		return syntax.NewLoop(v.Kind, EliminateLifelines(v.Body, s))

	default:
		return i
	}
}

// HideLifelines produces the same AST shape as EliminateLifelines. The
// driver, not this rewrite, is responsible for marking the corresponding
// colocalization's flags as no-longer-observed (trace.Analysable's
// UpdateOnHide) — the rewrite itself cannot tell which multi-trace canal
// a lifeline set maps to.
func HideLifelines(i syntax.Interaction, s map[context.LfID]struct{}) syntax.Interaction {
	return EliminateLifelines(i, s)
}

func subsetOf(small, big map[context.LfID]struct{}) bool {
	for lf := range small {
		if _, ok := big[lf]; !ok {
			return false
		}
	}
	return true
}

func actionsSubsetOf(acts map[action.TraceAction]struct{}, lfs map[context.LfID]struct{}) bool {
	for a := range acts {
		if _, ok := lfs[a.LfID]; !ok {
			return false
		}
	}
	return true
}
