package semantics

import (
	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/position"
	"github.com/rfielding/hibou/internal/core/syntax"
)

// FrontierElt is one position at which term's next atomic step can fire,
// together with the lifelines and actions that step consumes.
type FrontierElt struct {
	Position      position.Position
	TargetLfIDs   map[context.LfID]struct{}
	TargetActions []action.TraceAction
	MaxLoopDepth  uint32
}

// Frontier enumerates every position at which i's next atomic step can
// fire. When filterHeadActions is non-nil, only elements whose entire
// TargetActions set is contained in it survive — used to restrict the
// search to actions currently observable at a multi-trace's heads.
func Frontier(i syntax.Interaction, filterHeadActions map[action.TraceAction]struct{}) []FrontierElt {
	elts := frontier(i)
	if filterHeadActions == nil {
		return elts
	}
	out := make([]FrontierElt, 0, len(elts))
	for _, e := range elts {
		if allActionsIn(e.TargetActions, filterHeadActions) {
			out = append(out, e)
		}
	}
	return out
}

func allActionsIn(acts []action.TraceAction, set map[action.TraceAction]struct{}) bool {
	for _, a := range acts {
		if _, ok := set[a]; !ok {
			return false
		}
	}
	return true
}

func prefixLeft(elts []FrontierElt) []FrontierElt {
	out := make([]FrontierElt, len(elts))
	for idx, e := range elts {
		e.Position = position.NewLeft(e.Position)
		out[idx] = e
	}
	return out
}

func prefixRight(elts []FrontierElt) []FrontierElt {
	out := make([]FrontierElt, len(elts))
	for idx, e := range elts {
		e.Position = position.NewRight(e.Position)
		out[idx] = e
	}
	return out
}

func bumpLoopDepth(elts []FrontierElt) []FrontierElt {
	out := make([]FrontierElt, len(elts))
	for idx, e := range elts {
		e.MaxLoopDepth = e.MaxLoopDepth + 1
		out[idx] = e
	}
	return out
}

func frontier(i syntax.Interaction) []FrontierElt {
	switch v := i.(type) {
	case *syntax.Empty:
		return nil

	case *syntax.Emission:
		return []FrontierElt{{
			Position:      position.Epsilon{},
			TargetLfIDs:   map[context.LfID]struct{}{v.Origin: {}},
			TargetActions: v.Emission.FrontierActions(),
			MaxLoopDepth:  0,
		}}

	case *syntax.Reception:
		if v.Reception.ExpressEmpty() {
			return nil
		}
		return []FrontierElt{{
			Position:      position.Epsilon{},
			TargetLfIDs:   v.OccupationAfter(),
			TargetActions: v.Reception.FrontierActions(),
			MaxLoopDepth:  0,
		}}

	case *syntax.Strict:
		out := prefixLeft(frontier(v.Left))
		if ExpressEmpty(v.Left) {
			out = append(out, prefixRight(frontier(v.Right))...)
		}
		return out

	case *syntax.Seq:
		out := prefixLeft(frontier(v.Left))
		for _, e := range frontier(v.Right) {
			if weakSeqAllowed(v.Left, nil, e.TargetLfIDs) {
				e.Position = position.NewRight(e.Position)
				out = append(out, e)
			}
		}
		return out

	case *syntax.CoReg:
		out := prefixLeft(frontier(v.Left))
		for _, e := range frontier(v.Right) {
			if weakSeqAllowed(v.Left, v.Lifelines, e.TargetLfIDs) {
				e.Position = position.NewRight(e.Position)
				out = append(out, e)
			}
		}
		return out

	case *syntax.Par:
		out := prefixLeft(frontier(v.Left))
		out = append(out, prefixRight(frontier(v.Right))...)
		return out

	case *syntax.Sync:
		// Simplified: frontier is the free union, same as Par. Rendezvous forcing on v.Actions is not enforced at the
		// frontier-enumeration level.
		out := prefixLeft(frontier(v.Left))
		out = append(out, prefixRight(frontier(v.Right))...)
		return out

	case *syntax.And:
		// Resolved per get_all_transfos.rs precedent: And is given the
		// same shape as Strict.
		out := prefixLeft(frontier(v.Left))
		if ExpressEmpty(v.Left) {
			out = append(out, prefixRight(frontier(v.Right))...)
		}
		return out

	case *syntax.Alt:
		out := prefixLeft(frontier(v.Left))
		out = append(out, prefixRight(frontier(v.Right))...)
		return out

	case *syntax.Loop:
		return bumpLoopDepth(prefixLeft(frontier(v.Body)))

	default:
		return nil
	}
}

// weakSeqAllowed is the weak-sequencing condition shared by Seq and
// CoReg: a right-hand frontier element may fire only if, for every
// lifeline it targets that is not exempted by cr, left no longer has any
// pending action on that lifeline. Seq is this same check with an empty
// cr (no lifeline exempted).
func weakSeqAllowed(left syntax.Interaction, cr map[context.LfID]struct{}, targetLfs map[context.LfID]struct{}) bool {
	for lf := range targetLfs {
		if _, exempt := cr[lf]; exempt {
			continue
		}
		if !Avoids(left, lf) {
			return false
		}
	}
	return true
}
