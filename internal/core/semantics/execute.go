package semantics

import (
	"fmt"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/position"
	"github.com/rfielding/hibou/internal/core/syntax"
)

// ExecuteResult is the rewritten term produced by firing one frontier
// element, together with the lifelines it touched and the actions it
// consumed.
type ExecuteResult struct {
	Interaction     syntax.Interaction
	AffectedLfIDs   map[context.LfID]struct{}
	ExecutedActions []action.TraceAction
}

// Execute consumes the action at pos, returning the rewritten term. pos
// must be a position yielded by Frontier against this exact term — any
// other use is an invariant violation and panics, per the core's
// boundary-only error-handling policy. targetLfIDs is carried through
// unused by this implementation (every leaf's own occupation already
// determines what is consumed) but accepted to match the operation's
// documented signature. unfoldLoopsOnce selects, at a Loop node, between
// unrolling one iteration into a fresh sibling term (true, the normal
// case) or continuing to rewrite the same loop body in place (false).
func Execute(i syntax.Interaction, pos position.Position, targetLfIDs map[context.LfID]struct{}, unfoldLoopsOnce bool) ExecuteResult {
	newI, affected, executed := executeAt(i, pos, unfoldLoopsOnce)
	return ExecuteResult{Interaction: newI, AffectedLfIDs: affected, ExecutedActions: executed}
}

func executeAt(i syntax.Interaction, pos position.Position, unfoldOnce bool) (syntax.Interaction, map[context.LfID]struct{}, []action.TraceAction) {
	switch p := pos.(type) {
	case position.Epsilon:
		return executeLeaf(i)

	case position.Left:
		switch v := i.(type) {
		case *syntax.Strict:
			l2, aff, exec := executeAt(v.Left, p.Sub, unfoldOnce)
			return syntax.NewStrict(l2, v.Right), aff, exec
		case *syntax.Seq:
			l2, aff, exec := executeAt(v.Left, p.Sub, unfoldOnce)
			return syntax.NewSeq(l2, v.Right), aff, exec
		case *syntax.Par:
			l2, aff, exec := executeAt(v.Left, p.Sub, unfoldOnce)
			return syntax.NewPar(l2, v.Right), aff, exec
		case *syntax.And:
			l2, aff, exec := executeAt(v.Left, p.Sub, unfoldOnce)
			return syntax.NewAnd(l2, v.Right), aff, exec
		case *syntax.CoReg:
			l2, aff, exec := executeAt(v.Left, p.Sub, unfoldOnce)
			return syntax.NewCoReg(v.Lifelines, l2, v.Right), aff, exec
		case *syntax.Sync:
			l2, aff, exec := executeAt(v.Left, p.Sub, unfoldOnce)
			return syntax.NewSync(v.Actions, l2, v.Right), aff, exec
		case *syntax.Alt:
			// The side not taken is discarded entirely.
			return executeAt(v.Left, p.Sub, unfoldOnce)
		case *syntax.Loop:
			return executeLoopLeft(v, p.Sub, unfoldOnce)
		default:
			panic(fmt.Sprintf("semantics: execute descends left into non-binary node %T", i))
		}

	case position.Right:
		switch v := i.(type) {
		case *syntax.Strict:
			r2, aff, exec := executeAt(v.Right, p.Sub, unfoldOnce)
			return syntax.NewStrict(v.Left, r2), aff, exec
		case *syntax.Seq:
			r2, aff, exec := executeAt(v.Right, p.Sub, unfoldOnce)
			return syntax.NewSeq(v.Left, r2), aff, exec
		case *syntax.Par:
			r2, aff, exec := executeAt(v.Right, p.Sub, unfoldOnce)
			return syntax.NewPar(v.Left, r2), aff, exec
		case *syntax.And:
			r2, aff, exec := executeAt(v.Right, p.Sub, unfoldOnce)
			return syntax.NewAnd(v.Left, r2), aff, exec
		case *syntax.CoReg:
			r2, aff, exec := executeAt(v.Right, p.Sub, unfoldOnce)
			return syntax.NewCoReg(v.Lifelines, v.Left, r2), aff, exec
		case *syntax.Sync:
			r2, aff, exec := executeAt(v.Right, p.Sub, unfoldOnce)
			return syntax.NewSync(v.Actions, v.Left, r2), aff, exec
		case *syntax.Alt:
			return executeAt(v.Right, p.Sub, unfoldOnce)
		default:
			panic(fmt.Sprintf("semantics: execute descends right into non-binary node %T", i))
		}

	default:
		panic(fmt.Sprintf("semantics: unknown position variant %T", pos))
	}
}

func executeLeaf(i syntax.Interaction) (syntax.Interaction, map[context.LfID]struct{}, []action.TraceAction) {
	switch v := i.(type) {
	case *syntax.Emission:
		return &syntax.Empty{}, map[context.LfID]struct{}{v.Origin: {}}, v.Emission.FrontierActions()
	case *syntax.Reception:
		return &syntax.Empty{}, v.OccupationAfter(), v.Reception.FrontierActions()
	default:
		panic(fmt.Sprintf("semantics: execute reached non-leaf node %T at epsilon position", i))
	}
}

// executeLoopLeft fires one step inside a Loop's body. unfoldOnce selects
// between spawning a fresh sibling loop term (the normal unrolling case)
// and continuing to rewrite the same loop in place.
func executeLoopLeft(l *syntax.Loop, sub position.Position, unfoldOnce bool) (syntax.Interaction, map[context.LfID]struct{}, []action.TraceAction) {
	bodyNew, aff, exec := executeAt(l.Body, sub, unfoldOnce)

	if !unfoldOnce {
		return syntax.NewLoop(l.Kind, bodyNew), aff, exec
	}

	switch l.Kind {
	case syntax.LoopStrict:
		return syntax.NewStrict(bodyNew, syntax.NewLoop(l.Kind, l.Body)), aff, exec
	case syntax.LoopWeakSeq:
		return syntax.NewSeq(bodyNew, syntax.NewLoop(l.Kind, l.Body)), aff, exec
	case syntax.LoopInterleaving:
		return syntax.NewPar(bodyNew, syntax.NewLoop(l.Kind, l.Body)), aff, exec
	case syntax.LoopHeadFirstWeakSeq:
		// The lifelines just touched by this iteration's head stay
		// strictly ordered against the next iteration; every other
		// lifeline of the body may interleave freely.
		bodyLfs := syntax.Lifelines(l.Body)
		cr := make(map[context.LfID]struct{}, len(bodyLfs))
		for lf := range bodyLfs {
			if _, touched := aff[lf]; !touched {
				cr[lf] = struct{}{}
			}
		}
		return syntax.NewCoReg(cr, bodyNew, syntax.NewLoop(l.Kind, l.Body)), aff, exec
	default:
		panic(fmt.Sprintf("semantics: unknown loop kind %v", l.Kind))
	}
}
