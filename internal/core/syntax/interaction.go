// Package syntax defines the interaction term algebra: the eleven-variant
// sum type every analysis operates over, its total order, and basic
// position-addressed traversal.
package syntax

import (
	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
)

// Interaction is the sum type every term of the algebra belongs to. Each
// concrete variant is a pointer type implementing the unexported marker
// method, so no type outside this package can extend the algebra.
type Interaction interface {
	isInteraction()
	// Priority is this variant's rank in the algebra's total order, used
	// to compare terms of different shape.
	Priority() int
}

// Empty is the interaction that has already happened: it expresses only
// the empty trace and has no frontier.
type Empty struct{}

func (*Empty) isInteraction() {}
func (*Empty) Priority() int  { return 0 }

// Emission is a leaf: a message send. See action.Emission's doc comment
// for how broadcast targets are modeled.
type Emission struct {
	action.Emission
}

func (*Emission) isInteraction() {}
func (*Emission) Priority() int  { return 1 }

// Reception is a leaf: a message receipt.
type Reception struct {
	action.Reception
}

func (*Reception) isInteraction() {}
func (*Reception) Priority() int  { return 2 }

// Strict is total-order sequencing: every action of Left must complete
// before any action of Right may begin.
type Strict struct {
	Left, Right Interaction
}

func (*Strict) isInteraction() {}
func (*Strict) Priority() int  { return 6 }

// Seq is weak sequencing: actions sharing a lifeline stay ordered, but
// actions on distinct lifelines may interleave freely across Left/Right.
type Seq struct {
	Left, Right Interaction
}

func (*Seq) isInteraction() {}
func (*Seq) Priority() int  { return 5 }

// Par is free interleaving: Left and Right impose no order on each other
// whatsoever.
type Par struct {
	Left, Right Interaction
}

func (*Par) isInteraction() {}
func (*Par) Priority() int  { return 3 }

// Alt is choice: either Left or Right happens, never both.
type Alt struct {
	Left, Right Interaction
}

func (*Alt) isInteraction() {}
func (*Alt) Priority() int  { return 7 }

// And is conjunction of Left and Right. Frontier and Execute give it the
// same shape as Strict: Right's actions become available only once Left
// expresses the empty trace; the two sides are not run in lockstep.
type And struct {
	Left, Right Interaction
}

func (*And) isInteraction() {}
func (*And) Priority() int  { return 10 }

// CoReg is a partial coregion: lifelines named in Lifelines are exempted
// from ordering between Left and Right (they interleave freely, as in
// Par), every other lifeline is weakly sequenced (as in Seq). Seq is CoReg
// with no lifeline named.
type CoReg struct {
	Lifelines   map[context.LfID]struct{}
	Left, Right Interaction
}

func (*CoReg) isInteraction() {}
func (*CoReg) Priority() int  { return 4 }

// Sync composes Left and Right in parallel, naming in Actions the actions
// the two sides synchronize on. Frontier and Execute treat it exactly like
// Par: the rendezvous on Actions is not enforced.
type Sync struct {
	Actions     map[action.TraceAction]struct{}
	Left, Right Interaction
}

func (*Sync) isInteraction() {}
func (*Sync) Priority() int  { return 9 }

// LoopKind orders the four repetition disciplines from strictest (0) to
// loosest (3); merging nested loops keeps the stricter kind.
type LoopKind int

const (
	LoopStrict LoopKind = iota
	LoopHeadFirstWeakSeq
	LoopWeakSeq
	LoopInterleaving
)

func (k LoopKind) String() string {
	switch k {
	case LoopStrict:
		return "strict"
	case LoopHeadFirstWeakSeq:
		return "headFirstWeakSeq"
	case LoopWeakSeq:
		return "weakSeq"
	case LoopInterleaving:
		return "interleaving"
	default:
		return "unknownLoopKind"
	}
}

// MinKind returns the stricter (smaller) of two loop kinds.
func MinKind(a, b LoopKind) LoopKind {
	if a < b {
		return a
	}
	return b
}

// Loop repeats Body zero or more times, ordering successive iterations
// (and the tail of one iteration against the head of the next) according
// to Kind.
type Loop struct {
	Kind LoopKind
	Body Interaction
}

func (*Loop) isInteraction() {}
func (*Loop) Priority() int  { return 8 }
