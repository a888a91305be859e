package syntax

import (
	"fmt"

	"github.com/rfielding/hibou/internal/core/position"
)

// binaryChildren returns a node's two children if it is a binary variant.
func binaryChildren(i Interaction) (left, right Interaction, ok bool) {
	switch v := i.(type) {
	case *Strict:
		return v.Left, v.Right, true
	case *Seq:
		return v.Left, v.Right, true
	case *Par:
		return v.Left, v.Right, true
	case *Alt:
		return v.Left, v.Right, true
	case *And:
		return v.Left, v.Right, true
	case *CoReg:
		return v.Left, v.Right, true
	case *Sync:
		return v.Left, v.Right, true
	default:
		return nil, nil, false
	}
}

// GetSubInteraction returns the subterm rooted at pos. pos is expected to
// be a position produced by Frontier against this exact term; any other
// use is an invariant violation and panics rather than returning an
// error, per the core's boundary-only error-handling policy.
func GetSubInteraction(i Interaction, pos position.Position) Interaction {
	switch p := pos.(type) {
	case position.Epsilon:
		return i
	case position.Left:
		if l, ok := i.(*Loop); ok {
			return GetSubInteraction(l.Body, p.Sub)
		}
		left, _, ok := binaryChildren(i)
		if !ok {
			panic(fmt.Sprintf("syntax: position descends left into non-binary node %T", i))
		}
		return GetSubInteraction(left, p.Sub)
	case position.Right:
		_, right, ok := binaryChildren(i)
		if !ok {
			panic(fmt.Sprintf("syntax: position descends right into non-binary node %T", i))
		}
		return GetSubInteraction(right, p.Sub)
	default:
		panic(fmt.Sprintf("syntax: unknown position variant %T", pos))
	}
}

// LoopDepthAtPos counts how many Loop nodes are traversed on the path
// from i's root down to pos (not counting a Loop node sitting exactly at
// pos itself). Used to charge exploration/simulation budgets per
// iteration unrolled.
func LoopDepthAtPos(i Interaction, pos position.Position) uint32 {
	switch p := pos.(type) {
	case position.Epsilon:
		return 0
	case position.Left:
		if l, ok := i.(*Loop); ok {
			return 1 + LoopDepthAtPos(l.Body, p.Sub)
		}
		left, _, ok := binaryChildren(i)
		if !ok {
			panic(fmt.Sprintf("syntax: position descends left into non-binary node %T", i))
		}
		return LoopDepthAtPos(left, p.Sub)
	case position.Right:
		_, right, ok := binaryChildren(i)
		if !ok {
			panic(fmt.Sprintf("syntax: position descends right into non-binary node %T", i))
		}
		return LoopDepthAtPos(right, p.Sub)
	default:
		panic(fmt.Sprintf("syntax: unknown position variant %T", pos))
	}
}
