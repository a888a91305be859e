package syntax

import (
	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
)

// IsEmpty reports whether i is the Empty leaf.
func IsEmpty(i Interaction) bool {
	_, ok := i.(*Empty)
	return ok
}

// NewStrict applies the empty-identity law (Strict(Empty,R)=R,
// Strict(L,Empty)=L) when constructing a Strict node.
func NewStrict(l, r Interaction) Interaction {
	if IsEmpty(l) {
		return r
	}
	if IsEmpty(r) {
		return l
	}
	return &Strict{Left: l, Right: r}
}

// NewSeq applies the empty-identity law when constructing a Seq node.
func NewSeq(l, r Interaction) Interaction {
	if IsEmpty(l) {
		return r
	}
	if IsEmpty(r) {
		return l
	}
	return &Seq{Left: l, Right: r}
}

// NewPar applies the empty-identity law when constructing a Par node.
func NewPar(l, r Interaction) Interaction {
	if IsEmpty(l) {
		return r
	}
	if IsEmpty(r) {
		return l
	}
	return &Par{Left: l, Right: r}
}

// NewAnd applies the empty-identity law when constructing an And node.
func NewAnd(l, r Interaction) Interaction {
	if IsEmpty(l) {
		return r
	}
	if IsEmpty(r) {
		return l
	}
	return &And{Left: l, Right: r}
}

// NewAlt never collapses on Empty children: a choice between doing
// nothing and doing something is a real choice, not an identity.
func NewAlt(l, r Interaction) Interaction {
	return &Alt{Left: l, Right: r}
}

// NewCoReg applies the empty-identity law, and additionally degenerates
// to Seq once its coregion lifeline set is empty (a CoReg exempting no
// lifeline from ordering is exactly weak sequencing).
func NewCoReg(lifelines map[context.LfID]struct{}, l, r Interaction) Interaction {
	if IsEmpty(l) {
		return r
	}
	if IsEmpty(r) {
		return l
	}
	if len(lifelines) == 0 {
		return &Seq{Left: l, Right: r}
	}
	return &CoReg{Lifelines: lifelines, Left: l, Right: r}
}

// NewSync applies the empty-identity law when constructing a Sync node:
// once one side is Empty, the forced rendezvous is moot and the surviving
// side continues on its own.
func NewSync(acts map[action.TraceAction]struct{}, l, r Interaction) Interaction {
	if IsEmpty(l) {
		return r
	}
	if IsEmpty(r) {
		return l
	}
	return &Sync{Actions: acts, Left: l, Right: r}
}

// NewLoop applies the Loop(_,Empty)=Empty law and flattens nested loops,
// keeping the stricter of the two kinds.
func NewLoop(kind LoopKind, body Interaction) Interaction {
	if IsEmpty(body) {
		return &Empty{}
	}
	if inner, ok := body.(*Loop); ok {
		return &Loop{Kind: MinKind(kind, inner.Kind), Body: inner.Body}
	}
	return &Loop{Kind: kind, Body: body}
}
