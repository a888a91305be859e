// Package action holds the atomic, lifeline-local facts an interaction
// term's leaves are built from and that a multi-trace records: which kind
// of action occurred, on which lifeline, carrying which message.
package action

import (
	"fmt"

	"github.com/rfielding/hibou/internal/core/context"
)

// Kind distinguishes the two atomic action kinds a lifeline's trace is
// made of.
type Kind int

const (
	// KindEmission is a message send observed at its origin lifeline.
	KindEmission Kind = iota
	// KindReception is a message receipt observed at a recipient lifeline.
	KindReception
)

func (k Kind) String() string {
	switch k {
	case KindEmission:
		return "!"
	case KindReception:
		return "?"
	default:
		return "?!"
	}
}

// TraceAction is one atomic, lifeline-local fact: lifeline lf did kind on
// message ms. This is the unit a trace canal is a sequence of, and the
// unit a frontier element or an execute result reports as consumed.
type TraceAction struct {
	LfID context.LfID
	Kind Kind
	MsID context.MsID
}

func (a TraceAction) String() string {
	return fmt.Sprintf("lf%d%sms%d", a.LfID, a.Kind, a.MsID)
}

// TargetKind distinguishes a message target that stays inside the system
// (a lifeline) from one that crosses the system boundary (a gate).
type TargetKind int

const (
	TargetLifeline TargetKind = iota
	TargetGate
)

// Target is a single emission/reception endpoint reference.
type Target struct {
	TargetKind TargetKind
	LfID       context.LfID
	GtID       context.GtID
}

// IsLifeline reports whether this target resolves to a lifeline.
func (t Target) IsLifeline() bool { return t.TargetKind == TargetLifeline }

// Emission is the leaf data of an interaction term's Emission variant: a
// message ms sent from Origin, nominally destined for Targets (lifelines
// and/or gates). Only Origin is consumed when this leaf fires — pending
// Targets lifelines are expected to be modeled as separate, explicit
// Reception leaves elsewhere in the term (see syntax.Emission doc comment).
type Emission struct {
	Origin  context.LfID
	Message context.MsID
	Targets []Target
}

// Reception is the leaf data of an interaction term's Reception variant:
// message ms arriving at each of Recipients, optionally sent through Gate
// (the zero GtID with HasGate=false models a reception with no named
// gate, matching an internal/unspecified-origin emission).
type Reception struct {
	Gate       context.GtID
	HasGate    bool
	Message    context.MsID
	Recipients []context.LfID
}

// OccupationAfter returns the lifelines this leaf still holds after it is
// fully expressed — used by avoids/involves to decide whether a lifeline
// is still "live" inside a subterm.
func (e Emission) OccupationAfter() map[context.LfID]struct{} {
	out := map[context.LfID]struct{}{e.Origin: {}}
	for _, t := range e.Targets {
		if t.IsLifeline() {
			out[t.LfID] = struct{}{}
		}
	}
	return out
}

// OccupationAfter returns the recipient lifelines of this reception.
func (r Reception) OccupationAfter() map[context.LfID]struct{} {
	out := make(map[context.LfID]struct{}, len(r.Recipients))
	for _, lf := range r.Recipients {
		out[lf] = struct{}{}
	}
	return out
}

// ExpressEmpty reports whether this leaf, on its own, is equivalent to the
// empty interaction (true only for a reception with no recipients left).
func (e Emission) ExpressEmpty() bool { return false }

// ExpressEmpty reports whether this reception leaf has nothing left to
// receive.
func (r Reception) ExpressEmpty() bool { return len(r.Recipients) == 0 }

// FrontierActions returns the TraceActions this leaf would contribute to
// a frontier element if fired in its entirety.
func (e Emission) FrontierActions() []TraceAction {
	return []TraceAction{{LfID: e.Origin, Kind: KindEmission, MsID: e.Message}}
}

// FrontierActions returns the TraceActions this leaf would contribute to
// a frontier element if fired in its entirety.
func (r Reception) FrontierActions() []TraceAction {
	out := make([]TraceAction, 0, len(r.Recipients))
	for _, lf := range r.Recipients {
		out = append(out, TraceAction{LfID: lf, Kind: KindReception, MsID: r.Message})
	}
	return out
}
