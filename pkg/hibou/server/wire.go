package server

import (
	"fmt"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
)

// wireInteraction is the JSON-over-the-wire shape of an Interaction: one
// tagged struct with the fields relevant to Kind populated, the rest left
// zero. This is a boundary encoding only — the core itself never sees it.
type wireInteraction struct {
	Kind string `json:"kind"`

	// Emission / Reception
	Origin     uint32   `json:"origin,omitempty"`
	Message    uint32   `json:"message"`
	Targets    []uint32 `json:"targets,omitempty"`    // lifeline ids
	Gate       uint32   `json:"gate,omitempty"`
	HasGate    bool     `json:"hasGate,omitempty"`
	Recipients []uint32 `json:"recipients,omitempty"`

	// Binary node children
	Left  *wireInteraction `json:"left,omitempty"`
	Right *wireInteraction `json:"right,omitempty"`

	// CoReg / Sync
	Lifelines []uint32     `json:"lifelines,omitempty"`
	Actions   []wireAction `json:"actions,omitempty"`

	// Loop
	LoopKind string           `json:"loopKind,omitempty"`
	Body     *wireInteraction `json:"body,omitempty"`
}

type wireAction struct {
	Lifeline uint32 `json:"lifeline"`
	Kind     string `json:"kind"` // "!" or "?"
	Message  uint32 `json:"message"`
}

func toWireInteraction(i syntax.Interaction) *wireInteraction {
	switch v := i.(type) {
	case *syntax.Empty:
		return &wireInteraction{Kind: "empty"}
	case *syntax.Emission:
		targets := make([]uint32, 0, len(v.Targets))
		for _, t := range v.Targets {
			if t.IsLifeline() {
				targets = append(targets, uint32(t.LfID))
			}
		}
		return &wireInteraction{Kind: "emission", Origin: uint32(v.Origin), Message: uint32(v.Message), Targets: targets}
	case *syntax.Reception:
		recipients := make([]uint32, 0, len(v.Recipients))
		for _, lf := range v.Recipients {
			recipients = append(recipients, uint32(lf))
		}
		return &wireInteraction{Kind: "reception", Message: uint32(v.Message), Gate: uint32(v.Gate), HasGate: v.HasGate, Recipients: recipients}
	case *syntax.Strict:
		return &wireInteraction{Kind: "strict", Left: toWireInteraction(v.Left), Right: toWireInteraction(v.Right)}
	case *syntax.Seq:
		return &wireInteraction{Kind: "seq", Left: toWireInteraction(v.Left), Right: toWireInteraction(v.Right)}
	case *syntax.Par:
		return &wireInteraction{Kind: "par", Left: toWireInteraction(v.Left), Right: toWireInteraction(v.Right)}
	case *syntax.Alt:
		return &wireInteraction{Kind: "alt", Left: toWireInteraction(v.Left), Right: toWireInteraction(v.Right)}
	case *syntax.And:
		return &wireInteraction{Kind: "and", Left: toWireInteraction(v.Left), Right: toWireInteraction(v.Right)}
	case *syntax.CoReg:
		return &wireInteraction{Kind: "coreg", Lifelines: lfSetToSlice(v.Lifelines), Left: toWireInteraction(v.Left), Right: toWireInteraction(v.Right)}
	case *syntax.Sync:
		acts := make([]wireAction, 0, len(v.Actions))
		for a := range v.Actions {
			acts = append(acts, wireAction{Lifeline: uint32(a.LfID), Kind: a.Kind.String(), Message: uint32(a.MsID)})
		}
		return &wireInteraction{Kind: "sync", Actions: acts, Left: toWireInteraction(v.Left), Right: toWireInteraction(v.Right)}
	case *syntax.Loop:
		return &wireInteraction{Kind: "loop", LoopKind: v.Kind.String(), Body: toWireInteraction(v.Body)}
	default:
		return &wireInteraction{Kind: "empty"}
	}
}

func lfSetToSlice(s map[context.LfID]struct{}) []uint32 {
	out := make([]uint32, 0, len(s))
	for lf := range s {
		out = append(out, uint32(lf))
	}
	return out
}

func (w *wireInteraction) toInteraction() (syntax.Interaction, error) {
	if w == nil {
		return &syntax.Empty{}, nil
	}
	switch w.Kind {
	case "empty":
		return &syntax.Empty{}, nil
	case "emission":
		targets := make([]action.Target, 0, len(w.Targets))
		for _, lf := range w.Targets {
			targets = append(targets, action.Target{TargetKind: action.TargetLifeline, LfID: context.LfID(lf)})
		}
		return &syntax.Emission{Emission: action.Emission{Origin: context.LfID(w.Origin), Message: context.MsID(w.Message), Targets: targets}}, nil
	case "reception":
		recipients := make([]context.LfID, 0, len(w.Recipients))
		for _, lf := range w.Recipients {
			recipients = append(recipients, context.LfID(lf))
		}
		return &syntax.Reception{Reception: action.Reception{Gate: context.GtID(w.Gate), HasGate: w.HasGate, Message: context.MsID(w.Message), Recipients: recipients}}, nil
	case "strict", "seq", "par", "alt", "and":
		left, err := w.Left.toInteraction()
		if err != nil {
			return nil, err
		}
		right, err := w.Right.toInteraction()
		if err != nil {
			return nil, err
		}
		switch w.Kind {
		case "strict":
			return syntax.NewStrict(left, right), nil
		case "seq":
			return syntax.NewSeq(left, right), nil
		case "par":
			return syntax.NewPar(left, right), nil
		case "alt":
			return syntax.NewAlt(left, right), nil
		default:
			return syntax.NewAnd(left, right), nil
		}
	case "coreg":
		left, err := w.Left.toInteraction()
		if err != nil {
			return nil, err
		}
		right, err := w.Right.toInteraction()
		if err != nil {
			return nil, err
		}
		return syntax.NewCoReg(toLfSet(w.Lifelines), left, right), nil
	case "sync":
		left, err := w.Left.toInteraction()
		if err != nil {
			return nil, err
		}
		right, err := w.Right.toInteraction()
		if err != nil {
			return nil, err
		}
		acts := map[action.TraceAction]struct{}{}
		for _, a := range w.Actions {
			kind := action.KindEmission
			if a.Kind == "?" {
				kind = action.KindReception
			}
			acts[action.TraceAction{LfID: context.LfID(a.Lifeline), Kind: kind, MsID: context.MsID(a.Message)}] = struct{}{}
		}
		return syntax.NewSync(acts, left, right), nil
	case "loop":
		body, err := w.Body.toInteraction()
		if err != nil {
			return nil, err
		}
		kind, err := parseLoopKind(w.LoopKind)
		if err != nil {
			return nil, err
		}
		return syntax.NewLoop(kind, body), nil
	default:
		return nil, fmt.Errorf("unknown interaction kind %q", w.Kind)
	}
}

func toLfSet(ids []uint32) map[context.LfID]struct{} {
	out := make(map[context.LfID]struct{}, len(ids))
	for _, id := range ids {
		out[context.LfID(id)] = struct{}{}
	}
	return out
}

func parseLoopKind(s string) (syntax.LoopKind, error) {
	switch s {
	case "strict":
		return syntax.LoopStrict, nil
	case "headFirstWeakSeq":
		return syntax.LoopHeadFirstWeakSeq, nil
	case "weakSeq":
		return syntax.LoopWeakSeq, nil
	case "interleaving":
		return syntax.LoopInterleaving, nil
	default:
		return 0, fmt.Errorf("unknown loop kind %q", s)
	}
}

// wireMultiTrace is the JSON-over-the-wire shape of a multi-trace: one
// canal per colocalization, each an ordered list of action-sets.
type wireMultiTrace struct {
	Canals       [][]wireAction `json:"canals"`
	RemLoopInSim int            `json:"remLoopInSim"`
	RemActInSim  int            `json:"remActInSim"`
}

func toWireActions(set trace.ActionSet) []wireAction {
	out := make([]wireAction, 0, len(set))
	for a := range set {
		out = append(out, wireAction{Lifeline: uint32(a.LfID), Kind: a.Kind.String(), Message: uint32(a.MsID)})
	}
	return out
}

func (w wireMultiTrace) toAnalysable(colocs context.CoLocalizations) (trace.Analysable, error) {
	if len(w.Canals) != len(colocs) {
		return trace.Analysable{}, fmt.Errorf("multi-trace has %d canals, colocalizations name %d", len(w.Canals), len(colocs))
	}
	canals := make([]trace.Canal, len(w.Canals))
	for idx, wcanal := range w.Canals {
		tr := make(trace.Trace, 0, len(wcanal))
		for _, wa := range wcanal {
			kind := action.KindEmission
			if wa.Kind == "?" {
				kind = action.KindReception
			}
			tr = append(tr, trace.ActionSet{
				action.TraceAction{LfID: context.LfID(wa.Lifeline), Kind: kind, MsID: context.MsID(wa.Message)}: {},
			})
		}
		lifelines := make(map[context.LfID]struct{}, len(colocs[idx]))
		for lf := range colocs[idx] {
			lifelines[lf] = struct{}{}
		}
		canals[idx] = trace.Canal{Lifelines: lifelines, Trace: tr, Dirty4Local: true}
	}
	return trace.Analysable{Canals: canals, RemLoopInSim: w.RemLoopInSim, RemActInSim: w.RemActInSim}, nil
}
