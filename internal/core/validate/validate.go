// Package validate implements the one boundary the core owns: rejecting
// an interaction term or multi-trace that does not fit the Context it is
// presented against, before any exploration starts.
package validate

import (
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
)

// Interaction walks i and reports an *context.InvalidASTError if it
// references a lifeline, message or gate id unknown to ctx.
func Interaction(ctx *context.Context, i syntax.Interaction) error {
	lfNum := ctx.LifelineCount()
	msNum := ctx.MessageCount()
	gtNum := ctx.GateCount()
	return walkInteraction(i, lfNum, msNum, gtNum)
}

func walkInteraction(i syntax.Interaction, lfNum, msNum, gtNum int) error {
	switch v := i.(type) {
	case *syntax.Empty:
		return nil
	case *syntax.Emission:
		if int(v.Origin) >= lfNum {
			return &context.InvalidASTError{Reason: "emission references unknown origin lifeline"}
		}
		if int(v.Message) >= msNum {
			return &context.InvalidASTError{Reason: "emission references unknown message"}
		}
		for _, t := range v.Targets {
			if t.IsLifeline() && int(t.LfID) >= lfNum {
				return &context.InvalidASTError{Reason: "emission references unknown target lifeline"}
			}
			if !t.IsLifeline() && int(t.GtID) >= gtNum {
				return &context.InvalidASTError{Reason: "emission references unknown target gate"}
			}
		}
		return nil
	case *syntax.Reception:
		if int(v.Message) >= msNum {
			return &context.InvalidASTError{Reason: "reception references unknown message"}
		}
		if v.HasGate && int(v.Gate) >= gtNum {
			return &context.InvalidASTError{Reason: "reception references unknown gate"}
		}
		for _, lf := range v.Recipients {
			if int(lf) >= lfNum {
				return &context.InvalidASTError{Reason: "reception references unknown recipient lifeline"}
			}
		}
		return nil
	case *syntax.Strict:
		return both(v.Left, v.Right, lfNum, msNum, gtNum)
	case *syntax.Seq:
		return both(v.Left, v.Right, lfNum, msNum, gtNum)
	case *syntax.Par:
		return both(v.Left, v.Right, lfNum, msNum, gtNum)
	case *syntax.Alt:
		return both(v.Left, v.Right, lfNum, msNum, gtNum)
	case *syntax.And:
		return both(v.Left, v.Right, lfNum, msNum, gtNum)
	case *syntax.CoReg:
		for lf := range v.Lifelines {
			if int(lf) >= lfNum {
				return &context.InvalidASTError{Reason: "coregion references unknown lifeline"}
			}
		}
		return both(v.Left, v.Right, lfNum, msNum, gtNum)
	case *syntax.Sync:
		for a := range v.Actions {
			if int(a.LfID) >= lfNum {
				return &context.InvalidASTError{Reason: "sync references unknown lifeline"}
			}
			if int(a.MsID) >= msNum {
				return &context.InvalidASTError{Reason: "sync references unknown message"}
			}
		}
		return both(v.Left, v.Right, lfNum, msNum, gtNum)
	case *syntax.Loop:
		return walkInteraction(v.Body, lfNum, msNum, gtNum)
	default:
		return &context.InvalidASTError{Reason: "unknown interaction variant"}
	}
}

func both(l, r syntax.Interaction, lfNum, msNum, gtNum int) error {
	if err := walkInteraction(l, lfNum, msNum, gtNum); err != nil {
		return err
	}
	return walkInteraction(r, lfNum, msNum, gtNum)
}

// MultiTrace reports an *context.InvalidMultiTraceError if mt has a
// different number of canals than colocs, or a canal's lifeline set does
// not match the colocalization it is indexed against.
func MultiTrace(colocs context.CoLocalizations, mt trace.Analysable) error {
	if len(colocs) != len(mt.Canals) {
		return &context.InvalidMultiTraceError{Reason: "multi-trace canal count does not match colocalization count"}
	}
	for idx, coloc := range colocs {
		canal := mt.Canals[idx]
		if len(coloc) != len(canal.Lifelines) {
			return &context.InvalidMultiTraceError{Reason: "canal lifeline set does not match its colocalization"}
		}
		for lf := range coloc {
			if _, ok := canal.Lifelines[lf]; !ok {
				return &context.InvalidMultiTraceError{Reason: "canal lifeline set does not match its colocalization"}
			}
		}
	}
	return nil
}
