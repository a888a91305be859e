// Package locana implements the local-analysis short-circuit of §4.5: a
// nested, single-colocalization analysis run used to prune the global
// search as soon as some canal's own projection already fails.
//
// This depends on ana rather than ana depending back on it: ana.Analyze
// accepts a pluggable ana.LocalAnalyzer hook (this package's Check) so
// the two can cooperate without the mutual package recursion the
// original single-crate implementation relied on (local_analysis.rs
// calls back into its own crate's analysis entry point; Go forbids
// import cycles between packages).
package locana

import (
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/projection"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
	"github.com/rfielding/hibou/internal/core/verdict"
	"github.com/rfielding/hibou/internal/process/abstract"
	"github.com/rfielding/hibou/internal/process/ana"
)

var weakPassGoal = verdict.Global{Kind: verdict.WeakPass}

// Check is an ana.LocalAnalyzer: it inspects every dirty, non-empty
// canal of node, running a nested single-colocalization analysis on its
// projection. The first canal whose nested run resolves to Fail or
// WeakFail is reported back to the caller so the driver can terminate
// that branch early instead of expanding it in full.
func Check(ctx *context.Context, colocs context.CoLocalizations, node ana.NodeKind, opts ana.Options) (trace.Analysable, int, verdict.Local, bool) {
	mt := node.MultiTrace
	canals := make([]trace.Canal, len(mt.Canals))
	copy(canals, mt.Canals)

	for idx := range canals {
		canal := canals[idx]
		if !canal.Dirty4Local || len(canal.Trace) == 0 {
			continue
		}

		keep := canal.Lifelines
		toEliminate := complement(keep, syntax.Lifelines(node.Interaction))
		projInteraction := projection.EliminateLifelines(node.Interaction, toEliminate)
		projMT := trace.Analysable{
			Canals:       []trace.Canal{canal},
			RemLoopInSim: mt.RemLoopInSim,
			RemActInSim:  mt.RemActInSim,
		}
		projColocs := context.CoLocalizations{colocs[idx]}

		innerKind := ana.KindPrefix
		if opts.Kind == ana.KindSimulate && opts.SimBefore {
			innerKind = ana.KindSimulate
		}

		innerOpts := ana.Options{
			Strategy:         abstract.HCS,
			Kind:             innerKind,
			SimBefore:        opts.SimBefore,
			Priorities:       ana.Priorities{},
			Goal:             &weakPassGoal,
			UseLocalAnalysis: false,
		}

		res, err := ana.Analyze(ctx, projColocs, projInteraction, projMT, innerOpts)
		if err != nil {
			canal.Dirty4Local = false
			canals[idx] = canal
			continue
		}

		if res.Verdict.Kind == verdict.Fail || res.Verdict.Kind == verdict.WeakFail {
			var lv verdict.Local
			switch {
			case opts.Kind == ana.KindSimulate && !opts.SimBefore && len(colocs) > 1:
				// The per-colocalization projection's soundness argument
				// only holds when sim_before lets the nested run account
				// for actions straddling the colocalization boundary; with
				// sim_before disabled and more than one colocalization in
				// play, the short-circuit can no longer stand in for the
				// global verdict.
				lv = verdict.NewInconc(verdict.LifelineRemovalWithColocalizations)
			case opts.Kind == ana.KindSimulate:
				lv = verdict.NewOutSim(true)
			default:
				lv = verdict.NewOut(true)
			}
			updated := trace.Analysable{Canals: canals, RemLoopInSim: mt.RemLoopInSim, RemActInSim: mt.RemActInSim}
			return updated, idx, lv, true
		}

		canal.Dirty4Local = false
		canals[idx] = canal
	}

	updated := trace.Analysable{Canals: canals, RemLoopInSim: mt.RemLoopInSim, RemActInSim: mt.RemActInSim}
	return updated, 0, verdict.Local{}, false
}

func complement(keep, all map[context.LfID]struct{}) map[context.LfID]struct{} {
	out := map[context.LfID]struct{}{}
	for lf := range all {
		if _, ok := keep[lf]; !ok {
			out[lf] = struct{}{}
		}
	}
	return out
}
