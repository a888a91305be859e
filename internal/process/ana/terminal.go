package ana

import (
	"github.com/rfielding/hibou/internal/core/semantics"
	"github.com/rfielding/hibou/internal/core/trace"
	"github.com/rfielding/hibou/internal/core/verdict"
)

// terminalVerdict assigns the local verdict of a node with no further
// children, per §4.4.4's table.
func terminalVerdict(node NodeKind, kind Kind) verdict.Local {
	allEmpty := allComponentsEmpty(node.MultiTrace)
	exprEmpty := semantics.ExpressEmpty(node.Interaction)
	usedAfterEnd, usedBeforeStart := simulationUsage(node.MultiTrace)

	if allEmpty {
		switch {
		case exprEmpty && !usedAfterEnd && !usedBeforeStart:
			return verdict.Local{Kind: verdict.Cov}
		case exprEmpty && usedAfterEnd && !usedBeforeStart:
			return verdict.Local{Kind: verdict.TooShort}
		case exprEmpty && usedBeforeStart:
			return verdict.Local{Kind: verdict.Slice}
		case kind == KindPrefix:
			// Under the prefix relation, running out of trace before the
			// interaction finishes is not a mismatch: the multi-trace is
			// simply too short to exercise the rest of the term.
			return verdict.Local{Kind: verdict.TooShort}
		default:
			return verdict.NewOutAccept(false)
		}
	}

	if kind == KindSimulate {
		return verdict.NewOutSim(false)
	}
	return verdict.NewOut(false)
}

func allComponentsEmpty(mt trace.Analysable) bool {
	for _, c := range mt.Canals {
		if c.Hidden {
			continue
		}
		if len(c.Trace) != 0 {
			return false
		}
	}
	return true
}

func simulationUsage(mt trace.Analysable) (usedAfterEnd, usedBeforeStart bool) {
	for _, c := range mt.Canals {
		if c.SimulatedAfter > 0 {
			usedAfterEnd = true
		}
		if c.SimulatedBefore > 0 {
			usedBeforeStart = true
		}
	}
	return
}
