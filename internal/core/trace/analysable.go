package trace

import (
	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
)

// Canal is one colocalization's view of the multi-trace: the lifelines it
// covers, its remaining trace, and the bookkeeping flags the analysis
// driver updates as actions are consumed, hidden or simulated.
type Canal struct {
	Lifelines        map[context.LfID]struct{}
	Trace            Trace
	Hidden           bool
	Dirty4Local      bool
	Consumed         uint32
	SimulatedBefore  uint32
	SimulatedAfter   uint32
	NoLongerObserved bool
}

func (c Canal) cloneShallow() Canal {
	return Canal{
		Lifelines:        c.Lifelines,
		Trace:            c.Trace,
		Hidden:           c.Hidden,
		Dirty4Local:      c.Dirty4Local,
		Consumed:         c.Consumed,
		SimulatedBefore:  c.SimulatedBefore,
		SimulatedAfter:   c.SimulatedAfter,
		NoLongerObserved: c.NoLongerObserved,
	}
}

// Analysable is the multi-trace an analysis node carries: one Canal per
// colocalization, plus the two per-node simulation budgets.
type Analysable struct {
	Canals       []Canal
	RemLoopInSim int
	RemActInSim  int
}

// Length returns the total number of un-consumed action-sets across every
// canal.
func (m Analysable) Length() int {
	n := 0
	for _, c := range m.Canals {
		n += len(c.Trace)
	}
	return n
}

// IsAnyComponentEmpty reports whether some non-hidden canal has no
// remaining trace.
func (m Analysable) IsAnyComponentEmpty() bool {
	for _, c := range m.Canals {
		if !c.Hidden && len(c.Trace) == 0 {
			return true
		}
	}
	return false
}

// IsAnyComponentHidden reports whether any canal has been hidden.
func (m Analysable) IsAnyComponentHidden() bool {
	for _, c := range m.Canals {
		if c.Hidden {
			return true
		}
	}
	return false
}

// HeadActions returns the union of every canal's next action-set — the
// set of actions currently observable at the multi-trace's head.
func (m Analysable) HeadActions() map[action.TraceAction]struct{} {
	out := map[action.TraceAction]struct{}{}
	for _, c := range m.Canals {
		for act := range c.Trace.Head() {
			out[act] = struct{}{}
		}
	}
	return out
}

// UpdateOnExecution consumes a plain (non-simulated) match: every canal
// whose lifelines intersect affectedLfIDs has its matched actions removed
// from its head action-set (and the action-set dropped once empty), and
// its consumed counter incremented.
func (m Analysable) UpdateOnExecution(affectedLfIDs map[context.LfID]struct{}, executed []action.TraceAction) Analysable {
	out := Analysable{Canals: make([]Canal, len(m.Canals)), RemLoopInSim: m.RemLoopInSim, RemActInSim: m.RemActInSim}
	executedSet := make(map[action.TraceAction]struct{}, len(executed))
	for _, a := range executed {
		executedSet[a] = struct{}{}
	}
	for idx, c := range m.Canals {
		nc := c.cloneShallow()
		if intersects(c.Lifelines, affectedLfIDs) && len(c.Trace) > 0 {
			head := c.Trace.Head()
			remaining := ActionSet{}
			matched := false
			for act := range head {
				if _, ok := executedSet[act]; ok {
					matched = true
					continue
				}
				remaining[act] = struct{}{}
			}
			if matched {
				nc.Consumed = c.Consumed + 1
				if len(remaining) == 0 {
					nc.Trace = c.Trace.Tail()
				} else {
					newTrace := make(Trace, len(c.Trace))
					copy(newTrace, c.Trace)
					newTrace[0] = remaining
					nc.Trace = newTrace
				}
				nc.Dirty4Local = true
			}
		}
		out.Canals[idx] = nc
	}
	return out
}

// UpdateOnHide marks every canal wholly contained in lifelinesToHide as
// hidden and no longer observed, per projection.HideLifelines.
func (m Analysable) UpdateOnHide(lifelinesToHide map[context.LfID]struct{}) Analysable {
	out := Analysable{Canals: make([]Canal, len(m.Canals)), RemLoopInSim: m.RemLoopInSim, RemActInSim: m.RemActInSim}
	for idx, c := range m.Canals {
		nc := c.cloneShallow()
		if subsetOf(c.Lifelines, lifelinesToHide) {
			nc.Hidden = true
			nc.NoLongerObserved = true
		}
		out.Canals[idx] = nc
	}
	return out
}

// UpdateOnSimulation records a step that simulates (skips past) missing
// actions on some canals per simPerLifeline: it bumps those canals'
// simulated-before/after counters and decrements the simulation budgets
// by the loop depth unrolled to reach this step (and by one action). It
// removes nothing from any trace; plainly matched actions are consumed
// separately by UpdateOnExecution.
func (m Analysable) UpdateOnSimulation(simPerLifeline map[context.LfID]SimKind, loopDepthUnrolled int) Analysable {
	out := m.UpdateOnExecution(allLifelinesOf(simPerLifeline), nil)
	for idx, c := range out.Canals {
		kind, ok := lookupAny(simPerLifeline, c.Lifelines)
		if !ok {
			continue
		}
		nc := c
		switch kind {
		case SimBeforeStart:
			nc.SimulatedBefore = c.SimulatedBefore + 1
		case SimAfterEnd:
			nc.SimulatedAfter = c.SimulatedAfter + 1
		}
		nc.Dirty4Local = true
		out.Canals[idx] = nc
	}
	out.RemLoopInSim = m.RemLoopInSim - loopDepthUnrolled
	out.RemActInSim = m.RemActInSim - 1
	return out
}

func intersects(a, b map[context.LfID]struct{}) bool {
	for lf := range a {
		if _, ok := b[lf]; ok {
			return true
		}
	}
	return false
}

func subsetOf(small, big map[context.LfID]struct{}) bool {
	for lf := range small {
		if _, ok := big[lf]; !ok {
			return false
		}
	}
	return true
}

func allLifelinesOf(m map[context.LfID]SimKind) map[context.LfID]struct{} {
	out := make(map[context.LfID]struct{}, len(m))
	for lf := range m {
		out[lf] = struct{}{}
	}
	return out
}

func lookupAny(m map[context.LfID]SimKind, lfs map[context.LfID]struct{}) (SimKind, bool) {
	for lf := range lfs {
		if k, ok := m[lf]; ok {
			return k, true
		}
	}
	return 0, false
}
