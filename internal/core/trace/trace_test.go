package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/trace"
)

func act(lf context.LfID, kind action.Kind, ms context.MsID) action.TraceAction {
	return action.TraceAction{LfID: lf, Kind: kind, MsID: ms}
}

func TestHeadActionsUnionsAcrossCanals(t *testing.T) {
	mt := trace.Analysable{
		Canals: []trace.Canal{
			{Lifelines: map[context.LfID]struct{}{0: {}}, Trace: trace.Trace{{act(0, action.KindEmission, 0): {}}}},
			{Lifelines: map[context.LfID]struct{}{1: {}}, Trace: trace.Trace{{act(1, action.KindReception, 0): {}}}},
		},
	}
	head := mt.HeadActions()
	assert.Len(t, head, 2)
}

func TestUpdateOnExecutionConsumesMatchedActionOnly(t *testing.T) {
	a0 := act(0, action.KindEmission, 0)
	mt := trace.Analysable{
		Canals: []trace.Canal{
			{Lifelines: map[context.LfID]struct{}{0: {}}, Trace: trace.Trace{{a0: {}}}},
		},
	}
	out := mt.UpdateOnExecution(map[context.LfID]struct{}{0: {}}, []action.TraceAction{a0})
	assert.Len(t, out.Canals[0].Trace, 0)
	assert.Equal(t, uint32(1), out.Canals[0].Consumed)
	assert.True(t, out.Canals[0].Dirty4Local)
}

func TestUpdateOnExecutionLeavesUnaffectedCanalsAlone(t *testing.T) {
	a0 := act(0, action.KindEmission, 0)
	a1 := act(1, action.KindEmission, 0)
	mt := trace.Analysable{
		Canals: []trace.Canal{
			{Lifelines: map[context.LfID]struct{}{0: {}}, Trace: trace.Trace{{a0: {}}}},
			{Lifelines: map[context.LfID]struct{}{1: {}}, Trace: trace.Trace{{a1: {}}}},
		},
	}
	out := mt.UpdateOnExecution(map[context.LfID]struct{}{0: {}}, []action.TraceAction{a0})
	assert.Len(t, out.Canals[1].Trace, 1)
	assert.False(t, out.Canals[1].Dirty4Local)
}

func TestIsAnyComponentEmptyIgnoresHidden(t *testing.T) {
	mt := trace.Analysable{
		Canals: []trace.Canal{
			{Hidden: true, Trace: nil},
			{Hidden: false, Trace: trace.Trace{{}}},
		},
	}
	assert.False(t, mt.IsAnyComponentEmpty())
}

func TestUpdateOnHideMarksFullySubsetCanals(t *testing.T) {
	mt := trace.Analysable{
		Canals: []trace.Canal{
			{Lifelines: map[context.LfID]struct{}{0: {}}},
			{Lifelines: map[context.LfID]struct{}{1: {}}},
		},
	}
	out := mt.UpdateOnHide(map[context.LfID]struct{}{0: {}})
	assert.True(t, out.Canals[0].Hidden)
	assert.False(t, out.Canals[1].Hidden)
}

func TestUpdateOnSimulationChargesBudgets(t *testing.T) {
	mt := trace.Analysable{
		Canals: []trace.Canal{
			{Lifelines: map[context.LfID]struct{}{0: {}}, Trace: nil},
		},
		RemLoopInSim: 3,
		RemActInSim:  5,
	}
	out := mt.UpdateOnSimulation(map[context.LfID]trace.SimKind{0: trace.SimAfterEnd}, 1)
	assert.Equal(t, uint32(1), out.Canals[0].SimulatedAfter)
	assert.Equal(t, 2, out.RemLoopInSim)
	assert.Equal(t, 4, out.RemActInSim)
}
