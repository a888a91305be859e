package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
)

func TestWireInteractionRoundTripsStrictOfEmissionAndReception(t *testing.T) {
	i := syntax.NewStrict(
		&syntax.Emission{Emission: action.Emission{Origin: 1, Message: 2}},
		&syntax.Reception{Reception: action.Reception{Message: 2, Recipients: []context.LfID{3}}},
	)
	w := toWireInteraction(i)
	assert.Equal(t, "strict", w.Kind)

	back, err := w.toInteraction()
	require.NoError(t, err)
	assert.True(t, syntax.Equal(i, back))
}

func TestWireInteractionRoundTripsLoop(t *testing.T) {
	i := syntax.NewLoop(syntax.LoopWeakSeq, &syntax.Emission{Emission: action.Emission{Origin: 1, Message: 0}})
	w := toWireInteraction(i)
	assert.Equal(t, "loop", w.Kind)
	assert.Equal(t, "weakSeq", w.LoopKind)

	back, err := w.toInteraction()
	require.NoError(t, err)
	assert.True(t, syntax.Equal(i, back))
}

func TestWireInteractionUnknownKindErrors(t *testing.T) {
	w := &wireInteraction{Kind: "bogus"}
	_, err := w.toInteraction()
	assert.Error(t, err)
}

func TestWireMultiTraceToAnalysableRejectsCanalCountMismatch(t *testing.T) {
	colocs := context.CoLocalizations{{1: {}}, {2: {}}}
	w := wireMultiTrace{Canals: [][]wireAction{{}}}
	_, err := w.toAnalysable(colocs)
	assert.Error(t, err)
}

func TestWireMultiTraceToAnalysableBuildsOneCanalPerColocalization(t *testing.T) {
	colocs := context.CoLocalizations{{1: {}}}
	w := wireMultiTrace{Canals: [][]wireAction{{{Lifeline: 1, Kind: "!", Message: 5}}}, RemLoopInSim: 2}
	mt, err := w.toAnalysable(colocs)
	require.NoError(t, err)
	require.Len(t, mt.Canals, 1)
	assert.Len(t, mt.Canals[0].Trace, 1)
	assert.Equal(t, 2, mt.RemLoopInSim)

	var got action.TraceAction
	for a := range mt.Canals[0].Trace[0] {
		got = a
	}
	assert.Equal(t, action.TraceAction{LfID: 1, Kind: action.KindEmission, MsID: 5}, got)
}

func TestToWireActionsCoversEveryMemberOfTheSet(t *testing.T) {
	set := trace.ActionSet{
		{LfID: 1, Kind: action.KindEmission, MsID: 0}: {},
		{LfID: 2, Kind: action.KindReception, MsID: 0}: {},
	}
	assert.Len(t, toWireActions(set), 2)
}
