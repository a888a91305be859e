package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
)

func TestKindStringsAreTerse(t *testing.T) {
	assert.Equal(t, "!", action.KindEmission.String())
	assert.Equal(t, "?", action.KindReception.String())
}

func TestTraceActionStringFormat(t *testing.T) {
	a := action.TraceAction{LfID: 2, Kind: action.KindReception, MsID: 7}
	assert.Equal(t, "lf2?ms7", a.String())
}

func TestTargetIsLifelineDistinguishesGate(t *testing.T) {
	lfTarget := action.Target{TargetKind: action.TargetLifeline, LfID: 3}
	gtTarget := action.Target{TargetKind: action.TargetGate, GtID: 1}
	assert.True(t, lfTarget.IsLifeline())
	assert.False(t, gtTarget.IsLifeline())
}

func TestEmissionOccupationAfterIncludesOriginAndLifelineTargets(t *testing.T) {
	e := action.Emission{
		Origin:  1,
		Message: 0,
		Targets: []action.Target{
			{TargetKind: action.TargetLifeline, LfID: 2},
			{TargetKind: action.TargetGate, GtID: 0},
		},
	}
	occ := e.OccupationAfter()
	assert.Contains(t, occ, context.LfID(1))
	assert.Contains(t, occ, context.LfID(2))
	assert.Len(t, occ, 2)
}

func TestReceptionExpressEmptyOnNoRecipients(t *testing.T) {
	empty := action.Reception{Message: 0}
	nonEmpty := action.Reception{Message: 0, Recipients: []context.LfID{1}}
	assert.True(t, empty.ExpressEmpty())
	assert.False(t, nonEmpty.ExpressEmpty())
}

func TestFrontierActionsOneEntryPerRecipient(t *testing.T) {
	r := action.Reception{Message: 9, Recipients: []context.LfID{1, 2, 3}}
	acts := r.FrontierActions()
	assert.Len(t, acts, 3)
	for _, a := range acts {
		assert.Equal(t, action.KindReception, a.Kind)
		assert.Equal(t, context.MsID(9), a.MsID)
	}
}

func TestEmissionFrontierActionsIsSingleton(t *testing.T) {
	e := action.Emission{Origin: 4, Message: 1}
	acts := e.FrontierActions()
	assert.Len(t, acts, 1)
	assert.Equal(t, action.KindEmission, acts[0].Kind)
	assert.Equal(t, context.LfID(4), acts[0].LfID)
}
