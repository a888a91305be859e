package locana_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
	"github.com/rfielding/hibou/internal/core/verdict"
	"github.com/rfielding/hibou/internal/process/ana"
	"github.com/rfielding/hibou/internal/process/locana"
)

func emit(lf context.LfID, ms context.MsID) syntax.Interaction {
	return &syntax.Emission{Emission: action.Emission{Origin: lf, Message: ms}}
}

func TestCheckFlagsAMismatchedDirtyCanal(t *testing.T) {
	ctx := context.New()
	alice := ctx.AddLifeline("alice")
	msgA := ctx.AddMessage("a")
	msgB := ctx.AddMessage("b")

	i := syntax.NewPar(emit(alice, msgA), &syntax.Empty{})
	colocs := context.CoLocalizations{{alice: {}}}
	canal := trace.Canal{
		Lifelines:   map[context.LfID]struct{}{alice: {}},
		Trace:       trace.Trace{{action.TraceAction{LfID: alice, Kind: action.KindEmission, MsID: msgB}: {}}},
		Dirty4Local: true,
	}
	node := ana.NodeKind{Interaction: i, MultiTrace: trace.Analysable{Canals: []trace.Canal{canal}}}

	_, failedCanal, lv, found := locana.Check(ctx, colocs, node, ana.Options{Kind: ana.KindPrefix})
	require.True(t, found)
	assert.Equal(t, 0, failedCanal)
	assert.Equal(t, verdict.Out, lv.Kind)
}

func TestCheckClearsDirtyFlagOnPassingCanal(t *testing.T) {
	ctx := context.New()
	alice := ctx.AddLifeline("alice")
	msg := ctx.AddMessage("m")

	i := emit(alice, msg)
	colocs := context.CoLocalizations{{alice: {}}}
	canal := trace.Canal{
		Lifelines:   map[context.LfID]struct{}{alice: {}},
		Trace:       trace.Trace{{action.TraceAction{LfID: alice, Kind: action.KindEmission, MsID: msg}: {}}},
		Dirty4Local: true,
	}
	node := ana.NodeKind{Interaction: i, MultiTrace: trace.Analysable{Canals: []trace.Canal{canal}}}

	updated, _, _, found := locana.Check(ctx, colocs, node, ana.Options{Kind: ana.KindPrefix})
	assert.False(t, found)
	assert.False(t, updated.Canals[0].Dirty4Local)
}
