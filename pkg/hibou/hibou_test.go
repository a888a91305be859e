package hibou_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/core/trace"
	"github.com/rfielding/hibou/internal/core/verdict"
	"github.com/rfielding/hibou/internal/process/abstract"
	"github.com/rfielding/hibou/internal/process/ana"
	"github.com/rfielding/hibou/internal/process/explore"
	"github.com/rfielding/hibou/pkg/hibou"
)

func emit(lf context.LfID, ms context.MsID) syntax.Interaction {
	return &syntax.Emission{Emission: action.Emission{Origin: lf, Message: ms}}
}

func TestAnalyzeWiresInLocalAnalysisByDefault(t *testing.T) {
	ctx := context.New()
	alice := ctx.AddLifeline("alice")
	msg := ctx.AddMessage("m")

	i := emit(alice, msg)
	colocs := context.CoLocalizations{{alice: {}}}
	mt := trace.Analysable{Canals: []trace.Canal{{
		Lifelines:   map[context.LfID]struct{}{alice: {}},
		Trace:       trace.Trace{{action.TraceAction{LfID: alice, Kind: action.KindEmission, MsID: msg}: {}}},
		Dirty4Local: true,
	}}}

	res, err := hibou.Analyze(ctx, colocs, i, mt, ana.Options{Strategy: abstract.DFS, Kind: ana.KindPrefix, UseLocalAnalysis: true})
	require.NoError(t, err)
	assert.Equal(t, verdict.Pass, res.Verdict.Kind)
}

func TestAnalyzeDoesNotOverrideAnExplicitLocalAnalysisHook(t *testing.T) {
	ctx := context.New()
	alice := ctx.AddLifeline("alice")
	msg := ctx.AddMessage("m")
	i := emit(alice, msg)
	colocs := context.CoLocalizations{{alice: {}}}
	mt := trace.Analysable{Canals: []trace.Canal{{
		Lifelines: map[context.LfID]struct{}{alice: {}},
		Trace:     trace.Trace{{action.TraceAction{LfID: alice, Kind: action.KindEmission, MsID: msg}: {}}},
	}}}

	called := false
	hook := func(ctx *context.Context, colocs context.CoLocalizations, node ana.NodeKind, opts ana.Options) (trace.Analysable, int, verdict.Local, bool) {
		called = true
		return node.MultiTrace, 0, verdict.Local{}, false
	}

	_, err := hibou.Analyze(ctx, colocs, i, mt, ana.Options{Strategy: abstract.DFS, Kind: ana.KindPrefix, UseLocalAnalysis: true, LocalAnalysis: hook})
	require.NoError(t, err)
	assert.True(t, called, "an explicitly supplied LocalAnalysis hook must not be overwritten")
}

func TestExplorePassesThroughToExplorePackage(t *testing.T) {
	ctx := context.New()
	res, err := hibou.Explore(ctx, &syntax.Empty{}, explore.Options{Strategy: abstract.DFS})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), res.NodeCount)
}
