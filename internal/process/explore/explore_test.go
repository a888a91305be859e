package explore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/syntax"
	"github.com/rfielding/hibou/internal/process/abstract"
	"github.com/rfielding/hibou/internal/process/explore"
)

func emit(lf context.LfID, ms context.MsID) syntax.Interaction {
	return &syntax.Emission{Emission: action.Emission{Origin: lf, Message: ms}}
}

func TestExploreOfEmptyHasOneNodeNoChildren(t *testing.T) {
	ctx := context.New()
	res, err := explore.Explore(ctx, &syntax.Empty{}, explore.Options{Strategy: abstract.DFS})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), res.NodeCount)
	assert.Equal(t, uint32(1), res.ReachableStates)
}

func TestExploreOfParCountsBothInterleavings(t *testing.T) {
	ctx := context.New()
	alice := ctx.AddLifeline("alice")
	bob := ctx.AddLifeline("bob")
	msg := ctx.AddMessage("m")

	i := syntax.NewPar(emit(alice, msg), emit(bob, msg))
	res, err := explore.Explore(ctx, i, explore.Options{Strategy: abstract.DFS})
	require.NoError(t, err)
	// root, two single-emission intermediates, and Empty reached twice (once per interleaving).
	assert.Equal(t, uint32(5), res.NodeCount)
	assert.Equal(t, uint32(4), res.ReachableStates, "root, each single-emission intermediate, and the shared Empty end state")
}

func TestExploreRejectsIllFormedAST(t *testing.T) {
	ctx := context.New()
	ctx.AddLifeline("alice")
	i := emit(context.LfID(99), context.MsID(0))
	_, err := explore.Explore(ctx, i, explore.Options{Strategy: abstract.DFS})
	assert.Error(t, err)
}
