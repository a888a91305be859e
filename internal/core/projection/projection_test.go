package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/projection"
	"github.com/rfielding/hibou/internal/core/syntax"
)

func emit(lf context.LfID, ms context.MsID) syntax.Interaction {
	return &syntax.Emission{Emission: action.Emission{Origin: lf, Message: ms}}
}

func TestEliminateLifelinesDropsMatchingLeaf(t *testing.T) {
	i := syntax.NewPar(emit(0, 0), emit(1, 0))
	out := projection.EliminateLifelines(i, map[context.LfID]struct{}{0: {}})
	_, isEmission := out.(*syntax.Emission)
	assert.True(t, isEmission, "expected the surviving lifeline's leaf, got %T", out)
}

func TestEliminateLifelinesCollapsesBothSidesToEmpty(t *testing.T) {
	i := syntax.NewStrict(emit(0, 0), emit(1, 0))
	out := projection.EliminateLifelines(i, map[context.LfID]struct{}{0: {}, 1: {}})
	assert.True(t, syntax.IsEmpty(out))
}

func TestEliminateLifelinesCoRegCollapsesToSurvivingSideWhenExemptionFullyEliminated(t *testing.T) {
	i := &syntax.CoReg{Lifelines: map[context.LfID]struct{}{0: {}}, Left: emit(0, 0), Right: emit(1, 0)}
	out := projection.EliminateLifelines(i, map[context.LfID]struct{}{0: {}})
	// lifeline 0 is both the exemption and one leaf; left side collapses to
	// Empty so the whole CoReg degenerates to its surviving right side.
	_, isEmission := out.(*syntax.Emission)
	assert.True(t, isEmission)
}

func TestHideLifelinesSameShapeAsEliminate(t *testing.T) {
	i := syntax.NewPar(emit(0, 0), emit(1, 0))
	s := map[context.LfID]struct{}{1: {}}
	assert.True(t, syntax.Equal(projection.EliminateLifelines(i, s), projection.HideLifelines(i, s)))
}
