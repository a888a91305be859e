package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/hibou/internal/core/action"
	"github.com/rfielding/hibou/internal/core/context"
	"github.com/rfielding/hibou/internal/core/position"
	"github.com/rfielding/hibou/internal/core/syntax"
)

func emit(lf context.LfID, ms context.MsID) syntax.Interaction {
	return &syntax.Emission{Emission: action.Emission{Origin: lf, Message: ms}}
}

func TestPriorityTotalOrder(t *testing.T) {
	tests := []struct {
		name string
		i    syntax.Interaction
		want int
	}{
		{"empty", &syntax.Empty{}, 0},
		{"emission", &syntax.Emission{}, 1},
		{"reception", &syntax.Reception{}, 2},
		{"par", &syntax.Par{}, 3},
		{"coreg", &syntax.CoReg{}, 4},
		{"seq", &syntax.Seq{}, 5},
		{"strict", &syntax.Strict{}, 6},
		{"alt", &syntax.Alt{}, 7},
		{"loop", &syntax.Loop{}, 8},
		{"sync", &syntax.Sync{}, 9},
		{"and", &syntax.And{}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.i.Priority())
		})
	}
}

func TestNewStrictEmptyIdentity(t *testing.T) {
	a := emit(0, 0)
	assert.Same(t, a, syntax.NewStrict(&syntax.Empty{}, a))
	assert.Same(t, a, syntax.NewStrict(a, &syntax.Empty{}))
}

func TestNewCoRegDegeneratesToSeqWhenLifelinesEmpty(t *testing.T) {
	a, b := emit(0, 0), emit(1, 0)
	i := syntax.NewCoReg(map[context.LfID]struct{}{}, a, b)
	_, ok := i.(*syntax.Seq)
	assert.True(t, ok)
}

func TestNewLoopFlattensNestedKeepingStricterKind(t *testing.T) {
	body := emit(0, 0)
	inner := syntax.NewLoop(syntax.LoopWeakSeq, body)
	outer := syntax.NewLoop(syntax.LoopStrict, inner)

	l, ok := outer.(*syntax.Loop)
	if assert.True(t, ok) {
		assert.Equal(t, syntax.LoopStrict, l.Kind)
		assert.Same(t, body, l.Body)
	}
}

func TestNewLoopOnEmptyCollapses(t *testing.T) {
	assert.True(t, syntax.IsEmpty(syntax.NewLoop(syntax.LoopStrict, &syntax.Empty{})))
}

func TestGetSubInteractionAndLoopDepth(t *testing.T) {
	a, b := emit(0, 0), emit(1, 0)
	root := syntax.NewStrict(a, syntax.NewLoop(syntax.LoopStrict, b))

	left := syntax.GetSubInteraction(root, position.NewLeft(position.Epsilon{}))
	assert.Same(t, a, left)

	inLoop := position.NewRight(position.NewLeft(position.Epsilon{}))
	assert.Equal(t, uint32(1), syntax.LoopDepthAtPos(root, inLoop))
}

func TestCompareIsAntisymmetric(t *testing.T) {
	a, b := emit(0, 0), emit(0, 1)
	assert.Equal(t, -syntax.Compare(a, b), syntax.Compare(b, a))
}

func TestLifelinesCollectsAllOccupants(t *testing.T) {
	i := syntax.NewPar(emit(0, 0), emit(1, 0))
	lfs := syntax.Lifelines(i)
	assert.Len(t, lfs, 2)
}
