package verdict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/hibou/internal/core/verdict"
)

func TestFoldCovAlwaysWinsOutright(t *testing.T) {
	tests := []struct {
		name string
		glo  verdict.Global
	}{
		{"fromFail", verdict.Global{Kind: verdict.Fail}},
		{"fromWeakFail", verdict.Global{Kind: verdict.WeakFail}},
		{"fromInconc", verdict.NewGlobalInconc(verdict.LackObs)},
		{"fromWeakPass", verdict.Global{Kind: verdict.WeakPass}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := verdict.Fold(tt.glo, verdict.Local{Kind: verdict.Cov})
			assert.Equal(t, verdict.Pass, got.Kind)
		})
	}
}

func TestFoldNeverMovesBackwardsTowardFail(t *testing.T) {
	glo := verdict.Global{Kind: verdict.WeakPass}
	got := verdict.Fold(glo, verdict.NewOut(false))
	assert.Equal(t, verdict.WeakPass, got.Kind, "a later Out must not undo an earlier partial pass")
}

func TestFoldPassIsAbsorbing(t *testing.T) {
	glo := verdict.Global{Kind: verdict.Pass}
	got := verdict.Fold(glo, verdict.NewOut(false))
	assert.Equal(t, verdict.Pass, got.Kind)
}

func TestFoldOutSimFromFailYieldsWeakFail(t *testing.T) {
	got := verdict.Fold(verdict.Global{Kind: verdict.Fail}, verdict.NewOutSim(false))
	assert.Equal(t, verdict.WeakFail, got.Kind)
}

func TestFoldInconcFromFailCarriesReason(t *testing.T) {
	got := verdict.Fold(verdict.Global{Kind: verdict.Fail}, verdict.NewInconc(verdict.FilteredNodes))
	assert.Equal(t, verdict.InconcKind, got.Kind)
	assert.Equal(t, verdict.FilteredNodes, got.Reason)
}

func TestGlobalLessOrdersTheFullLattice(t *testing.T) {
	order := []verdict.Global{
		{Kind: verdict.Fail},
		{Kind: verdict.WeakFail},
		{Kind: verdict.InconcKind},
		{Kind: verdict.WeakPass},
		{Kind: verdict.Pass},
	}
	for i := 0; i < len(order)-1; i++ {
		assert.True(t, order[i].Less(order[i+1]), "%v should be less than %v", order[i], order[i+1])
	}
}

func TestLocalStringFormsViaLocalSuffix(t *testing.T) {
	assert.Equal(t, "Out-l", verdict.NewOut(true).String())
	assert.Equal(t, "Out", verdict.NewOut(false).String())
	assert.Equal(t, "Inconc(LackObs)", verdict.NewInconc(verdict.LackObs).String())
}
