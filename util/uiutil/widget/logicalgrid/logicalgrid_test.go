package logicalgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogicalGridValidateOnce(t *testing.T) {
	cg := &countingGrid{Grid: NewVerticalSmartGrid()}
	lg := NewLogicalGrid(cg)
	cfg := &testConfig{cols: 2, widgets: []*testWidget{newTestWidget(1, 1)}}
	lg.SetGridConfig(cfg)
	assert.True(t, lg.Dirty())

	require.NoError(t, lg.Validate())
	require.NoError(t, lg.Validate())
	assert.Equal(t, 1, cg.count)
	assert.False(t, lg.Dirty())
	assert.Equal(t, 1, lg.GridRows())

	lg.SetDirty(true)
	lg.SetDirty(true)
	require.NoError(t, lg.Validate())
	assert.Equal(t, 2, cg.count)
}

func TestLogicalGridNoConfig(t *testing.T) {
	cg := &countingGrid{Grid: NewVerticalSmartGrid()}
	lg := NewLogicalGrid(cg)
	assert.ErrorIs(t, lg.Validate(), ErrNoGridConfig)
	assert.True(t, lg.Dirty())
	assert.Equal(t, 0, cg.count)
}

func TestLogicalGridEmpty(t *testing.T) {
	lg := NewLogicalGrid(NewVerticalSmartGrid())
	lg.SetGridConfig(&testConfig{cols: 2})
	require.NoError(t, lg.Validate())
	assert.Equal(t, 0, lg.GridRows())
}
