package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pillmayer-successor/flowcore/core/dimen"
	"github.com/pillmayer-successor/flowcore/engine/frame"
	"github.com/pillmayer-successor/flowcore/engine/style"
	"github.com/stretchr/testify/assert"
)

func floatBox(float style.Float, width, height dimen.DU) *frame.BlockContainer {
	sbox := &style.Box{
		MarginBlockStart:     style.Abs(0),
		MarginBlockEnd:       style.Abs(0),
		MarginLineLeft:       style.Abs(0),
		MarginLineRight:      style.Abs(0),
		InlineSize:           style.Abs(width),
		BlockSize:            style.Abs(height),
		PaddingBlockStart:    style.Abs(0),
		PaddingBlockEnd:      style.Abs(0),
		PaddingLineLeft:      style.Abs(0),
		PaddingLineRight:     style.Abs(0),
		BorderBlockStartWidth: style.Abs(0),
		BorderBlockEndWidth:   style.Abs(0),
		BorderLineLeftWidth:   style.Abs(0),
		BorderLineRightWidth:  style.Abs(0),
		Float:                float,
	}
	box := frame.NewBlockContainer(sbox, frame.AttrFloat|frame.AttrBfcRoot)
	box.SetAreas(frame.NewBlockContainerArea(frame.Area{InlineSize: width, BlockSize: height}, sbox, style.HorizontalTB, style.LTR))
	return box
}

// Scenario 5: two left floats in a 100-wide container, each 60×50. B does
// not fit beside A and lands at (0, 50); the shelf advances to 50.
func TestTwoLeftFloatsNarrowContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	bfc := NewBlockFormattingContext(100)
	fctx := bfc.Floats()

	a := floatBox(style.FloatLeft, 60, 50)
	err := fctx.PlaceFloat(0, true, a)
	assert.NoError(t, err)
	assert.Equal(t, dimen.DU(0), a.Areas().Border.BlockStart)
	assert.Equal(t, dimen.DU(0), a.Areas().Border.LineLeft)

	b := floatBox(style.FloatLeft, 60, 50)
	err = fctx.PlaceFloat(0, true, b)
	assert.NoError(t, err)
	fctx.ConsumeMisfits()
	assert.Equal(t, dimen.DU(50), b.Areas().Border.BlockStart)
	assert.Equal(t, dimen.DU(0), b.Areas().Border.LineLeft)
	assert.Equal(t, dimen.DU(50), fctx.left.shelfBlockOffset)
}

// Scenario 6: container width 200, a left float 80×40. At y=0 the vacancy
// is 120 wide (200-80); at y=40 it's the full 200. findLinePosition(0,
// lineHeight, 180) must skip past y=0 and return the vacancy at y=40.
func TestFindLinePositionSkipsPastFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	bfc := NewBlockFormattingContext(200)
	fctx := bfc.Floats()

	f := floatBox(style.FloatLeft, 80, 40)
	err := fctx.PlaceFloat(0, true, f)
	assert.NoError(t, err)

	vac := fctx.FindLinePosition(0, 20, 180)
	assert.Equal(t, dimen.DU(40), vac.BlockOffset)
	assert.Equal(t, dimen.DU(200), vac.InlineSize)
}

func TestFloatSideTrackOrderingInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	s := NewFloatSide(LeftSide)
	s.splitTrack(0, 50)
	s.splitTrack(1, 90)

	assert.Equal(t, len(s.blockOffsets), len(s.inlineSizes)+1)
	assert.Equal(t, len(s.blockOffsets), len(s.inlineOffsets)+1)
	assert.Equal(t, len(s.blockOffsets), len(s.floatCounts)+1)
	for i := 1; i < len(s.blockOffsets); i++ {
		assert.True(t, s.blockOffsets[i] > s.blockOffsets[i-1])
	}
}

func TestFloatCountImpliesWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	bfc := NewBlockFormattingContext(100)
	fctx := bfc.Floats()
	a := floatBox(style.FloatLeft, 60, 50)
	assert.NoError(t, fctx.PlaceFloat(0, true, a))

	for i, count := range fctx.left.floatCounts {
		if count > 0 {
			assert.True(t, fctx.left.inlineSizes[i] > 0)
		}
	}
}
