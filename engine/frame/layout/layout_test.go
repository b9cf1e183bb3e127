package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pillmayer-successor/flowcore/core/dimen"
	"github.com/pillmayer-successor/flowcore/engine/frame"
	"github.com/pillmayer-successor/flowcore/engine/style"
	"github.com/stretchr/testify/assert"
)

// plainBox returns a block-level box with every length resolved to a
// concrete value (block size fixed, never auto) except where overridden by
// the caller afterward. Tests that need an auto block size clear it
// explicitly.
func plainBox(blockSize dimen.DU, marginTop, marginBottom dimen.DU) *frame.BlockContainer {
	sbox := &style.Box{
		MarginBlockStart:      style.Abs(marginTop),
		MarginBlockEnd:        style.Abs(marginBottom),
		MarginLineLeft:        style.Abs(0),
		MarginLineRight:       style.Abs(0),
		InlineSize:            style.Auto(),
		BlockSize:             style.Abs(blockSize),
		PaddingBlockStart:     style.Abs(0),
		PaddingBlockEnd:       style.Abs(0),
		PaddingLineLeft:       style.Abs(0),
		PaddingLineRight:      style.Abs(0),
		BorderBlockStartWidth: style.Abs(0),
		BorderBlockEndWidth:   style.Abs(0),
		BorderLineLeftWidth:   style.Abs(0),
		BorderLineRightWidth:  style.Abs(0),
	}
	return frame.NewBlockContainer(sbox, 0)
}

// bfcRootBox returns a non-top-level box that establishes its own block
// formatting context (AttrBfcRoot), with auto block size so its own
// height is computed from its children's.
func bfcRootBox(marginTop, marginBottom dimen.DU) *frame.BlockContainer {
	sbox := &style.Box{
		MarginBlockStart:      style.Abs(marginTop),
		MarginBlockEnd:        style.Abs(marginBottom),
		MarginLineLeft:        style.Abs(0),
		MarginLineRight:       style.Abs(0),
		InlineSize:            style.Auto(),
		BlockSize:             style.Auto(),
		PaddingBlockStart:     style.Abs(0),
		PaddingBlockEnd:       style.Abs(0),
		PaddingLineLeft:       style.Abs(0),
		PaddingLineRight:      style.Abs(0),
		BorderBlockStartWidth: style.Abs(0),
		BorderBlockEndWidth:   style.Abs(0),
		BorderLineLeftWidth:   style.Abs(0),
		BorderLineRightWidth:  style.Abs(0),
	}
	return frame.NewBlockContainer(sbox, frame.AttrBfcRoot)
}

func rootBox() *frame.BlockContainer {
	sbox := &style.Box{
		MarginBlockStart:      style.Abs(0),
		MarginBlockEnd:        style.Abs(0),
		MarginLineLeft:        style.Abs(0),
		MarginLineRight:       style.Abs(0),
		InlineSize:            style.Auto(),
		BlockSize:             style.Auto(),
		PaddingBlockStart:     style.Abs(0),
		PaddingBlockEnd:       style.Abs(0),
		PaddingLineLeft:       style.Abs(0),
		PaddingLineRight:      style.Abs(0),
		BorderBlockStartWidth: style.Abs(0),
		BorderBlockEndWidth:   style.Abs(0),
		BorderLineLeftWidth:   style.Abs(0),
		BorderLineRightWidth:  style.Abs(0),
	}
	return frame.NewBlockContainer(sbox, frame.AttrBfcRoot)
}

// Scenario 1: two siblings with margins 20 and 30, no border/padding. The
// gap between their border boxes is 30 (the larger of the two margins).
func TestSimpleMarginCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	root := rootBox()
	box1 := plainBox(50, 0, 20)
	box2 := plainBox(50, 30, 0)
	root.AddChild(box1)
	root.AddChild(box2)

	err := LayoutBlockBox(root, 300)
	assert.NoError(t, err)

	assert.Equal(t, dimen.DU(0), box1.Areas().Border.BlockStart)
	assert.Equal(t, dimen.DU(80), box2.Areas().Border.BlockStart)
	gap := box2.Areas().Border.BlockStart - (box1.Areas().Border.BlockStart + box1.Areas().Border.BlockSize)
	assert.Equal(t, dimen.DU(30), gap)
}

// Scenario 3: negative margins. 30 and -10 collapse to a gap of 20; -10 and
// -30 collapse to -30 (most negative wins).
func TestNegativeMarginCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	root := rootBox()
	box1 := plainBox(50, 0, 30)
	box2 := plainBox(50, -10, 0)
	root.AddChild(box1)
	root.AddChild(box2)

	assert.NoError(t, LayoutBlockBox(root, 300))

	gap := box2.Areas().Border.BlockStart - (box1.Areas().Border.BlockStart + box1.Areas().Border.BlockSize)
	assert.Equal(t, dimen.DU(20), gap)
}

func TestNegativeMarginCollapseBothNegative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	root := rootBox()
	box1 := plainBox(50, 0, -10)
	box2 := plainBox(50, -30, 0)
	root.AddChild(box1)
	root.AddChild(box2)

	assert.NoError(t, LayoutBlockBox(root, 300))

	gap := box2.Areas().Border.BlockStart - (box1.Areas().Border.BlockStart + box1.Areas().Border.BlockSize)
	assert.Equal(t, dimen.DU(-30), gap)
}

// A box that establishes its own block formatting context must keep its
// own margin out of its children's collapsing group. Before the fix, the
// BFC root's own box-start/box-end re-entered the nested context, merging
// its margin into the same group as its first child's and dropping the
// child's margin entirely; the child ended up at BlockStart 0 instead of
// past its own margin, and the root's auto size absorbed the leftover
// margin instead of reflecting only its children's content.
func TestBfcRootIsolatesOwnMarginFromChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	root := rootBox()
	bfcRoot := bfcRootBox(10, 0)
	leaf := plainBox(40, 20, 0)
	bfcRoot.AddChild(leaf)
	root.AddChild(bfcRoot)

	assert.NoError(t, LayoutBlockBox(root, 300))

	assert.Equal(t, dimen.DU(20), leaf.Areas().Border.BlockStart)
	assert.Equal(t, dimen.DU(60), bfcRoot.Areas().Border.BlockSize)
}

// Area containment must hold for every box after layout, in both axes.
func TestAreaContainmentAfterLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	sbox := &style.Box{
		MarginBlockStart:      style.Abs(0),
		MarginBlockEnd:        style.Abs(0),
		MarginLineLeft:        style.Abs(0),
		MarginLineRight:       style.Abs(0),
		InlineSize:            style.Auto(),
		BlockSize:             style.Abs(40),
		PaddingBlockStart:     style.Abs(5),
		PaddingBlockEnd:       style.Abs(5),
		PaddingLineLeft:       style.Abs(10),
		PaddingLineRight:      style.Abs(10),
		BorderBlockStartWidth: style.Abs(2),
		BorderBlockEndWidth:   style.Abs(2),
		BorderLineLeftWidth:   style.Abs(1),
		BorderLineRightWidth:  style.Abs(1),
	}
	root := rootBox()
	child := frame.NewBlockContainer(sbox, 0)
	root.AddChild(child)

	assert.NoError(t, LayoutBlockBox(root, 200))
	assert.True(t, child.Areas().Contains())
}

// Absolutify, in horizontal-tb throughout, must reproduce the relative
// coordinates as the physical ones (the root's origin is dimen.Origin).
func TestAbsolutifyIdentityHorizontalTB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	root := rootBox()
	box1 := plainBox(50, 0, 0)
	root.AddChild(box1)

	assert.NoError(t, LayoutBlockBox(root, 300))

	assert.Equal(t, box1.Areas().Border.BlockStart, box1.Areas().Border.Physical.TopL.Y)
	assert.Equal(t, box1.Areas().Border.LineLeft, box1.Areas().Border.Physical.TopL.X)
}
