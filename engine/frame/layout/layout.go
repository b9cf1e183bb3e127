package layout

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"github.com/pillmayer-successor/flowcore/core/dimen"
	"github.com/pillmayer-successor/flowcore/engine/frame"
)

// LayoutBlockBox lays out root as the root of a document (or of a standalone
// subtree being laid out in isolation, e.g. for testing): it is always
// treated as establishing its own block formatting context, with
// viewportInlineSize as its fixed content inline size.
func LayoutBlockBox(root frame.Container, viewportInlineSize dimen.DU) error {
	mustBlockLevel(root)
	prepareArea(root, viewportInlineSize)

	bfc := NewBlockFormattingContext(root.Areas().Content.InlineSize)
	tracer().Debugf("starting layout: root inline size = %s", root.Areas().Content.InlineSize)
	if err := walkBFC(root, bfc, true); err != nil {
		return err
	}
	bfc.Finalize(root)

	rootSize := dimen.Size{W: root.Areas().Border.InlineSize, H: root.Areas().Border.BlockSize}
	absolutifySubtree(root, dimen.Origin, rootSize)
	return nil
}

// LayoutFloatBox lays out float as a standalone BFC root whose containing
// block is cb, sizing its subtree against cb's inline size. It does not
// place the float in any float context and does not absolutify it. Neither
// walkBFC (which lays out floated children itself) nor LayoutContribution
// calls it.
//
// Calling this on a non-float is a programmer contract violation and
// panics; layoutFloatBox on the wrong kind of box is listed explicitly
// among the category-1 conditions.
func LayoutFloatBox(float frame.Container, cb *frame.Area) error {
	if !float.IsFloat() {
		panic("layout: LayoutFloatBox called on a non-float container")
	}
	prepareArea(float, cb.InlineSize)
	bfc := NewBlockFormattingContext(float.Areas().Content.InlineSize)
	if err := walkBFC(float, bfc, true); err != nil {
		return err
	}
	bfc.Finalize(float)
	return nil
}

// prepareArea resolves box's box model against enclosingWidth and, the
// first time it is visited, builds its nested border/padding/content
// areas from the result.
func prepareArea(box frame.Container, enclosingWidth dimen.DU) {
	sbox := box.Style()
	ResolveInlineBoxModel(sbox, enclosingWidth)
	ResolveBlockBoxModel(sbox)
	if box.Areas() != nil {
		return
	}
	// InlineSize/BlockSize are CSS content sizes; the border box adds the
	// border and padding on both edges.
	lineEdges := sbox.BorderLineLeftWidth.OrZero() + sbox.BorderLineRightWidth.OrZero() +
		sbox.PaddingLineLeft.OrZero() + sbox.PaddingLineRight.OrZero()
	border := frame.Area{InlineSize: sbox.InlineSize.Resolve() + lineEdges}
	if !sbox.BlockSize.IsAuto() {
		border.BlockSize = sbox.BlockSize.Resolve() +
			sbox.BorderBlockStartWidth.OrZero() + sbox.BorderBlockEndWidth.OrZero() +
			sbox.PaddingBlockStart.OrZero() + sbox.PaddingBlockEnd.OrZero()
	}
	wm, dir := sbox.WritingMode, sbox.Direction
	if p := box.Parent(); p != nil && p.Areas() != nil {
		wm, dir = p.Areas().OwnWM, p.Areas().OwnDir
	}
	area := frame.NewBlockContainerArea(border, sbox, wm, dir)
	bc, ok := box.(*frame.BlockContainer)
	if !ok {
		panic("layout: prepareArea given a Container that is not *frame.BlockContainer")
	}
	bc.SetAreas(area)
}

// walkBFC runs the pre-order boxStart/boxEnd traversal described in
// spec.md §4.5 step 5. A child that is itself a BFC root (flow-root, a
// writing-mode change) still participates in its parent's margin
// collapsing and positioning as an opaque block box, but lays out its own
// subtree against a freshly created, independently owned BFC. A floated
// child never participates in normal-flow margin collapsing at all: it is
// laid out in its own nested BFC and then handed straight to the parent's
// float context.
//
// In both cases the box's own margins must stay isolated from its
// children's: establishing a BFC is exactly what prevents a box's margin
// from collapsing with its first or last child's. So the box itself is
// never walked again inside its own nested context — only its children
// are, via walkChildren — while the box's own position is recorded
// exactly once, in the outer bfc.
func walkBFC(box frame.Container, bfc *BlockFormattingContext, isOwnRoot bool) error {
	if !isOwnRoot && box.IsFloat() {
		nested := NewNestedFormattingContext(box.Areas().Content.InlineSize)
		if err := walkChildren(box, nested); err != nil {
			return err
		}
		nested.Finalize(box)
		return bfc.Floats().PlaceFloat(0, true, box)
	}
	if !isOwnRoot && box.IsBfcRoot() {
		nested := NewNestedFormattingContext(box.Areas().Content.InlineSize)
		bfc.boxStart(box)
		if err := walkChildren(box, nested); err != nil {
			return err
		}
		nested.Finalize(box)
		bfc.boxEnd(box)
		return nil
	}

	bfc.boxStart(box)
	if err := walkChildren(box, bfc); err != nil {
		return err
	}
	bfc.boxEnd(box)
	return nil
}

// walkChildren lays out box's children against bfc. It never touches
// box's own boxStart/boxEnd: callers that need box itself positioned do
// that separately, against whichever context box's own margins belong to.
func walkChildren(box frame.Container, bfc *BlockFormattingContext) error {
	for _, child := range box.Children() {
		if child.ContainingBlock() == nil {
			child.SetContainingBlock(box.Areas().Content)
		}
		prepareArea(child, box.Areas().Content.InlineSize)
		if err := walkBFC(child, bfc, false); err != nil {
			return err
		}
	}
	return nil
}

// absolutifySubtree converts box's areas to physical coordinates and
// recurses into its children, using box's own content area as their
// parent frame. Called once, after the whole tree's relative geometry has
// settled.
func absolutifySubtree(box frame.Container, parentOrigin dimen.Point, parentSize dimen.Size) {
	box.Areas().Absolutify(parentOrigin, parentSize)
	content := box.Areas().Content
	childOrigin := content.Physical.TopL
	childSize := dimen.Size{W: content.Physical.W, H: content.Physical.H}
	for _, c := range box.Children() {
		absolutifySubtree(c, childOrigin, childSize)
	}
}
