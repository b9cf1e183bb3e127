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
	"github.com/pillmayer-successor/flowcore/engine/style"
)

type eventKind int

const (
	startEvent eventKind = iota
	endEvent
)

type stackEvent struct {
	kind eventKind
	box  frame.Container
}

type lastEvent int

const (
	lastNone lastEvent = iota
	lastStart
	lastEnd
)

// marginState is the BFC's currently-open margin collection plus the level
// it belongs to and, when a collapse-through box with `clear` is in play,
// the level below which boxEnd must not let it adjoin (see clearanceAtLevel
// in spec.md design notes).
type marginState struct {
	level            int
	collection       MarginCollapseCollection
	clearanceAtLevel *int
}

// BlockFormattingContext is the driver: it walks a block-container subtree
// in document order, interleaving boxStart/boxEnd, runs the margin
// collector across levels, invokes text layout on inline formatting
// contexts, and finalizes geometry at the BFC root.
type BlockFormattingContext struct {
	inlineSize   dimen.DU
	cbBlockStart dimen.DU
	cbLineLeft   dimen.DU
	cbLineRight  dimen.DU

	stack       []stackEvent
	sizeStack   []dimen.DU
	offsetStack []dimen.DU
	last        lastEvent
	level       int

	hypotheticals map[frame.Container]dimen.DU
	margin        marginState

	fctx *FloatContext
}

// NewBlockFormattingContext creates a BFC with the given fixed content
// inline size, the constant against which all of its descendants'
// percentages and float vacancies are measured.
func NewBlockFormattingContext(inlineSize dimen.DU) *BlockFormattingContext {
	return &BlockFormattingContext{
		inlineSize:  inlineSize,
		sizeStack:   []dimen.DU{0},
		offsetStack: []dimen.DU{0},
	}
}

// NewNestedFormattingContext creates a BFC for the children of a box that
// establishes its own block formatting context (a float or an explicit
// BFC root). Establishing a BFC isolates a box's internal layout from its
// own margins: the box's position among its siblings is owned entirely by
// the outer BFC it participates in, so this context never sees a
// box-start/box-end event for the box itself, only for its children. The
// extra seeded level gives those children the same accumulation scaffold
// a wrapped root would, so an auto block size still falls out of
// cbBlockStart correctly once the last child closes.
func NewNestedFormattingContext(inlineSize dimen.DU) *BlockFormattingContext {
	bfc := NewBlockFormattingContext(inlineSize)
	bfc.sizeStack = append(bfc.sizeStack, 0)
	bfc.offsetStack = append(bfc.offsetStack, 0)
	bfc.level = 1
	return bfc
}

// InlineSize returns the BFC's fixed content inline size.
func (bfc *BlockFormattingContext) InlineSize() dimen.DU { return bfc.inlineSize }

// Floats lazily creates (on first use) and returns the BFC's float context.
func (bfc *BlockFormattingContext) Floats() *FloatContext {
	if bfc.fctx == nil {
		bfc.fctx = NewFloatContext(bfc)
	}
	return bfc.fctx
}

func insets(sbox *style.Box) (lineLeft, lineRight, blockStartInset dimen.DU) {
	lineLeft = sbox.MarginLineLeft.OrZero() + sbox.BorderLineLeftWidth.OrZero() + sbox.PaddingLineLeft.OrZero()
	lineRight = sbox.MarginLineRight.OrZero() + sbox.BorderLineRightWidth.OrZero() + sbox.PaddingLineRight.OrZero()
	blockStartInset = sbox.BorderBlockStartWidth.OrZero() + sbox.PaddingBlockStart.OrZero()
	return
}

// boxStart is called on descent into box, in document order.
func (bfc *BlockFormattingContext) boxStart(box frame.Container) {
	sbox := box.Style()
	lineLeft, lineRight, blockStartInset := insets(sbox)
	marginBlockStart := sbox.MarginBlockStart.OrZero()

	var floatBottom dimen.DU
	if bfc.fctx != nil {
		if sbox.Clear.ClearsLeft() {
			floatBottom = dimen.Max(floatBottom, bfc.fctx.LeftBottom())
		}
		if sbox.Clear.ClearsRight() {
			floatBottom = dimen.Max(floatBottom, bfc.fctx.RightBottom())
		}
	}

	adjoinsPrevious := true
	if sbox.Clear != style.ClearNone {
		hyp := bfc.margin.collection.Clone()
		hyp.Add(marginBlockStart)
		clearance := dimen.Max(0, floatBottom-(bfc.cbBlockStart+hyp.Get()))
		adjoinsPrevious = clearance == 0
	}

	if adjoinsPrevious {
		bfc.margin.collection.Add(marginBlockStart)
	} else {
		bfc.flush()
		bfc.margin.collection = NewMarginCollapseCollection(floatBottom - bfc.cbBlockStart)
		bfc.margin.level = bfc.level
		if box.CanCollapseThrough() {
			lvl := bfc.level
			bfc.margin.clearanceAtLevel = &lvl
		} else {
			bfc.margin.clearanceAtLevel = nil
		}
	}

	bfc.stack = append(bfc.stack, stackEvent{kind: startEvent, box: box})
	bfc.level++
	bfc.cbLineLeft += lineLeft
	bfc.cbLineRight += lineRight

	if box.IsBlockContainerOfInlines() {
		saved := bfc.cbBlockStart
		bfc.cbBlockStart = saved + blockStartInset + bfc.margin.collection.Get()
		para, err := box.IFC().DoTextLayout(bfc.Floats(), box.Areas().Content)
		if err != nil {
			panic("frame/layout: text layout collaborator failed: " + err.Error())
		}
		box.Areas().Content.BlockSize = para.Height
		bfc.cbBlockStart = saved
	}

	adjoinsNext := sbox.PaddingBlockStart.OrZero() == 0 && sbox.BorderBlockStartWidth.OrZero() == 0
	if !adjoinsNext {
		bfc.flush()
		bfc.margin.collection = NewMarginCollapseCollection()
		bfc.margin.level = bfc.level
	}
	bfc.last = lastStart
}

// boxEnd is called on ascent out of box, in document order.
func (bfc *BlockFormattingContext) boxEnd(box frame.Container) {
	sbox := box.Style()
	wasEmptyBox := bfc.last == lastStart

	adjoins := sbox.PaddingBlockEnd.OrZero() == 0 && sbox.BorderBlockEndWidth.OrZero() == 0 &&
		(bfc.margin.clearanceAtLevel == nil || bfc.level > *bfc.margin.clearanceAtLevel)
	if wasEmptyBox {
		adjoins = adjoins && box.CanCollapseThrough()
	} else {
		adjoins = adjoins && sbox.BlockSize.IsAuto()
	}

	bfc.stack = append(bfc.stack, stackEvent{kind: endEvent, box: box})
	bfc.level--

	lineLeft, lineRight, _ := insets(sbox)
	bfc.cbLineLeft -= lineLeft
	bfc.cbLineRight -= lineRight

	if !adjoins {
		bfc.flush()
		bfc.margin.collection = NewMarginCollapseCollection()
		bfc.margin.level = bfc.level
	}

	if wasEmptyBox {
		if bfc.hypotheticals == nil {
			bfc.hypotheticals = make(map[frame.Container]dimen.DU)
		}
		bfc.hypotheticals[box] = bfc.margin.collection.Get()
	}

	bfc.margin.collection.Add(sbox.MarginBlockEnd.OrZero())
	if bfc.level < bfc.margin.level {
		bfc.margin.level = bfc.level
	}
	bfc.last = lastEnd
}

// flush is positionBlockContainers: it commits every pending box-start /
// box-end event recorded since the last flush to a concrete block position,
// using the now-settled margin collection.
func (bfc *BlockFormattingContext) flush() {
	margin := bfc.margin.collection.Get()
	bfc.sizeStack[bfc.margin.level] += margin
	bfc.cbBlockStart += margin

	reachedMarginLevel := false
	for _, ev := range bfc.stack {
		level := len(bfc.sizeStack) - 1
		if level == bfc.margin.level {
			reachedMarginLevel = true
		}
		switch ev.kind {
		case startEvent:
			blockOffset := bfc.sizeStack[level]
			if !reachedMarginLevel {
				blockOffset += margin
			}
			if hyp, ok := bfc.hypotheticals[ev.box]; ok {
				blockOffset -= margin - hyp
			}
			ev.box.Areas().Border.BlockStart = blockOffset
			bfc.sizeStack = append(bfc.sizeStack, 0)
			bfc.offsetStack = append(bfc.offsetStack, bfc.cbBlockStart)
		case endEvent:
			n := len(bfc.sizeStack)
			childSize := bfc.sizeStack[n-1]
			offset := bfc.offsetStack[len(bfc.offsetStack)-1]
			bfc.sizeStack = bfc.sizeStack[:n-1]
			bfc.offsetStack = bfc.offsetStack[:len(bfc.offsetStack)-1]

			box := ev.box
			if box.Style().BlockSize.IsAuto() && box.IsBlockContainerOfBlockContainers() && !box.IsBfcRoot() {
				box.Areas().Border.BlockSize = childSize
			}
			borderBoxHeight := box.Areas().Border.BlockSize

			// Closing the BFC's own root leaves no enclosing level to
			// accumulate into or continue from: cbBlockStart already holds
			// the root's accumulated content height, which Finalize needs
			// untouched.
			if len(bfc.sizeStack) > 1 {
				bfc.sizeStack[len(bfc.sizeStack)-1] += borderBoxHeight
				bfc.cbBlockStart = offset + borderBoxHeight

				if len(bfc.sizeStack)-1 == bfc.margin.level {
					bfc.sizeStack[bfc.margin.level] += margin
					bfc.cbBlockStart += margin
				}
			}
		}
	}
	bfc.stack = nil
}

// Finalize must be called on the BFC root once its entire subtree has been
// walked. It flushes any still-pending events and, if the root's block
// size is auto, sets it from the accumulated content height and the lowest
// float bottom.
func (bfc *BlockFormattingContext) Finalize(box frame.Container) {
	bfc.flush()
	if box.Style().BlockSize.IsAuto() {
		h := bfc.cbBlockStart
		if bfc.fctx != nil {
			h = dimen.Max(h, bfc.fctx.BothBottom())
		}
		box.Areas().Border.BlockSize = h
	}
}
