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

type misfitEntry struct {
	lineWidth   dimen.DU
	lineIsEmpty bool
	box         frame.Container
}

// FloatContext owns the two float sides of a single block formatting
// context, decides placement eligibility, enforces `clear`, and answers
// vacancy queries for lines and for boxes. It is created lazily, on the
// first call to its BFC's Floats method (a float, or a box whose text
// layout needs to query floats).
type FloatContext struct {
	bfc     *BlockFormattingContext
	left    *FloatSide
	right   *FloatSide
	misfits []misfitEntry
}

// NewFloatContext creates a float context owned by bfc.
func NewFloatContext(bfc *BlockFormattingContext) *FloatContext {
	return &FloatContext{bfc: bfc, left: NewFloatSide(LeftSide), right: NewFloatSide(RightSide)}
}

func (fc *FloatContext) sideFor(f style.Float) *FloatSide {
	if f == style.FloatRight {
		return fc.right
	}
	return fc.left
}

func (fc *FloatContext) oppositeOf(f style.Float) *FloatSide {
	if f == style.FloatRight {
		return fc.left
	}
	return fc.right
}

// LeftBottom returns the block-axis position below the lowest left float.
func (fc *FloatContext) LeftBottom() dimen.DU { return fc.left.GetBottom() }

// RightBottom returns the block-axis position below the lowest right float.
func (fc *FloatContext) RightBottom() dimen.DU { return fc.right.GetBottom() }

// BothBottom returns the lower of LeftBottom and RightBottom, used by
// finalize to size an auto-height BFC root that contains only floats.
func (fc *FloatContext) BothBottom() dimen.DU {
	return dimen.Max(fc.LeftBottom(), fc.RightBottom())
}

// GetVacancyForLine reports the horizontal band available to a line of the
// given height starting at blockOffset, independent of any particular box.
func (fc *FloatContext) GetVacancyForLine(blockOffset, blockSize dimen.DU) frame.Vacancy {
	ls, le := fc.left.getTrackRange(blockOffset, blockSize)
	rs, re := fc.right.getTrackRange(blockOffset, blockSize)
	leftOffset := fc.left.getSizeOfTracks(ls, le, 0)
	rightOffset := fc.right.getSizeOfTracks(rs, re, 0)
	return frame.Vacancy{
		LeftOffset:  leftOffset,
		RightOffset: rightOffset,
		BlockOffset: blockOffset,
		InlineSize:  fc.bfc.inlineSize - leftOffset - rightOffset,
	}
}

// GetVacancyForBox reports the vacancy available to a float being placed on
// its own side, at that side's current shelf position.
func (fc *FloatContext) GetVacancyForBox(box frame.Container) frame.Vacancy {
	sbox := box.Style()
	own := fc.sideFor(sbox.Float)
	opp := fc.oppositeOf(sbox.Float)
	blockOffset := own.shelfBlockOffset
	border := box.Areas().Border
	blockSize := border.BlockSize + sbox.MarginBlockStart.OrZero() + sbox.MarginBlockEnd.OrZero()

	os, oe := own.getTrackRange(blockOffset, blockSize)
	ps, pe := opp.getTrackRange(blockOffset, blockSize)
	ownOffset := own.getSizeOfTracks(os, oe, 0)
	oppOffset := opp.getSizeOfTracks(ps, pe, 0)
	ownCount := sumFloatCounts(own, os, oe)
	oppCount := sumFloatCounts(opp, ps, pe)

	v := frame.Vacancy{BlockOffset: blockOffset, InlineSize: fc.bfc.inlineSize - ownOffset - oppOffset}
	if sbox.Float == style.FloatRight {
		v.RightOffset, v.LeftOffset = ownOffset, oppOffset
		v.RightFloatCount, v.LeftFloatCount = ownCount, oppCount
	} else {
		v.LeftOffset, v.RightOffset = ownOffset, oppOffset
		v.LeftFloatCount, v.RightFloatCount = ownCount, oppCount
	}
	return v
}

func sumFloatCounts(s *FloatSide, start, end int) int {
	n := 0
	for i := start; i < end && i < len(s.floatCounts); i++ {
		n += s.floatCounts[i]
	}
	return n
}

// FindLinePosition scans downward through track boundaries on both sides,
// advancing whichever side's next boundary is lower (both, when tied),
// until a vacancy of at least inlineSize is found, or both sides are
// exhausted (in which case the last attempted vacancy is returned).
func (fc *FloatContext) FindLinePosition(blockOffset, blockSize, inlineSize dimen.DU) frame.Vacancy {
	li := fc.left.trackContaining(blockOffset)
	ri := fc.right.trackContaining(blockOffset)
	current := blockOffset
	var last frame.Vacancy
	for {
		last = fc.GetVacancyForLine(current, blockSize)
		if inlineSize <= last.InlineSize {
			return last
		}
		leftNext := fc.left.blockOffsets[li+1]
		rightNext := fc.right.blockOffsets[ri+1]
		if leftNext == dimen.Infinity && rightNext == dimen.Infinity {
			return last
		}
		advanced := false
		if leftNext <= rightNext {
			li++
			current = leftNext
			advanced = true
		}
		if rightNext <= leftNext {
			ri++
			current = rightNext
			advanced = true
		}
		if !advanced {
			return last
		}
	}
}

// PlaceFloat attempts to place box against the current line context. If
// floats are already queued as misfits, box is queued too (floats are
// strictly ordered: a later float cannot jump ahead of an earlier one still
// waiting for room).
func (fc *FloatContext) PlaceFloat(lineWidth dimen.DU, lineIsEmpty bool, box frame.Container) error {
	if len(fc.misfits) > 0 {
		fc.misfits = append(fc.misfits, misfitEntry{lineWidth, lineIsEmpty, box})
		return nil
	}
	return fc.tryPlace(lineWidth, lineIsEmpty, box)
}

func (fc *FloatContext) tryPlace(lineWidth dimen.DU, lineIsEmpty bool, box frame.Container) error {
	sbox := box.Style()
	side := fc.sideFor(sbox.Float)

	if sbox.Clear.ClearsLeft() {
		side.dropShelf(fc.LeftBottom())
	}
	if sbox.Clear.ClearsRight() {
		side.dropShelf(fc.RightBottom())
	}

	vacancy := fc.GetVacancyForBox(box)
	border := box.Areas().Border
	inlineMargin := sbox.MarginLineLeft.OrZero() + sbox.MarginLineRight.OrZero()
	needed := border.InlineSize + inlineMargin

	fits := needed <= vacancy.InlineSize-lineWidth
	if !fits && lineIsEmpty && vacancy.LeftFloatCount == 0 && vacancy.RightFloatCount == 0 {
		fits = true
	}

	if fits {
		border.BlockStart = side.shelfBlockOffset + sbox.MarginBlockStart.OrZero() - fc.bfc.cbBlockStart
		side.placeFloat(box, vacancy, fc.bfc.cbLineLeft, fc.bfc.cbLineRight)
		return nil
	}

	ownEmpty, oppCount := fc.emptyAndOppositeCount(sbox.Float, vacancy)
	switch {
	case needed > vacancy.InlineSize:
		side.dropShelf(nextBoundary(side))
	case ownEmpty && oppCount > 0:
		opp := fc.oppositeOf(sbox.Float)
		side.dropShelf(nextBoundary(opp))
	}
	fc.misfits = append(fc.misfits, misfitEntry{lineWidth, lineIsEmpty, box})
	return nil
}

func (fc *FloatContext) emptyAndOppositeCount(f style.Float, v frame.Vacancy) (ownEmpty bool, oppCount int) {
	if f == style.FloatRight {
		return v.RightFloatCount == 0, v.LeftFloatCount
	}
	return v.LeftFloatCount == 0, v.RightFloatCount
}

func nextBoundary(s *FloatSide) dimen.DU {
	t := s.trackContaining(s.shelfBlockOffset)
	return s.blockOffsets[t+1]
}

// ConsumeMisfits repeatedly drains the misfit queue, re-trying each float
// against an empty line. Each failed placement strictly advances some
// shelf past at least one boundary, so this always terminates.
func (fc *FloatContext) ConsumeMisfits() {
	for len(fc.misfits) > 0 {
		m := fc.misfits[0]
		fc.misfits = fc.misfits[1:]
		fc.tryPlace(0, true, m.box)
	}
}

// PostLine notifies the float context that a line of layout completed.
func (fc *FloatContext) PostLine(line frame.LineBox, didBreak bool) {
	if didBreak || len(fc.misfits) > 0 {
		dropTo := fc.bfc.cbBlockStart + line.BlockOffset + line.Height
		fc.left.dropShelf(dropTo)
		fc.right.dropShelf(dropTo)
	}
	fc.ConsumeMisfits()
}

// PreTextContent places any floats introduced before the first line, which
// must be positioned before line layout proceeds.
func (fc *FloatContext) PreTextContent() {
	fc.ConsumeMisfits()
}
