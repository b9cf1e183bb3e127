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
	"sort"

	"github.com/pillmayer-successor/flowcore/core/dimen"
	"github.com/pillmayer-successor/flowcore/engine/frame"
)

// FloatSideKind distinguishes the left and right float side of a BFC.
type FloatSideKind int

const (
	LeftSide FloatSideKind = iota
	RightSide
)

// FloatSide tracks the per-side occupancy of a block formatting context
// and the shelf position at which the next float of that side is tried.
//
// blockOffsets always carries one more entry than the track slices
// (inlineSizes, inlineOffsets, floatCounts): the final entry is the
// sentinel dimen.Infinity, standing in for the spec's "last track extends
// to +∞" rule, which lets every range query use the same strictly-less-than
// comparison instead of special-casing the open tail.
type FloatSide struct {
	kind             FloatSideKind
	items            []frame.Container
	blockOffsets     []dimen.DU
	inlineSizes      []dimen.DU
	inlineOffsets    []dimen.DU
	floatCounts      []int
	shelfBlockOffset dimen.DU
	shelfTrackIndex  int
	bottom           dimen.DU
}

// NewFloatSide returns an empty float side with a single unbounded track.
func NewFloatSide(kind FloatSideKind) *FloatSide {
	return &FloatSide{
		kind:          kind,
		blockOffsets:  []dimen.DU{0, dimen.Infinity},
		inlineSizes:   []dimen.DU{0},
		inlineOffsets: []dimen.DU{0},
		floatCounts:   []int{0},
	}
}

// GetBottom returns the block-axis position below the lowest float placed
// on this side so far.
func (s *FloatSide) GetBottom() dimen.DU { return s.bottom }

// trackContaining returns the index of the track whose interval
// [blockOffsets[i], blockOffsets[i+1]) contains x.
func (s *FloatSide) trackContaining(x dimen.DU) int {
	i := sort.Search(len(s.blockOffsets), func(i int) bool { return s.blockOffsets[i] > x })
	i--
	if i < 0 {
		i = 0
	}
	if i > len(s.floatCounts)-1 {
		i = len(s.floatCounts) - 1
	}
	return i
}

// getTrackRange returns [start, end), the half-open range of track indices
// spanned by the block-axis interval [blockOffset, blockOffset+blockSize).
func (s *FloatSide) getTrackRange(blockOffset, blockSize dimen.DU) (start, end int) {
	start = s.trackContaining(blockOffset)
	target := blockOffset + blockSize
	end = sort.Search(len(s.blockOffsets), func(i int) bool { return s.blockOffsets[i] >= target })
	if end < start+1 {
		end = start + 1
	}
	return
}

// getSizeOfTracks returns the maximum occupied inline extent across tracks
// [start, end), as seen from inlineOffset, considering only tracks that
// actually carry a float.
func (s *FloatSide) getSizeOfTracks(start, end int, inlineOffset dimen.DU) dimen.DU {
	var max dimen.DU
	for i := start; i < end && i < len(s.floatCounts); i++ {
		if s.floatCounts[i] == 0 {
			continue
		}
		size := inlineOffset + s.inlineSizes[i] - s.inlineOffsets[i]
		if size > max {
			max = size
		}
	}
	return max
}

// splitTrack inserts a new track boundary at block offset `at`, strictly
// inside track i, cloning track i's occupancy into the new track.
func (s *FloatSide) splitTrack(i int, at dimen.DU) {
	if at <= s.blockOffsets[i] || at >= s.blockOffsets[i+1] {
		panic("frame/layout: splitTrack boundary not strictly inside track")
	}
	s.blockOffsets = append(s.blockOffsets, 0)
	copy(s.blockOffsets[i+2:], s.blockOffsets[i+1:])
	s.blockOffsets[i+1] = at

	s.inlineSizes = append(s.inlineSizes, 0)
	copy(s.inlineSizes[i+1:], s.inlineSizes[i:])
	s.inlineOffsets = append(s.inlineOffsets, 0)
	copy(s.inlineOffsets[i+1:], s.inlineOffsets[i:])
	s.floatCounts = append(s.floatCounts, 0)
	copy(s.floatCounts[i+1:], s.floatCounts[i:])
}

// boxStart unconditionally resets the shelf to blockOffset. This can move
// the shelf backward when a box starts above the current shelf position
// (e.g. via a negative margin). CSS §9.5.1 rule 5 would forbid that; this
// matches observed browser behavior instead and is kept deliberately.
func (s *FloatSide) boxStart(blockOffset dimen.DU) {
	s.shelfBlockOffset = blockOffset
	s.shelfTrackIndex = s.trackContaining(blockOffset)
}

// dropShelf moves the shelf downward only.
func (s *FloatSide) dropShelf(blockOffset dimen.DU) {
	if blockOffset > s.shelfBlockOffset {
		s.shelfBlockOffset = blockOffset
	}
	s.shelfTrackIndex = s.trackContaining(s.shelfBlockOffset)
}

// splitIfShelfDropped splits the track the shelf now sits inside of, if the
// shelf is not already on a track boundary, and advances shelfTrackIndex to
// the (new) track that starts exactly at the shelf.
func (s *FloatSide) splitIfShelfDropped() {
	t := s.trackContaining(s.shelfBlockOffset)
	if s.blockOffsets[t] == s.shelfBlockOffset {
		s.shelfTrackIndex = t
		return
	}
	s.splitTrack(t, s.shelfBlockOffset)
	s.shelfTrackIndex = t + 1
}

// placeFloat commits box to this side at the current shelf position. The
// caller (FloatContext) has already verified the fit; vacancy.BlockOffset
// must equal the shelf exactly — a mismatch is a programmer contract
// violation, not a layout outcome, and panics.
func (s *FloatSide) placeFloat(box frame.Container, vacancy frame.Vacancy, cbLineLeft, cbLineRight dimen.DU) {
	if vacancy.BlockOffset != s.shelfBlockOffset {
		panic("frame/layout: float vacancy block offset disagrees with the shelf")
	}
	s.splitIfShelfDropped()
	startTrack := s.shelfTrackIndex

	sbox := box.Style()
	border := box.Areas().Border
	marginStart := sbox.MarginBlockStart.OrZero()
	marginEnd := sbox.MarginBlockEnd.OrZero()
	blockSize := border.BlockSize + marginStart + marginEnd

	endTrack := startTrack + 1
	if blockSize > 0 {
		_, endTrack = s.getTrackRange(s.shelfBlockOffset, blockSize)
		boundary := s.shelfBlockOffset + blockSize
		if s.blockOffsets[endTrack] != boundary {
			splitAt := endTrack - 1
			if splitAt < startTrack {
				splitAt = startTrack
			}
			s.splitTrack(splitAt, boundary)
			endTrack = splitAt + 1
		}
	}

	var marginOffset, marginTrail dimen.DU
	var cbOffset dimen.DU
	switch s.kind {
	case LeftSide:
		marginOffset = sbox.MarginLineLeft.OrZero()
		marginTrail = sbox.MarginLineRight.OrZero()
		cbOffset = vacancy.LeftOffset
		border.LineLeft = cbOffset - cbLineLeft + marginOffset
	case RightSide:
		marginOffset = sbox.MarginLineRight.OrZero()
		marginTrail = sbox.MarginLineLeft.OrZero()
		cbOffset = vacancy.RightOffset
		borderRight := cbOffset - cbLineRight - marginOffset
		border.LineLeft = -borderRight - border.InlineSize
	}

	for t := startTrack; t < endTrack && t < len(s.floatCounts); t++ {
		if s.floatCounts[t] == 0 {
			s.inlineOffsets[t] = -cbOffset
			s.inlineSizes[t] = marginOffset + border.InlineSize + marginTrail
		} else {
			s.inlineSizes[t] = s.inlineOffsets[t] + cbOffset + marginOffset + border.InlineSize + marginTrail
		}
		s.floatCounts[t]++
	}

	s.items = append(s.items, box)
	if bottom := s.shelfBlockOffset + blockSize; bottom > s.bottom {
		s.bottom = bottom
	}
}
