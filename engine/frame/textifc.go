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

package frame

import "github.com/pillmayer-successor/flowcore/core/dimen"

// LineBox is one output line of text layout, in the coordinates of the IFC's
// own block container: BlockOffset is relative to the top of that
// container's content area.
type LineBox struct {
	BlockOffset dimen.DU
	Height      dimen.DU
	DidBreak    bool
}

// Paragraph is the output of a text subsystem's layout pass over a single
// inline formatting context.
type Paragraph struct {
	LineBoxes []LineBox
	Height    dimen.DU
}

// Vacancy describes the horizontal band still available for a line or a
// float at a given block offset, bounded by whatever floats from either
// side intrude into that band.
type Vacancy struct {
	LeftOffset, RightOffset dimen.DU
	BlockOffset             dimen.DU
	InlineSize              dimen.DU
	LeftFloatCount          int
	RightFloatCount         int
}

// FloatPlacer is the subset of the float context's API that a running text
// layout needs to call back into: placing in-flow floats it encounters,
// locating the next line band, and reporting line completions so the shelf
// can advance. Implemented by *layout.FloatContext; declared here (rather
// than imported from the layout package) so that this package does not need
// to depend on it — the layout package already depends on frame.
type FloatPlacer interface {
	PlaceFloat(lineWidth dimen.DU, lineIsEmpty bool, box Container) error
	FindLinePosition(blockOffset, blockSize, inlineSize dimen.DU) Vacancy
	PreTextContent()
	PostLine(line LineBox, didBreak bool)
}

// InlineFormattingContext is the text subsystem's entry point, invoked by
// the block formatting context driver when it descends into a
// block-container-of-inlines. Shaping and line breaking are out of scope
// for this module (spec §1); this interface is the seam.
type InlineFormattingContext interface {
	// DoTextLayout runs shaping and line breaking against the given
	// content area, using fctx to place in-flow floats and locate line
	// bands. It returns the resulting paragraph (line boxes and total
	// height).
	DoTextLayout(fctx FloatPlacer, content *Area) (Paragraph, error)
}

// FakeInlineFormattingContext is a deterministic stand-in for a real text
// shaper, used by tests and by the demo command. It produces a fixed number
// of lines of a fixed height, querying fctx for line position the way a
// real line-breaker would but ignoring the returned inline size (it never
// actually sets type).
type FakeInlineFormattingContext struct {
	LineCount  int
	LineHeight dimen.DU
}

// DoTextLayout implements InlineFormattingContext.
func (f *FakeInlineFormattingContext) DoTextLayout(fctx FloatPlacer, content *Area) (Paragraph, error) {
	fctx.PreTextContent()
	para := Paragraph{}
	offset := dimen.Zero
	for i := 0; i < f.LineCount; i++ {
		vac := fctx.FindLinePosition(offset, f.LineHeight, content.InlineSize)
		line := LineBox{BlockOffset: vac.BlockOffset, Height: f.LineHeight}
		para.LineBoxes = append(para.LineBoxes, line)
		offset = vac.BlockOffset + f.LineHeight
		fctx.PostLine(line, false)
	}
	para.Height = offset
	return para, nil
}
