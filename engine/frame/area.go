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

import (
	"github.com/pillmayer-successor/flowcore/core/dimen"
	"github.com/pillmayer-successor/flowcore/engine/style"
)

// Area is one of the three nested rectangles of a block container (border,
// padding or content). Coordinates are relative to the containing block's
// writing-mode axes until absolutify runs; afterwards Physical holds the
// root-relative physical rectangle.
//
// parent is a non-owning back-reference to the enclosing area of the same
// box (border for padding, padding for content), written once by
// NewBlockContainerArea and never mutated afterward. It is nil on a border
// area. Absolutify does not read it: the parent frame is passed in instead.
type Area struct {
	LineLeft, BlockStart   dimen.DU
	InlineSize, BlockSize  dimen.DU
	Physical               dimen.Rect
	parent                 *Area
}

// Rect returns the area's relative geometry as a dimen.Rect, using
// (lineLeft, blockStart) as the top-left corner. This is only meaningful
// before absolutify; afterwards use Physical.
func (a *Area) Rect() dimen.Rect {
	return dimen.Rect{
		TopL: dimen.Point{X: a.LineLeft, Y: a.BlockStart},
		Size: dimen.Size{W: a.InlineSize, H: a.BlockSize},
	}
}

// BlockContainerArea bundles the three nested areas of a single block
// container plus the writing mode/direction pair needed to interpret them.
//
// ContainingWM/ContainingDir describe the containing block's axes, which is
// what Border.LineLeft/BlockStart are expressed in. OwnWM/OwnDir describe
// this box's own axes, which is what this box's children interpret their
// own LineLeft/BlockStart against (relative to Content).
type BlockContainerArea struct {
	Border  *Area
	Padding *Area
	Content *Area

	ContainingWM  style.WritingMode
	ContainingDir style.Direction
	OwnWM         style.WritingMode
	OwnDir        style.Direction
}

// NewBlockContainerArea builds the nested border/padding/content areas for a
// box whose border-box geometry (relative to its containing block) and
// resolved style are known. Areas are identity-shared (same *Area pointer)
// across a zero-width edge, matching the data model's "content ⊆ padding ⊆
// border, identical by reference when the corresponding edge is
// zero-width" invariant.
func NewBlockContainerArea(border Area, sbox *style.Box, containingWM style.WritingMode, containingDir style.Direction) *BlockContainerArea {
	b := &border
	padding := b
	borderLeft := sbox.BorderLineLeftWidth.OrZero()
	borderRight := sbox.BorderLineRightWidth.OrZero()
	borderTop := sbox.BorderBlockStartWidth.OrZero()
	borderBottom := sbox.BorderBlockEndWidth.OrZero()
	if borderLeft != 0 || borderRight != 0 || borderTop != 0 || borderBottom != 0 {
		padding = &Area{
			LineLeft:   b.LineLeft + borderLeft,
			BlockStart: b.BlockStart + borderTop,
			InlineSize: b.InlineSize - borderLeft - borderRight,
			BlockSize:  b.BlockSize - borderTop - borderBottom,
			parent:     b,
		}
	}
	content := padding
	padLeft := sbox.PaddingLineLeft.OrZero()
	padRight := sbox.PaddingLineRight.OrZero()
	padTop := sbox.PaddingBlockStart.OrZero()
	padBottom := sbox.PaddingBlockEnd.OrZero()
	if padLeft != 0 || padRight != 0 || padTop != 0 || padBottom != 0 {
		content = &Area{
			LineLeft:   padding.LineLeft + padLeft,
			BlockStart: padding.BlockStart + padTop,
			InlineSize: padding.InlineSize - padLeft - padRight,
			BlockSize:  padding.BlockSize - padTop - padBottom,
			parent:     padding,
		}
	}
	return &BlockContainerArea{
		Border:        b,
		Padding:       padding,
		Content:       content,
		ContainingWM:  containingWM,
		ContainingDir: containingDir,
		OwnWM:         sbox.WritingMode,
		OwnDir:        sbox.Direction,
	}
}

// Contains reports the containment invariant content ⊆ padding ⊆ border,
// checked against relative (pre-absolutify) geometry.
func (ba *BlockContainerArea) Contains() bool {
	return dimen.Contains(ba.Border.Rect(), ba.Padding.Rect()) &&
		dimen.Contains(ba.Padding.Rect(), ba.Content.Rect())
}

// absolutifyArea converts one relative area into physical coordinates given
// the already-absolutified physical origin and size of its parent area, and
// the writing mode governing the mapping. Three cases: horizontal-tb is the
// identity map; vertical-lr rotates axes; vertical-rl rotates and mirrors
// the inline axis against the parent's inline extent. Any other writing
// mode panics.
func absolutifyArea(a *Area, parentOrigin dimen.Point, parentSize dimen.Size, wm style.WritingMode) {
	switch wm {
	case style.HorizontalTB:
		a.Physical = dimen.Rect{
			TopL: dimen.Point{X: parentOrigin.X + a.LineLeft, Y: parentOrigin.Y + a.BlockStart},
			Size: dimen.Size{W: a.InlineSize, H: a.BlockSize},
		}
	case style.VerticalLR:
		a.Physical = dimen.Rect{
			TopL: dimen.Point{X: parentOrigin.X + a.BlockStart, Y: parentOrigin.Y + a.LineLeft},
			Size: dimen.Size{W: a.BlockSize, H: a.InlineSize},
		}
	case style.VerticalRL:
		mirroredX := parentOrigin.X + parentSize.W - a.BlockStart - a.BlockSize
		a.Physical = dimen.Rect{
			TopL: dimen.Point{X: mirroredX, Y: parentOrigin.Y + a.LineLeft},
			Size: dimen.Size{W: a.BlockSize, H: a.InlineSize},
		}
	default:
		panic("frame: absolutify saw an unknown writing mode")
	}
}

// Absolutify converts ba's border/padding/content areas from
// containing-block-relative to root-physical coordinates, given the already
// absolutified physical origin/size of the containing block's content area.
// At the BFC/document root, call with parentOrigin == dimen.Origin and
// parentSize equal to the root's own border-box size: the root has no
// containing block, so this degenerates to a pass-through identity map.
//
// Absolutify is idempotent when called again with the area's own already-
// computed Physical origin and size: recomputing from identical relative
// geometry and the same parent frame yields the same physical rectangle.
func (ba *BlockContainerArea) Absolutify(parentOrigin dimen.Point, parentSize dimen.Size) {
	absolutifyArea(ba.Border, parentOrigin, parentSize, ba.ContainingWM)
	if ba.Padding != ba.Border {
		absolutifyArea(ba.Padding, parentOrigin, parentSize, ba.ContainingWM)
	} else {
		ba.Padding.Physical = ba.Border.Physical
	}
	if ba.Content != ba.Padding {
		absolutifyArea(ba.Content, parentOrigin, parentSize, ba.ContainingWM)
	} else {
		ba.Content.Physical = ba.Padding.Physical
	}
}
