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
	"github.com/pillmayer-successor/flowcore/engine/style"
)

// ResolveInlineBoxModel solves CSS 2.2 §10.3.3 for a block-level,
// non-replaced box in normal flow: margin-left + border-left + padding-left
// + width + padding-right + border-right + margin-right == enclosingWidth.
// Auto values are resolved in place on sbox; over-constraint is handled by
// recalculating the margin on the end side of the box's direction
// (margin-right for ltr, margin-left for rtl), matching the
// teacher's distributeHorizontalMarginSpace in spirit — generalized here to
// the pre-resolved auto-or-value model this module works with, so there is
// no percentage or font-relative case left to carry over.
func ResolveInlineBoxModel(sbox *style.Box, enclosingWidth dimen.DU) {
	bw := sbox.BorderLineLeftWidth.OrZero() + sbox.BorderLineRightWidth.OrZero()
	pw := sbox.PaddingLineLeft.OrZero() + sbox.PaddingLineRight.OrZero()

	if sbox.InlineSize.IsAuto() {
		left := sbox.MarginLineLeft.OrZero()
		right := sbox.MarginLineRight.OrZero()
		width := enclosingWidth - left - right - bw - pw
		if width < 0 {
			width = 0
		}
		sbox.InlineSize = style.Abs(width)
		sbox.MarginLineLeft = style.Abs(left)
		sbox.MarginLineRight = style.Abs(right)
		return
	}

	width := sbox.InlineSize.Resolve()
	remaining := enclosingWidth - width - bw - pw
	leftAuto := sbox.MarginLineLeft.IsAuto()
	rightAuto := sbox.MarginLineRight.IsAuto()

	switch {
	case leftAuto && rightAuto:
		half := remaining / 2
		sbox.MarginLineLeft = style.Abs(half)
		sbox.MarginLineRight = style.Abs(remaining - half)
	case leftAuto:
		right := sbox.MarginLineRight.Resolve()
		sbox.MarginLineLeft = style.Abs(remaining - right)
	case rightAuto:
		left := sbox.MarginLineLeft.Resolve()
		sbox.MarginLineRight = style.Abs(remaining - left)
	default:
		left := sbox.MarginLineLeft.Resolve()
		right := sbox.MarginLineRight.Resolve()
		diff := remaining - left - right
		if diff != 0 {
			if sbox.Direction == style.RTL {
				sbox.MarginLineLeft = style.Abs(left + diff)
			} else {
				sbox.MarginLineRight = style.Abs(right + diff)
			}
		}
	}
}

// ResolveBlockBoxModel handles CSS 2.2 §10.6.3's block-axis counterpart.
// There is little to resolve up front: a definite block size is used
// as-is, an auto block size is left auto and deferred to
// positionBlockContainers/Finalize, and auto block-axis margins are
// already treated as zero everywhere via style.Length.OrZero — CSS2 gives
// no special auto-margin behavior in the block axis to replicate here.
func ResolveBlockBoxModel(sbox *style.Box) {
	_ = sbox
}
