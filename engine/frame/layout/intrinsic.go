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

// ContributionMode selects which of the two CSS intrinsic sizes
// LayoutContribution computes.
type ContributionMode int

const (
	MinContent ContributionMode = iota
	MaxContent
)

// LayoutContribution returns box's contribution to an ancestor's
// intrinsic (shrink-to-fit) width calculation. A box with a definite
// inline size simply reports it, margins/borders/padding included
// (auto treated as zero). A box with an auto inline size recurses into
// its children, who stack vertically so their own contributions combine
// via max rather than sum; any floated children are layered back in
// separately, since floats run alongside normal flow rather than
// interrupting it: via max for min-content (a float never forces a line
// narrower than its own content) and via sum for max-content (at
// max-content width nothing wraps, so a float's width simply adds to the
// total).
func LayoutContribution(box frame.Container, mode ContributionMode) dimen.DU {
	sbox := box.Style()
	if !sbox.InlineSize.IsAuto() {
		return sbox.InlineSize.Resolve() + ambientInlineSpace(box)
	}

	var stacked, floated dimen.DU
	for _, child := range box.Children() {
		contribution := LayoutContribution(child, mode)
		if child.IsFloat() {
			floated += contribution
		} else if contribution > stacked {
			stacked = contribution
		}
	}
	if mode == MinContent {
		stacked = dimen.Max(stacked, floated)
	} else {
		stacked += floated
	}
	return stacked + ambientInlineSpace(box)
}

func ambientInlineSpace(box frame.Container) dimen.DU {
	sbox := box.Style()
	return sbox.BorderLineLeftWidth.OrZero() + sbox.BorderLineRightWidth.OrZero() +
		sbox.PaddingLineLeft.OrZero() + sbox.PaddingLineRight.OrZero() +
		sbox.MarginLineLeft.OrZero() + sbox.MarginLineRight.OrZero()
}
