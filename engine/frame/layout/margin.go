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

import "github.com/pillmayer-successor/flowcore/core/dimen"

// MarginCollapseCollection accumulates a set of adjoining block-axis
// margins and collapses them to a single net value using the CSS rule:
// the largest positive margin minus the largest negative margin (by
// absolute value). A set of only positive margins degenerates to their
// maximum, a set of only negative margins to the most negative one.
type MarginCollapseCollection struct {
	positive dimen.DU
	negative dimen.DU
}

// NewMarginCollapseCollection returns an empty collection, optionally
// seeded with an initial margin (used when a flush reopens a collection
// seeded with clearance-derived floatBottom - cbBlockStart).
func NewMarginCollapseCollection(seed ...dimen.DU) MarginCollapseCollection {
	var m MarginCollapseCollection
	if len(seed) > 0 {
		m.Add(seed[0])
	}
	return m
}

// Add folds margin m into the collection.
func (m *MarginCollapseCollection) Add(margin dimen.DU) {
	if margin >= 0 {
		m.positive = dimen.Max(m.positive, margin)
	} else {
		m.negative = dimen.Max(m.negative, -margin)
	}
}

// Get returns the collapsed net margin. An empty collection returns 0.
func (m MarginCollapseCollection) Get() dimen.DU {
	return m.positive - m.negative
}

// Clone returns an independent copy of m.
func (m MarginCollapseCollection) Clone() MarginCollapseCollection {
	return MarginCollapseCollection{positive: m.positive, negative: m.negative}
}
