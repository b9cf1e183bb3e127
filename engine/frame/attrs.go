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

// Attrs is a bitfield of per-box properties that the layout driver consults
// on every boxStart/boxEnd without walking back into the style accessors.
type Attrs uint8

const (
	AttrAnonymous Attrs = 1 << iota
	AttrBfcRoot
	AttrFloat
	AttrInline
	AttrLogging
)

// Has reports whether a is set in attrs.
func (attrs Attrs) Has(a Attrs) bool {
	return attrs&a != 0
}

// Set returns attrs with a set.
func (attrs Attrs) Set(a Attrs) Attrs {
	return attrs | a
}

// Clear returns attrs with a cleared.
func (attrs Attrs) Clear(a Attrs) Attrs {
	return attrs &^ a
}

// IsAnonymous reports whether the box was synthesized by the builder rather
// than generated by a DOM node (e.g. an anonymous block wrapping runs of
// inline content next to a block sibling).
func (attrs Attrs) IsAnonymous() bool { return attrs.Has(AttrAnonymous) }

// IsBfcRoot reports whether this box establishes a new block formatting
// context. A float is always a BFC root. Other boxes (the document root,
// anything styled `flow-root`, any box whose writing mode differs from its
// parent's) count as BFC roots when the builder has set AttrBfcRoot on them.
func (attrs Attrs) IsBfcRoot() bool { return attrs.Has(AttrBfcRoot) || attrs.Has(AttrFloat) }

// IsFloat reports whether the box is floated (left or right).
func (attrs Attrs) IsFloat() bool { return attrs.Has(AttrFloat) }

// IsInline reports whether the box is inline-level. Block-level is simply
// the negation.
func (attrs Attrs) IsInline() bool { return attrs.Has(AttrInline) }

// IsBlockLevel is the derived predicate `not isInline`.
func (attrs Attrs) IsBlockLevel() bool { return !attrs.IsInline() }

// LoggingEnabled reports whether AttrLogging is set, marking a box whose
// layout should be traced. The layout package does not consult it.
func (attrs Attrs) LoggingEnabled() bool { return attrs.Has(AttrLogging) }
