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

import "errors"

// ErrEnclosingWidthNotFixed names the structural gap of solving an inline
// box model against a containing block whose own width is not known. No
// function in this package returns it: ResolveInlineBoxModel always solves
// against the width it is given.
var ErrEnclosingWidthNotFixed = errors.New("layout: enclosing width not fixed")

// ErrUnsupportedChildType names the structural gap of a child this core
// does not know how to lay out (e.g. an inline-block box appearing directly
// inside an inline formatting context, which this module's IFC seam does
// not model). No function in this package returns it.
var ErrUnsupportedChildType = errors.New("layout: unsupported child type")

// mustBlockLevel panics if box is not a block-level container. Used at the
// entry points, which are programmer contracts: calling layoutFloatBox on
// a non-float, or layoutBlockBox on something that isn't block-level, is a
// bug in the caller.
func mustBlockLevel(box interface{ IsBlockLevel() bool }) {
	if !box.IsBlockLevel() {
		panic("layout: expected a block-level container")
	}
}
