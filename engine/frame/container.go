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

import "github.com/pillmayer-successor/flowcore/engine/style"

// Container is a node of the box tree: a block container, possibly floated,
// possibly a BFC root, possibly anonymous. The tree itself (parent/children
// links) is carried by the concrete type, not abstracted through a separate
// tree package — the box tree here has no need for a generic reusable node
// since nothing outside this module walks it.
type Container interface {
	Style() *style.Box
	Attrs() Attrs
	Areas() *BlockContainerArea
	Parent() Container
	Children() []Container
	AddChild(Container)

	// SetContainingBlock records the back-reference to the content area of
	// this container's containing block. Set once during the downward
	// pre-order walk; never mutated afterward.
	SetContainingBlock(cb *Area)
	ContainingBlock() *Area

	IFC() InlineFormattingContext

	IsBlockLevel() bool
	IsFloat() bool
	IsBfcRoot() bool
	IsBlockContainerOfInlines() bool
	IsBlockContainerOfBlockContainers() bool
	CanCollapseThrough() bool
}

// BlockContainer is the concrete, and only, implementation of Container in
// this module.
type BlockContainer struct {
	attrs    Attrs
	style    *style.Box
	area     *BlockContainerArea
	parent   Container
	children []Container
	ifc      InlineFormattingContext
	cb       *Area
}

// NewBlockContainer creates a box with the given resolved style and
// attributes. Its areas are installed later, once its border-box geometry
// is known (see NewBlockContainerArea), via SetAreas.
func NewBlockContainer(sbox *style.Box, attrs Attrs) *BlockContainer {
	return &BlockContainer{style: sbox, attrs: attrs}
}

// SetAreas installs the box's nested area triple. Called once the box's
// border-box geometry relative to its containing block is known.
func (b *BlockContainer) SetAreas(area *BlockContainerArea) {
	b.area = area
}

// WithIFC attaches a text-layout collaborator, marking the box as a
// block-container-of-inlines.
func (b *BlockContainer) WithIFC(ifc InlineFormattingContext) *BlockContainer {
	b.ifc = ifc
	return b
}

func (b *BlockContainer) Style() *style.Box       { return b.style }
func (b *BlockContainer) Attrs() Attrs             { return b.attrs }
func (b *BlockContainer) Areas() *BlockContainerArea { return b.area }
func (b *BlockContainer) Parent() Container        { return b.parent }
func (b *BlockContainer) Children() []Container    { return b.children }
func (b *BlockContainer) IFC() InlineFormattingContext { return b.ifc }

// AddChild appends c as the last child of b and records b as c's parent.
// A box with an IFC attached takes no block-container children: inline
// wrappers, runs and floats live inside the IFC's own paragraph structure,
// not in this tree.
func (b *BlockContainer) AddChild(c Container) {
	if bc, ok := c.(*BlockContainer); ok {
		bc.parent = b
	}
	b.children = append(b.children, c)
}

func (b *BlockContainer) SetContainingBlock(cb *Area) {
	if b.cb != nil {
		panic("frame: containing block already set for this container")
	}
	b.cb = cb
}

func (b *BlockContainer) ContainingBlock() *Area { return b.cb }

func (b *BlockContainer) IsBlockLevel() bool { return b.attrs.IsBlockLevel() }
func (b *BlockContainer) IsFloat() bool      { return b.attrs.IsFloat() }
func (b *BlockContainer) IsBfcRoot() bool    { return b.attrs.IsBfcRoot() || b.attrs.IsFloat() }

// IsBlockContainerOfInlines reports whether this box directly generates an
// inline formatting context (has runs/inline content as children) rather
// than further block containers.
func (b *BlockContainer) IsBlockContainerOfInlines() bool { return b.ifc != nil }

// IsBlockContainerOfBlockContainers reports whether this box has no IFC and
// at least one child; a box with neither is neither kind of container. The
// BFC driver uses it to decide whether an auto block size should be set
// from the sum of children's border-box heights.
func (b *BlockContainer) IsBlockContainerOfBlockContainers() bool {
	return b.ifc == nil && len(b.children) > 0
}

// CanCollapseThrough reports whether b is eligible to have its top and
// bottom margins merge with its siblings': auto block size, no border or
// padding at either block edge, and nothing in its subtree that would pin
// it in place (no line boxes, and every child likewise collapses through).
func (b *BlockContainer) CanCollapseThrough() bool {
	if !b.style.BlockSize.IsAuto() {
		return false
	}
	if b.style.PaddingBlockStart.OrZero() != 0 || b.style.PaddingBlockEnd.OrZero() != 0 {
		return false
	}
	if b.style.BorderBlockStartWidth.OrZero() != 0 || b.style.BorderBlockEndWidth.OrZero() != 0 {
		return false
	}
	if b.ifc != nil {
		return false
	}
	for _, c := range b.children {
		if !c.CanCollapseThrough() {
			return false
		}
	}
	return true
}
