/*
Package style holds the small set of already-resolved CSS used values that
the block formatting and float placement core needs from the style cascade.

The cascade itself — selector matching, computed-value resolution, unit
conversion, percentage resolution — happens upstream and is out of scope
for this module (see spec §1, "external collaborators"). By the time a box
reaches this package, every dimension is either a concrete number or the
`auto` sentinel; accessing the concrete value of an auto length is a
programmer error in the caller (the builder should have resolved it, or
chosen to treat it as zero/collapsed-to-parent explicitly) and panics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package style

import "github.com/pillmayer-successor/flowcore/core/dimen"

// Length is an already-resolved CSS used value: either a concrete number
// or the `auto` sentinel. It deliberately cannot represent a percentage,
// a font-relative or a view-relative unit — those are cascade concerns
// that must already have been reduced before a box enters this core.
type Length struct {
	v    dimen.DU
	auto bool
}

// Auto returns the `auto` sentinel length.
func Auto() Length { return Length{auto: true} }

// Abs returns a resolved, concrete length.
func Abs(v dimen.DU) Length { return Length{v: v} }

// IsAuto reports whether l is the `auto` sentinel.
func (l Length) IsAuto() bool { return l.auto }

// Resolve returns the concrete value of l. It panics if l is `auto`:
// callers that can legitimately encounter `auto` must test IsAuto (or call
// OrZero) first. This is the fail-fast behavior spec §6 requires of
// "accessing a non-reduced value".
func (l Length) Resolve() dimen.DU {
	if l.auto {
		panic("style: Length.Resolve called on an auto value")
	}
	return l.v
}

// OrZero returns the concrete value of l, or zero if l is `auto`. Used
// wherever the spec says a margin is "treated as zero when auto" (e.g.
// float border-box sizing, clearance arithmetic).
func (l Length) OrZero() dimen.DU {
	if l.auto {
		return 0
	}
	return l.v
}

// WritingMode is one of the three writing modes this core understands.
type WritingMode int

const (
	HorizontalTB WritingMode = iota
	VerticalLR
	VerticalRL
)

// Direction is the inline base direction.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// Float is the CSS `float` property.
type Float int

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

// Clear is the CSS `clear` property.
type Clear int

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

// ClearsLeft reports whether this clear value requires clearance against
// the left float side.
func (c Clear) ClearsLeft() bool { return c == ClearLeft || c == ClearBoth }

// ClearsRight reports whether this clear value requires clearance against
// the right float side.
func (c Clear) ClearsRight() bool { return c == ClearRight || c == ClearBoth }

// Outer is the CSS outer display type: block-level or inline-level.
type Outer int

const (
	OuterBlock Outer = iota
	OuterInline
)

// Box carries the already-resolved used values a block container needs
// for box-model sizing and for BFC/float participation. It is the
// concrete counterpart to the accessor interface described in spec §6;
// since values are already resolved by the time a box reaches this core,
// they are plain struct fields (mirroring the teacher's frame.Box, which
// likewise stores Margins/Padding/BorderWidth as direct fields rather
// than behind accessor methods).
type Box struct {
	MarginBlockStart, MarginBlockEnd Length
	MarginLineLeft, MarginLineRight  Length
	InlineSize, BlockSize            Length
	PaddingBlockStart, PaddingBlockEnd Length
	BorderBlockStartWidth, BorderBlockEndWidth Length
	PaddingLineLeft, PaddingLineRight Length
	BorderLineLeftWidth, BorderLineRightWidth Length

	WritingMode WritingMode
	Direction   Direction
	Float       Float
	Clear       Clear
	Outer       Outer
}
