/*
Package layout implements the CSS2 block formatting and float placement
core: it walks a frame.Container box tree and assigns every box a concrete
position and, where left auto, a size.

Overview

A MarginCollapseCollection accumulates adjoining margins as a
(positive, negative) pair for later resolution. A FloatSide tracks one
side's floats as an ordered array of horizontal tracks plus a monotonic
shelf; a FloatContext owns both sides of a single block formatting context,
answers vacancy queries for lines and boxes, and defers floats that do not
fit onto a misfit queue until room opens up. BlockFormattingContext is the
driver: it replays a recorded sequence of box-start/box-end events against
the settled margin collection once it can no longer grow
(positionBlockContainers, here named flush), invoking an
InlineFormattingContext for boxes that hold text and recursing into nested
block formatting contexts for BFC roots encountered along the way.

ResolveInlineBoxModel and ResolveBlockBoxModel implement CSS2.2's box-model
equations ahead of positioning. LayoutContribution computes the min-content
and max-content intrinsic sizes used by callers that need a box's size
before its containing block's width is fixed.

LayoutBlockBox and LayoutFloatBox are the package's two entry points.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowcore.layout'.
func tracer() tracing.Trace {
	return tracing.Select("flowcore.layout")
}
