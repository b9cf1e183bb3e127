package main

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

// boxdump assembles a small box tree by hand — no DOM, no CSS cascade,
// both stay external to this module — and runs it through LayoutBlockBox,
// printing the resulting border-box geometry of every box. It exists to
// exercise the library the way a renderer eventually would.
import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/pillmayer-successor/flowcore/core/dimen"
	"github.com/pillmayer-successor/flowcore/engine/frame"
	"github.com/pillmayer-successor/flowcore/engine/frame/layout"
	"github.com/pillmayer-successor/flowcore/engine/style"
)

func main() {
	gtrace.EngineTracer = gologadapter.New()
	gtrace.EngineTracer.SetTraceLevel(tracing.LevelInfo)

	root := block(style.Auto(), style.Auto(), 0, 0, frame.AttrBfcRoot)
	box1 := block(style.Auto(), style.Abs(50), 0, 20, 0)
	box2 := block(style.Auto(), style.Abs(50), 30, 0, 0)
	root.AddChild(box1)
	root.AddChild(box2)

	if err := layout.LayoutBlockBox(root, 300); err != nil {
		fmt.Fprintf(os.Stderr, "layout failed: %v\n", err)
		os.Exit(1)
	}

	dump(root, 0)
}

func block(inline, blockSize style.Length, marginTop, marginBottom dimen.DU, attrs frame.Attrs) *frame.BlockContainer {
	sbox := &style.Box{
		MarginBlockStart:      style.Abs(marginTop),
		MarginBlockEnd:        style.Abs(marginBottom),
		MarginLineLeft:        style.Abs(0),
		MarginLineRight:       style.Abs(0),
		InlineSize:            inline,
		BlockSize:             blockSize,
		PaddingBlockStart:     style.Abs(0),
		PaddingBlockEnd:       style.Abs(0),
		PaddingLineLeft:       style.Abs(0),
		PaddingLineRight:      style.Abs(0),
		BorderBlockStartWidth: style.Abs(0),
		BorderBlockEndWidth:   style.Abs(0),
		BorderLineLeftWidth:   style.Abs(0),
		BorderLineRightWidth:  style.Abs(0),
	}
	return frame.NewBlockContainer(sbox, attrs)
}

func dump(box frame.Container, depth int) {
	b := box.Areas().Border
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%sblock-start=%s line-left=%s inline-size=%s block-size=%s\n",
		indent, b.BlockStart, b.LineLeft, b.InlineSize, b.BlockSize)
	for _, c := range box.Children() {
		dump(c, depth+1)
	}
}
