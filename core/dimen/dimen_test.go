package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.core")
	defer teardown()
	//
	assert.Equal(t, DU(10), Min(10, 20))
	assert.Equal(t, DU(20), Max(10, 20))
	assert.Equal(t, DU(-5), Min(-5, 0))
}

func TestClamp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.core")
	defer teardown()
	//
	assert.Equal(t, DU(5), Clamp(5, 0, 10))
	assert.Equal(t, DU(0), Clamp(-5, 0, 10))
	assert.Equal(t, DU(10), Clamp(15, 0, 10))
	// min-width wins over a smaller max-width
	assert.Equal(t, DU(20), Clamp(5, 20, 10))
}

func TestRectContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.core")
	defer teardown()
	//
	outer := Rect{TopL: Point{0, 0}, Size: Size{W: 100, H: 100}}
	inner := Rect{TopL: Point{10, 10}, Size: Size{W: 50, H: 50}}
	assert.True(t, Contains(outer, inner))
	assert.False(t, Contains(inner, outer))
}
