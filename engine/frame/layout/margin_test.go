package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pillmayer-successor/flowcore/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestMarginCollapseCollectionPositiveOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	var m MarginCollapseCollection
	m.Add(20)
	m.Add(30)
	assert.Equal(t, dimen.DU(30), m.Get())
}

func TestMarginCollapseCollectionMixedSigns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	var m MarginCollapseCollection
	m.Add(30)
	m.Add(-10)
	assert.Equal(t, dimen.DU(20), m.Get())
}

func TestMarginCollapseCollectionNegativeOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	var m MarginCollapseCollection
	m.Add(-10)
	m.Add(-30)
	assert.Equal(t, dimen.DU(-30), m.Get())
}

func TestMarginCollapseCollectionCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	var m MarginCollapseCollection
	m.Add(10)
	clone := m.Clone()
	clone.Add(50)
	assert.Equal(t, dimen.DU(10), m.Get())
	assert.Equal(t, dimen.DU(50), clone.Get())
}

func TestMarginCollapseCollectionSeeded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowcore.layout")
	defer teardown()

	m := NewMarginCollapseCollection(15)
	assert.Equal(t, dimen.DU(15), m.Get())
}
