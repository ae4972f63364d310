package ui

import (
	"testing"

	"github.com/Sh1nto/quasar/internal/tabs"
)

func demoStrip() *stripState {
	return &stripState{
		axis:     tabs.Horizontal,
		originX:  2,
		originY:  1,
		viewport: 40,
		items: []stripItem{
			{name: "a", extent: 20},
			{name: "b", extent: 20},
			{name: "c", extent: 20},
		},
	}
}

func TestContentElemClampsOffset(t *testing.T) {
	s := demoStrip()
	content := contentElem{s: s}

	content.SetScrollPos(tabs.Horizontal, 15)
	if s.offset != 15 {
		t.Errorf("offset = %d, want 15", s.offset)
	}

	content.SetScrollPos(tabs.Horizontal, 500)
	if s.offset != 20 {
		t.Errorf("offset = %d, want clamp to 20", s.offset)
	}

	// Negative storage keeps its sign through the clamp.
	content.SetScrollPos(tabs.Horizontal, -500)
	if s.offset != -20 {
		t.Errorf("offset = %d, want -20", s.offset)
	}
}

func TestItemElemBoundsTrackOffset(t *testing.T) {
	s := demoStrip()
	item := itemElem{s: s, name: "b"}

	start, end := item.Bounds(tabs.Horizontal)
	if start != 22 || end != 42 {
		t.Errorf("bounds = [%d, %d), want [22, 42)", start, end)
	}

	s.offset = 20
	start, end = item.Bounds(tabs.Horizontal)
	if start != 2 || end != 22 {
		t.Errorf("bounds after scroll = [%d, %d), want [2, 22)", start, end)
	}
}

func TestMeasureAgainstStripElements(t *testing.T) {
	s := demoStrip()
	ext, ok := tabs.Measure(containerElem{s: s}, contentElem{s: s}, tabs.Horizontal)
	if !ok {
		t.Fatal("Measure returned ok=false")
	}
	if ext.Container != 40 || ext.Content != 60 {
		t.Errorf("extents = %+v, want container 40 content 60", ext)
	}
}

func TestIndicatorElemBounds(t *testing.T) {
	s := demoStrip()
	ind := indicatorElem{s: s, name: "c"}

	got := ind.Bounds()
	want := tabs.Rect{X: 42, Y: 2, W: 20, H: 1}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	if unknown := (indicatorElem{s: s, name: "zz"}).Bounds(); unknown != (tabs.Rect{}) {
		t.Errorf("unknown item bounds = %+v, want zero rect", unknown)
	}
}
