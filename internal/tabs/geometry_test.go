package tabs

import "testing"

type staticElem struct {
	size     int
	scroll   int
	children []int
}

func (e staticElem) Size(Axis) int { return e.size }
func (e staticElem) ScrollSize(Axis) int { return e.scroll }
func (e staticElem) ChildSizes(Axis) []int { return e.children }
func (e staticElem) ScrollPos(Axis) int { return 0 }
func (e staticElem) SetScrollPos(Axis, int) {}
func (e staticElem) Bounds(Axis) (int, int) { return 0, e.size }

func TestMeasure(t *testing.T) {
	tests := []struct {
		name      string
		container staticElem
		content   staticElem
		want      Extents
	}{
		{
			name:      "children outgrow native scroll size",
			container: staticElem{size: 500, scroll: 500},
			content:   staticElem{size: 500, scroll: 780, children: []int{200, 200, 200, 200}},
			want:      Extents{Container: 500, Content: 800, Scroll: 780},
		},
		{
			name:      "native scroll size wins when larger",
			container: staticElem{size: 500, scroll: 500},
			content:   staticElem{size: 500, scroll: 900, children: []int{200, 200}},
			want:      Extents{Container: 500, Content: 900, Scroll: 900},
		},
		{
			name:      "fits without scrolling",
			container: staticElem{size: 500, scroll: 500},
			content:   staticElem{size: 300, scroll: 300, children: []int{150, 150}},
			want:      Extents{Container: 500, Content: 300, Scroll: 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Measure(tt.container, tt.content, Horizontal)
			if !ok {
				t.Fatal("Measure returned ok=false")
			}
			if got != tt.want {
				t.Errorf("Measure = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMeasureMissingReferences(t *testing.T) {
	if _, ok := Measure(nil, staticElem{}, Horizontal); ok {
		t.Error("nil container should report ok=false")
	}
	if _, ok := Measure(staticElem{}, nil, Horizontal); ok {
		t.Error("nil content should report ok=false")
	}
}
