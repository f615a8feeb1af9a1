package junction

import (
	"testing"

	"github.com/vovakirdan/tui-junction/internal/paths"
)

func TestDetectCollision(t *testing.T) {
	tests := []struct {
		name     string
		a, b     [2]float64
		expected bool
	}{
		{"full overlap in junction", [2]float64{300, 300}, [2]float64{300, 300}, true},
		{"over threshold", [2]float64{300, 300}, [2]float64{315, 300}, true},
		{"under threshold", [2]float64{300, 300}, [2]float64{325, 300}, false},
		{"exactly half is not enough", [2]float64{300, 300}, [2]float64{320, 300}, false},
		{"outside junction", [2]float64{50, 250}, [2]float64{50, 250}, false},
		{"one box outside", [2]float64{200, 250}, [2]float64{205, 250}, false},
		{"edge touching junction", [2]float64{201, 250}, [2]float64{205, 250}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, _ := newTestTraffic(1)
			place(tr, paths.East, 0, pt(tc.a[0], tc.a[1]), 0)
			place(tr, paths.North, 0, pt(tc.b[0], tc.b[1]), 0)

			_, got := tr.DetectCollision()
			if got != tc.expected {
				t.Errorf("DetectCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDetectCollisionFirstPair(t *testing.T) {
	tr, _ := newTestTraffic(1)

	a := place(tr, paths.East, 0, pt(100, 250), 0)
	b := place(tr, paths.North, 0, pt(300, 300), 0)
	c := place(tr, paths.West, 0, pt(302, 300), 0)
	place(tr, paths.South, 0, pt(301, 300), 0)

	col, ok := tr.DetectCollision()
	if !ok {
		t.Fatal("expected a collision")
	}
	if col.A != b || col.B != c {
		t.Errorf("expected first pair (%s, %s), got (%s, %s)", b.ID, c.ID, col.A.ID, col.B.ID)
	}
	if col.Overlap != 38*25 {
		t.Errorf("Overlap = %f, expected %d", col.Overlap, 38*25)
	}
	if a.Crashed {
		t.Error("detection must not mark vehicles")
	}
}
