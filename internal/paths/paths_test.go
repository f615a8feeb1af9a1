package paths

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-junction/internal/core"
)

func straight(from, to, stop core.Vec2) Path {
	return Path{Points: []core.Vec2{from, to}, Stop: stop}
}

func testTable() Table {
	return Table{Lanes: map[Lane]Route{
		East: {Rotation: 0, Axis: AxisX, Paths: []Path{
			straight(core.Vec2{X: 10, Y: 250}, core.Vec2{X: 600, Y: 250}, core.Vec2{X: 180, Y: 250}),
			{
				Points: []core.Vec2{{X: 10, Y: 250}, {X: 280, Y: 250}, {X: 290, Y: 600}},
				Stop:   core.Vec2{X: 180, Y: 250},
			},
		}},
		West: {Rotation: 180, Axis: AxisX, Paths: []Path{
			straight(core.Vec2{X: 560, Y: 325}, core.Vec2{X: -40, Y: 325}, core.Vec2{X: 390, Y: 325}),
		}},
		North: {Rotation: 90, Axis: AxisY, Paths: []Path{
			straight(core.Vec2{X: 250, Y: 10}, core.Vec2{X: 260, Y: 600}, core.Vec2{X: 260, Y: 180}),
		}},
		South: {Rotation: -90, Axis: AxisY, Paths: []Path{
			straight(core.Vec2{X: 310, Y: 560}, core.Vec2{X: 300, Y: -40}, core.Vec2{X: 300, Y: 390}),
		}},
	}}
}

func TestParseLane(t *testing.T) {
	for _, name := range []string{"north", "south", "east", "west"} {
		l, err := ParseLane(name)
		if err != nil {
			t.Errorf("ParseLane(%q) failed: %v", name, err)
		}
		if string(l) != name {
			t.Errorf("ParseLane(%q) = %q", name, l)
		}
	}

	if _, err := ParseLane("up"); err == nil {
		t.Error("ParseLane should reject unknown lanes")
	}
}

func TestLaneOpposite(t *testing.T) {
	pairs := map[Lane]Lane{North: South, South: North, East: West, West: East}
	for l, want := range pairs {
		if got := l.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", l, got, want)
		}
	}
}

func TestDerivedSchedules(t *testing.T) {
	turn := testTable().Lanes[East].Paths[1]

	tests := []struct {
		seg      int
		axis     Axis
		sign     float64
		rotation float64
	}{
		{0, AxisX, 1, 0},
		{1, AxisY, 1, math.Atan2(350, 10) * 180 / math.Pi},
		{5, AxisY, 1, math.Atan2(350, 10) * 180 / math.Pi}, // past the end keeps last heading
	}

	for _, tc := range tests {
		if got := turn.AxisAt(tc.seg); got != tc.axis {
			t.Errorf("AxisAt(%d) = %s, expected %s", tc.seg, got, tc.axis)
		}
		if got := turn.TravelSign(tc.seg); got != tc.sign {
			t.Errorf("TravelSign(%d) = %f, expected %f", tc.seg, got, tc.sign)
		}
		if got := turn.RotationAt(tc.seg); math.Abs(got-tc.rotation) > 1e-9 {
			t.Errorf("RotationAt(%d) = %f, expected %f", tc.seg, got, tc.rotation)
		}
	}

	west := testTable().Lanes[West].Paths[0]
	if west.TravelSign(0) != -1 {
		t.Errorf("westbound lane should travel towards smaller x")
	}
	if west.StopCoord() != 390 {
		t.Errorf("StopCoord() = %f, expected 390", west.StopCoord())
	}
}

func TestSegment(t *testing.T) {
	p := testTable().Lanes[East].Paths[1]

	if p.Segments() != 2 {
		t.Fatalf("Segments() = %d, expected 2", p.Segments())
	}
	from, to, ok := p.Segment(1)
	if !ok || from != (core.Vec2{X: 280, Y: 250}) || to != (core.Vec2{X: 290, Y: 600}) {
		t.Errorf("Segment(1) = %v %v %v", from, to, ok)
	}
	if _, _, ok := p.Segment(2); ok {
		t.Error("Segment past the last waypoint should report !ok")
	}
	if p.Origin() != (core.Vec2{X: 10, Y: 250}) {
		t.Errorf("Origin() = %v", p.Origin())
	}
}

func TestNormalize(t *testing.T) {
	tbl := testTable()
	tbl.Normalize()

	north := tbl.Lanes[North].Paths[0]
	if len(north.Rotation) != 1 || north.Rotation[0] != 90 {
		t.Errorf("north entry rotation should come from the route, got %v", north.Rotation)
	}
	if len(north.Axis) != 1 || north.Axis[0] != AxisY {
		t.Errorf("north entry axis should come from the route, got %v", north.Axis)
	}

	turn := tbl.Lanes[East].Paths[1]
	if len(turn.Axis) != 2 || turn.Axis[1] != AxisY {
		t.Errorf("turn schedule should be derived for later segments, got %v", turn.Axis)
	}

	if err := tbl.Validate(); err != nil {
		t.Errorf("normalized table should validate: %v", err)
	}
}

func TestNormalizeRouteWithoutAxis(t *testing.T) {
	tbl := testTable()
	south := tbl.Lanes[South]
	south.Axis, south.Rotation = "", 0
	tbl.Lanes[South] = south
	derived := south.Paths[0].RotationAt(0)

	tbl.Normalize()

	p := tbl.Lanes[South].Paths[0]
	if len(p.Rotation) != 1 || p.Rotation[0] != derived {
		t.Errorf("entry rotation = %v, expected geometry heading %.2f", p.Rotation, derived)
	}
	if derived == 0 {
		t.Fatal("test geometry should not head east")
	}
	if p.Axis[0] != AxisY {
		t.Errorf("entry axis = %s, expected derived y", p.Axis[0])
	}
}

func TestValidate(t *testing.T) {
	if err := testTable().Validate(); err != nil {
		t.Fatalf("Validate() failed on good table: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Table)
		wantErr string
	}{
		{
			name:    "missing lane",
			mutate:  func(tb *Table) { delete(tb.Lanes, South) },
			wantErr: "lane south missing",
		},
		{
			name: "single point",
			mutate: func(tb *Table) {
				r := tb.Lanes[East]
				r.Paths = []Path{{Points: []core.Vec2{{X: 1, Y: 1}}}}
				tb.Lanes[East] = r
			},
			wantErr: "at least 2 points",
		},
		{
			name: "stop line off segment",
			mutate: func(tb *Table) {
				r := tb.Lanes[West]
				r.Paths = []Path{straight(core.Vec2{X: 560, Y: 325}, core.Vec2{X: -40, Y: 325}, core.Vec2{X: 700, Y: 325})}
				tb.Lanes[West] = r
			},
			wantErr: "stop line",
		},
		{
			name: "schedule length mismatch",
			mutate: func(tb *Table) {
				r := tb.Lanes[North]
				r.Paths[0].Rotation = []float64{90, 0}
				tb.Lanes[North] = r
			},
			wantErr: "rotation schedule",
		},
		{
			name: "unknown lane",
			mutate: func(tb *Table) {
				tb.Lanes["up"] = tb.Lanes[North]
			},
			wantErr: "unknown lane",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tb := testTable()
			tc.mutate(&tb)
			err := tb.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLaneList(t *testing.T) {
	got := testTable().LaneList()
	if len(got) != 4 {
		t.Fatalf("LaneList() returned %d lanes", len(got))
	}
	for i, l := range AllLanes {
		if got[i] != l {
			t.Errorf("LaneList()[%d] = %s, expected %s", i, got[i], l)
		}
	}
}
