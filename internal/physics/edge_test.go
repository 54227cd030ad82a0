package physics

import (
	"math"
	"testing"

	"github.com/san-kum/wanderer/internal/dynamo"
)

var box = dynamo.Bounds{MaxX: 100, MaxY: 100}

func TestResolveEdge_Bounce(t *testing.T) {
	res := ResolveEdge(dynamo.Vec2{X: -5, Y: 50}, dynamo.Velocity{DX: -2, DY: 1}, box, EdgeBounce, true)

	if res.Position.X != 0 || res.Position.Y != 50 {
		t.Errorf("position = %v, want (0, 50)", res.Position)
	}
	if res.Velocity.DX != 2 || res.Velocity.DY != 1 {
		t.Errorf("velocity = %+v, want {2 1}", res.Velocity)
	}
	if !res.Rebounded || !res.HasAngle {
		t.Fatal("expected rebound with angle")
	}
	if want := math.Atan2(1, 2); math.Abs(res.Angle-want) > 1e-12 {
		t.Errorf("angle = %v, want %v", res.Angle, want)
	}
}

func TestResolveEdge_BounceDisabled(t *testing.T) {
	p := dynamo.Vec2{X: -5, Y: 120}
	v := dynamo.Velocity{DX: -2, DY: 3}
	res := ResolveEdge(p, v, box, EdgeBounce, false)
	if res.Position != p || res.Velocity != v || res.Rebounded {
		t.Errorf("disabled bounce should pass through, got %+v", res)
	}
}

func TestResolveEdge_BounceCorner(t *testing.T) {
	res := ResolveEdge(dynamo.Vec2{X: 103, Y: 104}, dynamo.Velocity{DX: 3, DY: 4}, box, EdgeBounce, true)
	if res.Position != (dynamo.Vec2{X: 100, Y: 100}) {
		t.Errorf("position = %v, want (100, 100)", res.Position)
	}
	if res.Velocity != (dynamo.Velocity{DX: -3, DY: -4}) {
		t.Errorf("velocity = %+v", res.Velocity)
	}
	if want := math.Atan2(-4, -3); math.Abs(res.Angle-want) > 1e-12 {
		t.Errorf("corner angle = %v, want %v", res.Angle, want)
	}
}

func TestResolveEdge_OnBoundaryIsInBounds(t *testing.T) {
	for _, behavior := range EdgeBehaviors() {
		for _, p := range []dynamo.Vec2{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}} {
			v := dynamo.Velocity{DX: 1, DY: -1}
			res := ResolveEdge(p, v, box, behavior, true)
			if res.Rebounded || res.Position != p || res.Velocity != v {
				t.Errorf("%s at %v: expected no collision, got %+v", behavior, p, res)
			}
		}
	}
}

func TestResolveEdge_Wrap(t *testing.T) {
	tests := []struct {
		in, out dynamo.Vec2
	}{
		{dynamo.Vec2{X: -5, Y: 50}, dynamo.Vec2{X: 100, Y: 50}},
		{dynamo.Vec2{X: 105, Y: 50}, dynamo.Vec2{X: 0, Y: 50}},
		{dynamo.Vec2{X: 50, Y: -1}, dynamo.Vec2{X: 50, Y: 100}},
		{dynamo.Vec2{X: 50, Y: 101}, dynamo.Vec2{X: 50, Y: 0}},
		{dynamo.Vec2{X: -1, Y: 101}, dynamo.Vec2{X: 100, Y: 0}},
	}
	v := dynamo.Velocity{DX: -2, DY: 2}
	for _, tt := range tests {
		res := ResolveEdge(tt.in, v, box, EdgeWrap, true)
		if res.Position != tt.out {
			t.Errorf("wrap %v = %v, want %v", tt.in, res.Position, tt.out)
		}
		if res.Velocity != v || res.Rebounded {
			t.Errorf("wrap %v changed velocity or rebounded: %+v", tt.in, res)
		}
	}
}

func TestResolveEdge_Stop(t *testing.T) {
	res := ResolveEdge(dynamo.Vec2{X: 105, Y: 40}, dynamo.Velocity{DX: 5, DY: 1}, box, EdgeStop, true)
	if res.Position != (dynamo.Vec2{X: 100, Y: 40}) {
		t.Errorf("position = %v, want (100, 40)", res.Position)
	}
	if !res.Velocity.IsZero() {
		t.Errorf("velocity = %+v, want zero", res.Velocity)
	}
	if res.Rebounded {
		t.Error("stop never rebounds")
	}

	inside := ResolveEdge(dynamo.Vec2{X: 50, Y: 50}, dynamo.Velocity{DX: 5, DY: 1}, box, EdgeStop, true)
	if inside.Velocity.IsZero() {
		t.Error("stop inside bounds must keep velocity")
	}
}

func TestResolveEdge_Reverse(t *testing.T) {
	res := ResolveEdge(dynamo.Vec2{X: 50, Y: -3}, dynamo.Velocity{DX: 1, DY: -3}, box, EdgeReverse, false)
	if res.Position != (dynamo.Vec2{X: 50, Y: 0}) {
		t.Errorf("position = %v", res.Position)
	}
	if res.Velocity != (dynamo.Velocity{DX: 1, DY: 3}) {
		t.Errorf("velocity = %+v", res.Velocity)
	}
	if !res.Rebounded {
		t.Error("reverse should rebound regardless of bounceEnabled")
	}
	if res.HasAngle {
		t.Error("reverse carries no rebound angle")
	}
}

func TestResolveEdge_NegativeBounds(t *testing.T) {
	tiny := dynamo.Bounds{MaxX: -10, MaxY: -10}
	res := ResolveEdge(dynamo.Vec2{X: 3, Y: 3}, dynamo.Velocity{DX: 1, DY: 1}, tiny, EdgeStop, true)
	if res.Position != (dynamo.Vec2{}) {
		t.Errorf("position = %v, want origin", res.Position)
	}
}

func TestParseEdgeBehavior(t *testing.T) {
	for _, name := range []string{"bounce", "wrap", "stop", "reverse"} {
		if _, err := ParseEdgeBehavior(name); err != nil {
			t.Errorf("ParseEdgeBehavior(%q): %v", name, err)
		}
	}
	if _, err := ParseEdgeBehavior("teleport"); err == nil {
		t.Error("expected error for unknown behavior")
	}
}
