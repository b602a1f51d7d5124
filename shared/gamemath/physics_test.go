package gamemath

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLaunchPositionIsOneUnitForward(t *testing.T) {
	viewer := Pose{
		Position: Vec3{X: 1, Y: 2, Z: 3},
		ZAxis:    Vec3{X: 0, Y: 0, Z: 1},
	}
	got := LaunchPosition(viewer)
	want := Vec3{X: 1, Y: 2, Z: 2}
	if got != want {
		t.Fatalf("LaunchPosition = %+v, want %+v", got, want)
	}
}

func TestThrowImpulseCurvesVerticalAxis(t *testing.T) {
	viewer := Pose{ZAxis: Vec3{X: -0.5, Y: -0.25, Z: 0.5}}
	got := ThrowImpulse(viewer, 4, 3)
	want := Vec3{X: 2, Y: 3, Z: -2}
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) || !approx(got.Z, want.Z) {
		t.Fatalf("ThrowImpulse = %+v, want %+v", got, want)
	}
}

func TestPitchedPoseLooksDownNegativeZAtZeroPitch(t *testing.T) {
	p := PitchedPose(Vec3{}, 0)
	f := p.Forward()
	if !approx(f.Z, -1) || !approx(f.Y, 0) {
		t.Fatalf("forward at zero pitch = %+v, want (0,0,-1)", f)
	}

	up := PitchedPose(Vec3{}, math.Pi/6).Forward()
	if up.Y <= 0 {
		t.Fatalf("positive pitch should look upward, got %+v", up)
	}
	if !approx(up.Length(), 1) {
		t.Fatalf("forward should be unit length, got %f", up.Length())
	}
}

func TestVelocityFromImpulse(t *testing.T) {
	v := VelocityFromImpulse(Vec3{X: 2, Y: 4}, 2)
	if v != (Vec3{X: 1, Y: 2}) {
		t.Fatalf("VelocityFromImpulse = %+v, want {1 2 0}", v)
	}
	if v := VelocityFromImpulse(Vec3{X: 3}, 0); v.X != 3 {
		t.Fatalf("zero mass should act as 1, got %+v", v)
	}
}

func TestBounceKeepsRestitutionFraction(t *testing.T) {
	if got := Bounce(-10, 0.2); !approx(got, 2) {
		t.Fatalf("Bounce(-10, 0.2) = %f, want 2", got)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("Normalize(zero) = %+v, want zero", got)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := Projection{PixelsPerMeter: 80, FloorY: 360}

	x, y := p.ToScreen(Vec3{Y: 1.5, Z: -2})
	if !approx(x, 160) || !approx(y, 240) {
		t.Fatalf("ToScreen = (%v, %v), want (160, 240)", x, y)
	}

	back := p.ToWorld(x, y)
	if !approx(back.Y, 1.5) || !approx(back.Z, -2) {
		t.Fatalf("ToWorld = %+v, want (0, 1.5, -2)", back)
	}
}

func TestProjectionForwardPointsRightAndUp(t *testing.T) {
	p := Projection{PixelsPerMeter: 80, FloorY: 360}
	f := PitchedPose(Vec3{}, 0.4).Forward()

	dx, dy := p.ScreenDelta(f, 1)
	if dx <= 0 || dy >= 0 {
		t.Fatalf("ScreenDelta(forward) = (%v, %v), want right and up", dx, dy)
	}
}
