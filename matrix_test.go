package gyro

import (
	"testing"

	floats "gonum.org/v1/gonum/floats/scalar"
	"github.com/go-gl/mathgl/mgl64"
)

var samplePoints = []Vector{
	{0, 0, 0},
	{1, 2, 3},
	{-4, 0.5, -2},
	{0.1, -0.2, 0.3},
}

func vecEq(t *testing.T, got, want Vector, tol float64) {
	t.Helper()
	if !floats.EqualWithinAbs(got.X, want.X, tol) ||
		!floats.EqualWithinAbs(got.Y, want.Y, tol) ||
		!floats.EqualWithinAbs(got.Z, want.Z, tol) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLookAtMatchesReference(t *testing.T) {
	eye := V(3, 4, 5)
	center := V(0, 1, 0)
	up := V(0, 1, 0)
	m := LookAt(eye, center, up)
	ref := mgl64.LookAtV(
		mgl64.Vec3{eye.X, eye.Y, eye.Z},
		mgl64.Vec3{center.X, center.Y, center.Z},
		mgl64.Vec3{up.X, up.Y, up.Z})

	for _, p := range samplePoints {
		got := m.MulPosition(p)
		w := mgl64.TransformCoordinate(mgl64.Vec3{p.X, p.Y, p.Z}, ref)
		vecEq(t, got, V(w.X(), w.Y(), w.Z()), 1e-9)
	}
}

func TestPerspectiveMatchesReference(t *testing.T) {
	m := Perspective(60, 1.5, 0.1, 100)
	ref := mgl64.Perspective(mgl64.DegToRad(60), 1.5, 0.1, 100)

	// points safely inside the frustum (negative Z, within the far plane)
	points := []Vector{
		{0, 0, -1},
		{0.5, -0.25, -2},
		{-3, 2, -20},
	}
	for _, p := range points {
		o := m.MulPositionW(p)
		got := o.DivScalar(o.W).Vector()
		w := mgl64.TransformCoordinate(mgl64.Vec3{p.X, p.Y, p.Z}, ref)
		vecEq(t, got, V(w.X(), w.Y(), w.Z()), 1e-9)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := LookAt(V(3, 4, 5), V(0, 1, 0), V(0, 1, 0)).Perspective(45, 1.2, 0.5, 50)
	id := m.Mul(m.Inverse())
	want := Identity()
	got := [16]float64{
		id.X00, id.X01, id.X02, id.X03,
		id.X10, id.X11, id.X12, id.X13,
		id.X20, id.X21, id.X22, id.X23,
		id.X30, id.X31, id.X32, id.X33}
	ref := [16]float64{
		want.X00, want.X01, want.X02, want.X03,
		want.X10, want.X11, want.X12, want.X13,
		want.X20, want.X21, want.X22, want.X23,
		want.X30, want.X31, want.X32, want.X33}
	for i := range got {
		if !floats.EqualWithinAbs(got[i], ref[i], 1e-9) {
			t.Fatalf("entry %d: got %v, want %v", i, got[i], ref[i])
		}
	}
}

func TestRotatePreservesLength(t *testing.T) {
	m := Rotate(V(1, 2, 3), 1.234)
	for _, p := range samplePoints {
		if !floats.EqualWithinAbs(m.MulPosition(p).Length(), p.Length(), 1e-9) {
			t.Fatalf("rotation changed length of %v", p)
		}
	}
}

func TestScreenMapsCorners(t *testing.T) {
	m := Screen(100, 50)
	vecEq(t, m.MulPosition(V(-1, 1, 0)), V(0, 0, 0.5), 1e-12)
	vecEq(t, m.MulPosition(V(1, -1, 0)), V(100, 50, 0.5), 1e-12)
	vecEq(t, m.MulPosition(V(0, 0, -1)), V(50, 25, 0), 1e-12)
}
