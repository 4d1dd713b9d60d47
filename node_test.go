package gyro

import (
	"math"
	"testing"

	floats "gonum.org/v1/gonum/floats/scalar"
)

func TestRotationAccumulates(t *testing.T) {
	const step = 0.001
	n := NewSurfaceNode(NewIcosahedron(1), White)
	for i := 0; i < 1000; i++ {
		n.Rotate(step)
	}
	for _, angle := range []float64{n.Rotation.X, n.Rotation.Y, n.Rotation.Z} {
		if !floats.EqualWithinAbs(angle, 1.0, 1e-9) {
			t.Fatalf("got angle %v after 1000 steps, want 1.0", angle)
		}
	}

	// keeps growing past a full turn instead of wrapping
	for i := 0; i < 7000; i++ {
		n.Rotate(step)
	}
	if !floats.EqualWithinAbs(n.Rotation.X, 8.0, 1e-9) {
		t.Fatalf("got angle %v after 8000 steps, want 8.0", n.Rotation.X)
	}
	wrapped := math.Mod(n.Rotation.X, 2*math.Pi)
	if !floats.EqualWithinAbs(wrapped, 8.0-2*math.Pi, 1e-9) {
		t.Fatalf("got wrapped angle %v, want %v", wrapped, 8.0-2*math.Pi)
	}
}

func worldScaleX(m Matrix) float64 {
	origin := m.MulPosition(Vector{})
	return m.MulPosition(V(1, 0, 0)).Sub(origin).Length()
}

func TestWireframeChildScale(t *testing.T) {
	surface := NewSurfaceNode(NewIcosphere(10, 1), HexColor("2194ce"))
	wire := surface.AttachWireframe(Black)

	if wire.Scale != V(WireframeScale, WireframeScale, WireframeScale) {
		t.Fatalf("got child scale %v, want uniform %v", wire.Scale, WireframeScale)
	}

	// the offset must hold under arbitrary parent transforms
	surface.Position = V(3, -2, 7)
	surface.Scale = V(2, 2, 2)
	for i := 0; i < 500; i++ {
		surface.Rotate(0.01)
	}

	parent := surface.LocalMatrix()
	child := parent.Mul(wire.LocalMatrix())
	ratio := worldScaleX(child) / worldScaleX(parent)
	if !floats.EqualWithinAbs(ratio, WireframeScale, 1e-9) {
		t.Fatalf("got world scale ratio %v, want %v", ratio, WireframeScale)
	}
}

func TestLocalMatrixTranslation(t *testing.T) {
	n := NewSurfaceNode(NewIcosahedron(1), White)
	n.Position = V(5, 6, 7)
	got := n.LocalMatrix().MulPosition(Vector{})
	if got != V(5, 6, 7) {
		t.Fatalf("origin maps to %v, want (5 6 7)", got)
	}
}
