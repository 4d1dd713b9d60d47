package gyro

import (
	"testing"

	floats "gonum.org/v1/gonum/floats/scalar"
)

func TestIcosphereFaceCount(t *testing.T) {
	tests := []struct {
		detail int
		faces  int
	}{
		{0, 20},
		{1, 80},
		{2, 320},
		{3, 1280},
	}
	for _, tt := range tests {
		m := NewIcosphere(1, tt.detail)
		if len(m.Triangles) != tt.faces {
			t.Errorf("detail %d: got %d triangles, want %d", tt.detail, len(m.Triangles), tt.faces)
		}
		if len(m.Lines) != 0 {
			t.Errorf("detail %d: got %d lines, want 0", tt.detail, len(m.Lines))
		}
	}
}

func TestIcosphereNegativeDetail(t *testing.T) {
	m := NewIcosphere(1, -3)
	if len(m.Triangles) != 20 {
		t.Fatalf("got %d triangles, want 20", len(m.Triangles))
	}
}

func TestIcosahedron(t *testing.T) {
	m := NewIcosahedron(2)
	if len(m.Triangles) != 20 {
		t.Fatalf("got %d triangles, want 20", len(m.Triangles))
	}
}

func TestIcosphereVerticesOnSphere(t *testing.T) {
	const radius = 2.5
	m := NewIcosphere(radius, 2)
	for i, tri := range m.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if !floats.EqualWithinAbs(v.Position.Length(), radius, 1e-9) {
				t.Fatalf("triangle %d: vertex at distance %v, want %v", i, v.Position.Length(), radius)
			}
		}
	}
}

func TestIcosphereFlatNormals(t *testing.T) {
	m := NewIcosphere(1, 1)
	for i, tri := range m.Triangles {
		n := tri.Normal()
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if v.Normal != n {
				t.Fatalf("triangle %d: vertex normal %v differs from face normal %v", i, v.Normal, n)
			}
		}
		// outward winding: the normal points away from the origin
		centroid := tri.V1.Position.Add(tri.V2.Position).Add(tri.V3.Position).DivScalar(3)
		if n.Dot(centroid) <= 0 {
			t.Fatalf("triangle %d: normal %v points inward", i, n)
		}
	}
}

func TestIcosphereDeterministic(t *testing.T) {
	a := NewIcosphere(3, 2)
	b := NewIcosphere(3, 2)
	if len(a.Triangles) != len(b.Triangles) {
		t.Fatal("triangle counts differ between calls")
	}
	for i := range a.Triangles {
		if *a.Triangles[i] != *b.Triangles[i] {
			t.Fatalf("triangle %d differs between calls", i)
		}
	}
}
