package gyro

import (
	"github.com/fogleman/simplify"
)

// Mesh holds triangles and standalone line segments. Meshes are built once
// and treated as read-only by the renderer; nodes share them freely.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
}

// NewMesh returns a mesh with the given triangles and lines.
func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles, nil}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{nil, lines}
}

// BoundingBox returns the axis-aligned bounds over all vertexes.
func (m *Mesh) BoundingBox() Box {
	var vectors []Vector
	for _, t := range m.Triangles {
		vectors = append(vectors, t.V1.Position, t.V2.Position, t.V3.Position)
	}
	for _, l := range m.Lines {
		vectors = append(vectors, l.V1.Position, l.V2.Position)
	}
	return BoxForVectors(vectors)
}

// Transform bakes a matrix into the mesh positions and normals.
func (m *Mesh) Transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.V1.Position = matrix.MulPosition(t.V1.Position)
		t.V2.Position = matrix.MulPosition(t.V2.Position)
		t.V3.Position = matrix.MulPosition(t.V3.Position)
		t.V1.Normal = matrix.MulDirection(t.V1.Normal)
		t.V2.Normal = matrix.MulDirection(t.V2.Normal)
		t.V3.Normal = matrix.MulDirection(t.V3.Normal)
	}
	for _, l := range m.Lines {
		l.V1.Position = matrix.MulPosition(l.V1.Position)
		l.V2.Position = matrix.MulPosition(l.V2.Position)
	}
}

// SetColor sets the vertex color on every triangle.
func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

// Copy returns a deep copy of the mesh.
func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		x := *t
		triangles[i] = &x
	}
	lines := make([]*Line, len(m.Lines))
	for i, l := range m.Lines {
		x := *l
		lines[i] = &x
	}
	return NewMesh(triangles, lines)
}

type edgeKey struct {
	ax, ay, az float64
	bx, by, bz float64
}

func makeEdgeKey(a, b Vector) edgeKey {
	// order endpoints so shared edges collapse to one key
	if b.X < a.X || (b.X == a.X && (b.Y < a.Y || (b.Y == a.Y && b.Z < a.Z))) {
		a, b = b, a
	}
	return edgeKey{a.X, a.Y, a.Z, b.X, b.Y, b.Z}
}

// EdgeLines returns each unique undirected triangle edge exactly once.
// Adjacent faces of generated geometry share bit-identical endpoints, so
// exact keys are sufficient.
func (m *Mesh) EdgeLines() []*Line {
	seen := make(map[edgeKey]bool)
	var lines []*Line
	add := func(a, b Vector) {
		k := makeEdgeKey(a, b)
		if seen[k] {
			return
		}
		seen[k] = true
		lines = append(lines, NewLineForPoints(a, b))
	}
	for _, t := range m.Triangles {
		add(t.V1.Position, t.V2.Position)
		add(t.V2.Position, t.V3.Position)
		add(t.V3.Position, t.V1.Position)
	}
	return lines
}

// Simplify decimates the triangle mesh to roughly factor times its current
// face count, rebuilding flat face normals afterwards. Lines are dropped;
// callers regenerate wireframes from the decimated faces.
func (m *Mesh) Simplify(factor float64) {
	st := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		v1 := simplify.Vector(t.V1.Position)
		v2 := simplify.Vector(t.V2.Position)
		v3 := simplify.Vector(t.V3.Position)
		st[i] = simplify.NewTriangle(v1, v2, v3)
	}
	sm := simplify.NewMesh(st)
	sm = sm.Simplify(factor)
	m.Triangles = make([]*Triangle, len(sm.Triangles))
	for i, t := range sm.Triangles {
		v1 := Vector(t.V1)
		v2 := Vector(t.V2)
		v3 := Vector(t.V3)
		m.Triangles[i] = NewTriangleForPoints(v1, v2, v3)
	}
	m.Lines = nil
}
