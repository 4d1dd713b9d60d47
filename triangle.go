package gyro

// Triangle is a renderable face.
type Triangle struct {
	V1, V2, V3 Vertex
}

// NewTriangle returns a triangle over three prepared vertexes.
func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	return &Triangle{v1, v2, v3}
}

// NewTriangleForPoints returns a flat-shaded triangle: all three vertexes
// carry the face normal.
func NewTriangleForPoints(p1, p2, p3 Vector) *Triangle {
	t := Triangle{}
	t.V1.Position = p1
	t.V2.Position = p2
	t.V3.Position = p3
	n := t.Normal()
	t.V1.Normal = n
	t.V2.Normal = n
	t.V3.Normal = n
	return &t
}

// Normal returns the face normal for the current winding.
func (t *Triangle) Normal() Vector {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// SetColor sets the vertex color on all three corners.
func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

// Line is a renderable segment.
type Line struct {
	V1, V2 Vertex
}

func NewLine(v1, v2 Vertex) *Line {
	return &Line{v1, v2}
}

func NewLineForPoints(p1, p2 Vector) *Line {
	l := Line{}
	l.V1.Position = p1
	l.V2.Position = p2
	return &l
}
