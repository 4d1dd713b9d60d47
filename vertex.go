package gyro

// Vertex is a point on a triangle or line. Output holds the clip-space
// position produced by a shader's vertex stage.
type Vertex struct {
	Position Vector
	Normal   Vector
	Color    Color
	Output   VectorW
}

// Outside reports whether the shaded vertex fell outside the clip volume.
func (v Vertex) Outside() bool {
	return v.Output.Outside()
}

// InterpolateVertexes blends three shaded vertexes with the
// perspective-corrected barycentric weights in b.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = interpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = interpolateVectors(v1.Normal, v2.Normal, v3.Normal, b).Normalize()
	v.Color = interpolateColors(v1.Color, v2.Color, v3.Color, b)
	return v
}

// lerpVertexes blends two shaded vertexes, Output included, for clipping.
func lerpVertexes(v1, v2 Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = v1.Position.Lerp(v2.Position, t)
	v.Normal = v1.Normal.Lerp(v2.Normal, t).Normalize()
	v.Color = v1.Color.Lerp(v2.Color, t)
	v.Output = v1.Output.Add(v2.Output.Sub(v1.Output).MulScalar(t))
	return v
}

func interpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateColors(v1, v2, v3 Color, b VectorW) Color {
	c := Color{}
	c = c.Add(v1.MulScalar(b.X))
	c = c.Add(v2.MulScalar(b.Y))
	c = c.Add(v3.MulScalar(b.Z))
	c = c.MulScalar(b.W)
	c.A = v1.A*b.X*b.W + v2.A*b.Y*b.W + v3.A*b.Z*b.W
	return c
}
