package gyro

// clipPlane is one of the six frustum planes in homogeneous coordinates.
// A vertex with distance >= 0 is inside.
type clipPlane struct {
	A, B, C, D float64
}

var clipPlanes = []clipPlane{
	{1, 0, 0, 1},  // w + x >= 0
	{-1, 0, 0, 1}, // w - x >= 0
	{0, 1, 0, 1},
	{0, -1, 0, 1},
	{0, 0, 1, 1},
	{0, 0, -1, 1},
}

func (p clipPlane) distance(v Vertex) float64 {
	o := v.Output
	return p.A*o.X + p.B*o.Y + p.C*o.Z + p.D*o.W
}

// sutherlandHodgman clips a convex polygon of shaded vertexes against all
// six frustum planes.
func sutherlandHodgman(points []Vertex) []Vertex {
	output := points
	for _, plane := range clipPlanes {
		input := output
		output = nil
		if len(input) == 0 {
			return nil
		}
		s := input[len(input)-1]
		ds := plane.distance(s)
		for _, e := range input {
			de := plane.distance(e)
			if de >= 0 {
				if ds < 0 {
					t := ds / (ds - de)
					output = append(output, lerpVertexes(s, e, t))
				}
				output = append(output, e)
			} else if ds >= 0 {
				t := ds / (ds - de)
				output = append(output, lerpVertexes(s, e, t))
			}
			s = e
			ds = de
		}
	}
	return output
}

// ClipTriangle clips a shaded triangle against the frustum, returning zero
// or more triangles that fan the surviving polygon.
func ClipTriangle(t *Triangle) []*Triangle {
	p := sutherlandHodgman([]Vertex{t.V1, t.V2, t.V3})
	var result []*Triangle
	for i := 2; i < len(p); i++ {
		result = append(result, NewTriangle(p[0], p[i-1], p[i]))
	}
	return result
}

// ClipLine clips a shaded segment against the frustum, returning nil when
// nothing survives.
func ClipLine(l *Line) *Line {
	v1 := l.V1
	v2 := l.V2
	for _, plane := range clipPlanes {
		d1 := plane.distance(v1)
		d2 := plane.distance(v2)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = lerpVertexes(v1, v2, d1/(d1-d2))
		} else if d2 < 0 {
			v2 = lerpVertexes(v2, v1, d2/(d2-d1))
		}
	}
	return NewLine(v1, v2)
}
