package gyro

import "math"

// icosahedron at unit radius, built on the golden ratio. Faces wind
// counter-clockwise seen from outside.
var icosahedronVertices = func() []Vector {
	t := (1 + math.Sqrt(5)) / 2
	vs := []Vector{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i, v := range vs {
		vs[i] = v.Normalize()
	}
	return vs
}()

var icosahedronFaces = [][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// NewIcosahedron returns the 20-face base polyhedron at the given radius.
func NewIcosahedron(radius float64) *Mesh {
	return NewIcosphere(radius, 0)
}

// NewIcosphere subdivides each icosahedron face detail times, four-way,
// projecting midpoints back onto the sphere. The result has exactly
// 20 * 4^detail flat-shaded triangles with every vertex at the given
// radius. Pure and deterministic; negative detail is treated as 0.
func NewIcosphere(radius float64, detail int) *Mesh {
	if detail < 0 {
		detail = 0
	}
	type face [3]Vector
	faces := make([]face, 0, 20*pow4(detail))
	for _, f := range icosahedronFaces {
		faces = append(faces, face{
			icosahedronVertices[f[0]],
			icosahedronVertices[f[1]],
			icosahedronVertices[f[2]],
		})
	}
	for i := 0; i < detail; i++ {
		next := make([]face, 0, len(faces)*4)
		for _, f := range faces {
			a, b, c := f[0], f[1], f[2]
			ab := midpointOnSphere(a, b)
			bc := midpointOnSphere(b, c)
			ca := midpointOnSphere(c, a)
			next = append(next,
				face{a, ab, ca},
				face{b, bc, ab},
				face{c, ca, bc},
				face{ab, bc, ca})
		}
		faces = next
	}
	triangles := make([]*Triangle, len(faces))
	for i, f := range faces {
		triangles[i] = NewTriangleForPoints(
			f[0].MulScalar(radius),
			f[1].MulScalar(radius),
			f[2].MulScalar(radius))
	}
	return NewTriangleMesh(triangles)
}

// midpointOnSphere stays commutative in its arguments so the two faces
// sharing an edge produce bit-identical midpoints.
func midpointOnSphere(a, b Vector) Vector {
	return a.Add(b).MulScalar(0.5).Normalize()
}

func pow4(n int) int {
	return 1 << (2 * uint(n))
}
