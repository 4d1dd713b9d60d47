package gyro

// Shader shader interface
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex) Color
}

// HemisphereShader lights fragments with a sky/ground hemisphere source.
// The geometry carries face normals, so the result is flat shaded.
type HemisphereShader struct {
	Matrix       Matrix // model-view-projection
	NormalMatrix Matrix
	Light        *HemisphereLight
	BaseColor    Color
}

// NewHemisphereShader returns a shader for one node draw. model transforms
// the node into world space; its inverse transpose carries the normals.
func NewHemisphereShader(mvp, model Matrix, light *HemisphereLight, base Color) *HemisphereShader {
	return &HemisphereShader{
		Matrix:       mvp,
		NormalMatrix: model.Inverse().Transpose(),
		Light:        light,
		BaseColor:    base,
	}
}

func (shader *HemisphereShader) Vertex(v Vertex) Vertex {
	v.Output = shader.Matrix.MulPositionW(v.Position)
	v.Normal = shader.NormalMatrix.MulDirection(v.Normal)
	return v
}

func (shader *HemisphereShader) Fragment(v Vertex) Color {
	light := shader.Light.Shade(v.Normal)
	return shader.BaseColor.Mul(light).Min(White).Alpha(shader.BaseColor.A)
}

// UnlitShader renders everything in one color, ignoring lights. Used for
// the wireframe overlay.
type UnlitShader struct {
	Matrix Matrix
	Color  Color
}

func NewUnlitShader(matrix Matrix, color Color) *UnlitShader {
	return &UnlitShader{matrix, color}
}

func (s *UnlitShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	return v
}

func (s *UnlitShader) Fragment(v Vertex) Color {
	return s.Color
}
