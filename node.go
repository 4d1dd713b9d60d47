package gyro

// WireframeScale is the uniform scale applied to a wireframe overlay so it
// sits just outside its parent surface instead of z-fighting with it.
const WireframeScale = 1.001

// Material produces the shader used to draw a node.
type Material interface {
	Shader(mvp, model Matrix, light *HemisphereLight) Shader
}

// FlatMaterial is a lit, flat-shaded surface color.
type FlatMaterial struct {
	Color Color
}

func (m FlatMaterial) Shader(mvp, model Matrix, light *HemisphereLight) Shader {
	return NewHemisphereShader(mvp, model, light, m.Color)
}

// UnlitMaterial draws in one constant color.
type UnlitMaterial struct {
	Color Color
}

func (m UnlitMaterial) Shader(mvp, model Matrix, light *HemisphereLight) Shader {
	return NewUnlitShader(mvp, m.Color)
}

// Node places a mesh in the scene. Rotation is Euler angles in radians and
// only ever accumulates; the renderer wraps it implicitly through the
// trigonometric rotation matrices. Children inherit the world transform.
type Node struct {
	Mesh     *Mesh
	Material Material
	Position Vector
	Rotation Vector
	Scale    Vector
	Children []*Node
}

// NewNode returns a node at the origin with unit scale.
func NewNode(mesh *Mesh, material Material) *Node {
	return &Node{
		Mesh:     mesh,
		Material: material,
		Scale:    Vector{1, 1, 1},
	}
}

// NewSurfaceNode returns a lit flat-shaded node for the mesh.
func NewSurfaceNode(mesh *Mesh, color Color) *Node {
	return NewNode(mesh, FlatMaterial{color})
}

// Add attaches a child node.
func (n *Node) Add(child *Node) {
	n.Children = append(n.Children, child)
}

// AttachWireframe derives an unlit edge overlay from the node's mesh and
// attaches it as a child at WireframeScale, so it follows every transform
// of the parent with a constant offset.
func (n *Node) AttachWireframe(color Color) *Node {
	child := NewNode(NewLineMesh(n.Mesh.EdgeLines()), UnlitMaterial{color})
	child.Scale = Vector{WireframeScale, WireframeScale, WireframeScale}
	n.Add(child)
	return child
}

// Rotate advances all three Euler angles by step radians.
func (n *Node) Rotate(step float64) {
	n.Rotation = n.Rotation.AddScalar(step)
}

// LocalMatrix composes scale, then X/Y/Z rotation, then translation.
func (n *Node) LocalMatrix() Matrix {
	m := Scale(n.Scale)
	m = m.Rotate(Vector{1, 0, 0}, n.Rotation.X)
	m = m.Rotate(Vector{0, 1, 0}, n.Rotation.Y)
	m = m.Rotate(Vector{0, 0, 1}, n.Rotation.Z)
	return m.Translate(n.Position)
}
