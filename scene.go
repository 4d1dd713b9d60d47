package gyro

import (
	"image/png"
	"io"
	"log"
)

// Scene holds the node hierarchy and the single light source.
type Scene struct {
	Background Color
	Light      *HemisphereLight
	Nodes      []*Node
}

// NewScene returns an empty scene lit by the given light.
func NewScene(light *HemisphereLight) *Scene {
	return &Scene{
		Background: Black,
		Light:      light,
	}
}

// AddNode adds a top-level node to the scene.
func (s *Scene) AddNode(n *Node) {
	s.Nodes = append(s.Nodes, n)
}

// Render clears the context and draws the node tree from the camera.
func (s *Scene) Render(ctx *Context, camera *Camera) {
	ctx.ClearColorBufferWith(s.Background)
	ctx.ClearDepthBuffer()
	vp := camera.ViewProjection()
	for _, n := range s.Nodes {
		s.drawNode(ctx, n, vp, Identity())
	}
}

func (s *Scene) drawNode(ctx *Context, n *Node, vp, parent Matrix) {
	world := parent.Mul(n.LocalMatrix())
	if n.Mesh == nil {
		log.Printf("gyro: node attempted to render with nil mesh")
	} else {
		shader := n.Material.Shader(vp.Mul(world), world, s.Light)
		ctx.DrawMesh(n.Mesh, shader)
	}
	for _, child := range n.Children {
		s.drawNode(ctx, child, vp, world)
	}
}

// EncodePNG renders one frame and writes it as PNG to the writer.
func (s *Scene) EncodePNG(w io.Writer, ctx *Context, camera *Camera) error {
	s.Render(ctx, camera)
	return png.Encode(w, ctx.Image())
}

// NewPolyhedronScene assembles the fixed demo scene: one flat-shaded
// icosphere with its wireframe overlay child, under one hemisphere light.
func NewPolyhedronScene(radius float64, detail int) *Scene {
	scene := NewScene(NewHemisphereLight(White))
	surface := NewSurfaceNode(NewIcosphere(radius, detail), HexColor("2194ce"))
	surface.AttachWireframe(Black)
	scene.AddNode(surface)
	return scene
}
