package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/netisu/gyro"
)

// rotationStep is the per-frame increment applied to all three of the
// polyhedron's Euler angles, in radians.
const rotationStep = 0.001

type game struct {
	scene    *gyro.Scene
	surface  *gyro.Node
	camera   *gyro.Camera
	controls *gyro.OrbitControls
	ctx      *gyro.Context
	frame    *ebiten.Image
	size     int
	lastX    int
	lastY    int
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	dx := float64(x-g.lastX) / float64(g.size)
	dy := float64(y-g.lastY) / float64(g.size)
	// skip the press frame so the cursor delta from before the drag
	// does not kick the camera
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		!inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.controls.Rotate(dx, dy)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) &&
		!inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.controls.Pan(dx, dy)
	}
	g.lastX, g.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.controls.Zoom(wy)
	}

	g.surface.Rotate(rotationStep)
	g.controls.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Render(g.ctx, g.camera)
	g.frame.WritePixels(g.ctx.Image().Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}

func main() {
	size := flag.Int("size", 720, "window size in pixels")
	radius := flag.Float64("radius", 10, "polyhedron radius")
	detail := flag.Int("detail", 1, "icosphere subdivision level")
	ss := flag.Int("ss", 2, "supersampling factor")
	simplifyFactor := flag.Float64("simplify", 0, "decimate the surface to this fraction of its faces (0 disables)")
	snapshot := flag.String("snapshot", "", "render a single frame to this PNG and exit")
	flag.Parse()

	scene := gyro.NewPolyhedronScene(*radius, *detail)
	surface := scene.Nodes[0]
	if *simplifyFactor > 0 && *simplifyFactor < 1 {
		surface.Mesh.Simplify(*simplifyFactor)
		surface.Children = nil
		surface.AttachWireframe(gyro.Black)
	}

	camera := gyro.NewCamera(60, 1, 0.1, 1000)
	camera.Position = gyro.V(0, 0, *radius*3)
	controls := gyro.NewOrbitControls(camera)
	controls.MinDistance = *radius * 1.2
	controls.MaxDistance = *radius * 20

	ctx := gyro.NewContext(*size, *size, *ss)

	if *snapshot != "" {
		scene.Render(ctx, camera)
		if err := gyro.SavePNG(*snapshot, ctx.Image()); err != nil {
			log.Fatalf("gyro: could not write snapshot: %v", err)
		}
		return
	}

	g := &game{
		scene:    scene,
		surface:  surface,
		camera:   camera,
		controls: controls,
		ctx:      ctx,
		frame:    ebiten.NewImage(*size, *size),
		size:     *size,
	}
	ebiten.SetWindowTitle("gyro")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
