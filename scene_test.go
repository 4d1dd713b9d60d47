package gyro

import (
	"bytes"
	"testing"

	floats "gonum.org/v1/gonum/floats/scalar"
)

func TestPolyhedronSceneShape(t *testing.T) {
	scene := NewPolyhedronScene(10, 1)

	if len(scene.Nodes) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(scene.Nodes))
	}
	if scene.Light == nil {
		t.Fatal("scene has no light")
	}
	surface := scene.Nodes[0]
	if len(surface.Children) != 1 {
		t.Fatalf("got %d children, want 1 wireframe", len(surface.Children))
	}
	if len(surface.Mesh.Triangles) != 80 {
		t.Fatalf("got %d surface triangles, want 80", len(surface.Mesh.Triangles))
	}

	wire := surface.Children[0]
	if len(wire.Mesh.Lines) != 120 {
		t.Fatalf("got %d wireframe lines, want 120", len(wire.Mesh.Lines))
	}
	if len(wire.Mesh.Triangles) != 0 {
		t.Fatal("wireframe mesh has triangles")
	}
	if _, ok := wire.Material.(UnlitMaterial); !ok {
		t.Fatalf("wireframe material %T, want UnlitMaterial", wire.Material)
	}
	if _, ok := surface.Material.(FlatMaterial); !ok {
		t.Fatalf("surface material %T, want FlatMaterial", surface.Material)
	}
}

func TestHemisphereLightDefaults(t *testing.T) {
	l := NewHemisphereLight(White)
	if l.Ground != HexColor("444444") {
		t.Fatalf("ground default %v, want #444444", l.Ground)
	}
	if l.Intensity != 1 {
		t.Fatalf("intensity default %v, want 1", l.Intensity)
	}
	if l.Up != V(0, 1, 0) {
		t.Fatalf("up default %v, want +Y", l.Up)
	}
}

func TestHemisphereShadeMixes(t *testing.T) {
	l := NewHemisphereLight(White)
	up := l.Shade(V(0, 1, 0))
	down := l.Shade(V(0, -1, 0))
	side := l.Shade(V(1, 0, 0))
	if !floats.EqualWithinAbs(up.R, l.Sky.R, 1e-12) || !floats.EqualWithinAbs(up.B, l.Sky.B, 1e-12) {
		t.Fatalf("upward normal lit %v, want sky %v", up, l.Sky)
	}
	if !floats.EqualWithinAbs(down.R, l.Ground.R, 1e-12) || !floats.EqualWithinAbs(down.B, l.Ground.B, 1e-12) {
		t.Fatalf("downward normal lit %v, want ground %v", down, l.Ground)
	}
	if !(side.R > down.R && side.R < up.R) {
		t.Fatalf("sideways normal %v not between ground and sky", side)
	}
}

func TestSceneRenderCoversCenter(t *testing.T) {
	scene := NewPolyhedronScene(10, 1)
	camera := NewCamera(60, 1, 0.1, 1000)
	camera.Position = V(0, 0, 30)
	ctx := NewContext(64, 64, 1)

	scene.Render(ctx, camera)

	// the sphere fills the middle of the frame: expect lit surface
	// pixels there (faces are wider than the wireframe lines crossing
	// them), and untouched background in the corner
	lit := 0
	for y := 24; y < 40; y++ {
		for x := 24; x < 40; x++ {
			c := ctx.ColorBuffer.NRGBAAt(x, y)
			if c.B > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("no lit surface pixels in the frame center after render")
	}
	corner := ctx.ColorBuffer.NRGBAAt(0, 0)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Fatalf("corner pixel %v, want background", corner)
	}
}

func TestEncodePNG(t *testing.T) {
	scene := NewPolyhedronScene(5, 0)
	camera := NewCamera(60, 1, 0.1, 1000)
	camera.Position = V(0, 0, 15)
	ctx := NewContext(32, 32, 2)

	var buf bytes.Buffer
	if err := scene.EncodePNG(&buf, ctx, camera); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("output is not a PNG stream")
	}
}
