package gyro

import (
	"image/color"
	"testing"
)

// clip-space passthrough triangle covering the middle of the viewport
func centerTriangle(z float64) *Triangle {
	return NewTriangleForPoints(V(-0.8, -0.8, z), V(0.8, -0.8, z), V(0, 0.8, z))
}

func TestRasterizeTriangle(t *testing.T) {
	dc := NewContext(64, 64, 1)
	shader := NewUnlitShader(Identity(), HexColor("ff0000"))
	dc.DrawTriangle(centerTriangle(0), shader)

	got := dc.ColorBuffer.NRGBAAt(32, 32)
	want := color.NRGBA{255, 0, 0, 255}
	if got != want {
		t.Fatalf("center pixel %v, want %v", got, want)
	}
	if corner := dc.ColorBuffer.NRGBAAt(1, 1); corner.A != 0 {
		t.Fatalf("corner pixel %v, want untouched", corner)
	}
}

func TestDepthTest(t *testing.T) {
	dc := NewContext(64, 64, 1)
	blue := NewUnlitShader(Identity(), HexColor("0000ff"))
	red := NewUnlitShader(Identity(), HexColor("ff0000"))
	green := NewUnlitShader(Identity(), HexColor("00ff00"))

	dc.DrawTriangle(centerTriangle(0.5), blue)
	dc.DrawTriangle(centerTriangle(-0.5), red) // nearer, wins
	dc.DrawTriangle(centerTriangle(0.9), green)

	got := dc.ColorBuffer.NRGBAAt(32, 32)
	want := color.NRGBA{255, 0, 0, 255}
	if got != want {
		t.Fatalf("center pixel %v, want nearest triangle %v", got, want)
	}
}

func TestBackfaceCulled(t *testing.T) {
	dc := NewContext(64, 64, 1)
	shader := NewUnlitShader(Identity(), White)
	flipped := NewTriangleForPoints(V(0, 0.8, 0), V(0.8, -0.8, 0), V(-0.8, -0.8, 0))
	dc.DrawTriangle(flipped, shader)
	if got := dc.ColorBuffer.NRGBAAt(32, 32); got.A != 0 {
		t.Fatalf("back face drawn: %v", got)
	}

	dc.Cull = CullNone
	dc.DrawTriangle(flipped, shader)
	if got := dc.ColorBuffer.NRGBAAt(32, 32); got.A == 0 {
		t.Fatal("triangle not drawn with culling disabled")
	}
}

func TestClippedTriangleStillDraws(t *testing.T) {
	dc := NewContext(64, 64, 1)
	shader := NewUnlitShader(Identity(), White)
	// one vertex far outside the clip volume
	tri := NewTriangleForPoints(V(-0.8, -0.8, 0), V(5, -0.8, 0), V(0, 0.8, 0))
	dc.DrawTriangle(tri, shader)
	if got := dc.ColorBuffer.NRGBAAt(20, 32); got.A == 0 {
		t.Fatal("clipped triangle left no fragments")
	}
}

func TestDrawLine(t *testing.T) {
	dc := NewContext(64, 64, 1)
	shader := NewUnlitShader(Identity(), White)
	dc.DrawLine(NewLineForPoints(V(-0.5, 0, 0), V(0.5, 0, 0)), shader)
	if got := dc.ColorBuffer.NRGBAAt(32, 32); got.A == 0 {
		t.Fatal("line left no fragments at its midpoint")
	}
}

func TestSupersampledImageSize(t *testing.T) {
	dc := NewContext(32, 32, 2)
	if w := dc.ColorBuffer.Bounds().Dx(); w != 64 {
		t.Fatalf("render buffer width %d, want 64", w)
	}
	im := dc.Image()
	if im.Bounds().Dx() != 32 || im.Bounds().Dy() != 32 {
		t.Fatalf("output bounds %v, want 32x32", im.Bounds())
	}
}

func TestClearColorBuffer(t *testing.T) {
	dc := NewContext(8, 8, 1)
	dc.ClearColorBufferWith(HexColor("102030"))
	got := dc.ColorBuffer.NRGBAAt(4, 4)
	want := color.NRGBA{0x10, 0x20, 0x30, 0xff}
	if got != want {
		t.Fatalf("cleared pixel %v, want %v", got, want)
	}
}
