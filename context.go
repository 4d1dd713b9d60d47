package gyro

import (
	"image"
	"math"
	"runtime"
	"sync"

	"github.com/nfnt/resize"
)

type Face int

const (
	_ Face = iota
	FaceCW
	FaceCCW
)

type Cull int

const (
	_ Cull = iota
	CullNone
	CullFront
	CullBack
)

// Context rasterizes shaded triangles and lines into a color buffer with a
// depth buffer. Rendering happens at supersample times the nominal size;
// Image downsamples to Width x Height.
type Context struct {
	Width        int
	Height       int
	ColorBuffer  *image.NRGBA
	DepthBuffer  []float64
	ClearColor   Color
	ReadDepth    bool
	WriteDepth   bool
	WriteColor   bool
	AlphaBlend   bool
	FrontFace    Face
	Cull         Cull
	LineWidth    float64
	DepthBias    float64
	supersample  int
	bufW, bufH   int
	screenMatrix Matrix
	locks        []sync.Mutex
}

// NewContext returns a context for width x height output rendered at
// supersample times that resolution.
func NewContext(width, height, supersample int) *Context {
	if supersample < 1 {
		supersample = 1
	}
	dc := &Context{}
	dc.Width = width
	dc.Height = height
	dc.supersample = supersample
	dc.bufW = width * supersample
	dc.bufH = height * supersample
	dc.ColorBuffer = image.NewNRGBA(image.Rect(0, 0, dc.bufW, dc.bufH))
	dc.DepthBuffer = make([]float64, dc.bufW*dc.bufH)
	dc.ClearColor = Transparent
	dc.ReadDepth = true
	dc.WriteDepth = true
	dc.WriteColor = true
	dc.AlphaBlend = true
	dc.FrontFace = FaceCCW
	dc.Cull = CullBack
	dc.LineWidth = 2 * float64(supersample)
	dc.DepthBias = 0
	dc.screenMatrix = Screen(dc.bufW, dc.bufH)
	dc.locks = make([]sync.Mutex, 256)
	dc.ClearDepthBuffer()
	return dc
}

// Image returns the frame at the nominal size, downsampling the
// supersampled buffer with a bilinear filter.
func (dc *Context) Image() *image.NRGBA {
	if dc.supersample == 1 {
		return dc.ColorBuffer
	}
	out := resize.Resize(uint(dc.Width), uint(dc.Height), dc.ColorBuffer, resize.Bilinear)
	if im, ok := out.(*image.NRGBA); ok {
		return im
	}
	im := image.NewNRGBA(image.Rect(0, 0, dc.Width, dc.Height))
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			im.Set(x, y, out.At(x, y))
		}
	}
	return im
}

// ClearColorBufferWith uses fast memory copy to clear the buffer
func (dc *Context) ClearColorBufferWith(c Color) {
	nrgba := c.NRGBA()
	row := make([]uint8, dc.bufW*4)
	for x := 0; x < dc.bufW; x++ {
		i := x * 4
		row[i+0] = nrgba.R
		row[i+1] = nrgba.G
		row[i+2] = nrgba.B
		row[i+3] = nrgba.A
	}
	pix := dc.ColorBuffer.Pix
	stride := dc.ColorBuffer.Stride
	for y := 0; y < dc.bufH; y++ {
		copy(pix[y*stride:], row)
	}
}

func (dc *Context) ClearColorBuffer() {
	dc.ClearColorBufferWith(dc.ClearColor)
}

func (dc *Context) ClearDepthBuffer() {
	for i := range dc.DepthBuffer {
		dc.DepthBuffer[i] = math.MaxFloat64
	}
}

func edge(a, b, c Vector) float64 {
	return (b.X-c.X)*(a.Y-c.Y) - (b.Y-c.Y)*(a.X-c.X)
}

func (dc *Context) rasterize(v0, v1, v2 Vertex, s0, s1, s2 Vector, shader Shader) {
	min := s0.Min(s1.Min(s2)).Floor()
	max := s0.Max(s1.Max(s2)).Ceil()

	x0 := ClampInt(int(min.X), 0, dc.bufW-1)
	x1 := ClampInt(int(max.X), 0, dc.bufW-1)
	y0 := ClampInt(int(min.Y), 0, dc.bufH-1)
	y1 := ClampInt(int(max.Y), 0, dc.bufH-1)

	p := Vector{float64(x0) + 0.5, float64(y0) + 0.5, 0}
	w00 := edge(s1, s2, p)
	w01 := edge(s2, s0, p)
	w02 := edge(s0, s1, p)
	a01 := s1.Y - s0.Y
	b01 := s0.X - s1.X
	a12 := s2.Y - s1.Y
	b12 := s1.X - s2.X
	a20 := s0.Y - s2.Y
	b20 := s2.X - s0.X

	area := edge(s0, s1, s2)
	if area == 0 {
		return
	}
	ra := 1 / area
	r0 := 1 / v0.Output.W
	r1 := 1 / v1.Output.W
	r2 := 1 / v2.Output.W

	stride := dc.bufW
	pix := dc.ColorBuffer.Pix

	for y := y0; y <= y1; y++ {
		w0 := w00
		w1 := w01
		w2 := w02
		for x := x0; x <= x1; x++ {
			b0 := w0 * ra
			b1 := w1 * ra
			b2 := w2 * ra

			if b0 >= 0 && b1 >= 0 && b2 >= 0 {
				i := y*stride + x
				z := b0*s0.Z + b1*s1.Z + b2*s2.Z
				bz := z + dc.DepthBias

				// early depth test before shading
				if !dc.ReadDepth || bz <= dc.DepthBuffer[i] {
					b := VectorW{b0 * r0, b1 * r1, b2 * r2, 0}
					b.W = 1 / (b.X + b.Y + b.Z)
					v := InterpolateVertexes(v0, v1, v2, b)

					colorVal := shader.Fragment(v)

					if colorVal.A > 0 {
						lock := &dc.locks[(x+y)&255]
						lock.Lock()
						if !dc.ReadDepth || bz <= dc.DepthBuffer[i] {
							if dc.WriteDepth {
								dc.DepthBuffer[i] = z
							}
							if dc.WriteColor {
								dc.setPixel(colorVal, pix, i*4)
							}
						}
						lock.Unlock()
					}
				}
			}
			w0 += a12
			w1 += a20
			w2 += a01
		}
		w00 += b12
		w01 += b20
		w02 += b01
	}
}

func (dc *Context) setPixel(c Color, pix []uint8, i int) {
	nrgba := c.NRGBA()
	if dc.AlphaBlend && nrgba.A < 255 {
		// source-over on non-premultiplied bytes
		sa := uint32(nrgba.A)
		da := uint32(pix[i+3])
		oa := sa + da*(255-sa)/255
		if oa == 0 {
			pix[i+0] = 0
			pix[i+1] = 0
			pix[i+2] = 0
			pix[i+3] = 0
			return
		}
		blend := func(s, d uint8) uint8 {
			v := (uint32(s)*sa + uint32(d)*da*(255-sa)/255) / oa
			return uint8(v)
		}
		pix[i+0] = blend(nrgba.R, pix[i+0])
		pix[i+1] = blend(nrgba.G, pix[i+1])
		pix[i+2] = blend(nrgba.B, pix[i+2])
		pix[i+3] = uint8(oa)
		return
	}
	pix[i+0] = nrgba.R
	pix[i+1] = nrgba.G
	pix[i+2] = nrgba.B
	pix[i+3] = nrgba.A
}

func (dc *Context) line(v0, v1 Vertex, s0, s1 Vector, shader Shader) {
	n := s1.Sub(s0).Perpendicular().MulScalar(dc.LineWidth / 2)
	s00 := s0.Add(n)
	s01 := s0.Sub(n)
	s10 := s1.Add(n)
	s11 := s1.Sub(n)
	dc.rasterize(v1, v0, v0, s11, s01, s00, shader)
	dc.rasterize(v1, v1, v0, s10, s11, s00, shader)
}

func (dc *Context) drawClippedLine(v0, v1 Vertex, shader Shader) {
	ndc0 := v0.Output.DivScalar(v0.Output.W).Vector()
	ndc1 := v1.Output.DivScalar(v1.Output.W).Vector()
	s0 := dc.screenMatrix.MulPosition(ndc0)
	s1 := dc.screenMatrix.MulPosition(ndc1)
	dc.line(v0, v1, s0, s1, shader)
}

func (dc *Context) drawClippedTriangle(v0, v1, v2 Vertex, shader Shader) {
	ndc0 := v0.Output.DivScalar(v0.Output.W).Vector()
	ndc1 := v1.Output.DivScalar(v1.Output.W).Vector()
	ndc2 := v2.Output.DivScalar(v2.Output.W).Vector()

	if dc.Cull != CullNone {
		area := (ndc1.X-ndc0.X)*(ndc2.Y-ndc0.Y) - (ndc2.X-ndc0.X)*(ndc1.Y-ndc0.Y)
		if dc.FrontFace == FaceCW {
			area = -area
		}
		if dc.Cull == CullBack && area <= 0 {
			return
		}
		if dc.Cull == CullFront && area >= 0 {
			return
		}
	}

	s0 := dc.screenMatrix.MulPosition(ndc0)
	s1 := dc.screenMatrix.MulPosition(ndc1)
	s2 := dc.screenMatrix.MulPosition(ndc2)
	dc.rasterize(v0, v1, v2, s0, s1, s2, shader)
}

func (dc *Context) DrawTriangle(t *Triangle, shader Shader) {
	v1 := shader.Vertex(t.V1)
	v2 := shader.Vertex(t.V2)
	v3 := shader.Vertex(t.V3)

	if v1.Outside() || v2.Outside() || v3.Outside() {
		triangles := ClipTriangle(NewTriangle(v1, v2, v3))
		for _, t := range triangles {
			dc.drawClippedTriangle(t.V1, t.V2, t.V3, shader)
		}
	} else {
		dc.drawClippedTriangle(v1, v2, v3, shader)
	}
}

func (dc *Context) DrawLine(l *Line, shader Shader) {
	v1 := shader.Vertex(l.V1)
	v2 := shader.Vertex(l.V2)

	if v1.Outside() || v2.Outside() {
		line := ClipLine(NewLine(v1, v2))
		if line != nil {
			dc.drawClippedLine(line.V1, line.V2, shader)
		}
	} else {
		dc.drawClippedLine(v1, v2, shader)
	}
}

// DrawMesh fans the mesh across the logical CPUs in interleaved batches.
func (dc *Context) DrawMesh(mesh *Mesh, shader Shader) {
	var wg sync.WaitGroup
	wn := runtime.NumCPU()
	wg.Add(wn)
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			for i := wi; i < len(mesh.Triangles); i += wn {
				dc.DrawTriangle(mesh.Triangles[i], shader)
			}
			for i := wi; i < len(mesh.Lines); i += wn {
				dc.DrawLine(mesh.Lines[i], shader)
			}
			wg.Done()
		}(wi)
	}
	wg.Wait()
}
