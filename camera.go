package gyro

// Camera is a perspective projection with a position and look-at target.
// It is mutated only by OrbitControls.
type Camera struct {
	Position Vector
	Target   Vector
	Up       Vector
	Fovy     float64 // vertical field of view, degrees
	Aspect   float64
	Near     float64
	Far      float64
}

// NewCamera returns a camera on the +Z axis looking at the origin.
func NewCamera(fovy, aspect, near, far float64) *Camera {
	return &Camera{
		Position: Vector{0, 0, 1},
		Up:       Vector{0, 1, 0},
		Fovy:     fovy,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// SetAspect updates the projection aspect ratio.
func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
}

// ViewProjection returns the combined view-projection matrix.
func (c *Camera) ViewProjection() Matrix {
	return LookAt(c.Position, c.Target, c.Up).Perspective(c.Fovy, c.Aspect, c.Near, c.Far)
}
