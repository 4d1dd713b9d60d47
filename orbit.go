package gyro

import "math"

// OrbitControls integrates pointer input into damped orbit/zoom/pan motion
// around a target point. Input calls accumulate deltas; Update must run
// once per rendered frame to move the camera toward the accumulated state
// and decay the accumulators, otherwise motion appears to stall.
type OrbitControls struct {
	Camera *Camera
	Target Vector

	// DampingFactor is the fraction of each accumulator consumed per
	// frame. Motion settles geometrically and never overshoots.
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	PanSpeed      float64

	MinDistance float64
	MaxDistance float64
	MinPolar    float64
	MaxPolar    float64

	// spherical camera state about Target
	radius float64
	theta  float64 // azimuth about +Y
	phi    float64 // polar angle from +Y

	thetaDelta float64
	phiDelta   float64
	zoomDelta  float64
	panOffset  Vector
}

// NewOrbitControls adopts the camera's current position relative to its
// target as the initial spherical state.
func NewOrbitControls(camera *Camera) *OrbitControls {
	c := &OrbitControls{
		Camera:        camera,
		Target:        camera.Target,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   1,
		MaxDistance:   1000,
		MinPolar:      0.01,
		MaxPolar:      math.Pi - 0.01,
	}
	offset := camera.Position.Sub(camera.Target)
	c.radius = offset.Length()
	if c.radius == 0 {
		c.radius = c.MinDistance
	}
	c.theta = math.Atan2(offset.X, offset.Z)
	c.phi = math.Acos(Clamp(offset.Y/c.radius, -1, 1))
	return c
}

// Rotate accumulates an orbit impulse. dx and dy are pointer deltas as
// fractions of the viewport size; a full-height drag orbits one turn.
func (c *OrbitControls) Rotate(dx, dy float64) {
	c.thetaDelta -= 2 * math.Pi * dx * c.RotateSpeed
	c.phiDelta -= 2 * math.Pi * dy * c.RotateSpeed
}

// Zoom accumulates a dolly impulse; positive moves toward the target.
func (c *OrbitControls) Zoom(delta float64) {
	c.zoomDelta += delta * c.ZoomSpeed
}

// Pan accumulates a translation along the camera's local right and up
// axes. dx and dy are pointer deltas as fractions of the viewport size.
func (c *OrbitControls) Pan(dx, dy float64) {
	// world-space height of the viewport at the target distance
	span := 2 * c.radius * math.Tan(Radians(c.Camera.Fovy)/2)
	forward := c.Target.Sub(c.Camera.Position).Normalize()
	right := forward.Cross(c.Camera.Up).Normalize()
	up := right.Cross(forward)
	c.panOffset = c.panOffset.
		Add(right.MulScalar(-dx * span * c.PanSpeed)).
		Add(up.MulScalar(dy * span * c.PanSpeed))
}

// Distance returns the current orbit radius.
func (c *OrbitControls) Distance() float64 {
	return c.radius
}

// Update consumes a DampingFactor fraction of each accumulator, moves the
// camera accordingly and decays what remains.
func (c *OrbitControls) Update() {
	d := c.DampingFactor

	c.theta += c.thetaDelta * d
	c.phi = Clamp(c.phi+c.phiDelta*d, c.MinPolar, c.MaxPolar)
	c.radius = Clamp(c.radius*math.Pow(0.95, c.zoomDelta*d), c.MinDistance, c.MaxDistance)
	c.Target = c.Target.Add(c.panOffset.MulScalar(d))

	sinPhi := math.Sin(c.phi)
	offset := Vector{
		c.radius * sinPhi * math.Sin(c.theta),
		c.radius * math.Cos(c.phi),
		c.radius * sinPhi * math.Cos(c.theta),
	}
	c.Camera.Position = c.Target.Add(offset)
	c.Camera.Target = c.Target

	k := 1 - d
	c.thetaDelta *= k
	c.phiDelta *= k
	c.zoomDelta *= k
	c.panOffset = c.panOffset.MulScalar(k)
}
