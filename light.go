package gyro

// HemisphereLight is a static two-color ambient source: surfaces facing up
// receive the sky color, surfaces facing down the ground color, everything
// between a mix of the two.
type HemisphereLight struct {
	Sky       Color
	Ground    Color
	Intensity float64
	Up        Vector
}

// NewHemisphereLight returns a light with the given sky color and explicit
// defaults for the rest: ground #444444, intensity 1, up +Y.
func NewHemisphereLight(sky Color) *HemisphereLight {
	return &HemisphereLight{
		Sky:       sky,
		Ground:    HexColor("444444"),
		Intensity: 1,
		Up:        Vector{0, 1, 0},
	}
}

// Shade returns the irradiance for a world-space surface normal.
func (l *HemisphereLight) Shade(normal Vector) Color {
	t := 0.5 * (normal.Dot(l.Up) + 1)
	return l.Ground.Lerp(l.Sky, t).MulScalar(l.Intensity)
}
