package gamemath

// Projection maps the side view of a room onto the screen. Screen x grows
// with depth (world -Z) and screen y grows downwards from FloorY, where world
// Y is zero.
type Projection struct {
	PixelsPerMeter float64
	FloorY         float64
}

// ToScreen returns the pixel position of v. X is dropped.
func (p Projection) ToScreen(v Vec3) (x, y float64) {
	return -v.Z * p.PixelsPerMeter, p.FloorY - v.Y*p.PixelsPerMeter
}

// ToWorld returns the world point at pixel (x, y) on the X=0 plane.
func (p Projection) ToWorld(x, y float64) Vec3 {
	return Vec3{
		X: 0,
		Y: (p.FloorY - y) / p.PixelsPerMeter,
		Z: -x / p.PixelsPerMeter,
	}
}

// Pixels converts a length in metres.
func (p Projection) Pixels(m float64) float64 {
	return m * p.PixelsPerMeter
}

// Meters converts a length in pixels.
func (p Projection) Meters(px float64) float64 {
	return px / p.PixelsPerMeter
}

// ScreenDelta returns the pixel displacement of moving at velocity v for dt
// seconds.
func (p Projection) ScreenDelta(v Vec3, dt float64) (dx, dy float64) {
	return -v.Z * p.PixelsPerMeter * dt, -v.Y * p.PixelsPerMeter * dt
}
