package gamemath

// LaunchPosition returns where a thrown ball starts: one unit in front of the
// viewer along its view direction.
func LaunchPosition(viewer Pose) Vec3 {
	return viewer.Position.Add(viewer.Forward())
}

// ThrowImpulse returns the impulse applied to a ball thrown with power from
// the viewer. The vertical component is multiplied by curve so shots arc
// instead of travelling flat.
func ThrowImpulse(viewer Pose, power, curve float64) Vec3 {
	dir := viewer.Forward()
	return Vec3{
		X: dir.X * power,
		Y: dir.Y * power * curve,
		Z: dir.Z * power,
	}
}

// VelocityFromImpulse converts an impulse into a velocity change for a body
// of the given mass. Non-positive masses are treated as 1.
func VelocityFromImpulse(impulse Vec3, mass float64) Vec3 {
	if mass <= 0 {
		mass = 1
	}
	return impulse.Scale(1 / mass)
}

// ApplyGravity advances a vertical velocity by gravity over dt seconds.
func ApplyGravity(speedY, gravity, dt float64) float64 {
	return speedY - gravity*dt
}

// Bounce reflects a speed off a surface, keeping the restitution fraction.
func Bounce(speed, restitution float64) float64 {
	return -speed * restitution
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
