package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/render"
)

// orbitAxis tracks an angle and its angular velocity. The velocity decays
// toward 0 through a critically damped spring.
type orbitAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // spring velocity of Velocity itself
}

func newOrbitAxis(fps int, start float64) orbitAxis {
	return orbitAxis{
		Position: start,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// update applies velocity to position and decays velocity toward 0.
func (a *orbitAxis) update(dt float64) {
	a.Position += a.Velocity * dt
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

func (a *orbitAxis) moving() bool {
	return math.Abs(a.Velocity) > 1e-3 || math.Abs(a.velAccel) > 1e-3
}

// orbit is a camera circling a target. Angles are driven by impulses, the
// distance follows a target value through its own spring.
type orbit struct {
	Target math3d.Vec3
	Yaw    orbitAxis
	Pitch  orbitAxis

	distance   float64
	distVel    float64
	distTarget float64
	distSpring harmonica.Spring
	fps        int
	startYaw   float64
	startPitch float64
	startDist  float64
}

// newOrbit derives the orbit from a camera's current placement.
func newOrbit(cam *render.Camera, target math3d.Vec3, fps int) *orbit {
	offset := cam.Position.Sub(target)
	dist := offset.Len()
	if dist == 0 {
		dist = 5
		offset = math3d.V3(0, 0, dist)
	}
	yaw := math.Atan2(offset.X, offset.Z)
	pitch := math.Asin(offset.Y / dist)

	o := &orbit{
		Target:     target,
		fps:        fps,
		startYaw:   yaw,
		startPitch: pitch,
		startDist:  dist,
	}
	o.Reset()
	return o
}

// Reset returns to the starting placement.
func (o *orbit) Reset() {
	o.Yaw = newOrbitAxis(o.fps, o.startYaw)
	o.Pitch = newOrbitAxis(o.fps, o.startPitch)
	o.distance = o.startDist
	o.distTarget = o.startDist
	o.distVel = 0
	o.distSpring = harmonica.NewSpring(harmonica.FPS(o.fps), 6.0, 1.0)
}

// Impulse adds angular velocity in radians per second.
func (o *orbit) Impulse(yaw, pitch float64) {
	o.Yaw.Velocity += yaw
	o.Pitch.Velocity += pitch
}

// Zoom scales the target distance.
func (o *orbit) Zoom(factor float64) {
	o.distTarget = math.Max(0.5, math.Min(100, o.distTarget*factor))
}

// Update advances the springs by one frame.
func (o *orbit) Update(dt float64) {
	o.Yaw.update(dt)
	o.Pitch.update(dt)
	const maxPitch = math.Pi/2 - 0.05
	o.Pitch.Position = math.Max(-maxPitch, math.Min(maxPitch, o.Pitch.Position))
	o.distance, o.distVel = o.distSpring.Update(o.distance, o.distVel, o.distTarget)
}

// Moving reports whether the camera is still animating.
func (o *orbit) Moving() bool {
	return o.Yaw.moving() || o.Pitch.moving() ||
		math.Abs(o.distance-o.distTarget) > 1e-3 || math.Abs(o.distVel) > 1e-3
}

// Apply places the camera on the orbit.
func (o *orbit) Apply(cam *render.Camera) {
	cam.Orbit(o.Target, o.distance, o.Yaw.Position, o.Pitch.Position)
}
