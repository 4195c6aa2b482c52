// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/core/math32"
)

// Controls are orbit-style controls that rotate, zoom and pan a camera
// around a target point. Input accumulates into pending deltas, which are
// applied gradually by [Controls.Update] so that motion decays smoothly
// after the input stops.
type Controls struct {

	// DampingFactor is the fraction of the pending motion applied per update.
	DampingFactor float32 `default:"0.05"`

	// RotateSpeed scales rotation input.
	RotateSpeed float32 `default:"1"`

	// ZoomSpeed scales zoom input.
	ZoomSpeed float32 `default:"2"`

	// PanSpeed scales pan input.
	PanSpeed float32 `default:"1"`

	// MinDistance is the minimum distance from the camera to the target.
	MinDistance float32 `default:"5"`

	// MaxDistance is the maximum distance from the camera to the target.
	MaxDistance float32 `default:"100"`

	// pending rotation about the up axis, in radians
	theta float32

	// pending rotation toward the poles, in radians
	phi float32

	// pending zoom scale factor, applied fully at the next update
	scale float32

	// pending target motion in world units
	pan math32.Vector3
}

// Defaults sets the default control parameters.
func (ct *Controls) Defaults() {
	ct.DampingFactor = 0.05
	ct.RotateSpeed = 1
	ct.ZoomSpeed = 2
	ct.PanSpeed = 1
	ct.MinDistance = 5
	ct.MaxDistance = 100
	ct.Stop()
}

// Stop discards all pending motion.
func (ct *Controls) Stop() {
	ct.theta = 0
	ct.phi = 0
	ct.scale = 1
	ct.pan = math32.Vector3{}
}

// Moving returns whether there is pending motion left to apply.
func (ct *Controls) Moving() bool {
	const eps = 1e-6
	return math32.Abs(ct.theta) > eps || math32.Abs(ct.phi) > eps || ct.scale != 1 || ct.pan.Length() > eps
}

// Rotate adds a drag of dx, dy pixels within a viewport of the given
// pixel height: a drag over the full height rotates by a full turn.
func (ct *Controls) Rotate(dx, dy, height float32) {
	if height <= 0 {
		return
	}
	ct.theta -= 2 * math32.Pi * dx / height * ct.RotateSpeed
	ct.phi -= 2 * math32.Pi * dy / height * ct.RotateSpeed
}

// Zoom adds a zoom of the given number of steps; positive steps
// move the camera toward the target.
func (ct *Controls) Zoom(steps float32) {
	if ct.scale == 0 {
		ct.scale = 1
	}
	ct.scale *= math32.Pow(0.95, ct.ZoomSpeed*steps)
}

// Pan adds a move of the target (and camera) by dx, dy along the
// camera's right and up directions, in world units.
func (ct *Controls) Pan(ps *Pose, dx, dy float32) {
	fwd := ps.Forward()
	right := fwd.Cross(ps.Up).Normal()
	up := right.Cross(fwd)
	ct.pan = ct.pan.Add(right.MulScalar(dx * ct.PanSpeed)).Add(up.MulScalar(dy * ct.PanSpeed))
}

// Update applies the damped share of pending motion to the pose.
// The distance to the target is clamped to [MinDistance, MaxDistance],
// and the polar angle is kept away from the poles. Without pending motion
// the pose is left untouched.
func (ct *Controls) Update(ps *Pose) {
	const eps = 1e-6
	if ct.scale == 0 {
		ct.scale = 1
	}
	if !ct.Moving() {
		return
	}
	damp := ct.DampingFactor
	off := ps.Pos.Sub(ps.Target)
	ps.Target = ps.Target.Add(ct.pan.MulScalar(damp))

	rad := off.Length()
	theta := math32.Atan2(off.X, off.Z)
	phi := float32(0)
	if rad > 0 {
		phi = math32.Acos(math32.Clamp(off.Y/rad, -1, 1))
	}
	theta += ct.theta * damp
	phi = math32.Clamp(phi+ct.phi*damp, eps, math32.Pi-eps)
	rad = math32.Clamp(rad*ct.scale, ct.MinDistance, ct.MaxDistance)

	sp := math32.Sin(phi)
	off = math32.Vec3(rad*sp*math32.Sin(theta), rad*math32.Cos(phi), rad*sp*math32.Cos(theta))
	ps.Pos = ps.Target.Add(off)

	ct.theta *= 1 - damp
	ct.phi *= 1 - damp
	ct.pan = ct.pan.MulScalar(1 - damp)
	ct.scale = 1
}
