// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the camera rig of the solar system view:
// a camera pose with damped orbit controls, and a scripted transition
// that flies the camera to a selected body.
package camera

import (
	"image"

	"cogentcore.org/core/math32"
)

// Lens has the projection parameters of a perspective camera.
type Lens struct {

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"75"`

	// Aspect is the width / height ratio of the viewport.
	Aspect float32 `default:"1"`

	// Near is the distance of the near clipping plane.
	Near float32 `default:"0.1"`

	// Far is the distance of the far clipping plane.
	Far float32 `default:"1000"`
}

// Defaults sets the default lens parameters.
func (ln *Lens) Defaults() {
	ln.FOV = 75
	ln.Aspect = 1
	ln.Near = 0.1
	ln.Far = 1000
}

// SetViewport sets the aspect ratio from the given viewport size in pixels.
// Empty sizes are ignored.
func (ln *Lens) SetViewport(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	ln.Aspect = float32(size.X) / float32(size.Y)
}

// Pose is the position and aim of a camera.
type Pose struct {

	// Pos is the position of the camera.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the up direction.
	Up math32.Vector3
}

// Forward returns the unit vector from the position toward the target.
func (ps *Pose) Forward() math32.Vector3 {
	return ps.Target.Sub(ps.Pos).Normal()
}

// Distance returns the distance from the position to the target.
func (ps *Pose) Distance() float32 {
	return ps.Target.Sub(ps.Pos).Length()
}

// Ray returns the ray from the camera through the given point
// in normalized device coordinates, where x and y are in [-1, 1]
// and y points up.
func (ps *Pose) Ray(ln *Lens, ndc math32.Vector2) math32.Ray {
	fwd := ps.Forward()
	right := fwd.Cross(ps.Up).Normal()
	up := right.Cross(fwd)
	th := math32.Tan(math32.DegToRad(ln.FOV) / 2)
	dir := fwd.Add(right.MulScalar(ndc.X * th * ln.Aspect)).Add(up.MulScalar(ndc.Y * th))
	return math32.Ray{Origin: ps.Pos, Dir: dir.Normal()}
}

// NDC converts a pixel position within a viewport of the given size into
// normalized device coordinates.
func NDC(pt, size image.Point) math32.Vector2 {
	if size.X <= 0 || size.Y <= 0 {
		return math32.Vector2{}
	}
	x := float32(pt.X)/float32(size.X)*2 - 1
	y := -(float32(pt.Y)/float32(size.Y))*2 + 1
	return math32.Vec2(x, y)
}
