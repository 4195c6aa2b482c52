// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/core/math32"
)

// Modes are the modes of a [Rig].
type Modes int32

const (
	// Free is the default mode, where the user controls the camera.
	Free Modes = iota

	// Transitioning is the mode while the camera flies to a body.
	Transitioning
)

func (m Modes) String() string {
	switch m {
	case Free:
		return "Free"
	case Transitioning:
		return "Transitioning"
	}
	return fmt.Sprintf("Modes(%d)", int32(m))
}

var (
	// DefaultPos is the camera position set by [Rig.Reset].
	DefaultPos = math32.Vec3(0, 20, 30)

	// DefaultDuration is the duration of a focus transition.
	DefaultDuration = time.Second
)

// FocusOffset returns the camera position used to view a body of
// the given radius at the given world position: up and to the side
// by a distance proportional to the radius.
func FocusOffset(pos math32.Vector3, radius float32) math32.Vector3 {
	d := radius * 5
	return pos.Add(math32.Vec3(d, d/2, d))
}

// Rig is the camera state machine. In [Free] mode the pose follows the
// damped [Controls]; in [Transitioning] mode it follows a [Transition]
// until done, then returns to Free. It is updated once per frame.
type Rig struct {

	// Mode is the current mode.
	Mode Modes

	// Pose is the current camera pose.
	Pose Pose

	// Lens has the projection parameters.
	Lens Lens

	// Controls are the user orbit controls.
	Controls Controls

	// Transition is the current or last transition.
	Transition Transition

	// Duration is the duration of new transitions.
	Duration time.Duration
}

// NewRig returns a new [Rig] with defaults, at the default pose.
func NewRig() *Rig {
	rg := &Rig{}
	rg.Defaults()
	return rg
}

// Defaults sets the default parameters and resets the pose.
func (rg *Rig) Defaults() {
	rg.Lens.Defaults()
	rg.Controls.Defaults()
	rg.Duration = DefaultDuration
	rg.Reset()
}

// Reset unconditionally returns the camera to the default pose aimed at
// the origin, overriding any transition in progress.
func (rg *Rig) Reset() {
	rg.Mode = Free
	rg.Transition = Transition{}
	rg.Controls.Stop()
	rg.Pose = Pose{Pos: DefaultPos, Up: math32.Vec3(0, 1, 0)}
}

// SetViewport updates the aspect ratio for a resized viewport,
// preserving the pose.
func (rg *Rig) SetViewport(size image.Point) {
	rg.Lens.SetViewport(size)
}

// Focus starts a transition from the current camera position toward a body
// of the given radius whose world position is given by track. The end
// position is computed from the body position now; the aim follows track
// every frame. Focusing during a transition restarts it from the current
// interpolated position, so the camera never jumps.
func (rg *Rig) Focus(now time.Time, radius float32, track func() math32.Vector3) {
	if rg.Mode == Transitioning {
		rg.Pose.Pos = rg.Transition.Position(now)
	}
	rg.Controls.Stop()
	rg.Mode = Transitioning
	rg.Transition = Transition{
		Start:     rg.Pose.Pos,
		End:       FocusOffset(track(), radius),
		StartTime: now,
		Duration:  rg.Duration,
		Track:     track,
	}
}

// Update advances the rig to the given time.
func (rg *Rig) Update(now time.Time) {
	switch rg.Mode {
	case Transitioning:
		tr := &rg.Transition
		rg.Pose.Pos = tr.Position(now)
		rg.Pose.Target = tr.Aim()
		if tr.Done(now) {
			rg.Mode = Free
		}
	default:
		rg.Controls.Update(&rg.Pose)
	}
}

// Rotate forwards a drag to the controls; input is ignored while transitioning.
func (rg *Rig) Rotate(dx, dy, height float32) {
	if rg.Mode != Free {
		return
	}
	rg.Controls.Rotate(dx, dy, height)
}

// Zoom forwards a zoom to the controls; input is ignored while transitioning.
func (rg *Rig) Zoom(steps float32) {
	if rg.Mode != Free {
		return
	}
	rg.Controls.Zoom(steps)
}

// Pan forwards a pan to the controls; input is ignored while transitioning.
func (rg *Rig) Pan(dx, dy float32) {
	if rg.Mode != Free {
		return
	}
	rg.Controls.Pan(&rg.Pose, dx, dy)
}

// Ray returns the picking ray through the given normalized device coordinates.
func (rg *Rig) Ray(ndc math32.Vector2) math32.Ray {
	return rg.Pose.Ray(&rg.Lens, ndc)
}
