// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loop provides the per-frame update sequence: animate the bodies,
// update the camera, then render.
package loop

import (
	"time"

	"github.com/cogentcore/solarsystem/anim"
	"github.com/cogentcore/solarsystem/camera"
	"github.com/cogentcore/solarsystem/scene"
)

// Renderer draws a frame of the system. It is called once per [Loop.Step],
// after the animation and camera are updated.
type Renderer interface {
	Render(sys *scene.System, st *anim.State, rig *camera.Rig)
}

// RenderFunc is a function that implements [Renderer].
type RenderFunc func(sys *scene.System, st *anim.State, rig *camera.Rig)

func (f RenderFunc) Render(sys *scene.System, st *anim.State, rig *camera.Rig) {
	f(sys, st, rig)
}

// Loop runs the frame sequence. All of its state is owned by the GUI
// thread that calls [Loop.Step].
type Loop struct {

	// Animator advances the system each frame.
	Animator *anim.Animator

	// Rig is the camera, updated after the animation so that
	// a focus transition aims at the body's new position.
	Rig *camera.Rig

	// Renderer draws each frame; it may be nil.
	Renderer Renderer

	// Paused stops the animation; the camera and rendering continue.
	Paused bool

	// Frames is the number of steps so far.
	Frames int

	// Last is the time of the last step.
	Last time.Time
}

// New returns a new [Loop].
func New(an *anim.Animator, rig *camera.Rig, rd Renderer) *Loop {
	return &Loop{Animator: an, Rig: rig, Renderer: rd}
}

// Step runs one frame at the given time.
func (lp *Loop) Step(now time.Time) {
	if !lp.Paused {
		lp.Animator.Tick()
	}
	lp.Rig.Update(now)
	if lp.Renderer != nil {
		lp.Renderer.Render(lp.Animator.System, lp.Animator.State, lp.Rig)
	}
	lp.Frames++
	lp.Last = now
}
