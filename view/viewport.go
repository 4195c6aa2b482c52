// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/cogentcore/solarsystem/camera"
	"github.com/cogentcore/solarsystem/loop"
	"github.com/cogentcore/solarsystem/pick"
)

var (
	// PanFactor is the pan distance per pixel of drag,
	// relative to the distance of the camera from its target.
	PanFactor = float32(0.001)

	// ScrollFactor is the number of zoom steps per unit of scroll.
	ScrollFactor = float32(0.02)
)

// Viewport is the interactive 3D view of the system. It runs the
// frame loop on every paint tick, and routes pointer input to the
// camera rig and the picker instead of the default xyz navigation.
// Drag rotates, Shift+drag pans and scroll zooms.
type Viewport struct {
	xyzcore.Scene

	// Loop is the frame loop run on every animation tick.
	Loop *loop.Loop `set:"-" display:"-"`

	// Picker handles hover and click picking.
	Picker *pick.Picker `set:"-" display:"-"`

	// OnLabel is called when the hover label changes.
	OnLabel func(lb pick.Label) `set:"-" display:"-"`
}

func (vp *Viewport) Init() {
	vp.Scene.Init()
	vp.XYZ.NoNav = true
	vp.Styler(func(s *styles.Style) {
		s.Min.Set(units.Em(30))
	})

	vp.On(events.SlideMove, func(e events.Event) {
		e.SetHandled()
		rig := vp.rig()
		if rig == nil {
			return
		}
		del := e.PrevDelta()
		if e.HasAnyModifier(key.Shift) {
			pd := PanFactor * rig.Pose.Distance()
			rig.Pan(-float32(del.X)*pd, float32(del.Y)*pd)
			return
		}
		rig.Rotate(float32(del.X), float32(del.Y), float32(vp.ViewSize().Y))
	})
	vp.On(events.Scroll, func(e events.Event) {
		e.SetHandled()
		rig := vp.rig()
		if rig == nil {
			return
		}
		se := e.(*events.MouseScroll)
		rig.Zoom(-float32(se.Delta.Y) * ScrollFactor)
	})
	vp.On(events.MouseMove, func(e events.Event) {
		if vp.Picker == nil {
			return
		}
		if vp.Picker.Move(vp.PointToRelPos(e.Pos()), vp.ViewSize()) {
			vp.labelChanged()
		}
	})
	vp.On(events.MouseLeave, func(e events.Event) {
		if vp.Picker == nil {
			return
		}
		vp.Picker.Leave()
		vp.labelChanged()
	})
	vp.On(events.Click, func(e events.Event) {
		e.SetHandled()
		if vp.Picker == nil {
			return
		}
		vp.Picker.Click(vp.PointToRelPos(e.Pos()), vp.ViewSize(), time.Now())
	})

	vp.Updater(func() {
		if rig := vp.rig(); rig != nil {
			rig.SetViewport(vp.ViewSize())
		}
	})
}

// ViewSize returns the size of the viewport content in pixels.
func (vp *Viewport) ViewSize() image.Point {
	return vp.Geom.Size.Actual.Content.ToPointFloor()
}

func (vp *Viewport) rig() *camera.Rig {
	if vp.Loop == nil {
		return nil
	}
	return vp.Loop.Rig
}

func (vp *Viewport) labelChanged() {
	if vp.OnLabel != nil {
		vp.OnLabel(vp.Picker.Label)
	}
}

// Start sets the loop and picker and starts running the loop
// on every paint tick until the viewport is destroyed.
func (vp *Viewport) Start(lp *loop.Loop, pk *pick.Picker) {
	vp.Loop = lp
	vp.Picker = pk
	vp.Animate(func(a *core.Animation) {
		lp.Rig.SetViewport(vp.ViewSize())
		lp.Step(time.Now())
		vp.NeedsRender()
	})
}
