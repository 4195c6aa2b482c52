// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick maps pointer positions to planets by ray casting,
// driving the hover label and click-to-focus selection.
// Only planets are pickable: the sun and moons are never selected.
package pick

import (
	"image"
	"time"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/solarsystem/camera"
	"github.com/cogentcore/solarsystem/scene"
)

// None is the planet index for no selection.
const None = -1

// Selection is the process-wide selection state. It is written only by
// the pointer handlers of a [Picker] and read by the camera rig and the
// label display. Values are indexes into [scene.System.Planets], or [None].
type Selection struct {

	// Hovered is the planet under the pointer.
	Hovered int

	// Focused is the planet last clicked.
	Focused int
}

// NewSelection returns an empty [Selection].
func NewSelection() *Selection {
	return &Selection{Hovered: None, Focused: None}
}

// LabelOffset is the offset of the hover label from the pointer, in pixels.
var LabelOffset = image.Pt(10, 10)

// Label is the state of the hover label, which is displayed by the GUI.
type Label struct {

	// Text is the name of the hovered planet.
	Text string

	// Pos is the pixel position of the label within the viewport.
	Pos image.Point

	// Visible is whether the label is shown.
	Visible bool
}

// Picker performs ray picking of planets for pointer events.
type Picker struct {

	// System is the system whose planets are picked.
	System *scene.System

	// Rig provides the camera for casting rays, and is focused on click.
	Rig *camera.Rig

	// Selection is the selection state updated by the pointer handlers.
	Selection *Selection

	// Label is the hover label state.
	Label Label

	// OnFocus, if set, is called after a click focuses a planet.
	OnFocus func(h *scene.Handle)
}

// NewPicker returns a new [Picker].
func NewPicker(sys *scene.System, rig *camera.Rig, sel *Selection) *Picker {
	return &Picker{System: sys, Rig: rig, Selection: sel}
}

// Pick returns the index of the nearest planet intersected by the ray,
// or [None]. Planets are tested as spheres of their radius at the world
// position of their body node.
func (pk *Picker) Pick(ray math32.Ray) int {
	best := None
	bestDist := math32.Inf(1)
	for i := range pk.System.Planets {
		h := &pk.System.Planets[i]
		sp := math32.Sphere{Center: pk.System.Position(h), Radius: h.Radius()}
		pt, ok := ray.IntersectSphere(sp)
		if !ok {
			continue
		}
		d := pt.Sub(ray.Origin).Length()
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// PickAt returns the index of the planet at the given pixel position
// in a viewport of the given size, or [None]. The rig lens is sized to
// the viewport first, so the ray matches the rendered projection.
func (pk *Picker) PickAt(pt, size image.Point) int {
	pk.Rig.SetViewport(size)
	return pk.Pick(pk.Rig.Ray(camera.NDC(pt, size)))
}

// Planet returns the planet handle for the given index, or nil for [None].
func (pk *Picker) Planet(idx int) *scene.Handle {
	if idx < 0 || idx >= len(pk.System.Planets) {
		return nil
	}
	return &pk.System.Planets[idx]
}

// Move handles a pointer move to the given pixel position, updating the
// hovered planet and the label. It returns whether the hovered planet
// or the label changed.
func (pk *Picker) Move(pt, size image.Point) bool {
	idx := pk.PickAt(pt, size)
	sel := pk.Selection
	changed := idx != sel.Hovered
	sel.Hovered = idx
	h := pk.Planet(idx)
	if h == nil {
		if pk.Label.Visible {
			changed = true
		}
		pk.Label = Label{}
		return changed
	}
	lpos := pt.Add(LabelOffset)
	if lpos != pk.Label.Pos || !pk.Label.Visible {
		changed = true
	}
	pk.Label = Label{Text: h.Name(), Pos: lpos, Visible: true}
	return changed
}

// Leave handles the pointer leaving the viewport, clearing the hover.
func (pk *Picker) Leave() {
	pk.Selection.Hovered = None
	pk.Label = Label{}
}

// Click handles a click at the given pixel position. If a planet is hit it
// becomes focused and the camera starts flying to it; a miss leaves the
// focus unchanged. It returns whether a planet was hit.
func (pk *Picker) Click(pt, size image.Point, now time.Time) bool {
	idx := pk.PickAt(pt, size)
	h := pk.Planet(idx)
	if h == nil {
		return false
	}
	pk.Selection.Focused = idx
	sys := pk.System
	pk.Rig.Focus(now, h.Radius(), func() math32.Vector3 { return sys.Position(h) })
	logx.PrintlnDebug("pick: focus", h.Name())
	if pk.OnFocus != nil {
		pk.OnFocus(h)
	}
	return true
}
