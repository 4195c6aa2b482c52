// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim advances the orbital and spin angles of a built
// solar system every frame, and holds the user-adjustable
// animation parameters.
package anim

//go:generate core generate

import "cogentcore.org/core/math32"

const (
	// MinSpeed is the minimum value of [State.Speed].
	MinSpeed = 0.1

	// MaxSpeed is the maximum value of [State.Speed].
	MaxSpeed = 5

	// MaxGlow is the maximum value of [State.Glow].
	MaxGlow = 3
)

// State is the process-wide animation state. It is written only by the
// control panel and read every frame by the animator and the renderer.
type State struct { //types:add

	// ShowOrbits is whether the orbit paths of the planets are displayed.
	ShowOrbits bool `label:"Show orbit paths" default:"true"`

	// Speed is the global animation speed multiplier.
	Speed float32 `label:"Animation speed" min:"0.1" max:"5" step:"0.1" default:"1"`

	// Glow is the intensity of the emissive glow of the bodies.
	Glow float32 `label:"Glow intensity" min:"0" max:"3" step:"0.1" default:"1.2"`
}

// Defaults sets the default values.
func (st *State) Defaults() {
	st.ShowOrbits = true
	st.Speed = 1
	st.Glow = 1.2
}

// SetSpeed sets the speed multiplier, clamped to [MinSpeed, MaxSpeed].
func (st *State) SetSpeed(speed float32) *State {
	st.Speed = math32.Clamp(speed, MinSpeed, MaxSpeed)
	return st
}

// SetGlow sets the glow intensity, clamped to [0, MaxGlow].
func (st *State) SetGlow(glow float32) *State {
	st.Glow = math32.Clamp(glow, 0, MaxGlow)
	return st
}

// SetShowOrbits sets whether orbit paths are shown.
func (st *State) SetShowOrbits(show bool) *State {
	st.ShowOrbits = show
	return st
}

// Clamp brings all values back into their valid ranges, for use after
// they were set directly, for example by a form or a config file.
func (st *State) Clamp() {
	st.SetSpeed(st.Speed)
	st.SetGlow(st.Glow)
}
