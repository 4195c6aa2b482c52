// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"cogentcore.org/core/math32"
	"github.com/cogentcore/solarsystem/scene"
)

// Tick advances every body of the system by one frame at the given speed
// multiplier: each orbit pivot by the orbit speed of its body and each body
// by its rotation speed, recursively for moons. The step is a fixed nominal
// unit per frame, so the apparent speed follows the frame rate.
// Angles are kept in [0, 2π).
func Tick(sys *scene.System, speed float32) {
	g := &sys.Graph
	if sys.Sun.Def != nil {
		advance(g, sys.Sun.Body, sys.Sun.Def.RotationSpeed*speed)
	}
	for i := range sys.Planets {
		tickHandle(g, &sys.Planets[i], speed)
	}
}

func tickHandle(g *scene.Graph, h *scene.Handle, speed float32) {
	advance(g, h.Orbit, h.Def.OrbitSpeed*speed)
	advance(g, h.Body, h.Def.RotationSpeed*speed)
	if h.Moon != nil {
		tickHandle(g, h.Moon, speed)
	}
}

func advance(g *scene.Graph, id scene.NodeID, delta float32) {
	if !id.IsValid() {
		return
	}
	nd := g.Node(id)
	nd.Angle = WrapAngle(nd.Angle + delta)
}

// WrapAngle returns the given angle in radians wrapped into [0, 2π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	if a >= 2*math32.Pi {
		a = 0
	}
	return a
}

// Animator ticks a system using a shared [State].
type Animator struct {

	// System is the system being animated.
	System *scene.System

	// State provides the speed multiplier.
	State *State

	// Ticks is the total number of ticks so far.
	Ticks int
}

// NewAnimator returns a new [Animator] for the given system and state.
func NewAnimator(sys *scene.System, st *State) *Animator {
	return &Animator{System: sys, State: st}
}

// Tick advances the system by one frame at the current speed.
func (an *Animator) Tick() {
	Tick(an.System, an.State.Speed)
	an.Ticks++
}

// Advance runs n ticks.
func (an *Animator) Advance(n int) {
	for range n {
		an.Tick()
	}
}
