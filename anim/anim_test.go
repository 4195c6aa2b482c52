// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/solarsystem/catalog"
	"github.com/cogentcore/solarsystem/scene"
	"github.com/stretchr/testify/assert"
)

// assertAngle checks that two angles are equal modulo 2π.
func assertAngle(t *testing.T, expected, actual, tol float32) {
	t.Helper()
	d := WrapAngle(expected - actual)
	if d > math32.Pi {
		d -= 2 * math32.Pi
	}
	tolassert.EqualTol(t, 0, d, tol)
}

func TestEndToEnd(t *testing.T) {
	cat := &catalog.Catalog{
		Sun:     catalog.Body{Name: "Sun", Radius: 1},
		Planets: []catalog.Body{{Name: "Only", Radius: 1, Distance: 10, OrbitSpeed: 0.01}},
	}
	sys := scene.Build(cat)
	for range 100 {
		Tick(sys, 1)
	}
	orb := sys.Graph.Node(sys.Planets[0].Orbit)
	tolassert.EqualTol(t, 1, orb.Angle, 1e-4)
}

func TestTickAccumulates(t *testing.T) {
	speeds := []float32{0.1, 1, 2.5, 5}
	for _, m := range speeds {
		sys := scene.Build(catalog.Default())
		n := 500
		for range n {
			Tick(sys, m)
		}
		for i := range sys.Planets {
			h := &sys.Planets[i]
			orb := sys.Graph.Node(h.Orbit)
			bod := sys.Graph.Node(h.Body)
			assertAngle(t, float32(n)*h.Def.OrbitSpeed*m, orb.Angle, 1e-3)
			assertAngle(t, float32(n)*h.Def.RotationSpeed*m, bod.Angle, 1e-3)
			assert.GreaterOrEqual(t, orb.Angle, float32(0))
			assert.Less(t, orb.Angle, float32(2*math32.Pi))
			if h.Moon != nil {
				assertAngle(t, float32(n)*h.Moon.Def.OrbitSpeed*m, sys.Graph.Node(h.Moon.Orbit).Angle, 1e-3)
				assertAngle(t, float32(n)*h.Moon.Def.RotationSpeed*m, sys.Graph.Node(h.Moon.Body).Angle, 1e-3)
			}
			if h.Ring.IsValid() {
				assert.Equal(t, float32(0), sys.Graph.Node(h.Ring).Angle)
			}
		}
		assertAngle(t, float32(n)*0.001*m, sys.Graph.Node(sys.Sun.Body).Angle, 1e-3)
	}
}

func TestTickOrderIndependent(t *testing.T) {
	a := scene.Build(catalog.Default())
	b := scene.Build(catalog.Default())
	for range 50 {
		Tick(a, 1.5)
	}
	// tick the planets of b one at a time, in reverse order
	for i := len(b.Planets) - 1; i >= 0; i-- {
		for range 50 {
			tickHandle(&b.Graph, &b.Planets[i], 1.5)
		}
	}
	for range 50 {
		advance(&b.Graph, b.Sun.Body, b.Sun.Def.RotationSpeed*1.5)
	}
	for i := range a.Graph.Nodes {
		tolassert.EqualTol(t, a.Graph.Nodes[i].Angle, b.Graph.Nodes[i].Angle, 1e-5)
	}
}

func TestRetrograde(t *testing.T) {
	cat := &catalog.Catalog{
		Planets: []catalog.Body{{Name: "Back", Radius: 1, Distance: 5, OrbitSpeed: -0.5, RotationSpeed: -0.25}},
	}
	sys := scene.Build(cat)
	Tick(sys, 1)
	h := &sys.Planets[0]
	tolassert.EqualTol(t, 2*math32.Pi-0.5, sys.Graph.Node(h.Orbit).Angle, 1e-5)
	tolassert.EqualTol(t, 2*math32.Pi-0.25, sys.Graph.Node(h.Body).Angle, 1e-5)
}

func TestWrapAngle(t *testing.T) {
	tolassert.EqualTol(t, 0, WrapAngle(0), 1e-6)
	tolassert.EqualTol(t, 1, WrapAngle(1+2*math32.Pi), 1e-5)
	tolassert.EqualTol(t, 2*math32.Pi-1, WrapAngle(-1), 1e-5)
	tolassert.EqualTol(t, 0, WrapAngle(2*math32.Pi), 1e-6)
}

func TestState(t *testing.T) {
	st := &State{}
	st.Defaults()
	assert.True(t, st.ShowOrbits)
	assert.Equal(t, float32(1), st.Speed)
	assert.Equal(t, float32(1.2), st.Glow)

	st.SetSpeed(10).SetGlow(-1).SetShowOrbits(false)
	assert.Equal(t, float32(MaxSpeed), st.Speed)
	assert.Equal(t, float32(0), st.Glow)
	assert.False(t, st.ShowOrbits)

	st.Speed = 0
	st.Glow = 7
	st.Clamp()
	assert.Equal(t, float32(MinSpeed), st.Speed)
	assert.Equal(t, float32(MaxGlow), st.Glow)
}

func TestAnimator(t *testing.T) {
	st := &State{}
	st.Defaults()
	st.SetSpeed(2)
	sys := scene.Build(catalog.Default())
	an := NewAnimator(sys, st)
	an.Advance(10)
	assert.Equal(t, 10, an.Ticks)
	earth := sys.PlanetByName("Earth")
	tolassert.EqualTol(t, 10*0.01*2, sys.Graph.Node(earth.Orbit).Angle, 1e-5)
}
