// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/cogentcore/solarsystem/anim"
	"github.com/cogentcore/solarsystem/camera"
	"github.com/cogentcore/solarsystem/catalog"
	"github.com/cogentcore/solarsystem/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func TestAnnulus(t *testing.T) {
	ms := NewAnnulus("ring", 2.7, 4.2, 64)
	assert.Equal(t, "ring", ms.Name)
	assert.Equal(t, 2*65, ms.NumVertex)
	assert.Len(t, ms.Vertex, 2*65*3)
	assert.Len(t, ms.Normal, 2*65*3)
	assert.Len(t, ms.TexCoord, 2*65*2)
	assert.Len(t, ms.Index, 64*6)
	for i := 0; i < len(ms.Vertex); i += 6 {
		in := math32.Vec3(ms.Vertex[i], ms.Vertex[i+1], ms.Vertex[i+2])
		out := math32.Vec3(ms.Vertex[i+3], ms.Vertex[i+4], ms.Vertex[i+5])
		tolassert.EqualTol(t, 2.7, in.Length(), 1e-4)
		tolassert.EqualTol(t, 4.2, out.Length(), 1e-4)
		assert.Equal(t, float32(0), in.Y)
	}
	for _, ix := range ms.Index {
		assert.Less(t, int(ix), ms.NumVertex)
	}

	// too few segments
	assert.Len(t, NewAnnulus("tiny", 1, 2, 1).Index, 3*6)
}

func TestStarfield(t *testing.T) {
	sp := &StarParams{}
	sp.Defaults()
	sp.Count = 100
	ms := NewStarfield("stars", sp)
	assert.True(t, ms.HasColor)
	assert.Equal(t, 300, ms.NumVertex)
	assert.Len(t, ms.Vertex, 900)
	assert.Len(t, ms.Color, 1200)
	assert.Len(t, ms.Index, 300)
	half := sp.Spread / 2
	for i := 0; i < len(ms.Vertex); i += 3 {
		v := math32.Vec3(ms.Vertex[i], ms.Vertex[i+1], ms.Vertex[i+2])
		lim := half * (1 + 2*sp.Size)
		assert.LessOrEqual(t, math32.Abs(v.X), lim)
		assert.LessOrEqual(t, math32.Abs(v.Y), lim)
		assert.LessOrEqual(t, math32.Abs(v.Z), lim)
	}

	// the same seed gives the same sky
	assert.Equal(t, ms.Vertex, NewStarfield("stars", sp).Vertex)
	sp.Seed = 2
	assert.NotEqual(t, ms.Vertex, NewStarfield("stars", sp).Vertex)
}

func TestGlow(t *testing.T) {
	em := color.RGBA{0x11, 0x33, 0x55, 255}
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Glow(em, 0))
	assert.Equal(t, em, Glow(em, 1))
	assert.Equal(t, color.RGBA{0x22, 0x66, 0xaa, 255}, Glow(em, 2))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Glow(color.RGBA{200, 200, 200, 255}, 3))
	assert.Equal(t, color.RGBA{0x88, 0x99, 0xaa, 255}, Placeholder(em))
}

func newMirror(t *testing.T) (*Mirror, *scene.System) {
	t.Helper()
	sys := scene.Build(catalog.Default())
	sp := &StarParams{}
	sp.Defaults()
	sp.Count = 10
	mr := NewMirror(xyz.NewScene(), sys, sp)
	require.NotNil(t, mr.Stars)
	return mr, sys
}

func TestMirror(t *testing.T) {
	mr, sys := newMirror(t)
	// sun, eight planets, the moon and saturn's rings
	assert.Len(t, mr.Solids, 11)
	assert.Len(t, mr.Orbits, 8)
	assert.Equal(t, 1, mr.Textured("earth"))
	assert.Equal(t, 1, mr.Textured("saturn-rings"))
	assert.Equal(t, 0, mr.Textured("pluto"))

	st := &anim.State{}
	st.Defaults()
	anim.Tick(sys, st.Speed)
	rig := camera.NewRig()
	mr.Render(sys, st, rig)

	earth := sys.PlanetByName("Earth")
	pos, rot := sys.Graph.World(earth.Body)
	sld := mr.Solids[earth.Body]
	assert.Equal(t, "Earth", sld.Name)
	assert.Equal(t, pos, sld.Pose.Pos)
	assert.Equal(t, rot, sld.Pose.Quat)
	tolassert.EqualTol(t, 1, sld.Pose.Scale.X, 1e-6)

	moon := mr.Solids[earth.Moon.Body]
	assert.Equal(t, sys.Position(earth.Moon), moon.Pose.Pos)

	assert.Equal(t, rig.Pose.Pos, mr.Scene.Camera.Pose.Pos)
	assert.Equal(t, rig.Lens.FOV, mr.Scene.Camera.FOV)
}

func TestMirrorSettings(t *testing.T) {
	mr, sys := newMirror(t)
	st := &anim.State{}
	st.Defaults()
	rig := camera.NewRig()

	earth := mr.Solids[sys.PlanetByName("Earth").Body]
	em := earth.Material.Emissive
	mr.Render(sys, st.SetGlow(2), rig)
	assert.Equal(t, Glow(em, 2), earth.Material.Emissive)
	mr.Render(sys, st.SetGlow(0), rig)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, earth.Material.Emissive)

	assert.True(t, mr.ShowOrbits())
	mr.Render(sys, st.SetShowOrbits(false), rig)
	assert.False(t, mr.ShowOrbits())
	for _, o := range mr.Orbits {
		assert.Equal(t, uint8(0), o.Material.Color.A)
	}
	mr.Render(sys, st.SetShowOrbits(true), rig)
	for _, o := range mr.Orbits {
		assert.Equal(t, OrbitColor, o.Material.Color)
	}
}

func TestMirrorTexture(t *testing.T) {
	mr, sys := newMirror(t)
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))

	saturn := sys.PlanetByName("Saturn")
	rings := mr.Solids[saturn.Ring]
	alpha := rings.Material.Color.A
	assert.Equal(t, uint8(229), alpha)

	mr.SetTexture("saturn-rings", img)
	assert.NotNil(t, rings.Material.Texture)
	assert.Equal(t, color.RGBA{255, 255, 255, alpha}, rings.Material.Color)
	assert.Nil(t, mr.Solids[saturn.Body].Material.Texture)

	// unknown textures are ignored
	mr.SetTexture("pluto", img)
}

func TestEncodeSnapshot(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(3, 3, color.RGBA{255, 0, 0, 255})
	var b bytes.Buffer
	require.NoError(t, EncodeSnapshot(&b, img))
	dec, err := webp.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 8), dec.Bounds().Size())
	r, _, _, _ := dec.At(3, 3).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	assert.Error(t, EncodeSnapshot(&b, nil))
}
