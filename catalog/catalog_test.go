// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ct := Default()
	assert.NoError(t, ct.Validate())
	assert.Len(t, ct.Planets, 8)

	earth := ct.Planet("Earth")
	require.NotNil(t, earth)
	assert.True(t, earth.HasMoon())
	assert.False(t, earth.HasRings())
	assert.Equal(t, "Moon", earth.Moon.Name)

	saturn := ct.Planet("Saturn")
	require.NotNil(t, saturn)
	assert.True(t, saturn.HasRings())
	tolassert.EqualTol(t, 2.7, saturn.Rings.InnerRadius(saturn.Radius), 1e-6)
	tolassert.EqualTol(t, 4.2, saturn.Rings.OuterRadius(saturn.Radius), 1e-6)

	assert.Nil(t, ct.Planet("Pluto"))

	// each call is an independent copy
	ct.Planets[0].Radius = 100
	assert.Equal(t, float32(0.4), Default().Planets[0].Radius)
}

func TestTextures(t *testing.T) {
	tex := Default().Textures()
	assert.Equal(t, "earth.jpg", tex["earth"])
	assert.Equal(t, "moon.jpg", tex["moon"])
	assert.Equal(t, "sun.jpg", tex["sun"])
	assert.Equal(t, "saturn_rings.jpg", tex["saturn-rings"])
	assert.Len(t, tex, 11)
}

func TestEmissiveColor(t *testing.T) {
	ap := Appearance{Emissive: "#113355"}
	assert.Equal(t, color.RGBA{0x11, 0x33, 0x55, 0xff}, ap.EmissiveColor())
	ap.Emissive = ""
	assert.Equal(t, color.RGBA{A: 255}, ap.EmissiveColor())
}

func TestValidate(t *testing.T) {
	ct := Default()
	ct.Planets[1].Distance = 3   // Venus inside Mercury
	ct.Planets[2].Radius = 0     // Earth
	ct.Planets[3].Name = "Venus" // duplicate
	ct.Planets[2].Moon.Distance = -1
	err := ct.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `planet "Venus": distance 3 does not exceed previous distance 4`)
	assert.Contains(t, msg, `body "Earth": radius must be positive`)
	assert.Contains(t, msg, `duplicate body name "Venus"`)
	assert.Contains(t, msg, `moon "Moon": distance must be positive`)
}

const testCatalog = `
[sun]
name = "Star"
radius = 2
rotation_speed = 0.002

[[planets]]
name = "Inner"
radius = 0.5
distance = 5
rotation_speed = 0.01
orbit_speed = 0.02
tilt = 10

[planets.appearance]
texture = "inner.png"
emissive = "#102030"

[planets.moon]
name = "Pebble"
radius = 0.1
distance = 1
orbit_speed = 0.1

[[planets]]
name = "Outer"
radius = 1.5
distance = 12
orbit_speed = 0.001

[planets.rings]
inner = 0.25
outer = 1
opacity = 0.5
`

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "system.toml")
	require.NoError(t, os.WriteFile(fn, []byte(testCatalog), 0666))
	ct, err := Open(fn)
	require.NoError(t, err)
	assert.NoError(t, ct.Validate())

	assert.Equal(t, "Star", ct.Sun.Name)
	require.Len(t, ct.Planets, 2)
	in := ct.Planets[0]
	assert.Equal(t, float32(10), in.Tilt)
	assert.Equal(t, "inner.png", in.Appearance.Texture)
	require.NotNil(t, in.Moon)
	assert.Equal(t, "Pebble", in.Moon.Name)
	assert.Nil(t, in.Rings)

	out := ct.Planets[1]
	require.NotNil(t, out.Rings)
	assert.Equal(t, float32(0.5), out.Rings.Opacity)
	assert.Equal(t, float32(2.5), out.Rings.OuterRadius(out.Radius))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"system.toml": {Data: []byte(testCatalog)}}
	ct, err := OpenFS(fsys, "system.toml")
	require.NoError(t, err)
	assert.Len(t, ct.Planets, 2)

	_, err = OpenFS(fsys, "missing.toml")
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Default().Write(&b))
	assert.Contains(t, b.String(), "[[planets]]")
	fsys := fstest.MapFS{"system.toml": {Data: b.Bytes()}}
	ct, err := OpenFS(fsys, "system.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), ct)
}
