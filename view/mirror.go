// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view displays a [scene.System] in an [xyz.Scene], and provides
// the interactive viewport widget.
package view

//go:generate core generate

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/cogentcore/solarsystem/anim"
	"github.com/cogentcore/solarsystem/camera"
	"github.com/cogentcore/solarsystem/scene"
)

const (
	// SphereMesh is the name of the unit sphere mesh shared by all bodies.
	SphereMesh = "sphere"

	// StarsMesh is the name of the starfield mesh.
	StarsMesh = "stars"

	// SunGlowScale is the size of the sun glow shell relative to the sun.
	SunGlowScale = 3.5 / 3.0

	// OrbitWidth is the width of an orbit path.
	OrbitWidth = 0.1
)

var (
	// OrbitColor is the color of the orbit paths when shown.
	OrbitColor = color.RGBA{255, 255, 255, 128}

	// SunGlowColor is the color of the glow around the sun, at full glow.
	SunGlowColor = color.RGBA{255, 204, 0, 255}

	// Background is the color behind the stars.
	Background = color.RGBA{0, 0, 0, 255}
)

// Mirror keeps an [xyz.Scene] in sync with a [scene.System]. The xyz nodes
// are a flat list of solids posed in world coordinates from the node arena
// on every [Mirror.Render]; the arena is the only source of truth.
// It implements [loop.Renderer].
type Mirror struct {

	// Scene is the xyz scene displaying the system.
	Scene *xyz.Scene

	// System is the displayed system.
	System *scene.System

	// Solids are the xyz solids for each body and ring node.
	Solids map[scene.NodeID]*xyz.Solid

	// Orbits are the orbit path solids, one per planet.
	Orbits []*xyz.Solid

	// SunGlow is the translucent shell around the sun.
	SunGlow *xyz.Solid

	// Stars is the starfield solid.
	Stars *xyz.Solid

	// textured are the solids using each texture name.
	textured map[string][]*xyz.Solid

	// emissive is the emissive color of each body solid at unit glow.
	emissive map[*xyz.Solid]color.RGBA

	// glow and orbits are the last applied settings
	glow   float32
	orbits bool
}

// NewMirror configures the scene to display the system: lights,
// meshes, one solid per body and ring, orbit paths and a starfield.
// Bodies are shown with a placeholder color until [Mirror.SetTexture]
// is called for their texture.
func NewMirror(sc *xyz.Scene, sys *scene.System, stars *StarParams) *Mirror {
	mr := &Mirror{Scene: sc, System: sys, glow: -1, orbits: true}
	mr.Solids = make(map[scene.NodeID]*xyz.Solid)
	mr.textured = make(map[string][]*xyz.Solid)
	mr.emissive = make(map[*xyz.Solid]color.RGBA)

	sc.Background = colors.Uniform(Background)
	xyz.NewAmbient(sc, "ambient", 0.5, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "directional", 1, xyz.DirectSun)
	dir.Pos.Set(5, 3, 5)
	sun := xyz.NewPoint(sc, "sun", 1, xyz.DirectSun)
	sun.Pos.Set(0, 0, 0)

	sphere := xyz.NewSphere(sc, SphereMesh, 1, 32)

	bodies := xyz.NewGroup(sc)
	bodies.SetName("bodies")
	mr.addBody(bodies, &sys.Sun, sphere)
	for i := range sys.Planets {
		mr.addHandle(bodies, &sys.Planets[i], sphere)
	}

	mr.SunGlow = xyz.NewSolid(bodies)
	mr.SunGlow.SetName("Sun glow")
	mr.SunGlow.SetMesh(sphere)
	mr.SunGlow.Pose.Scale.SetScalar(sys.Sun.Radius() * SunGlowScale)
	mr.SunGlow.Material.CullBack = false
	mr.SunGlow.Material.CullFront = true

	orbits := xyz.NewGroup(sc)
	orbits.SetName("orbits")
	for i := range sys.Planets {
		h := &sys.Planets[i]
		d := h.Def.Distance
		ms := NewAnnulus(h.Name()+" orbit", d-OrbitWidth/2, d+OrbitWidth/2, 128)
		sc.SetMesh(ms)
		sld := xyz.NewSolid(orbits)
		sld.SetName(h.Name() + " orbit")
		sld.SetMesh(ms).SetColor(OrbitColor).SetEmissive(OrbitColor)
		sld.Material.CullBack = false
		mr.Orbits = append(mr.Orbits, sld)
	}

	if stars != nil && stars.Count > 0 {
		ms := NewStarfield(StarsMesh, stars)
		sc.SetMesh(ms)
		mr.Stars = xyz.NewSolid(sc)
		mr.Stars.SetName(StarsMesh)
		mr.Stars.SetMesh(ms).SetColor(colors.White).SetEmissive(colors.White)
		mr.Stars.Material.CullBack = false
	}
	return mr
}

func (mr *Mirror) addHandle(par *xyz.Group, h *scene.Handle, sphere xyz.Mesh) {
	mr.addBody(par, h, sphere)
	if h.Moon != nil {
		mr.addHandle(par, h.Moon, sphere)
	}
}

// addBody adds the solids for the body and ring of the handle.
func (mr *Mirror) addBody(par *xyz.Group, h *scene.Handle, sphere xyz.Mesh) {
	bd := h.Def
	sld := xyz.NewSolid(par)
	sld.SetName(bd.Name)
	em := bd.Appearance.EmissiveColor()
	sld.SetMesh(sphere).SetColor(Placeholder(em)).SetEmissive(em)
	sld.Pose.Scale.SetScalar(bd.Radius)
	mr.Solids[h.Body] = sld
	mr.emissive[sld] = em
	if bd.Appearance.Texture != "" {
		mr.textured[bd.TextureKey()] = append(mr.textured[bd.TextureKey()], sld)
	}
	if !h.Ring.IsValid() || bd.Rings == nil {
		return
	}
	rg := bd.Rings
	ms := NewAnnulus(bd.Name+" rings", rg.InnerRadius(bd.Radius), rg.OuterRadius(bd.Radius), 64)
	mr.Scene.SetMesh(ms)
	rs := xyz.NewSolid(par)
	rs.SetName(mr.System.Graph.Node(h.Ring).Name)
	clr := Placeholder(em)
	clr.A = uint8(255 * math32.Clamp(rg.Opacity, 0, 1))
	rs.SetMesh(ms).SetColor(clr)
	rs.Material.CullBack = false
	mr.Solids[h.Ring] = rs
	if rg.Texture != "" {
		mr.textured[bd.RingsTextureKey()] = append(mr.textured[bd.RingsTextureKey()], rs)
	}
}

// Placeholder returns the color shown for a body before its texture
// is loaded: its glow tint, lightened halfway to white.
func Placeholder(em color.RGBA) color.RGBA {
	return color.RGBA{uint8((int(em.R) + 255) / 2), uint8((int(em.G) + 255) / 2), uint8((int(em.B) + 255) / 2), 255}
}

// Glow returns the emissive color scaled by the glow intensity,
// saturating at full brightness.
func Glow(em color.RGBA, glow float32) color.RGBA {
	sc := func(v uint8) uint8 {
		return uint8(math32.Clamp(float32(v)*glow, 0, 255))
	}
	return color.RGBA{sc(em.R), sc(em.G), sc(em.B), em.A}
}

// SetTexture applies a loaded texture to all solids that use it,
// replacing their placeholder color. It must be called with the scene
// locked against rendering.
func (mr *Mirror) SetTexture(name string, img *image.RGBA) {
	slds := mr.textured[name]
	if len(slds) == 0 {
		return
	}
	tx := &xyz.TextureBase{Name: name, RGBA: img}
	mr.Scene.SetTexture(tx)
	for _, sld := range slds {
		a := sld.Material.Color.A
		sld.SetTexture(tx).SetColor(color.RGBA{255, 255, 255, a})
	}
	mr.Scene.SetNeedsUpdate()
}

// Textured returns the number of solids using the given texture name.
func (mr *Mirror) Textured(name string) int {
	return len(mr.textured[name])
}

// Render poses all solids from the world transforms of the system,
// aims the xyz camera from the rig, and applies the glow and orbit
// visibility settings of the state.
func (mr *Mirror) Render(sys *scene.System, st *anim.State, rig *camera.Rig) {
	g := &sys.Graph
	for id, sld := range mr.Solids {
		pos, rot := g.World(id)
		sld.Pose.Pos = pos
		sld.Pose.Quat = rot
	}
	mr.SetCamera(rig)
	mr.SetGlow(st.Glow)
	mr.SetShowOrbits(st.ShowOrbits)
	mr.Scene.SetNeedsUpdate()
}

// SetCamera sets the xyz camera from the rig.
func (mr *Mirror) SetCamera(rig *camera.Rig) {
	cam := &mr.Scene.Camera
	cam.FOV = rig.Lens.FOV
	cam.Near = rig.Lens.Near
	cam.Far = rig.Lens.Far
	cam.Pose.Pos = rig.Pose.Pos
	cam.LookAt(rig.Pose.Target, rig.Pose.Up)
}

// SetGlow sets the emissive intensity of all bodies and the sun glow.
func (mr *Mirror) SetGlow(glow float32) {
	if glow == mr.glow {
		return
	}
	mr.glow = glow
	for sld, em := range mr.emissive {
		sld.SetEmissive(Glow(em, glow))
	}
	gc := SunGlowColor
	gc.A = uint8(255 * 0.3 * math32.Clamp(glow/anim.MaxGlow, 0, 1))
	mr.SunGlow.SetColor(gc).SetEmissive(Glow(SunGlowColor, glow/anim.MaxGlow))
}

// SetShowOrbits shows or hides the orbit paths. Hidden paths are
// fully transparent.
func (mr *Mirror) SetShowOrbits(show bool) {
	if show == mr.orbits {
		return
	}
	mr.orbits = show
	clr := OrbitColor
	if !show {
		clr = color.RGBA{}
	}
	for _, sld := range mr.Orbits {
		sld.SetColor(clr).SetEmissive(clr)
	}
}

// ShowOrbits returns whether the orbit paths are shown.
func (mr *Mirror) ShowOrbits() bool {
	return mr.orbits
}
