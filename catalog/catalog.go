// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog provides the static table of celestial bodies that
// the solar system scene is built from. A catalog is pure data:
// it has no behavior beyond validation and loading from TOML files.
package catalog

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"strings"

	cerrors "cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/colors"
	"github.com/pelletier/go-toml/v2"
)

// Appearance describes how a body looks. The texture is an opaque
// reference that is resolved asynchronously by the texture loader;
// until then the emissive tint is used as a placeholder glow.
type Appearance struct {

	// Texture is the path of the surface texture, relative to the
	// texture filesystem.
	Texture string `toml:"texture"`

	// Emissive is the glow tint, in any form accepted by [colors.FromString]
	// (for example "#113355").
	Emissive string `toml:"emissive"`
}

// EmissiveColor returns the parsed [Appearance.Emissive] color,
// which is black if it is unset or invalid.
func (ap *Appearance) EmissiveColor() color.RGBA {
	if ap.Emissive == "" {
		return color.RGBA{A: 255}
	}
	return cerrors.Log1(colors.FromString(ap.Emissive))
}

// Rings are a flat annulus attached to a body, such as those of Saturn.
// The ring radii are offsets from the radius of the body.
type Rings struct {

	// Inner is the offset of the inner edge from the body radius.
	Inner float32 `toml:"inner"`

	// Outer is the offset of the outer edge from the body radius.
	Outer float32 `toml:"outer"`

	// Texture is the path of the ring texture.
	Texture string `toml:"texture"`

	// Opacity is the opacity of the rings in [0, 1].
	Opacity float32 `toml:"opacity"`
}

// InnerRadius returns the inner radius of rings around a body of radius r.
func (rg *Rings) InnerRadius(r float32) float32 { return r + rg.Inner }

// OuterRadius returns the outer radius of rings around a body of radius r.
func (rg *Rings) OuterRadius(r float32) float32 { return r + rg.Outer }

// Body is the definition of one celestial body. Speeds are angle
// increments in radians per animation tick, and may be negative for
// retrograde motion.
type Body struct {

	// Name identifies the body and is unique within a catalog.
	Name string `toml:"name"`

	// Radius is the visual size of the body.
	Radius float32 `toml:"radius"`

	// Distance is the distance from the center of the parent orbit.
	Distance float32 `toml:"distance"`

	// RotationSpeed is the spin increment about the body axis per tick.
	RotationSpeed float32 `toml:"rotation_speed"`

	// OrbitSpeed is the revolution increment about the parent per tick.
	OrbitSpeed float32 `toml:"orbit_speed"`

	// Tilt is the axial tilt in degrees.
	Tilt float32 `toml:"tilt"`

	Appearance Appearance `toml:"appearance"`

	// Moon is an optional satellite, defined relative to this body.
	Moon *Body `toml:"moon,omitempty"`

	// Rings are optional rings attached to this body.
	Rings *Rings `toml:"rings,omitempty"`
}

// HasMoon returns whether the body has a moon.
func (bd *Body) HasMoon() bool { return bd.Moon != nil }

// HasRings returns whether the body has rings.
func (bd *Body) HasRings() bool { return bd.Rings != nil }

// TextureKey returns the logical texture name of the body,
// which is its lower case name.
func (bd *Body) TextureKey() string {
	return strings.ToLower(bd.Name)
}

// RingsTextureKey returns the logical texture name of the rings.
func (bd *Body) RingsTextureKey() string {
	return bd.TextureKey() + "-rings"
}

// Catalog is a complete table of bodies: the central star and
// the planets orbiting it, in orbital order.
type Catalog struct {

	// Sun is the central body, which sits at the origin and does not orbit.
	Sun Body `toml:"sun"`

	// Planets are the orbiting bodies, in increasing order of distance.
	Planets []Body `toml:"planets"`
}

// Open reads a catalog from the given TOML file.
func Open(filename string) (*Catalog, error) {
	cat := &Catalog{}
	if err := tomlx.Open(cat, filename); err != nil {
		return nil, fmt.Errorf("catalog.Open %q: %w", filename, err)
	}
	return cat, nil
}

// OpenFS reads a catalog from the given TOML file in the given filesystem.
func OpenFS(fsys fs.FS, filename string) (*Catalog, error) {
	cat := &Catalog{}
	if err := tomlx.OpenFS(cat, fsys, filename); err != nil {
		return nil, fmt.Errorf("catalog.OpenFS %q: %w", filename, err)
	}
	return cat, nil
}

// Write writes the catalog in the TOML format read by [Open].
func (ct *Catalog) Write(w io.Writer) error {
	return toml.NewEncoder(w).SetIndentTables(true).Encode(ct)
}

// Planet returns the planet with the given name, or nil if there is none.
func (ct *Catalog) Planet(name string) *Body {
	for i := range ct.Planets {
		if ct.Planets[i].Name == name {
			return &ct.Planets[i]
		}
	}
	return nil
}

// Textures returns the mapping from logical texture name to texture path
// for every body, moon and ring in the catalog that has a texture.
func (ct *Catalog) Textures() map[string]string {
	tex := map[string]string{}
	add := func(bd *Body) {
		if bd.Appearance.Texture != "" {
			tex[bd.TextureKey()] = bd.Appearance.Texture
		}
		if bd.Rings != nil && bd.Rings.Texture != "" {
			tex[bd.RingsTextureKey()] = bd.Rings.Texture
		}
	}
	add(&ct.Sun)
	for i := range ct.Planets {
		pl := &ct.Planets[i]
		add(pl)
		if pl.Moon != nil {
			add(pl.Moon)
		}
	}
	return tex
}

// Validate checks the layout invariants of the catalog: names are set
// and unique, radii and distances are positive, and planet distances
// strictly increase in catalog order. All problems are joined into
// the returned error. The scene builder does not require a valid
// catalog; this is for reporting.
func (ct *Catalog) Validate() error {
	var errs []error
	names := map[string]bool{}
	check := func(bd *Body, moon bool) {
		if bd.Name == "" {
			errs = append(errs, errors.New("body with empty name"))
		} else if names[bd.Name] {
			errs = append(errs, fmt.Errorf("duplicate body name %q", bd.Name))
		}
		names[bd.Name] = true
		if bd.Radius <= 0 {
			errs = append(errs, fmt.Errorf("body %q: radius must be positive, not %g", bd.Name, bd.Radius))
		}
		if moon && bd.Distance <= 0 {
			errs = append(errs, fmt.Errorf("moon %q: distance must be positive, not %g", bd.Name, bd.Distance))
		}
	}
	check(&ct.Sun, false)
	prev := float32(0)
	for i := range ct.Planets {
		pl := &ct.Planets[i]
		check(pl, false)
		if pl.Distance <= prev {
			errs = append(errs, fmt.Errorf("planet %q: distance %g does not exceed previous distance %g", pl.Name, pl.Distance, prev))
		}
		prev = pl.Distance
		if pl.Moon != nil {
			check(pl.Moon, true)
		}
	}
	return errors.Join(errs...)
}
