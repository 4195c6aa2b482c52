// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command solarsystem is an interactive, animated 3D model of the
// solar system. Drag to rotate the view, Shift+drag to pan, scroll to
// zoom, and click a planet to fly the camera to it.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/cogentcore/solarsystem/anim"
	"github.com/cogentcore/solarsystem/catalog"
	"github.com/cogentcore/solarsystem/view"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the solarsystem app.
type Config struct {

	// Catalog is an optional TOML file defining the bodies to display,
	// instead of the built-in solar system.
	Catalog string `posarg:"0" required:"-"`

	// Textures is the directory the texture images are loaded from.
	Textures string `default:"textures"`

	// Speed is the initial animation speed multiplier.
	Speed float32 `default:"1"`

	// Glow is the initial glow intensity.
	Glow float32 `default:"1.2"`

	// Orbits is whether the orbit paths are initially shown.
	Orbits bool `default:"true"`

	// Stars is the number of stars in the background.
	Stars int `default:"10000"`

	// Seed is the random seed of the starfield.
	Seed int64 `default:"1"`

	// Debug turns on debug level logging.
	Debug bool `flag:"debug"`
}

// State returns the initial animation state.
func (c *Config) State() anim.State {
	st := anim.State{ShowOrbits: c.Orbits, Speed: c.Speed, Glow: c.Glow}
	st.Clamp()
	return st
}

// StarParams returns the starfield parameters.
func (c *Config) StarParams() view.StarParams {
	sp := view.StarParams{}
	sp.Defaults()
	sp.Count = c.Stars
	sp.Seed = c.Seed
	return sp
}

// OpenCatalog returns the configured catalog, or the default one.
// Layout problems are logged but do not prevent display.
func (c *Config) OpenCatalog() (*catalog.Catalog, error) {
	cat := catalog.Default()
	if c.Catalog != "" {
		var err error
		cat, err = catalog.Open(c.Catalog)
		if err != nil {
			return nil, err
		}
	}
	if err := cat.Validate(); err != nil {
		slog.Warn("solarsystem: catalog has layout problems", "error", err)
	}
	return cat, nil
}

func main() { //types:skip
	opts := cli.DefaultOptions("solarsystem", "An interactive, animated 3D model of the solar system.")
	cli.Run(opts, &Config{}, Run, Export)
}

// Run opens the solar system window.
func Run(c *Config) error { //cli:cmd -root
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	cat, err := c.OpenCatalog()
	if err != nil {
		return err
	}
	app := NewApp(c, cat)
	app.ConfigGUI().RunMainWindow()
	return nil
}

// Export writes the configured catalog to standard output as TOML,
// as a starting point for a custom catalog.
func Export(c *Config) error {
	cat, err := c.OpenCatalog()
	if err != nil {
		return err
	}
	return cat.Write(os.Stdout)
}
