// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"github.com/cogentcore/solarsystem/anim"
	"github.com/cogentcore/solarsystem/camera"
	"github.com/cogentcore/solarsystem/catalog"
	"github.com/cogentcore/solarsystem/loop"
	"github.com/cogentcore/solarsystem/pick"
	"github.com/cogentcore/solarsystem/scene"
	"github.com/cogentcore/solarsystem/textures"
	"github.com/cogentcore/solarsystem/view"
)

// App holds the state of the running solar system app.
// All fields other than the texture loader are owned by the GUI thread.
type App struct {

	// Config is the app configuration.
	Config *Config

	// Catalog is the displayed catalog.
	Catalog *catalog.Catalog

	// System is the built scene hierarchy.
	System *scene.System

	// State is the animation state edited by the control panel.
	State anim.State

	// Rig is the camera.
	Rig *camera.Rig

	// Picker handles hover and focus.
	Picker *pick.Picker

	// Loop runs every frame.
	Loop *loop.Loop

	// Mirror displays the system in the viewport.
	Mirror *view.Mirror

	// Viewport is the 3D view widget.
	Viewport *view.Viewport

	// Loader loads the textures in the background.
	Loader *textures.Loader

	hover   *core.Text
	focus   *core.Text
	loading *core.Text
}

// NewApp returns a new [App] for the given catalog, with all non-GUI
// state set up.
func NewApp(c *Config, cat *catalog.Catalog) *App {
	app := &App{Config: c, Catalog: cat}
	app.System = scene.Build(cat)
	app.State = c.State()
	app.Rig = camera.NewRig()
	app.Picker = pick.NewPicker(app.System, app.Rig, pick.NewSelection())
	app.Loader = textures.NewLoader(os.DirFS(c.Textures), cat.Textures())
	return app
}

// ConfigGUI makes the window contents: the control panel
// next to the 3D viewport.
func (app *App) ConfigGUI() *core.Body {
	b := core.NewBody("Solar System")
	split := core.NewSplits(b)

	panel := core.NewFrame(split)
	panel.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	form := core.NewForm(panel).SetStruct(&app.State)
	form.OnChange(func(e events.Event) {
		app.State.Clamp()
	})
	core.NewButton(panel).SetText("Reset camera").SetIcon(icons.Update).
		OnClick(func(e events.Event) {
			app.Rig.Reset()
		})
	core.NewSeparator(panel)
	app.hover = core.NewText(panel)
	app.focus = core.NewText(panel)
	app.loading = core.NewText(panel)
	app.setText(app.loading, fmt.Sprintf("Loading textures 0/%d", app.Loader.Total()))

	vfr := core.NewFrame(split)
	vfr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
	})
	tb := core.NewToolbar(vfr)
	app.Viewport = view.NewViewport(vfr)
	tb.Maker(func(p *tree.Plan) { app.Viewport.MakeToolbar(p) })
	split.SetSplits(.2, .8)

	sp := app.Config.StarParams()
	app.Mirror = view.NewMirror(app.Viewport.XYZ, app.System, &sp)
	app.Loop = loop.New(anim.NewAnimator(app.System, &app.State), app.Rig, app.Mirror)

	app.Viewport.OnLabel = func(lb pick.Label) {
		if lb.Visible {
			app.setText(app.hover, lb.Text)
		} else {
			app.setText(app.hover, "")
		}
	}
	app.Picker.OnFocus = func(h *scene.Handle) {
		app.setText(app.focus, "Focus: "+h.Name())
	}
	app.Viewport.Start(app.Loop, app.Picker)

	b.OnShow(func(e events.Event) {
		go app.LoadTextures(context.Background())
	})
	return b
}

// LoadTextures loads all textures, applying each to the scene as it
// arrives. It is run on its own goroutine.
func (app *App) LoadTextures(ctx context.Context) {
	vp := app.Viewport
	app.Loader.OnLoad = func(name string, img *image.RGBA) {
		vp.AsyncLock()
		app.Mirror.SetTexture(name, img)
		vp.NeedsRender()
		vp.AsyncUnlock()
	}
	app.Loader.OnProgress = func(done, total int) {
		vp.AsyncLock()
		if done == total {
			app.setText(app.loading, "")
		} else {
			app.setText(app.loading, fmt.Sprintf("Loading textures %d/%d", done, total))
		}
		vp.AsyncUnlock()
	}
	if err := app.Loader.Load(ctx); err != nil {
		slog.Warn("solarsystem: some textures are missing; using placeholder colors", "failed", app.Loader.Failed())
	}
}

func (app *App) setText(tx *core.Text, text string) {
	if tx.Text == text {
		return
	}
	tx.SetText(text)
	tx.UpdateRender()
}
