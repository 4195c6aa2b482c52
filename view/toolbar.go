// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/tree"
)

// RotateStep is the drag distance in pixels of one rotate button click.
var RotateStep = float32(20)

// MakeToolbar adds camera and snapshot buttons for the viewport.
func (vp *Viewport) MakeToolbar(p *tree.Plan) {
	repeat := func(s *styles.Style) {
		s.SetAbilities(true, abilities.RepeatClickable)
	}
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.Update).SetTooltip("reset the camera to the default view").
			OnClick(func(e events.Event) {
				if rig := vp.rig(); rig != nil {
					rig.Reset()
				}
			})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.ZoomIn).SetTooltip("zoom in").
			Styler(repeat).
			OnClick(func(e events.Event) {
				if rig := vp.rig(); rig != nil {
					rig.Zoom(1)
				}
			})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.ZoomOut).SetTooltip("zoom out").
			Styler(repeat).
			OnClick(func(e events.Event) {
				if rig := vp.rig(); rig != nil {
					rig.Zoom(-1)
				}
			})
	})
	tree.Add(p, func(w *core.Separator) {})

	tree.Add(p, func(w *core.Text) {
		w.SetText("Rot:").SetTooltip("rotate the view around the target")
	})
	rot := func(dx, dy float32) func(e events.Event) {
		return func(e events.Event) {
			if rig := vp.rig(); rig != nil {
				rig.Rotate(dx, dy, float32(max(vp.ViewSize().Y, 1)))
			}
		}
	}
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.KeyboardArrowLeft).Styler(repeat).OnClick(rot(-RotateStep, 0))
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.KeyboardArrowUp).Styler(repeat).OnClick(rot(0, -RotateStep))
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.KeyboardArrowDown).Styler(repeat).OnClick(rot(0, RotateStep))
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.KeyboardArrowRight).Styler(repeat).OnClick(rot(RotateStep, 0))
	})
	tree.Add(p, func(w *core.Separator) {})

	tree.Add(p, func(w *core.Button) {
		w.SetText("Snapshot").SetIcon(icons.Image).
			SetTooltip("save the current view as a WebP image").
			OnClick(func(e events.Event) {
				fn := fmt.Sprintf("solarsystem-%s.webp", time.Now().Format("20060102-150405"))
				if err := SaveSnapshot(vp.XYZ, fn); err != nil {
					core.ErrorSnackbar(vp, err, "Snapshot failed")
					return
				}
				core.MessageSnackbar(vp, "Saved "+fn)
			})
	})
}
