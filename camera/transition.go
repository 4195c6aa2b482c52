// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"time"

	"cogentcore.org/core/math32"
)

// EaseOutCubic is the ease-out cubic curve 1 - (1 - p)^3 for p in [0, 1].
func EaseOutCubic(p float32) float32 {
	q := 1 - p
	return 1 - q*q*q
}

// Transition is a scripted camera move from a start position to an end
// position over a fixed duration, sampled once per frame.
type Transition struct {

	// Start is the camera position when the transition began.
	Start math32.Vector3

	// End is the final camera position.
	End math32.Vector3

	// StartTime is when the transition began.
	StartTime time.Time

	// Duration is the length of the transition.
	Duration time.Duration

	// Track returns the current point to aim at; it is called every
	// frame so the camera follows a moving body.
	Track func() math32.Vector3
}

// Progress returns the linear progress at the given time, clamped to [0, 1].
func (tr *Transition) Progress(now time.Time) float32 {
	if tr.Duration <= 0 {
		return 1
	}
	p := float32(now.Sub(tr.StartTime)) / float32(tr.Duration)
	return math32.Clamp(p, 0, 1)
}

// Eased returns the eased progress at the given time.
func (tr *Transition) Eased(now time.Time) float32 {
	return EaseOutCubic(tr.Progress(now))
}

// Position returns the interpolated camera position at the given time.
// It is exactly Start at the beginning and exactly End once done.
func (tr *Transition) Position(now time.Time) math32.Vector3 {
	p := tr.Progress(now)
	if p >= 1 {
		return tr.End
	}
	return tr.Start.Add(tr.End.Sub(tr.Start).MulScalar(EaseOutCubic(p)))
}

// Done returns whether the transition is complete at the given time.
func (tr *Transition) Done(now time.Time) bool {
	return tr.Progress(now) >= 1
}

// Aim returns the current point to aim at.
func (tr *Transition) Aim() math32.Vector3 {
	if tr.Track == nil {
		return math32.Vector3{}
	}
	return tr.Track()
}
