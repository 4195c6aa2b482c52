// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

// Default returns the built-in catalog of the sun and the eight planets.
// Sizes, distances and speeds are chosen for a pleasant layout, not for
// physical accuracy. A new copy is returned on every call.
func Default() *Catalog {
	return &Catalog{
		Sun: Body{
			Name:          "Sun",
			Radius:        3,
			RotationSpeed: 0.001,
			Appearance:    Appearance{Texture: "sun.jpg", Emissive: "#ffff00"},
		},
		Planets: []Body{
			{
				Name:          "Mercury",
				Radius:        0.4,
				Distance:      4,
				RotationSpeed: 0.004,
				OrbitSpeed:    0.04,
				Tilt:          0.034,
				Appearance:    Appearance{Texture: "mercury.jpg", Emissive: "#555555"},
			},
			{
				Name:          "Venus",
				Radius:        0.9,
				Distance:      7,
				RotationSpeed: 0.002,
				OrbitSpeed:    0.015,
				Tilt:          3.86,
				Appearance:    Appearance{Texture: "venus.jpg", Emissive: "#553311"},
			},
			{
				Name:          "Earth",
				Radius:        1,
				Distance:      10,
				RotationSpeed: 0.01,
				OrbitSpeed:    0.01,
				Tilt:          23.44,
				Appearance:    Appearance{Texture: "earth.jpg", Emissive: "#113355"},
				Moon: &Body{
					Name:          "Moon",
					Radius:        0.27,
					Distance:      2,
					RotationSpeed: 0.01,
					OrbitSpeed:    0.05,
					Appearance:    Appearance{Texture: "moon.jpg", Emissive: "#222222"},
				},
			},
			{
				Name:          "Mars",
				Radius:        0.5,
				Distance:      14,
				RotationSpeed: 0.008,
				OrbitSpeed:    0.008,
				Tilt:          25.19,
				Appearance:    Appearance{Texture: "mars.jpg", Emissive: "#551111"},
			},
			{
				Name:          "Jupiter",
				Radius:        2.5,
				Distance:      20,
				RotationSpeed: 0.04,
				OrbitSpeed:    0.002,
				Tilt:          3.13,
				Appearance:    Appearance{Texture: "jupiter.jpg", Emissive: "#554433"},
			},
			{
				Name:          "Saturn",
				Radius:        2.2,
				Distance:      26,
				RotationSpeed: 0.038,
				OrbitSpeed:    0.0009,
				Tilt:          26.73,
				Appearance:    Appearance{Texture: "saturn.jpg", Emissive: "#665522"},
				Rings: &Rings{
					Inner:   0.5,
					Outer:   2,
					Texture: "saturn_rings.jpg",
					Opacity: 0.9,
				},
			},
			{
				Name:          "Uranus",
				Radius:        1.8,
				Distance:      32,
				RotationSpeed: 0.03,
				OrbitSpeed:    0.0004,
				Tilt:          97.77,
				Appearance:    Appearance{Texture: "uranus.jpg", Emissive: "#115566"},
			},
			{
				Name:          "Neptune",
				Radius:        1.7,
				Distance:      36,
				RotationSpeed: 0.032,
				OrbitSpeed:    0.0001,
				Tilt:          28.32,
				Appearance:    Appearance{Texture: "neptune.jpg", Emissive: "#1133aa"},
			},
		},
	}
}
