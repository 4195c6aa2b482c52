// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// NewAnnulus returns a flat ring mesh in the XZ plane, centered on the
// origin, between the inner and outer radius, with the given number of
// segments around. The normal is +Y; texture U runs from the inner to
// the outer edge and V around the ring.
func NewAnnulus(name string, inner, outer float32, segs int) *xyz.GenMesh {
	segs = max(segs, 3)
	ms := &xyz.GenMesh{}
	ms.Name = name
	n := segs + 1
	ms.Vertex = make(math32.ArrayF32, 0, 2*n*3)
	ms.Normal = make(math32.ArrayF32, 0, 2*n*3)
	ms.TexCoord = make(math32.ArrayF32, 0, 2*n*2)
	ms.Index = make(math32.ArrayU32, 0, segs*6)
	for i := range n {
		v := float32(i) / float32(segs)
		a := v * 2 * math32.Pi
		c, s := math32.Cos(a), math32.Sin(a)
		ms.Vertex = append(ms.Vertex, inner*c, 0, inner*s, outer*c, 0, outer*s)
		ms.Normal = append(ms.Normal, 0, 1, 0, 0, 1, 0)
		ms.TexCoord = append(ms.TexCoord, 0, v, 1, v)
	}
	for i := range segs {
		in0, out0 := uint32(2*i), uint32(2*i+1)
		in1, out1 := in0+2, out0+2
		ms.Index = append(ms.Index, in0, in1, out0, out0, in1, out1)
	}
	ms.NumVertex = 2 * n
	ms.NumIndex = len(ms.Index)
	return ms
}

// StarParams are the parameters of the background starfield.
type StarParams struct {

	// Count is the number of stars.
	Count int `default:"10000"`

	// Spread is the size of the cube centered on the origin
	// within which stars are placed.
	Spread float32 `default:"2000"`

	// Size is the size of a star relative to its distance from the origin.
	Size float32 `default:"0.002"`

	// Seed is the random seed, so that the same sky is generated each time.
	Seed int64 `default:"1"`
}

// Defaults sets the default starfield parameters.
func (sp *StarParams) Defaults() {
	sp.Count = 10000
	sp.Spread = 2000
	sp.Size = 0.002
	sp.Seed = 1
}

// NewStarfield returns a mesh of small white triangles scattered uniformly
// within a cube, each facing the origin. Stars farther away are larger,
// so that all have about the same apparent size from the center.
func NewStarfield(name string, sp *StarParams) *xyz.GenMesh {
	rnd := randx.NewSysRand(sp.Seed)
	ms := &xyz.GenMesh{}
	ms.Name = name
	ms.HasColor = true
	n := sp.Count * 3
	ms.Vertex = make(math32.ArrayF32, 0, n*3)
	ms.Normal = make(math32.ArrayF32, 0, n*3)
	ms.TexCoord = make(math32.ArrayF32, 0, n*2)
	ms.Color = make(math32.ArrayF32, 0, n*4)
	ms.Index = make(math32.ArrayU32, 0, n)
	spread := func() float32 { return (rnd.Float32() - 0.5) * sp.Spread }
	up := math32.Vec3(0, 1, 0)
	for i := range sp.Count {
		p := math32.Vec3(spread(), spread(), spread())
		d := p.Length()
		if d == 0 {
			p = math32.Vec3(0, 0, -1)
			d = 1
		}
		nrm := p.MulScalar(-1 / d)
		ax := up
		if math32.Abs(nrm.Y) > 0.9 {
			ax = math32.Vec3(1, 0, 0)
		}
		u := nrm.Cross(ax).Normal()
		v := nrm.Cross(u)
		sz := sp.Size * d
		corners := [3]math32.Vector3{
			p.Add(v.MulScalar(sz)),
			p.Add(u.MulScalar(-0.866 * sz)).Add(v.MulScalar(-0.5 * sz)),
			p.Add(u.MulScalar(0.866 * sz)).Add(v.MulScalar(-0.5 * sz)),
		}
		for j, c := range corners {
			ms.Vertex = append(ms.Vertex, c.X, c.Y, c.Z)
			ms.Normal = append(ms.Normal, nrm.X, nrm.Y, nrm.Z)
			ms.TexCoord = append(ms.TexCoord, 0, 0)
			ms.Color = append(ms.Color, 1, 1, 1, 1)
			ms.Index = append(ms.Index, uint32(3*i+j))
		}
	}
	ms.NumVertex = n
	ms.NumIndex = len(ms.Index)
	return ms
}
