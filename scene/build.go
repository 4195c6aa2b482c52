// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
	"github.com/cogentcore/solarsystem/catalog"
)

// Handle gives access to the nodes built for one catalog body.
type Handle struct {

	// Def is the catalog definition the nodes were built from.
	Def *catalog.Body

	// Orbit is the orbit pivot of the body, or [NoNode] for the sun.
	Orbit NodeID

	// Body is the body node.
	Body NodeID

	// Ring is the ring attachment of the body, or [NoNode].
	Ring NodeID

	// Moon is the handle of the moon of the body, if any.
	Moon *Handle
}

// Name returns the name of the body.
func (h *Handle) Name() string { return h.Def.Name }

// Radius returns the radius of the body.
func (h *Handle) Radius() float32 { return h.Def.Radius }

// System is the complete built hierarchy of a catalog.
type System struct {
	Graph Graph

	// Sun is the handle of the central body, which is a root
	// at the origin with no orbit pivot.
	Sun Handle

	// Planets are the handles of the planets, in catalog order.
	Planets []Handle
}

// Build constructs the transform hierarchy for the given catalog.
// For each planet it creates an orbit pivot at the origin, with the body
// offset by its distance along X and tilted once by its axial tilt.
// A moon gets its own orbit pivot as a child of the planet body, following
// the position but not the rotation of the planet. Rings are attached
// directly to the body. Build is deterministic and does not validate the
// catalog; see [catalog.Catalog.Validate].
func Build(cat *catalog.Catalog) *System {
	sys := &System{}
	sun := &cat.Sun
	sys.Sun = Handle{Def: sun, Orbit: NoNode, Ring: NoNode}
	sys.Sun.Body = sys.Graph.Add(NoNode, Node{Name: sun.Name, Kind: Body, Tilt: math32.DegToRad(sun.Tilt)})
	sys.Planets = make([]Handle, len(cat.Planets))
	for i := range cat.Planets {
		sys.Planets[i] = sys.addBody(NoNode, &cat.Planets[i], false)
	}
	return sys
}

// addBody adds the orbit pivot, body and attachments for bd under parent.
func (sys *System) addBody(parent NodeID, bd *catalog.Body, positionOnly bool) Handle {
	g := &sys.Graph
	h := Handle{Def: bd, Ring: NoNode}
	h.Orbit = g.Add(parent, Node{Name: bd.Name + " orbit", Kind: Orbit, PositionOnly: positionOnly})
	h.Body = g.Add(h.Orbit, Node{
		Name:   bd.Name,
		Kind:   Body,
		Offset: math32.Vec3(bd.Distance, 0, 0),
		Tilt:   math32.DegToRad(bd.Tilt),
	})
	if bd.Moon != nil {
		moon := sys.addBody(h.Body, bd.Moon, true)
		h.Moon = &moon
	}
	if bd.Rings != nil {
		h.Ring = g.Add(h.Body, Node{Name: bd.Name + " rings", Kind: Ring})
	}
	return h
}

// Position returns the world position of the body of the handle.
func (sys *System) Position(h *Handle) math32.Vector3 {
	return sys.Graph.WorldPosition(h.Body)
}

// PlanetByName returns the planet handle with the given name, or nil.
func (sys *System) PlanetByName(name string) *Handle {
	for i := range sys.Planets {
		if sys.Planets[i].Name() == name {
			return &sys.Planets[i]
		}
	}
	return nil
}

// PlanetIndex returns the index of the planet whose body node is id, or -1.
func (sys *System) PlanetIndex(id NodeID) int {
	for i := range sys.Planets {
		if sys.Planets[i].Body == id {
			return i
		}
	}
	return -1
}
