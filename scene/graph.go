// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the transform hierarchy of the solar system,
// as an arena of nodes indexed by [NodeID] with explicit parent links.
// It is independent of any rendering library: the view package mirrors
// it into an xyz scene for display.
package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// NodeID is the index of a [Node] in a [Graph].
type NodeID int

// NoNode is the [NodeID] of a missing node, used for the parent of roots
// and for absent optional parts of a [Handle].
const NoNode NodeID = -1

// IsValid returns whether the id refers to a node.
func (id NodeID) IsValid() bool { return id >= 0 }

// Kinds are the kinds of nodes in a [Graph].
type Kinds int32

const (
	// Orbit is a pivot at the center of an orbit; its angle is the
	// revolution angle of the bodies it contains.
	Orbit Kinds = iota

	// Body is a celestial body, offset from its orbit pivot; its angle
	// is the spin of the body about its own (tilted) axis.
	Body

	// Ring is a static ring attachment of a body, with no angle of its own.
	Ring
)

func (k Kinds) String() string {
	switch k {
	case Orbit:
		return "Orbit"
	case Body:
		return "Body"
	case Ring:
		return "Ring"
	}
	return fmt.Sprintf("Kinds(%d)", int32(k))
}

// Node is one transform in the hierarchy. The local rotation of a node
// is its fixed tilt about X followed by its angle about Y.
type Node struct {

	// Name is a descriptive name, unique within a graph built by [Build].
	Name string

	// Kind is the kind of node.
	Kind Kinds

	// Parent is the parent node, or [NoNode] for a root.
	// It is set on creation and never changes.
	Parent NodeID

	// Children are the nodes whose parent is this node, in creation order.
	Children []NodeID

	// Offset is the translation relative to the parent.
	Offset math32.Vector3

	// Tilt is the fixed rotation about the local X axis in radians,
	// set once on creation.
	Tilt float32

	// Angle is the accumulated rotation about the local Y axis in radians.
	Angle float32

	// PositionOnly makes the node follow the position of its parent
	// but not its rotation. It is used for moon orbits, so that a moon
	// circles its planet in the orbital plane regardless of the axial
	// tilt and spin of the planet.
	PositionOnly bool
}

// LocalQuat returns the local rotation of the node.
func (nd *Node) LocalQuat() math32.Quat {
	q := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), nd.Tilt)
	return q.Mul(math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), nd.Angle))
}

// Graph is an arena of nodes forming a forest of transform trees.
// Nodes are never removed.
type Graph struct {
	Nodes []Node
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.Nodes) }

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) *Node { return &g.Nodes[id] }

// Add adds the given node as a child of parent (which may be [NoNode]
// for a new root) and returns its id.
func (g *Graph) Add(parent NodeID, nd Node) NodeID {
	id := NodeID(len(g.Nodes))
	nd.Parent = parent
	nd.Children = nil
	g.Nodes = append(g.Nodes, nd)
	if parent.IsValid() {
		pn := &g.Nodes[parent]
		pn.Children = append(pn.Children, id)
	}
	return id
}

// Roots returns the ids of all nodes without a parent, in creation order.
func (g *Graph) Roots() []NodeID {
	var roots []NodeID
	for i := range g.Nodes {
		if !g.Nodes[i].Parent.IsValid() {
			roots = append(roots, NodeID(i))
		}
	}
	return roots
}

// IsDescendant returns whether id is a (strict) descendant of ancestor.
func (g *Graph) IsDescendant(id, ancestor NodeID) bool {
	for p := g.Nodes[id].Parent; p.IsValid(); p = g.Nodes[p].Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// WalkDown calls fun on the node and all of its descendants, depth first.
// If fun returns false the children of that node are skipped.
func (g *Graph) WalkDown(id NodeID, fun func(id NodeID, nd *Node) bool) {
	nd := &g.Nodes[id]
	if !fun(id, nd) {
		return
	}
	for _, kid := range nd.Children {
		g.WalkDown(kid, fun)
	}
}

// World returns the world position and rotation of the node.
func (g *Graph) World(id NodeID) (math32.Vector3, math32.Quat) {
	nd := &g.Nodes[id]
	local := nd.LocalQuat()
	if !nd.Parent.IsValid() {
		return nd.Offset, local
	}
	ppos, prot := g.World(nd.Parent)
	if nd.PositionOnly {
		return ppos.Add(nd.Offset), local
	}
	return ppos.Add(nd.Offset.MulQuat(prot)), prot.Mul(local)
}

// WorldPosition returns the world position of the node.
func (g *Graph) WorldPosition(id NodeID) math32.Vector3 {
	pos, _ := g.World(id)
	return pos
}

// NodeShape is the geometric description of a node, without identity
// or links to other node values, for comparing and serializing
// hierarchies.
type NodeShape struct {
	Name   string
	Kind   Kinds
	Parent NodeID
	Offset math32.Vector3
	Tilt   float32
	Angle  float32
}

// Shape returns the shape of every node, in id order.
func (g *Graph) Shape() []NodeShape {
	sh := make([]NodeShape, len(g.Nodes))
	for i := range g.Nodes {
		nd := &g.Nodes[i]
		sh[i] = NodeShape{Name: nd.Name, Kind: nd.Kind, Parent: nd.Parent, Offset: nd.Offset, Tilt: nd.Tilt, Angle: nd.Angle}
	}
	return sh
}
