package topo

import (
	"sort"

	"github.com/katalvlaran/lvlgeo/geom"
)

// Node is a graph vertex: a coordinate plus the star of directed edges
// leaving it.
type Node struct {
	coord   geom.Point
	star    *DirectedEdgeStar
	visited bool
}

// NewNode returns a node at coord with an empty edge star.
func NewNode(coord geom.Point) *Node {
	return &Node{coord: coord, star: &DirectedEdgeStar{}}
}

// Coordinate returns the node's location.
func (n *Node) Coordinate() geom.Point { return n.coord }

// Star returns the node's directed-edge star.
func (n *Node) Star() *DirectedEdgeStar { return n.star }

// IsVisited reports the traversal flag.
func (n *Node) IsVisited() bool { return n.visited }

// SetVisited sets the traversal flag.
func (n *Node) SetVisited(v bool) { n.visited = v }

// NodeMap indexes nodes by exact coordinate.
type NodeMap struct {
	nodes map[geom.Point]*Node
}

// NewNodeMap returns an empty node map.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[geom.Point]*Node)}
}

// AddNode returns the node at coord, creating it if absent.
func (nm *NodeMap) AddNode(coord geom.Point) *Node {
	if n, ok := nm.nodes[coord]; ok {
		return n
	}
	n := NewNode(coord)
	nm.nodes[coord] = n
	return n
}

// Find returns the node at coord, or nil.
func (nm *NodeMap) Find(coord geom.Point) *Node { return nm.nodes[coord] }

// Nodes returns all nodes in deterministic (coordinate) order.
func (nm *NodeMap) Nodes() []*Node {
	out := make([]*Node, 0, len(nm.nodes))
	for _, n := range nm.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].coord, out[j].coord
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return out
}
