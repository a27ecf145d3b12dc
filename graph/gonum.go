/*
 * gonum.go, part of graphpot.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//gonum.go implements the gonum graph.Directed interface on Graph, so that
//the gonum graph algorithms (traversals, connected components, and friends)
//run directly on bonded graphs and line graphs.

package graph

import (
	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

var _ gograph.Directed = (*Graph)(nil)

//Node is a node of a Graph under gonum's integer-ID contract.
type Node int64

//ID returns the graph-local index of the node.
func (n Node) ID() int64 { return int64(n) }

//Edge is a directed edge between two Nodes. It carries no attributes; those
//stay in the graph's EData tables, addressed by edge index.
type Edge struct {
	F, T Node
}

func (e Edge) From() gograph.Node { return e.F }

func (e Edge) To() gograph.Node { return e.T }

func (e Edge) ReversedEdge() gograph.Edge { return Edge{F: e.T, T: e.F} }

//Node returns the node with the given ID, or nil if it is out of range.
func (g *Graph) Node(id int64) gograph.Node {
	if id < 0 || id >= int64(g.nnodes) {
		return nil
	}
	return Node(id)
}

//Nodes returns an iterator over all the nodes of the graph.
func (g *Graph) Nodes() gograph.Nodes {
	if g.nnodes == 0 {
		return gograph.Empty
	}
	return iterator.NewImplicitNodes(0, g.nnodes, func(id int) gograph.Node { return Node(id) })
}

//From returns the nodes reachable from id through one outgoing edge.
func (g *Graph) From(id int64) gograph.Nodes {
	if id < 0 || id >= int64(g.nnodes) {
		return gograph.Empty
	}
	return g.neighborNodes(g.OutEdges(int(id)), g.dst)
}

//To returns the nodes that reach id through one of its incoming edges.
func (g *Graph) To(id int64) gograph.Nodes {
	if id < 0 || id >= int64(g.nnodes) {
		return gograph.Empty
	}
	return g.neighborNodes(g.InEdges(int(id)), g.src)
}

func (g *Graph) neighborNodes(edges []int, ends []int) gograph.Nodes {
	if len(edges) == 0 {
		return gograph.Empty
	}
	seen := make(map[int]bool, len(edges))
	nodes := make([]gograph.Node, 0, len(edges))
	for _, e := range edges {
		n := ends[e]
		if !seen[n] {
			seen[n] = true
			nodes = append(nodes, Node(n))
		}
	}
	return iterator.NewOrderedNodes(nodes)
}

//HasEdgeBetween reports whether an edge exists between x and y in either
//direction, multi-edges and periodic images notwithstanding.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

//HasEdgeFromTo reports whether at least one directed edge u->v exists.
func (g *Graph) HasEdgeFromTo(uid, vid int64) bool {
	if uid < 0 || uid >= int64(g.nnodes) {
		return false
	}
	for _, e := range g.OutEdges(int(uid)) {
		if int64(g.dst[e]) == vid {
			return true
		}
	}
	return false
}

//Edge returns an edge from u to v if one exists, and nil otherwise. When
//periodic images make the pair a multi-edge, any one of them stands for all.
func (g *Graph) Edge(uid, vid int64) gograph.Edge {
	if !g.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return Edge{F: Node(uid), T: Node(vid)}
}
