/*
 * graph.go, part of graphpot.
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

//Package graph implements the molecular/crystal graphs used by graph-based
//machine-learning potentials, and the derived "line graphs" over bond pairs
//that carry the three-body (angular) terms. Graphs are value-like: they are
//built fresh per structure, annotated with derived attributes and then
//discarded by the caller. Nothing here keeps global state, so structures can
//be processed in parallel at a higher layer, one graph per goroutine.
package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Names of the node and edge attributes used by the pipeline. Callers are free
//to attach attributes under any other name; these are the ones the functions
//in this package read and write.
const (
	Pos       = "pos"        //node, Nx3, cartesian coordinates
	NodeType  = "node_type"  //node, Nx1, index into the element list
	PBCOffset = "pbc_offset" //edge, Ex3, integer lattice-translation vector
	BondVec   = "bond_vec"   //edge, Ex3, cartesian bond vector
	BondDist  = "bond_dist"  //edge, Ex1, euclidean bond length
	CosTheta  = "cos_theta"  //line-graph edge, Ex1
	Theta     = "theta"      //line-graph edge, Ex1, radians
	Phi       = "phi"        //line-graph edge, Ex1, reserved
	//TripleBondLengths is the bond length of the destination bond of each
	//line-graph edge, kept around for the three-body basis expansion.
	TripleBondLengths = "triple_bond_lengths"
)

//Graph is a directed multigraph with stable integer indexing for both nodes
//and edges, and named per-node/per-edge attribute tables. Edges are stored as
//parallel source/destination slices, in insertion order. The topology is
//fixed at construction; only the attribute tables may be written afterwards.
type Graph struct {
	nnodes int
	src    []int
	dst    []int
	outs   [][]int //per-node outgoing edge indexes, built on demand
	ins    [][]int

	//Lattice contains the 3 lattice vectors as rows, or nil for aperiodic
	//(molecular) systems.
	Lattice *mat.Dense

	//NData and EData are the named attribute tables. Rows are indexed by
	//node/edge index. Scalar attributes are stored as single-column matrices.
	NData map[string]*mat.Dense
	EData map[string]*mat.Dense

	//EdgeIDs is only set on graphs built by PruneEdgesByFeatures (indexes of
	//the retained edges into the source graph's edge list, in retained order)
	//and on line graphs, where it maps line-graph nodes to the edges of the
	//bonded graph they came from.
	EdgeIDs []int
}

//New returns a graph with nnodes nodes and one directed edge per src/dst
//pair. It returns an error if the slices differ in length or reference
//nodes out of range. The slices are kept by the graph and must not be
//modified by the caller afterwards.
func New(nnodes int, src, dst []int) (*Graph, error) {
	if nnodes < 0 {
		return nil, newError("graph.New", "%s: negative node count %d", InvalidParameter, nnodes)
	}
	if len(src) != len(dst) {
		return nil, newError("graph.New", "%s: %d sources vs %d destinations", InconsistentGraph, len(src), len(dst))
	}
	for e := range src {
		if src[e] < 0 || src[e] >= nnodes || dst[e] < 0 || dst[e] >= nnodes {
			return nil, newError("graph.New", "%s: edge %d (%d->%d) out of the %d-node range", InconsistentGraph, e, src[e], dst[e], nnodes)
		}
	}
	return &Graph{
		nnodes: nnodes,
		src:    src,
		dst:    dst,
		NData:  make(map[string]*mat.Dense),
		EData:  make(map[string]*mat.Dense),
	}, nil
}

//NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	return g.nnodes
}

//NumEdges returns the number of directed edges in the graph.
func (g *Graph) NumEdges() int {
	return len(g.src)
}

//Src returns the source node of the eth edge.
func (g *Graph) Src(e int) int {
	return g.src[e]
}

//Dst returns the destination node of the eth edge.
func (g *Graph) Dst(e int) int {
	return g.dst[e]
}

//Endpoints returns the source and destination nodes of the eth edge.
func (g *Graph) Endpoints(e int) (int, int) {
	return g.src[e], g.dst[e]
}

//SetNData attaches v as the node attribute name. The number of rows of v
//must match the number of nodes.
func (g *Graph) SetNData(name string, v *mat.Dense) error {
	r, _ := v.Dims()
	if r != g.nnodes {
		return newError("Graph.SetNData", "%s: attribute %q spans %d rows for %d nodes", InconsistentGraph, name, r, g.nnodes)
	}
	g.NData[name] = v
	return nil
}

//SetEData attaches v as the edge attribute name. The number of rows of v
//must match the number of edges.
func (g *Graph) SetEData(name string, v *mat.Dense) error {
	r, _ := v.Dims()
	if r != len(g.src) {
		return newError("Graph.SetEData", "%s: attribute %q spans %d rows for %d edges", InconsistentGraph, name, r, len(g.src))
	}
	g.EData[name] = v
	return nil
}

//OutEdges returns the indexes of the edges leaving node n, in edge order.
//The returned slice is owned by the graph and must not be modified.
func (g *Graph) OutEdges(n int) []int {
	g.buildAdjacency()
	return g.outs[n]
}

//InEdges returns the indexes of the edges arriving at node n, in edge order.
//The returned slice is owned by the graph and must not be modified.
func (g *Graph) InEdges(n int) []int {
	g.buildAdjacency()
	return g.ins[n]
}

func (g *Graph) buildAdjacency() {
	if g.outs != nil {
		return
	}
	g.outs = make([][]int, g.nnodes)
	g.ins = make([][]int, g.nnodes)
	for e := range g.src {
		g.outs[g.src[e]] = append(g.outs[g.src[e]], e)
		g.ins[g.dst[e]] = append(g.ins[g.dst[e]], e)
	}
}

//ApplyEdges calls f once per edge, in edge order, with the edge index and its
//endpoints. It is the traversal primitive used by the edge-level feature
//functions, which read endpoint attributes and write new edge attributes.
func (g *Graph) ApplyEdges(f func(e, src, dst int)) {
	for e := range g.src {
		f(e, g.src[e], g.dst[e])
	}
}

//Errors

//Message constants for the error conditions of this package. A required
//attribute missing from a graph, and a parameter that makes no sense
//(non-positive cutoff, unknown attribute name) are the two fatal families;
//near-boundary cosines are clamped silently and are never errors.
const (
	MissingAttribute  = "Required attribute not present in the graph"
	InvalidParameter  = "Invalid parameter"
	InconsistentGraph = "Inconsistent graph topology"
)

//Error is the same as graphpot.Error, redeclared here to avoid a circular import.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newError(caller, format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...), deco: []string{caller}}
}
