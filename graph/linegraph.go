/*
 * linegraph.go, part of graphpot.
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

package graph

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//LineGraph is a graph whose nodes are the bonded edges of an atomic graph
//and whose edges are bond pairs sharing an atom. The node attribute tables
//carry the bond_vec/bond_dist of the underlying bonds, and EdgeIDs maps every
//line-graph node back to the edge of the source graph it came from.
type LineGraph struct {
	*Graph
	//RequiresPiShift marks line graphs built over directed bond pairs, where
	//the angle between the stored bond vectors is the supplement of the
	//physical bond angle: theta_physical = pi - theta. Consumers must apply
	//the shift themselves; the angle functions never do.
	RequiresPiShift bool
}

//CreateLineGraph builds the line graph of g for three-body terms: bonds
//longer than threebodyCutoff are discarded, and for every atom each ordered
//pair of distinct remaining outgoing bonds becomes one line-graph edge.
//Pair enumeration is grouped per shared atom and preserves the order in
//which the bonds are listed on that atom. Angles computed on this line graph
//are the physical bond angles (no pi-shift).
//
//g must already carry the bond_dist edge attribute (and bond_vec, for the
//angle functions to work on the result); the cutoff must be positive.
func CreateLineGraph(g *Graph, threebodyCutoff float64) (*LineGraph, error) {
	pg, err := pruneToCutoff(g, threebodyCutoff, "CreateLineGraph")
	if err != nil {
		return nil, err
	}
	var lsrc, ldst []int
	for n := 0; n < pg.NumNodes(); n++ {
		out := pg.OutEdges(n)
		for _, a := range out {
			for _, b := range out {
				if a == b {
					continue
				}
				lsrc = append(lsrc, a)
				ldst = append(ldst, b)
			}
		}
	}
	lg, err := newLineGraph(pg, lsrc, ldst, "CreateLineGraph")
	if err != nil {
		return nil, err
	}
	return &LineGraph{Graph: lg, RequiresPiShift: false}, nil
}

//CreateDirectedLineGraph builds the directed line graph of g: one line-graph
//edge per ordered pair of bonds (i->j, j->k) within threebodyCutoff, where
//the second bond leaves the atom the first one arrives at. Going straight
//back through the same physical bond (k == i with the opposite periodic
//image) is never paired, so each physical bond contributes exactly one
//orientation to any given angle. Since the two bond vectors of a pair run
//head-to-tail through the shared atom instead of both leaving it, the angle
//between them is the supplement of the physical one: the returned line graph
//has RequiresPiShift set and its consumers must take theta_physical =
//pi - theta.
func CreateDirectedLineGraph(g *Graph, threebodyCutoff float64) (*LineGraph, error) {
	pg, err := pruneToCutoff(g, threebodyCutoff, "CreateDirectedLineGraph")
	if err != nil {
		return nil, err
	}
	off := pg.EData[PBCOffset] //nil for molecular systems
	var lsrc, ldst []int
	for a := 0; a < pg.NumEdges(); a++ {
		u, v := pg.Endpoints(a)
		for _, b := range pg.OutEdges(v) {
			if pg.Dst(b) == u && oppositeImages(off, a, b) {
				continue //backtracking through the same physical bond
			}
			lsrc = append(lsrc, a)
			ldst = append(ldst, b)
		}
	}
	lg, err := newLineGraph(pg, lsrc, ldst, "CreateDirectedLineGraph")
	if err != nil {
		return nil, err
	}
	return &LineGraph{Graph: lg, RequiresPiShift: true}, nil
}

//pruneToCutoff validates the shared preconditions of the line-graph builders
//and drops the bonds beyond the angular cutoff, keeping the edge data so
//bond_vec/bond_dist survive onto the line-graph nodes.
func pruneToCutoff(g *Graph, cutoff float64, caller string) (*Graph, error) {
	if cutoff <= 0 {
		return nil, newError(caller, "%s: three-body cutoff %f must be positive", InvalidParameter, cutoff)
	}
	if _, ok := g.EData[BondDist]; !ok {
		return nil, newError(caller, "%s: edge attribute %q", MissingAttribute, BondDist)
	}
	pg, err := PruneEdgesByFeatures(g, BondDist, func(x float64) bool { return x > cutoff }, false, true)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	return pg, nil
}

//newLineGraph assembles the line graph proper: one node per bond of the
//pruned graph, the bond edge data as node data, and the mapping back to the
//source graph's edge indexes.
func newLineGraph(pg *Graph, lsrc, ldst []int, caller string) (*Graph, error) {
	lg, err := New(pg.NumEdges(), lsrc, ldst)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	for name, d := range pg.EData {
		lg.NData[name] = d
	}
	lg.Lattice = pg.Lattice
	lg.EdgeIDs = pg.EdgeIDs
	return lg, nil
}

//oppositeImages reports whether bonds a and b carry opposite periodic image
//offsets. With no offsets at all (a molecular graph) "opposite" is trivially
//true, so pure index-based backtracking is caught in that case too.
func oppositeImages(off *mat.Dense, a, b int) bool {
	if off == nil {
		return true
	}
	const tol = 1e-8
	for k := 0; k < 3; k++ {
		if math.Abs(off.At(a, k)+off.At(b, k)) > tol {
			return false
		}
	}
	return true
}
