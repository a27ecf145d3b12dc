/*
 * prune.go, part of graphpot.
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

import "gonum.org/v1/gonum/mat"

//PruneEdgesByFeatures builds a new, smaller graph by removing every edge of g
//for which cond returns true on the scalar edge attribute attr. The retained
//edges keep their relative order; the nodes incident to at least one retained
//edge survive, renumbered contiguously in their original relative order
//(nodes left without edges are dropped). The EdgeIDs field of the returned
//graph holds the original indexes of the retained edges.
//
//If keepNdata is true, every node attribute of g is copied through to the
//surviving nodes, by node-index correspondence. If keepEdata is true, every
//edge attribute (the filtering attribute included) is copied through to the
//retained edges. With both flags false the result carries topology and
//EdgeIDs only. The lattice, when present, is always carried over.
//
//It returns an error if attr is not an edge attribute of g.
func PruneEdgesByFeatures(g *Graph, attr string, cond func(float64) bool, keepNdata, keepEdata bool) (*Graph, error) {
	feat, ok := g.EData[attr]
	if !ok {
		return nil, newError("PruneEdgesByFeatures", "%s: edge attribute %q", MissingAttribute, attr)
	}
	keep := make([]int, 0, g.NumEdges())
	for e := 0; e < g.NumEdges(); e++ {
		if !cond(feat.At(e, 0)) {
			keep = append(keep, e)
		}
	}
	//contiguous renumbering of the surviving nodes, original order preserved
	used := make([]bool, g.nnodes)
	for _, e := range keep {
		used[g.src[e]] = true
		used[g.dst[e]] = true
	}
	remap := make([]int, g.nnodes)
	oldIDs := make([]int, 0, g.nnodes)
	for n := 0; n < g.nnodes; n++ {
		remap[n] = -1
		if used[n] {
			remap[n] = len(oldIDs)
			oldIDs = append(oldIDs, n)
		}
	}
	src := make([]int, len(keep))
	dst := make([]int, len(keep))
	for i, e := range keep {
		src[i] = remap[g.src[e]]
		dst[i] = remap[g.dst[e]]
	}
	ng, err := New(len(oldIDs), src, dst)
	if err != nil {
		return nil, errDecorate(err, "PruneEdgesByFeatures")
	}
	ng.EdgeIDs = keep
	if g.Lattice != nil {
		ng.Lattice = mat.DenseCopyOf(g.Lattice)
	}
	if keepNdata && len(oldIDs) > 0 {
		for name, d := range g.NData {
			ng.NData[name] = copyRows(d, oldIDs)
		}
	}
	if keepEdata && len(keep) > 0 {
		for name, d := range g.EData {
			ng.EData[name] = copyRows(d, keep)
		}
	}
	return ng, nil
}

//copyRows returns a new matrix with the given rows of d, in the given order.
//rows must not be empty.
func copyRows(d *mat.Dense, rows []int) *mat.Dense {
	_, c := d.Dims()
	out := mat.NewDense(len(rows), c, nil)
	for i, r := range rows {
		for j := 0; j < c; j++ {
			out.Set(i, j, d.At(r, j))
		}
	}
	return out
}

//errDecorate asserts that err implements the Decorate method and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(interface {
		error
		Decorate(string) []string
	})
	err2.Decorate(caller)
	return err2
}
