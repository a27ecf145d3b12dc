/*
 * compute.go, part of graphpot.
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

	v3 "github.com/rmera/graphpot/v3"
)

//CosineClampEps pulls cosines slightly towards zero before arccos, so
//values that land fractionally outside [-1,1] from floating-point error
//never produce a NaN. The clamp is a recoverable numeric guard, not an
//error condition.
const CosineClampEps = 1e-7

//ComputePairVectorAndDistance computes, for every edge (i->j) of the bonded
//graph, the bond vector pos[j] + offset*lattice - pos[i] and its euclidean
//norm, in edge order. The pbc_offset edge attribute is optional (no offsets
//means a molecular, aperiodic system) and is ignored when the graph carries
//no lattice. A graph with no edges (a valid outcome of a converter cutoff
//below the nearest contact) yields nil results and no error. The input graph
//is not modified; the caller decides whether to attach the results with
//SetEData.
func ComputePairVectorAndDistance(g *Graph) (*v3.Matrix, []float64, error) {
	pos, ok := g.NData[Pos]
	if !ok {
		return nil, nil, newError("ComputePairVectorAndDistance", "%s: node attribute %q", MissingAttribute, Pos)
	}
	if r, _ := pos.Dims(); r != g.NumNodes() {
		return nil, nil, newError("ComputePairVectorAndDistance", "%s: %d positions for %d nodes", InconsistentGraph, r, g.NumNodes())
	}
	ne := g.NumEdges()
	if ne == 0 {
		return nil, nil, nil
	}
	bondVec := v3.Zeros(ne)
	bondDist := make([]float64, ne)
	//offsets are fractional lattice translations; take them to cartesian once
	var offCart *mat.Dense
	if off, ok := g.EData[PBCOffset]; ok && g.Lattice != nil {
		offCart = mat.NewDense(ne, 3, nil)
		offCart.Mul(off, g.Lattice)
	}
	for e := 0; e < ne; e++ {
		i, j := g.src[e], g.dst[e]
		pi := pos.RawRowView(i)
		pj := pos.RawRowView(j)
		row := bondVec.RawRowView(e)
		for k := 0; k < 3; k++ {
			row[k] = pj[k] - pi[k]
		}
		if offCart != nil {
			o := offCart.RawRowView(e)
			for k := 0; k < 3; k++ {
				row[k] += o[k]
			}
		}
		bondDist[e] = math.Sqrt(row[0]*row[0] + row[1]*row[1] + row[2]*row[2])
	}
	return bondVec, bondDist, nil
}

//ComputeThetaAndPhi computes, for every edge of the line graph lg, the cosine
//of the angle between the bond vectors of its two endpoint bonds, clipped to
//[-1,1]. The results are written in place as the cos_theta edge attribute;
//phi is written as a zero placeholder (reserved for a future dihedral term)
//and theta is left unset. The bond length of the destination bond is also
//attached, as triple_bond_lengths. On a line graph with no edges (no bond
//pair within the three-body cutoff) it writes nothing and returns no error.
func ComputeThetaAndPhi(lg *Graph) error {
	ne := lg.NumEdges()
	if ne == 0 {
		return nil
	}
	cos, tbl, err := cosBetweenBonds(lg, "ComputeThetaAndPhi")
	if err != nil {
		return err
	}
	lg.EData[CosTheta] = mat.NewDense(ne, 1, cos)
	lg.EData[Phi] = mat.NewDense(ne, 1, nil)
	lg.EData[TripleBondLengths] = mat.NewDense(ne, 1, tbl)
	return nil
}

//ComputeTheta computes cos_theta exactly as ComputeThetaAndPhi does and, when
//cosine is false, also theta = arccos(cos_theta*(1-CosineClampEps)), in
//radians. With cosine true only cos_theta is written. Both are in-place edge
//attribute writes on lg.
//
//The directed flag changes no computation: it is bookkeeping stating that the
//caller took lg from CreateDirectedLineGraph and will apply the pi-shift
//(physical theta = pi - theta) downstream. Prefer checking the
//RequiresPiShift field of LineGraph over tracking the flag by hand.
func ComputeTheta(lg *Graph, directed, cosine bool) error {
	ne := lg.NumEdges()
	if ne == 0 {
		return nil
	}
	cos, tbl, err := cosBetweenBonds(lg, "ComputeTheta")
	if err != nil {
		return err
	}
	if !cosine {
		theta := make([]float64, ne)
		for e, c := range cos {
			theta[e] = math.Acos(c * (1 - CosineClampEps))
		}
		lg.EData[Theta] = mat.NewDense(ne, 1, theta)
	}
	lg.EData[CosTheta] = mat.NewDense(ne, 1, cos)
	lg.EData[TripleBondLengths] = mat.NewDense(ne, 1, tbl)
	return nil
}

//cosBetweenBonds returns, per line-graph edge, the clipped cosine between the
//endpoint bond vectors, and the bond length of the destination bond.
func cosBetweenBonds(lg *Graph, caller string) (cos, tbl []float64, err error) {
	vec, ok := lg.NData[BondVec]
	if !ok {
		return nil, nil, newError(caller, "%s: line-graph node attribute %q", MissingAttribute, BondVec)
	}
	dist, ok := lg.NData[BondDist]
	if !ok {
		return nil, nil, newError(caller, "%s: line-graph node attribute %q", MissingAttribute, BondDist)
	}
	cos = make([]float64, lg.NumEdges())
	tbl = make([]float64, lg.NumEdges())
	lg.ApplyEdges(func(e, s, d int) {
		a := vec.RawRowView(s)
		b := vec.RawRowView(d)
		na := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
		nb := math.Sqrt(b[0]*b[0] + b[1]*b[1] + b[2]*b[2])
		c := (a[0]*b[0] + a[1]*b[1] + a[2]*b[2]) / (na * nb)
		//floating point overshoot would NaN the arccos downstream
		if c > 1 {
			c = 1
		} else if c < -1 {
			c = -1
		}
		cos[e] = c
		tbl[e] = dist.At(d, 0)
	})
	return cos, tbl, nil
}
