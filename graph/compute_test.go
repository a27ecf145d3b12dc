/*
 * compute_test.go, part of graphpot.
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

package graph_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	pot "github.com/rmera/graphpot"
	"github.com/rmera/graphpot/graph"
	v3 "github.com/rmera/graphpot/v3"
)

//BCC Mo conventional cell, a=3.168 A, converted at a 5 A bond cutoff.
func graphMo(t *testing.T) *graph.Graph {
	t.Helper()
	lat := mat.NewDense(3, 3, []float64{
		3.168, 0, 0,
		0, 3.168, 0,
		0, 0, 3.168,
	})
	frac, err := v3.NewMatrix([]float64{
		0, 0, 0,
		0.5, 0.5, 0.5,
	})
	require.NoError(t, err)
	s, err := pot.NewCrystal([]string{"Mo", "Mo"}, frac, lat)
	require.NoError(t, err)
	conv, err := pot.NewGraphConverter(pot.GetElementList([]*pot.Structure{s}), 5.0)
	require.NoError(t, err)
	g, err := conv.Graph(s)
	require.NoError(t, err)
	return g
}

//Methane, with the C-H bonds at 1.089 A, converted at a 2 A bond cutoff so
//the H-H contacts (1.77833 A) become bonds too.
func graphCH4(t *testing.T) *graph.Graph {
	t.Helper()
	coords, err := v3.NewMatrix([]float64{
		0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 1.089000,
		1.026719, 0.000000, -0.363000,
		-0.513360, -0.889165, -0.363000,
		-0.513360, 0.889165, -0.363000,
	})
	require.NoError(t, err)
	s, err := pot.NewMolecule([]string{"C", "H", "H", "H", "H"}, coords)
	require.NoError(t, err)
	conv, err := pot.NewGraphConverter(pot.GetElementList([]*pot.Structure{s}), 2.0)
	require.NoError(t, err)
	g, err := conv.Graph(s)
	require.NoError(t, err)
	return g
}

//attachBondData computes and attaches bond_vec and bond_dist.
func attachBondData(t *testing.T, g *graph.Graph) {
	t.Helper()
	bv, bd, err := graph.ComputePairVectorAndDistance(g)
	require.NoError(t, err)
	require.NoError(t, g.SetEData(graph.BondVec, v3.Matrix2Dense(bv)))
	require.NoError(t, g.SetEData(graph.BondDist, mat.NewDense(g.NumEdges(), 1, bd)))
}

//cosLoop is the brute-force reference: for every atom, every ordered pair of
//distinct outgoing bonds within the cutoff, the cosine of the angle between
//their bond vectors.
func cosLoop(g *graph.Graph, cutoff float64) []float64 {
	bv := g.EData[graph.BondVec]
	bd := g.EData[graph.BondDist]
	var cos []float64
	for n := 0; n < g.NumNodes(); n++ {
		out := g.OutEdges(n)
		for _, i := range out {
			for _, j := range out {
				if i == j || bd.At(i, 0) > cutoff || bd.At(j, 0) > cutoff {
					continue
				}
				a := bv.RawRowView(i)
				b := bv.RawRowView(j)
				na := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
				nb := math.Sqrt(b[0]*b[0] + b[1]*b[1] + b[2]*b[2])
				cos = append(cos, (a[0]*b[0]+a[1]*b[1]+a[2]*b[2])/(na*nb))
			}
		}
	}
	return cos
}

func column(d *mat.Dense) []float64 {
	r, _ := d.Dims()
	out := make([]float64, r)
	for i := range out {
		out[i] = d.At(i, 0)
	}
	return out
}

func assertSortedAlmostEqual(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), len(got), "value counts differ")
	w := append([]float64(nil), want...)
	g := append([]float64(nil), got...)
	sort.Float64s(w)
	sort.Float64s(g)
	for i := range w {
		assert.InDelta(t, w[i], g[i], tol, "element %d after sorting", i)
	}
}

func TestComputePairVectorMo(t *testing.T) {
	g := graphMo(t)
	bv, bd, err := graph.ComputePairVectorAndDistance(g)
	require.NoError(t, err)
	//in a BCC cell at 5 A each atom sees 8+6+12 neighbors
	require.Equal(t, 52, g.NumEdges())
	//bond_dist must be the norm of bond_vec, edge by edge
	for e := 0; e < g.NumEdges(); e++ {
		assert.InDelta(t, bv.VecView(e).Norm(2), bd[e], 1e-12)
	}
	a := 3.168
	var want []float64
	for i := 0; i < 16; i++ {
		want = append(want, a*math.Sqrt(3)/2)
	}
	for i := 0; i < 12; i++ {
		want = append(want, a)
	}
	for i := 0; i < 24; i++ {
		want = append(want, a*math.Sqrt(2))
	}
	assertSortedAlmostEqual(t, want, bd, 1e-8)
}

func TestComputePairVectorCH4(t *testing.T) {
	g := graphCH4(t)
	bv, bd, err := graph.ComputePairVectorAndDistance(g)
	require.NoError(t, err)
	require.Equal(t, 20, g.NumEdges())
	for e := 0; e < g.NumEdges(); e++ {
		assert.InDelta(t, bv.VecView(e).Norm(2), bd[e], 1e-12)
	}
	var want []float64
	for i := 0; i < 8; i++ {
		want = append(want, 1.089)
	}
	for i := 0; i < 12; i++ {
		want = append(want, 1.77833)
	}
	assertSortedAlmostEqual(t, want, bd, 1e-4)
}

//A bonded graph with no edges is valid (any cutoff below the nearest
//contact produces one) and must yield empty results, not a panic.
func TestComputePairVectorNoEdges(t *testing.T) {
	g, err := graph.New(2, nil, nil)
	require.NoError(t, err)
	require.NoError(t, g.SetNData(graph.Pos, mat.NewDense(2, 3, []float64{
		0, 0, 0,
		0, 0, 3,
	})))
	bv, bd, err := graph.ComputePairVectorAndDistance(g)
	require.NoError(t, err)
	require.Nil(t, bv)
	require.Empty(t, bd)
}

func TestComputePairVectorMissingPos(t *testing.T) {
	g, err := graph.New(2, []int{0}, []int{1})
	require.NoError(t, err)
	_, _, err = graph.ComputePairVectorAndDistance(g)
	require.Error(t, err)
}

func TestComputeAngle(t *testing.T) {
	cases := []struct {
		name   string
		build  func(*testing.T) *graph.Graph
		cutoff float64
	}{
		{"Mo", graphMo, 4.0},
		{"CH4", graphCH4, 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.build(t)
			attachBondData(t, g)
			want := cosLoop(g, tc.cutoff)

			lg, err := graph.CreateLineGraph(g, tc.cutoff)
			require.NoError(t, err)
			require.False(t, lg.RequiresPiShift)
			require.NoError(t, graph.ComputeThetaAndPhi(lg.Graph))
			assertSortedAlmostEqual(t, want, column(lg.EData[graph.CosTheta]), 1e-7)
			//phi is a reserved placeholder, always zero
			for _, phi := range column(lg.EData[graph.Phi]) {
				require.Zero(t, phi)
			}
			_, hasTheta := lg.EData[graph.Theta]
			require.False(t, hasTheta, "ComputeThetaAndPhi must not set theta")

			//theta must be the (clamped) arccos of the brute-force cosines
			require.NoError(t, graph.ComputeTheta(lg.Graph, false, false))
			wantTheta := make([]float64, len(want))
			for i, c := range want {
				wantTheta[i] = math.Acos(c * (1 - graph.CosineClampEps))
			}
			assertSortedAlmostEqual(t, wantTheta, column(lg.EData[graph.Theta]), 1e-6)

			//cosine-only mode writes cos_theta and nothing else new
			delete(lg.EData, graph.CosTheta)
			require.NoError(t, graph.ComputeTheta(lg.Graph, false, true))
			assertSortedAlmostEqual(t, want, column(lg.EData[graph.CosTheta]), 1e-7)
		})
	}
}

func TestLineGraphNodeData(t *testing.T) {
	g := graphCH4(t)
	attachBondData(t, g)
	lg, err := graph.CreateLineGraph(g, 2.0)
	require.NoError(t, err)
	//every bond of CH4 is within the cutoff, so the line graph has one node
	//per bonded edge and EdgeIDs is the identity
	require.Equal(t, g.NumEdges(), lg.NumNodes())
	require.Len(t, lg.EdgeIDs, lg.NumNodes())
	for i, id := range lg.EdgeIDs {
		require.Equal(t, i, id)
	}
	//C has 4 bonds and each H has 4 (1 C + 3 H): 5 atoms x 4x3 ordered pairs
	require.Equal(t, 60, lg.NumEdges())
	r, c := lg.NData[graph.BondVec].Dims()
	require.Equal(t, lg.NumNodes(), r)
	require.Equal(t, 3, c)
}

func TestDirectedLineGraph(t *testing.T) {
	cases := []struct {
		name   string
		build  func(*testing.T) *graph.Graph
		cutoff float64
	}{
		{"Mo", graphMo, 4.0},
		{"CH4", graphCH4, 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.build(t)
			attachBondData(t, g)
			wantTheta := make([]float64, 0)
			for _, c := range cosLoop(g, tc.cutoff) {
				wantTheta = append(wantTheta, math.Acos(c*(1-graph.CosineClampEps)))
			}
			lg, err := graph.CreateDirectedLineGraph(g, tc.cutoff)
			require.NoError(t, err)
			require.True(t, lg.RequiresPiShift)
			require.NoError(t, graph.ComputeTheta(lg.Graph, true, false))
			//bond vectors run head-to-tail here, so the physical angle is the
			//supplement of the computed one
			shifted := make([]float64, 0, lg.NumEdges())
			for _, th := range column(lg.EData[graph.Theta]) {
				shifted = append(shifted, math.Pi-th)
			}
			assertSortedAlmostEqual(t, wantTheta, shifted, 1e-6)
		})
	}
}

//When the three-body cutoff prunes away every bond, the empty line graph is
//legitimate and the angle functions must no-op on it instead of complaining
//about the (vacuously) missing bond attributes.
func TestAnglesEmptyLineGraph(t *testing.T) {
	coords, err := v3.NewMatrix([]float64{
		0, 0, 0,
		0, 0, 3,
	})
	require.NoError(t, err)
	s, err := pot.NewMolecule([]string{"H", "H"}, coords)
	require.NoError(t, err)
	conv, err := pot.NewGraphConverter([]string{"H"}, 4.0)
	require.NoError(t, err)
	g, err := conv.Graph(s)
	require.NoError(t, err)
	attachBondData(t, g)

	lg, err := graph.CreateLineGraph(g, 1.0)
	require.NoError(t, err)
	require.Zero(t, lg.NumEdges())
	require.NoError(t, graph.ComputeThetaAndPhi(lg.Graph))
	require.NoError(t, graph.ComputeTheta(lg.Graph, false, false))
	require.Empty(t, lg.EData, "nothing to write on an empty line graph")

	dlg, err := graph.CreateDirectedLineGraph(g, 1.0)
	require.NoError(t, err)
	require.Zero(t, dlg.NumEdges())
	require.NoError(t, graph.ComputeTheta(dlg.Graph, true, false))
	require.Empty(t, dlg.EData)
}

func TestLineGraphBadInput(t *testing.T) {
	g := graphCH4(t)
	//no bond_dist yet
	_, err := graph.CreateLineGraph(g, 2.0)
	require.Error(t, err)
	_, err = graph.CreateDirectedLineGraph(g, 2.0)
	require.Error(t, err)
	attachBondData(t, g)
	//non-positive cutoffs
	_, err = graph.CreateLineGraph(g, 0)
	require.Error(t, err)
	_, err = graph.CreateDirectedLineGraph(g, -1.0)
	require.Error(t, err)
}
