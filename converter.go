/*
 * converter.go, part of graphpot.
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

package pot

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rmera/graphpot/graph"
	v3 "github.com/rmera/graphpot/v3"
)

//GraphConverter turns structures into the bonded graphs the potentials
//operate on: one node per atom, one directed edge per ordered neighbor pair
//within the cutoff radius. A converter is built once per dataset, with the
//element list that fixes the node_type indexes, and then applied to every
//structure. It keeps no per-structure state, so one converter can serve
//many goroutines, each converting its own structures.
type GraphConverter struct {
	elementTypes []string
	typeIndex    map[string]int
	cutoff       float64
}

//NewGraphConverter returns a converter emitting node types indexed into
//elementTypes (see GetElementList) and bonds up to the given cutoff radius.
func NewGraphConverter(elementTypes []string, cutoff float64) (*GraphConverter, error) {
	if cutoff <= 0 {
		return nil, newError("NewGraphConverter", "cutoff %f must be positive", cutoff)
	}
	if len(elementTypes) == 0 {
		return nil, newError("NewGraphConverter", "empty element list")
	}
	ti := make(map[string]int, len(elementTypes))
	for i, el := range elementTypes {
		ti[el] = i
	}
	return &GraphConverter{elementTypes: elementTypes, typeIndex: ti, cutoff: cutoff}, nil
}

//Cutoff returns the bond cutoff radius of the converter.
func (C *GraphConverter) Cutoff() float64 {
	return C.cutoff
}

//ElementTypes returns the element list the converter indexes node types
//against. The returned slice is owned by the converter.
func (C *GraphConverter) ElementTypes() []string {
	return C.elementTypes
}

//Graph runs the neighbor-list search on S and assembles the bonded graph:
//node attributes pos (cartesian) and node_type, edge attribute pbc_offset
//(periodic structures only), and the lattice. Bond vectors and distances are
//not attached here; run graph.ComputePairVectorAndDistance on the result and
//attach what you need.
func (C *GraphConverter) Graph(S *Structure) (*graph.Graph, error) {
	ntype := make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		idx, ok := C.typeIndex[S.Species(i)]
		if !ok {
			return nil, newError("GraphConverter.Graph", "element %q (atom %d) not in the converter's element list", S.Species(i), i)
		}
		ntype[i] = float64(idx)
	}
	src, dst, images, _, err := S.NeighborList(C.cutoff)
	if err != nil {
		return nil, errDecorate(err, "GraphConverter.Graph")
	}
	g, err := graph.New(S.Len(), src, dst)
	if err != nil {
		return nil, errDecorate(err, "GraphConverter.Graph")
	}
	pos := v3.Zeros(S.Len())
	pos.Copy(S.Coords())
	if err := g.SetNData(graph.Pos, v3.Matrix2Dense(pos)); err != nil {
		return nil, errDecorate(err, "GraphConverter.Graph")
	}
	if err := g.SetNData(graph.NodeType, mat.NewDense(S.Len(), 1, ntype)); err != nil {
		return nil, errDecorate(err, "GraphConverter.Graph")
	}
	if images != nil {
		if err := g.SetEData(graph.PBCOffset, images); err != nil {
			return nil, errDecorate(err, "GraphConverter.Graph")
		}
	}
	if S.Periodic() {
		g.Lattice = mat.DenseCopyOf(S.Lattice())
	}
	return g, nil
}
