/*
 * neighbors.go, part of graphpot.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//everything this close to zero, or closer, is considered zero when comparing
//distances against a cutoff, so atoms sitting exactly on the cutoff sphere
//are kept regardless of rounding.
const distTol = 1e-8

//NeighborList returns every ordered atom pair (i,j) of the structure closer
//than cutoff, as parallel src/dst index slices, together with the periodic
//image offset of each pair (nil for molecular structures) and their
//distances. Pairs are emitted grouped by source atom, in atom order, so the
//edge list of a graph built from them is sorted by source. Both directions
//of every physical contact are emitted; an atom is never its own neighbor
//within the same image.
//
//This is a direct O(N^2 * images) search. It is meant for the unit cells and
//molecules this library trains on, not for macromolecular systems.
func (S *Structure) NeighborList(cutoff float64) (src, dst []int, images *mat.Dense, dists []float64, err error) {
	if cutoff <= 0 {
		return nil, nil, nil, nil, newError("Structure.NeighborList", "cutoff %f must be positive", cutoff)
	}
	if !S.Periodic() {
		src, dst, dists = S.molecularNeighbors(cutoff)
		return src, dst, nil, dists, nil
	}
	return S.periodicNeighbors(cutoff)
}

func (S *Structure) molecularNeighbors(cutoff float64) (src, dst []int, dists []float64) {
	n := S.Len()
	for i := 0; i < n; i++ {
		pi := S.coords.RawRowView(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			pj := S.coords.RawRowView(j)
			d := dist3(pi, pj, nil)
			if d <= cutoff+distTol {
				src = append(src, i)
				dst = append(dst, j)
				dists = append(dists, d)
			}
		}
	}
	return src, dst, dists
}

func (S *Structure) periodicNeighbors(cutoff float64) (src, dst []int, images *mat.Dense, dists []float64, err error) {
	var inv mat.Dense
	if err := inv.Inverse(S.lattice); err != nil {
		return nil, nil, nil, nil, newError("Structure.NeighborList", "singular lattice: %v", err)
	}
	//how many periodic images to scan per axis: the distance between lattice
	//planes along axis k is 1/|column k of inverse(lattice)|, plus one image
	//of margin for atoms sitting anywhere in the cell.
	var nimg [3]int
	for k := 0; k < 3; k++ {
		w := 1 / math.Hypot(math.Hypot(inv.At(0, k), inv.At(1, k)), inv.At(2, k))
		nimg[k] = int(math.Ceil(cutoff/w)) + 1
	}
	n := S.Len()
	var imgData []float64
	shift := make([]float64, 3)
	for i := 0; i < n; i++ {
		pi := S.coords.RawRowView(i)
		for j := 0; j < n; j++ {
			pj := S.coords.RawRowView(j)
			for mx := -nimg[0]; mx <= nimg[0]; mx++ {
				for my := -nimg[1]; my <= nimg[1]; my++ {
					for mz := -nimg[2]; mz <= nimg[2]; mz++ {
						if i == j && mx == 0 && my == 0 && mz == 0 {
							continue
						}
						for k := 0; k < 3; k++ {
							shift[k] = float64(mx)*S.lattice.At(0, k) + float64(my)*S.lattice.At(1, k) + float64(mz)*S.lattice.At(2, k)
						}
						d := dist3(pi, pj, shift)
						if d <= cutoff+distTol {
							src = append(src, i)
							dst = append(dst, j)
							dists = append(dists, d)
							imgData = append(imgData, float64(mx), float64(my), float64(mz))
						}
					}
				}
			}
		}
	}
	if len(src) > 0 {
		images = mat.NewDense(len(src), 3, imgData)
	}
	return src, dst, images, dists, nil
}

//dist3 returns |b + shift - a| for 3D points. A nil shift means no shift.
func dist3(a, b, shift []float64) float64 {
	var d float64
	for k := 0; k < 3; k++ {
		v := b[k] - a[k]
		if shift != nil {
			v += shift[k]
		}
		d += v * v
	}
	return math.Sqrt(d)
}
