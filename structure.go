/*
 * structure.go, part of graphpot.
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
	"sort"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/graphpot/v3"
)

//Structure is an immutable crystal or molecule: element symbols, cartesian
//coordinates and, for crystals, the 3 lattice vectors (as the rows of a 3x3
//matrix). A nil lattice means an aperiodic, molecular system.
type Structure struct {
	species []string
	coords  *v3.Matrix
	lattice *mat.Dense
}

//NewMolecule returns an aperiodic Structure from element symbols and
//cartesian coordinates, one row per atom.
func NewMolecule(species []string, coords *v3.Matrix) (*Structure, error) {
	if coords == nil || len(species) != coords.NVecs() {
		return nil, newError("NewMolecule", "%d symbols for %d coordinates", len(species), nvecsOrZero(coords))
	}
	if len(species) == 0 {
		return nil, newError("NewMolecule", "a structure needs at least one atom")
	}
	return &Structure{species: species, coords: coords}, nil
}

//NewCrystal returns a periodic Structure from element symbols, fractional
//coordinates (one row per atom) and a 3x3 lattice whose rows are the lattice
//vectors. Coordinates are stored in cartesian form, frac*lattice.
func NewCrystal(species []string, frac *v3.Matrix, lattice *mat.Dense) (*Structure, error) {
	if frac == nil || len(species) != frac.NVecs() {
		return nil, newError("NewCrystal", "%d symbols for %d coordinates", len(species), nvecsOrZero(frac))
	}
	if len(species) == 0 {
		return nil, newError("NewCrystal", "a structure needs at least one atom")
	}
	if lattice == nil {
		return nil, newError("NewCrystal", "nil lattice. Use NewMolecule for aperiodic systems")
	}
	if r, c := lattice.Dims(); r != 3 || c != 3 {
		return nil, newError("NewCrystal", "lattice must be 3x3, got %dx%d", r, c)
	}
	cart := v3.Zeros(frac.NVecs())
	cart.Mul(frac, lattice)
	return &Structure{species: species, coords: cart, lattice: mat.DenseCopyOf(lattice)}, nil
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.species)
}

//Species returns the element symbol of the ith atom.
func (S *Structure) Species(i int) string {
	return S.species[i]
}

//Coords returns the cartesian coordinates of the structure, one row per
//atom. The matrix is owned by the structure and must not be modified.
func (S *Structure) Coords() *v3.Matrix {
	return S.coords
}

//Lattice returns the lattice vectors as the rows of a 3x3 matrix, or nil for
//a molecular structure.
func (S *Structure) Lattice() *mat.Dense {
	return S.lattice
}

//Periodic returns true if the structure carries a lattice.
func (S *Structure) Periodic() bool {
	return S.lattice != nil
}

//FracCoords returns the fractional coordinates of the structure,
//cart*inverse(lattice). It fails on molecular structures and on singular
//(physically meaningless) lattices.
func (S *Structure) FracCoords() (*v3.Matrix, error) {
	if !S.Periodic() {
		return nil, newError("Structure.FracCoords", "aperiodic structure has no fractional coordinates")
	}
	var inv mat.Dense
	if err := inv.Inverse(S.lattice); err != nil {
		return nil, newError("Structure.FracCoords", "singular lattice: %v", err)
	}
	frac := v3.Zeros(S.Len())
	frac.Mul(S.coords, &inv)
	return frac, nil
}

//AtomicNumbers returns the atomic number of every atom, in order. It fails
//on the first symbol the library doesn't know.
func (S *Structure) AtomicNumbers() ([]int, error) {
	zs := make([]int, S.Len())
	for i, sym := range S.species {
		z, ok := AtomicNumber(sym)
		if !ok {
			return nil, newError("Structure.AtomicNumbers", "unknown element symbol %q (atom %d)", sym, i)
		}
		zs[i] = z
	}
	return zs, nil
}

//Masses returns a slice with the masses of all atoms, in order. It fails on
//the first symbol the library doesn't know.
func (S *Structure) Masses() ([]float64, error) {
	ms := make([]float64, S.Len())
	for i, sym := range S.species {
		m, ok := Mass(sym)
		if !ok {
			return nil, newError("Structure.Masses", "unknown element symbol %q (atom %d)", sym, i)
		}
		ms[i] = m
	}
	return ms, nil
}

//GetElementList returns the sorted set of element symbols present in the
//given structures. The order is what fixes the node_type indexes a
//GraphConverter built from it will emit, so keep it stable across a dataset.
func GetElementList(structures []*Structure) []string {
	seen := make(map[string]bool)
	var els []string
	for _, s := range structures {
		for _, sym := range s.species {
			if !seen[sym] {
				seen[sym] = true
				els = append(els, sym)
			}
		}
	}
	sort.Strings(els)
	return els
}

func nvecsOrZero(m *v3.Matrix) int {
	if m == nil {
		return 0
	}
	return m.NVecs()
}
