/*
 * v3.go, part of graphpot.
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

//Package v3 wraps gonum's mat.Dense into a container for sets of 3D
//vectors. Within the package it is understood that a "vector" is a row
//vector, i.e. the cartesian coordinates of a point in 3D space. The names of
//some functions in the library reflect this.
package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//The main container. A Matrix is a set of row vectors in 3D space.
type Matrix struct {
	*mat.Dense
}

func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"v3.NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix in the receiver.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//VecSlice puts the ith vector of the matrix in the given slice, or in a
//newly allocated one if dst is nil. The slice is returned in either case.
func (F *Matrix) VecSlice(i int, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, 3)
	}
	copy(dst, F.RawRowView(i))
	return dst
}

//Dot returns the inner product of the matrices F and B, i.e. the sum of the
//element-wise products. For a pair of single vectors this is the usual dot product.
//It panics if the dimensions don't match.
func (F *Matrix) Dot(B *Matrix) float64 {
	fr, fc := F.Dims()
	br, bc := B.Dims()
	if fr != br || fc != bc {
		panic(ErrShape)
	}
	var ret float64
	for i := 0; i < fr; i++ {
		a := F.RawRowView(i)
		b := B.RawRowView(i)
		ret += a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
	}
	return ret
}

//Norm returns the n-norm of the matrix. For a single vector, Norm(2) is
//the Euclidean norm.
func (F *Matrix) Norm(n float64) float64 {
	return mat.Norm(F.Dense, n)
}

//Cross puts the cross product of the single vectors a and b in the receiver,
//which must also span exactly one vector.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrShape)
	}
	av := a.RawRowView(0)
	bv := b.RawRowView(0)
	F.Set(0, 0, av[1]*bv[2]-av[2]*bv[1])
	F.Set(0, 1, av[2]*bv[0]-av[0]*bv[2])
	F.Set(0, 2, av[0]*bv[1]-av[1]*bv[0])
}

//Unit puts in the receiver the unit vector pointing in the same direction
//as the single vector a. It panics if a has (effectively) zero norm.
func (F *Matrix) Unit(a *Matrix) {
	n := a.Norm(2)
	if math.Abs(n) <= appzero {
		panic("v3.Unit: vector of zero norm")
	}
	F.Scale(1/n, a)
}

//SwapVecs swaps the ith and jth vectors of the matrix, in place.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic("v3.SwapVecs: indexes out of range")
	}
	rowi := F.RawRowView(i)
	rowj := F.RawRowView(j)
	for k := 0; k < 3; k++ {
		rowi[k], rowj[k] = rowj[k], rowi[k]
	}
}

//used to correct floating point errors. Everything equal or less
//than this is considered zero.
const appzero float64 = 0.000000000001

const ErrShape = "v3: Dimension mismatch"

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
