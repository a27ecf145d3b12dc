/*
 * v3_test.go, part of graphpot.
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

package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.NVecs())
	}
	//a slice whose length is not a multiple of 3 must be rejected
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected an error for a slice of length 4")
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Views should share data with the viewed matrix")
	}
	fmt.Println("View\n", A, "\n", View)
}

func TestVecOps(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 || z.At(0, 0) != 0 || z.At(0, 1) != 0 {
		Te.Errorf("Wrong cross product: %v", z)
	}
	if d := x.Dot(y); d != 0 {
		Te.Errorf("Expected orthogonal vectors, dot: %f", d)
	}
	v, _ := NewMatrix([]float64{3, 4, 0})
	if n := v.Norm(2); math.Abs(n-5) > 1e-12 {
		Te.Errorf("Wrong norm: %f", n)
	}
	u := Zeros(1)
	u.Unit(v)
	if math.Abs(u.Norm(2)-1) > 1e-12 {
		Te.Errorf("Unit vector does not have norm 1: %f", u.Norm(2))
	}
}

func TestSwapVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	A.SwapVecs(0, 1)
	if A.At(0, 0) != 4 || A.At(1, 2) != 3 {
		Te.Errorf("SwapVecs failed: %v", A)
	}
}
