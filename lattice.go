/*
 * lattice.go, part of goxyz.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package xyz

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Lattice holds the 3 basis vectors of a frame's periodic cell, one vector
// per row. The library does not validate the cell physically; it only
// guarantees the 3x3 shape.
type Lattice [3][3]float64

// ParseLattice decodes a "Lattice" value: exactly 9 whitespace-separated
// reals, grouped consecutively into 3 vectors of 3. Any other count of
// values is an error.
func ParseLattice(s string) (Lattice, error) {
	var lat Lattice
	fields := strings.Fields(s)
	if len(fields) != 9 {
		return lat, Errorf("lattice %q: expected 9 values, got %d", s, len(fields))
	}
	for i, v := range fields {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return lat, Errorf("lattice %q: can't parse value %q", s, v)
		}
		lat[i/3][i%3] = f
	}
	return lat, nil
}

// Vec returns the ith basis vector. It panics if i is out of range.
func (L Lattice) Vec(i int) [3]float64 {
	return L[i]
}

// Dense returns the lattice as a newly allocated 3x3 gonum matrix, one
// basis vector per row.
func (L Lattice) Dense() *mat.Dense {
	data := make([]float64, 9)
	for i := 0; i < 3; i++ {
		copy(data[i*3:], L[i][:])
	}
	return mat.NewDense(3, 3, data)
}

// Volume returns the volume of the cell, i.e. the absolute value of the
// determinant of the basis.
func (L Lattice) Volume() float64 {
	return math.Abs(mat.Det(L.Dense()))
}
