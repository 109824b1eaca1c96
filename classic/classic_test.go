/*
 * classic_test.go, part of goxyz.
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

package classic

import (
	"fmt"
	"strings"
	"testing"

	xyz "github.com/rmera/goxyz"
	"github.com/rmera/goxyz/xyzio"
)

func TestClassic(Te *testing.T) {
	fmt.Println("Classic XYZ read test!")
	R, err := New("../test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	defer R.Close()
	frame, err := R.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if frame.Len() != 3 {
		Te.Errorf("frame has %d atoms, want 3", frame.Len())
	}
	if frame.Comment() != "Water molecule" {
		Te.Errorf("comment is %q", frame.Comment())
	}
	if l := frame.Label(0); l.Kind() != xyz.KindString || l.Str() != "O" {
		Te.Errorf("first label is %v", l)
	}
	m, err := frame.Pos()
	if err != nil {
		Te.Fatal(err)
	}
	r, c := m.Dims()
	if r != 3 || c != 3 {
		Te.Errorf("Pos is %dx%d", r, c)
	}
	if m.At(1, 1) != 0.757 {
		Te.Errorf("Pos At(1,1) is %v", m.At(1, 1))
	}
	if len(frame.Extras()) != 0 {
		Te.Errorf("water.xyz has no extra columns, got %v", frame.Extras())
	}
	_, err = R.Next()
	if _, ok := err.(xyz.LastFrameError); !ok {
		Te.Errorf("want a LastFrameError at the end of the input, got %v", err)
	}
	fmt.Println("Over!")
}

func TestIntLabelsAndRaggedExtras(Te *testing.T) {
	R, err := New("../test/numbers.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	defer R.Close()
	frame, err := R.Next()
	if err != nil {
		Te.Fatal(err)
	}
	//labels that parse as integers come out as Int values
	if l := frame.Label(0); l.Kind() != xyz.KindInt || l.Int() != 8 {
		Te.Errorf("first label is %v, want the int 8", l)
	}
	if l := frame.Label(1); l.Kind() != xyz.KindInt || l.Int() != 1 {
		Te.Errorf("second label is %v, want the int 1", l)
	}
	//the extras are ragged: the first column got both rows, the second
	//only the second row
	extras := frame.Extras()
	if len(extras) != 2 {
		Te.Fatalf("got %d extra columns, want 2", len(extras))
	}
	if len(extras[0]) != 2 || extras[0][0] != 1.5 || extras[0][1] != 2.5 {
		Te.Errorf("first extra column is %v", extras[0])
	}
	if len(extras[1]) != 1 || extras[1][0] != 3.5 {
		Te.Errorf("second extra column is %v", extras[1])
	}
}

func TestClassicErrors(Te *testing.T) {
	//a row with fewer than 4 fields
	R := NewReader(xyzio.NewSource(strings.NewReader("1\ncomment\nO 0.0 0.0\n")))
	if _, err := R.Next(); err == nil {
		Te.Error("a 3-field row should not parse")
	}
	if R.Readable() {
		Te.Error("reader should be closed after a malformed frame")
	}
	//a non-numeric extra column
	R = NewReader(xyzio.NewSource(strings.NewReader("1\ncomment\nO 0.0 0.0 0.0 fast\n")))
	if _, err := R.Next(); err == nil {
		Te.Error("a non-numeric extra column should not parse")
	}
	//a non-numeric coordinate
	R = NewReader(xyzio.NewSource(strings.NewReader("1\ncomment\nO 0.0 zero 0.0\n")))
	if _, err := R.Next(); err == nil {
		Te.Error("a non-numeric coordinate should not parse")
	}
}
