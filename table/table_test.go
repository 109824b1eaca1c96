/*
 * table_test.go, part of goxyz.
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

package table

import (
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	xyz "github.com/rmera/goxyz"
)

func waterFrame(Te *testing.T, extra map[string]xyz.Value) *xyz.Frame {
	Te.Helper()
	sch, err := xyz.ParseSchema("species:S:1:pos:R:3")
	if err != nil {
		Te.Fatal(err)
	}
	f := xyz.NewFrame(2, xyz.Lattice{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, sch, extra)
	for _, row := range []string{"O 0.0 0.0 0.0", "H 0.0 0.0 1.0"} {
		if err := f.AppendRow(strings.Fields(row)); err != nil {
			Te.Fatal(err)
		}
	}
	return f
}

func record(Te *testing.T, tbl arrow.Table) arrow.Record {
	Te.Helper()
	tr := array.NewTableReader(tbl, tbl.NumRows())
	defer tr.Release()
	if !tr.Next() {
		Te.Fatal("table has no rows")
	}
	rec := tr.Record()
	rec.Retain()
	return rec
}

func TestFromFrameFlatten(Te *testing.T) {
	f := waterFrame(Te, map[string]xyz.Value{"Energy": xyz.RealValue(-1.5)})
	tbl, err := FromFrame(f, true)
	if err != nil {
		Te.Fatal(err)
	}
	defer tbl.Release()
	if tbl.NumCols() != 4 || tbl.NumRows() != 2 {
		Te.Fatalf("table is %dx%d, want 2x4", tbl.NumRows(), tbl.NumCols())
	}
	names := []string{"species", "pos_0", "pos_1", "pos_2"}
	for i, n := range names {
		if got := tbl.Schema().Field(i).Name; got != n {
			Te.Errorf("column %d is %q, want %q", i, got, n)
		}
	}
	rec := record(Te, tbl)
	defer rec.Release()
	if s := rec.Column(0).(*array.String); s.Value(0) != "O" || s.Value(1) != "H" {
		Te.Errorf("species column holds %v %v", s.Value(0), s.Value(1))
	}
	if z := rec.Column(3).(*array.Float64); z.Value(1) != 1.0 {
		Te.Errorf("pos_2 of the second atom is %v", z.Value(1))
	}
	//the extra metadata rides along on the schema
	md := tbl.Schema().Metadata()
	i := md.FindKey("Energy")
	if i < 0 || md.Values()[i] != "-1.5" {
		Te.Errorf("schema metadata is %v", md)
	}
}

func TestFromFrameList(Te *testing.T) {
	f := waterFrame(Te, nil)
	tbl, err := FromFrame(f, false)
	if err != nil {
		Te.Fatal(err)
	}
	defer tbl.Release()
	if tbl.NumCols() != 2 {
		Te.Fatalf("table has %d columns, want 2", tbl.NumCols())
	}
	lt, ok := tbl.Schema().Field(1).Type.(*arrow.FixedSizeListType)
	if !ok {
		Te.Fatalf("pos column is %v, want a fixed-size list", tbl.Schema().Field(1).Type)
	}
	if lt.Len() != 3 {
		Te.Errorf("pos lists have length %d, want 3", lt.Len())
	}
	rec := record(Te, tbl)
	defer rec.Release()
	pos := rec.Column(1).(*array.FixedSizeList)
	vals := pos.ListValues().(*array.Float64)
	//row 1, element 2 is the hydrogen's z
	if vals.Value(1*3+2) != 1.0 {
		Te.Errorf("flattened list storage holds %v", vals.Float64Values())
	}
}

func TestFromFrames(Te *testing.T) {
	a := waterFrame(Te, nil)
	b := waterFrame(Te, nil)
	tbl, err := FromFrames([]*xyz.Frame{a, b}, true)
	if err != nil {
		Te.Fatal(err)
	}
	defer tbl.Release()
	if tbl.NumRows() != 4 || tbl.NumCols() != 5 {
		Te.Fatalf("table is %dx%d, want 4x5", tbl.NumRows(), tbl.NumCols())
	}
	if tbl.Schema().Field(0).Name != "frame" {
		Te.Errorf("first column is %q, want frame", tbl.Schema().Field(0).Name)
	}
	rec := record(Te, tbl)
	defer rec.Release()
	fi := rec.Column(0).(*array.Int64)
	if fi.Value(0) != 0 || fi.Value(1) != 0 || fi.Value(2) != 1 || fi.Value(3) != 1 {
		Te.Errorf("frame indices are %v", fi.Int64Values())
	}
}

func TestFromFramesMismatch(Te *testing.T) {
	a := waterFrame(Te, nil)
	sch, err := xyz.ParseSchema("species:S:1:pos:R:3:vel:R:3")
	if err != nil {
		Te.Fatal(err)
	}
	b := xyz.NewFrame(1, xyz.Lattice{}, sch, nil)
	if err := b.AppendRow(strings.Fields("O 0 0 0 1 1 1")); err != nil {
		Te.Fatal(err)
	}
	if _, err := FromFrames([]*xyz.Frame{a, b}, true); err == nil {
		Te.Error("frames with different schemas should not concatenate")
	}
	if _, err := FromFrames(nil, true); err == nil {
		Te.Error("an empty frame set should not export")
	}
}
