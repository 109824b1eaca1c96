/*
 * table.go, part of goxyz.
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

//Package table reshapes parsed frames into Apache Arrow tables, one row
//per atom, for analysis with dataframe-style tooling. The reshape is pure
//and lossless: no value is re-parsed or converted beyond the scalar types
//the reader already assigned.
//
//A multi-column property such as pos:R:3 becomes, depending on the
//flatten argument, either one fixed-size-list column or Width scalar
//columns named label_0..label_{Width-1}.
package table

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	xyz "github.com/rmera/goxyz"
)

func arrowType(t xyz.ColumnType) arrow.DataType {
	switch t {
	case xyz.String:
		return arrow.BinaryTypes.String
	case xyz.Real:
		return arrow.PrimitiveTypes.Float64
	case xyz.Int:
		return arrow.PrimitiveTypes.Int64
	case xyz.Bool:
		return arrow.FixedWidthTypes.Boolean
	}
	panic("goxyz/table: invalid ColumnType")
}

func appendValue(b array.Builder, v xyz.Value) {
	switch v.Kind() {
	case xyz.KindString:
		b.(*array.StringBuilder).Append(v.Str())
	case xyz.KindReal:
		b.(*array.Float64Builder).Append(v.Float64())
	case xyz.KindInt:
		b.(*array.Int64Builder).Append(int64(v.Int()))
	case xyz.KindBool:
		b.(*array.BooleanBuilder).Append(v.Bool())
	default:
		panic("goxyz/table: invalid Value")
	}
}

//one output column: the property it comes from, which element of the
//property's tuple (-1 for whole-entry columns) and whether it is a
//fixed-size-list column.
type colSpec struct {
	field arrow.Field
	label string
	elem  int
	list  bool
}

func buildSpecs(f *xyz.Frame, flatten bool) []colSpec {
	specs := make([]colSpec, 0, len(f.Labels()))
	for _, label := range f.Labels() {
		c := f.Column(label)
		switch {
		case c.Width() == 1:
			specs = append(specs, colSpec{
				field: arrow.Field{Name: label, Type: arrowType(c.Type())},
				label: label,
				elem:  -1,
			})
		case flatten:
			for j := 0; j < c.Width(); j++ {
				specs = append(specs, colSpec{
					field: arrow.Field{Name: fmt.Sprintf("%s_%d", label, j), Type: arrowType(c.Type())},
					label: label,
					elem:  j,
				})
			}
		default:
			specs = append(specs, colSpec{
				field: arrow.Field{Name: label, Type: arrow.FixedSizeListOf(int32(c.Width()), arrowType(c.Type()))},
				label: label,
				elem:  -1,
				list:  true,
			})
		}
	}
	return specs
}

func (s *colSpec) appendRow(b array.Builder, f *xyz.Frame, i int) {
	entry := f.Column(s.label).At(i)
	switch {
	case s.list:
		lb := b.(*array.FixedSizeListBuilder)
		lb.Append(true)
		for _, v := range entry {
			appendValue(lb.ValueBuilder(), v)
		}
	case s.elem >= 0:
		appendValue(b, entry[s.elem])
	default:
		appendValue(b, entry[0])
	}
}

//exportable checks the invariant the reshape relies on: every column has
//exactly one entry per atom. A schema that repeats a label breaks it.
func exportable(f *xyz.Frame) error {
	for _, label := range f.Labels() {
		if c := f.Column(label); c.Len() != f.Len() {
			return fmt.Errorf("goxyz/table: column %q has %d entries for %d atoms", label, c.Len(), f.Len())
		}
	}
	return nil
}

// FromFrame builds an Arrow table from one frame, one row per atom, with
// the columns in first-seen schema order. The frame's extra metadata is
// attached to the table schema as string-typed Arrow metadata. The caller
// owns the returned table and should Release it.
func FromFrame(f *xyz.Frame, flatten bool) (arrow.Table, error) {
	if err := exportable(f); err != nil {
		return nil, err
	}
	specs := buildSpecs(f, flatten)
	keys := make([]string, 0, len(f.Extra()))
	vals := make([]string, 0, len(f.Extra()))
	for k, v := range f.Extra() {
		keys = append(keys, k)
		vals = append(vals, v.String())
	}
	md := arrow.NewMetadata(keys, vals)
	return build(specs, []*xyz.Frame{f}, &md, false)
}

// FromFrames builds one Arrow table from several frames of the same
// schema, concatenated, with a leading "frame" column holding each row's
// 0-based frame index. Frames with differing column layouts are an error.
// The caller owns the returned table and should Release it.
func FromFrames(frames []*xyz.Frame, flatten bool) (arrow.Table, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("goxyz/table: no frames to export")
	}
	for _, f := range frames {
		if err := exportable(f); err != nil {
			return nil, err
		}
	}
	specs := buildSpecs(frames[0], flatten)
	for fi, f := range frames[1:] {
		if err := compatible(frames[0], f); err != nil {
			return nil, fmt.Errorf("goxyz/table: frame %d: %v", fi+1, err)
		}
	}
	return build(specs, frames, nil, true)
}

func compatible(a, b *xyz.Frame) error {
	la, lb := a.Labels(), b.Labels()
	if len(la) != len(lb) {
		return fmt.Errorf("has %d properties, want %d", len(lb), len(la))
	}
	for i, label := range la {
		if lb[i] != label {
			return fmt.Errorf("property %d is %q, want %q", i, lb[i], label)
		}
		ca, cb := a.Column(label), b.Column(label)
		if ca.Type() != cb.Type() || ca.Width() != cb.Width() {
			return fmt.Errorf("property %q is %s:%d, want %s:%d", label, cb.Type(), cb.Width(), ca.Type(), ca.Width())
		}
	}
	return nil
}

func build(specs []colSpec, frames []*xyz.Frame, md *arrow.Metadata, frameCol bool) (arrow.Table, error) {
	pool := memory.NewGoAllocator()
	nrows := 0
	for _, f := range frames {
		nrows += f.Len()
	}
	fields := make([]arrow.Field, 0, len(specs)+1)
	if frameCol {
		fields = append(fields, arrow.Field{Name: "frame", Type: arrow.PrimitiveTypes.Int64})
	}
	for _, s := range specs {
		fields = append(fields, s.field)
	}
	builders := make([]array.Builder, len(fields))
	for i, field := range fields {
		builders[i] = array.NewBuilder(pool, field.Type)
		defer builders[i].Release()
	}
	for fi, f := range frames {
		for i := 0; i < f.Len(); i++ {
			bi := 0
			if frameCol {
				builders[0].(*array.Int64Builder).Append(int64(fi))
				bi = 1
			}
			for si := range specs {
				specs[si].appendRow(builders[bi+si], f, i)
			}
		}
	}
	schema := arrow.NewSchema(fields, md)
	columns := make([]arrow.Column, len(fields))
	for i, field := range fields {
		arr := builders[i].NewArray()
		defer arr.Release()
		chunked := arrow.NewChunked(field.Type, []arrow.Array{arr})
		columns[i] = *arrow.NewColumn(field, chunked)
	}
	return array.NewTable(schema, columns, int64(nrows)), nil
}
