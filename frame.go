/*
 * frame.go, part of goxyz.
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
	"gonum.org/v1/gonum/mat"
)

// Column is the parsed data of one property, one entry per atom. An entry
// is a single scalar for a width-1 property and a tuple of exactly Width
// scalars otherwise.
type Column struct {
	label   string
	typ     ColumnType
	width   int
	entries [][]Value
}

// Label returns the property label the column belongs to.
func (c *Column) Label() string { return c.label }

// Type returns the declared scalar type of the column.
func (c *Column) Type() ColumnType { return c.typ }

// Width returns the number of scalars per entry, as declared by the schema.
func (c *Column) Width() int { return c.width }

// Len returns the number of entries. After a frame has been fully
// assembled this equals the frame's atom count.
func (c *Column) Len() int { return len(c.entries) }

// At returns the ith entry as a slice of Width scalars. The slice aliases
// the column's storage; don't modify it.
func (c *Column) At(i int) []Value { return c.entries[i] }

// Scalar returns the ith entry of a width-1 column. It panics if the entry
// is not a single scalar.
func (c *Column) Scalar(i int) Value {
	e := c.entries[i]
	if len(e) != 1 {
		panic("goxyz: Scalar called on a multi-column property entry")
	}
	return e[0]
}

// Float64s returns all values of a Real column flattened row-major, i.e.
// Len()*Width() values. It panics on any other column type.
func (c *Column) Float64s() []float64 {
	out := make([]float64, 0, len(c.entries)*c.width)
	for _, e := range c.entries {
		for _, v := range e {
			out = append(out, v.Float64())
		}
	}
	return out
}

// Ints is the Float64s equivalent for Int columns.
func (c *Column) Ints() []int {
	out := make([]int, 0, len(c.entries)*c.width)
	for _, e := range c.entries {
		for _, v := range e {
			out = append(out, v.Int())
		}
	}
	return out
}

// Strings is the Float64s equivalent for String columns.
func (c *Column) Strings() []string {
	out := make([]string, 0, len(c.entries)*c.width)
	for _, e := range c.entries {
		for _, v := range e {
			out = append(out, v.Str())
		}
	}
	return out
}

// Bools is the Float64s equivalent for Bool columns.
func (c *Column) Bools() []bool {
	out := make([]bool, 0, len(c.entries)*c.width)
	for _, e := range c.entries {
		for _, v := range e {
			out = append(out, v.Bool())
		}
	}
	return out
}

// Frame is one parsed configuration of a trajectory: the atom count, the
// periodic cell, the column schema, the free-form comment metadata, and
// the per-atom data in columnar form. A Frame is built atomically by a
// reader: either it comes out complete, or the read fails and no Frame is
// produced. It holds no reference back to the reader; frames already
// yielded stay valid whatever happens to the stream afterwards.
type Frame struct {
	natoms  int
	lattice Lattice
	schema  Schema
	extra   map[string]Value
	order   []string
	cols    map[string]*Column
	rows    int
}

// NewFrame returns a Frame ready to have its per-atom rows appended.
// Columns are created in the order their labels first appear in the
// schema. A label declared more than once keeps a single column: each row
// then appends one entry per declaration, which is the format's observed
// (if odd) behavior, preserved rather than rejected.
func NewFrame(natoms int, lattice Lattice, schema Schema, extra map[string]Value) *Frame {
	f := &Frame{
		natoms:  natoms,
		lattice: lattice,
		schema:  schema,
		extra:   extra,
		cols:    make(map[string]*Column, len(schema)),
		order:   make([]string, 0, len(schema)),
	}
	if f.extra == nil {
		f.extra = map[string]Value{}
	}
	for _, p := range schema {
		if _, ok := f.cols[p.Label]; ok {
			continue
		}
		f.cols[p.Label] = &Column{
			label:   p.Label,
			typ:     p.Type,
			width:   p.Count,
			entries: make([][]Value, 0, natoms),
		}
		f.order = append(f.order, p.Label)
	}
	return f
}

// AppendRow assembles one tokenized per-atom row into the frame's columns.
// The token count must equal Schema.TotalColumns(); otherwise a *RowError
// is returned and the frame is left as it was. A token that doesn't coerce
// to its declared type yields a *CoerceError.
func (f *Frame) AppendRow(fields []string) error {
	if want := f.schema.TotalColumns(); len(fields) != want {
		return &RowError{Expected: want, Got: len(fields), Line: f.rows + 3}
	}
	return f.consumeRow(fields)
}

// AppendRowPrefix is AppendRow for rows that may carry extra trailing
// columns beyond the schema (the classic XYZ reader uses it). It consumes
// the leading Schema.TotalColumns() tokens and returns whatever is left.
func (f *Frame) AppendRowPrefix(fields []string) ([]string, error) {
	want := f.schema.TotalColumns()
	if len(fields) < want {
		return nil, &RowError{Expected: want, Got: len(fields), Line: f.rows + 3}
	}
	if err := f.consumeRow(fields[:want]); err != nil {
		return nil, err
	}
	return fields[want:], nil
}

func (f *Frame) consumeRow(fields []string) error {
	offset := 0
	for _, p := range f.schema {
		entry := make([]Value, p.Count)
		for j := 0; j < p.Count; j++ {
			v, err := p.Type.Parse(fields[offset+j])
			if err != nil {
				err.(Error).Decorate("AppendRow: property " + p.Label)
				return err
			}
			entry[j] = v
		}
		c := f.cols[p.Label]
		c.entries = append(c.entries, entry)
		offset += p.Count
	}
	f.rows++
	return nil
}

// Len returns the number of atoms in the frame.
func (f *Frame) Len() int { return f.natoms }

// Lattice returns the frame's periodic cell.
func (f *Frame) Lattice() Lattice { return f.lattice }

// Schema returns the column schema the frame was assembled with.
func (f *Frame) Schema() Schema { return f.schema }

// Extra returns the comment-line metadata other than Lattice and
// Properties, heuristically typed.
func (f *Frame) Extra() map[string]Value { return f.extra }

// Labels returns the property labels in the order they first appear in the
// schema.
func (f *Frame) Labels() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Column returns the column for the given label, or nil if the schema has
// no such property.
func (f *Frame) Column(label string) *Column {
	return f.cols[label]
}

// Pos returns the coordinates of the frame as a Len()x3 gonum matrix, one
// atom per row. By default it looks for a property labeled "pos"; a
// different label can be given. The property must be a width-3 Real one.
func (f *Frame) Pos(label ...string) (*mat.Dense, error) {
	l := "pos"
	if len(label) > 0 {
		l = label[0]
	}
	c := f.cols[l]
	if c == nil {
		return nil, Errorf("frame has no property %q", l)
	}
	if c.typ != Real || c.width != 3 {
		return nil, Errorf("property %q is %s:%d, not a real 3-vector", l, c.typ, c.width)
	}
	return mat.NewDense(c.Len(), 3, c.Float64s()), nil
}
