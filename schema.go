/*
 * schema.go, part of goxyz.
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
	"strconv"
	"strings"
)

// PropertySpec is one named, typed, fixed-width field of a per-atom row.
// Count is how many consecutive columns of the row belong to the field;
// it is always at least 1.
type PropertySpec struct {
	Label string
	Type  ColumnType
	Count int
}

// Schema is the ordered list of PropertySpec that partitions a per-atom row
// into fields. It is decoded once per frame from the "Properties" key of
// the comment line and never changes during that frame.
type Schema []PropertySpec

// ParseSchema decodes a "Properties" value such as "species:S:1:pos:R:3".
// The colon-separated fields are walked in strides of three as
// (label, type code, column count); a field count that is not a multiple of
// three, an unknown type code, or a non-positive column count is an error.
func ParseSchema(s string) (Schema, error) {
	fields := strings.Split(s, ":")
	if len(fields)%3 != 0 {
		return nil, Errorf("schema %q: %d fields, not a multiple of 3", s, len(fields))
	}
	sch := make(Schema, 0, len(fields)/3)
	for i := 0; i < len(fields); i += 3 {
		t, err := ColumnTypeFromCode(fields[i+1])
		if err != nil {
			return nil, err
		}
		count, err := strconv.Atoi(fields[i+2])
		if err != nil {
			return nil, Errorf("schema %q: column count %q is not an integer", s, fields[i+2])
		}
		if count < 1 {
			return nil, Errorf("schema %q: column count %d is not positive", s, count)
		}
		sch = append(sch, PropertySpec{Label: fields[i], Type: t, Count: count})
	}
	return sch, nil
}

// TotalColumns returns the token count every per-atom row governed by the
// schema must have.
func (s Schema) TotalColumns() int {
	total := 0
	for _, p := range s {
		total += p.Count
	}
	return total
}

// String re-encodes the schema in the colon-separated wire form. Only used
// for diagnostics.
func (s Schema) String() string {
	parts := make([]string, 0, len(s)*3)
	for _, p := range s {
		parts = append(parts, p.Label, p.Type.Code(), strconv.Itoa(p.Count))
	}
	return strings.Join(parts, ":")
}
