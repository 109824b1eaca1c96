/*
 * scalar.go, part of goxyz.
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
	"fmt"
	"strconv"
)

// ColumnType is the type of one property column in a per-atom row, as
// declared by the one-letter code in the "Properties" schema of an
// extended-XYZ comment line.
type ColumnType int

const (
	String ColumnType = iota + 1
	Real
	Int
	Bool
)

// ColumnTypeFromCode returns the ColumnType for a one-letter schema code
// (S, R, I or B). Any other code is an error.
func ColumnTypeFromCode(code string) (ColumnType, error) {
	switch code {
	case "S":
		return String, nil
	case "R":
		return Real, nil
	case "I":
		return Int, nil
	case "B":
		return Bool, nil
	}
	return 0, Errorf("unknown column type code %q", code)
}

// Code returns the one-letter schema code for the type.
func (t ColumnType) Code() string {
	switch t {
	case String:
		return "S"
	case Real:
		return "R"
	case Int:
		return "I"
	case Bool:
		return "B"
	}
	return "?"
}

func (t ColumnType) String() string {
	switch t {
	case String:
		return "string"
	case Real:
		return "real"
	case Int:
		return "int"
	case Bool:
		return "bool"
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

// Parse coerces one whitespace-free token to the type. Booleans accept only
// the literal tokens "T" and "F"; in particular, a "truthy" token such as
// "1" or "yes" does NOT parse as a boolean. On failure it returns a
// *CoerceError.
func (t ColumnType) Parse(token string) (Value, error) {
	switch t {
	case String:
		return StringValue(token), nil
	case Real:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Value{}, &CoerceError{Token: token, Type: t}
		}
		return RealValue(f), nil
	case Int:
		i, err := strconv.Atoi(token)
		if err != nil {
			return Value{}, &CoerceError{Token: token, Type: t}
		}
		return IntValue(i), nil
	case Bool:
		switch token {
		case "T":
			return BoolValue(true), nil
		case "F":
			return BoolValue(false), nil
		}
		return Value{}, &CoerceError{Token: token, Type: t}
	}
	panic("goxyz: Parse called on an invalid ColumnType")
}

// Kind says which of the four scalar kinds a Value holds.
type Kind int

const (
	KindString Kind = iota + 1
	KindReal
	KindInt
	KindBool
)

// Value is a tagged scalar: a string, real, int or bool, as found in a
// per-atom column or in the free-form comment metadata. The zero Value is
// invalid.
type Value struct {
	kind Kind
	s    string
	f    float64
	i    int
	b    bool
}

func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func RealValue(f float64) Value { return Value{kind: KindReal, f: f} }

func IntValue(i int) Value { return Value{kind: KindInt, i: i} }

func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

// Str returns the string held by the value. It panics if the value is not a
// string (see the package documentation on panics).
func (v Value) Str() string {
	if v.kind != KindString {
		panic("goxyz: Str called on a " + v.kind.name() + " Value")
	}
	return v.s
}

// Float64 returns the real held by the value. It panics if the value is not
// a real.
func (v Value) Float64() float64 {
	if v.kind != KindReal {
		panic("goxyz: Float64 called on a " + v.kind.name() + " Value")
	}
	return v.f
}

// Int returns the integer held by the value. It panics if the value is not
// an integer.
func (v Value) Int() int {
	if v.kind != KindInt {
		panic("goxyz: Int called on a " + v.kind.name() + " Value")
	}
	return v.i
}

// Bool returns the boolean held by the value. It panics if the value is not
// a boolean.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic("goxyz: Bool called on a " + v.kind.name() + " Value")
	}
	return v.b
}

// Interface returns the scalar as an untyped value (string, float64, int or
// bool).
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.s
	case KindReal:
		return v.f
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	}
	panic("goxyz: Interface called on the zero Value")
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindReal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindBool:
		if v.b {
			return "T"
		}
		return "F"
	}
	return "<invalid>"
}

func (k Kind) name() string {
	switch k {
	case KindString:
		return "string"
	case KindReal:
		return "real"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return "invalid"
}

// InferScalar types a free-form metadata token heuristically: an integer if
// it parses as one, else a real, else a boolean for the exact literals "T"
// and "F", else the token itself as a string. This heuristic is only for
// comment-line metadata; schema-typed columns go through ColumnType.Parse.
func InferScalar(token string) Value {
	if i, err := strconv.Atoi(token); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return RealValue(f)
	}
	switch token {
	case "T":
		return BoolValue(true)
	case "F":
		return BoolValue(false)
	}
	return StringValue(token)
}
