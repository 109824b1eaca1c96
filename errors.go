/*
 * errors.go, part of goxyz.
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

import "fmt"

// ParseError is the general error type of this package. It fulfills the
// Error interface of interfaces.go.
type ParseError struct {
	message  string
	deco     []string
	critical bool
}

// Errorf builds a critical ParseError in the manner of fmt.Errorf.
func Errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{message: fmt.Sprintf(format, args...), critical: true}
}

func (err *ParseError) Error() string {
	return "goxyz error: " + err.message
}

// Decorate adds new information to the error
func (err *ParseError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err *ParseError) Critical() bool { return err.critical }

// CoerceError reports a token that could not be coerced to its declared
// column type (say, non-numeric text in a real column, or anything but the
// literals "T"/"F" in a boolean column).
type CoerceError struct {
	Token string
	Type  ColumnType
	deco  []string
}

func (err *CoerceError) Error() string {
	return fmt.Sprintf("goxyz error: can't coerce token %q to %s", err.Token, err.Type)
}

// Decorate adds new information to the error
func (err *CoerceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true. A coercion failure always aborts the frame.
func (err *CoerceError) Critical() bool { return true }

// RowError reports a per-atom row whose token count does not match the
// schema. Line is the 1-based line index within the frame, counting the
// atom-count and comment lines, which is how the format natively numbers
// its lines.
type RowError struct {
	Expected int
	Got      int
	Line     int
	deco     []string
}

func (err *RowError) Error() string {
	return fmt.Sprintf("goxyz error: expected %d columns, got %d, at line %d", err.Expected, err.Got, err.Line)
}

// Decorate adds new information to the error
func (err *RowError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true. A mismatched row always aborts the frame.
func (err *RowError) Critical() bool { return true }
