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

package extxyz

import (
	"fmt"

	xyz "github.com/rmera/goxyz"
)

// ErrKind classifies the ways an extended-XYZ frame can fail to parse.
type ErrKind int

const (
	//KindIO covers everything that is not the file's fault: an unreadable
	//file, or a reader used after Close.
	KindIO ErrKind = iota + 1
	//KindMalformedHeader: the comment line is missing Lattice or
	//Properties, or either decodes wrong.
	KindMalformedHeader
	//KindMalformedRow: a per-atom row has the wrong number of columns.
	KindMalformedRow
	//KindTypeMismatch: a token can't be coerced to its schema-declared
	//type.
	KindTypeMismatch
	//KindTruncatedFrame: the input ended, or the atom-count line was not
	//an integer, after a frame had started.
	KindTruncatedFrame
)

//errDecorate is a helper function that asserts that the error
//implements xyz.Error and decorates the error with the caller's name before returning it.
//if used with a non-xyz.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(xyz.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for extended-XYZ trajectory errors. It fulfills xyz.Error and xyz.TrajError.
type Error struct {
	kind     ErrKind
	message  string
	filename string //the input file that has problems, or empty string if none.
	frame    int    //0-based index of the frame being read when things went wrong.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("extended XYZ file %s error (frame %d): %s", err.filename, err.frame, err.message)
}

// Kind returns the error's class, so callers can tell a truncated frame
// from, say, a bad header without parsing the message.
func (err Error) Kind() ErrKind { return err.kind }

// Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "extxyz") associated to the error
func (err Error) Format() string { return "extxyz" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead = "Traj object uninitialized to read"
	ReadError     = "Error reading frame"
	UnableToOpen  = "Unable to open file"
	WrongFormat   = "Wrong format in the extended XYZ file or frame"
	EOF           = "EOF"
)

//lastFrameError implements xyz.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "extxyz" }

func (E lastFrameError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
