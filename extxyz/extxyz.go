/*
 * extxyz.go, part of goxyz.
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

//Package extxyz reads extended-XYZ trajectories: per frame, an atom-count
//line, a comment line with a lattice, a typed column schema and free-form
//key=value metadata, and one typed row per atom. Frames come out one at a
//time, lazily; the normal end of the trajectory is signaled with an error
//implementing xyz.LastFrameError, everything else with an Error carrying
//one of the ErrKind classes.
package extxyz

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	xyz "github.com/rmera/goxyz"
	"github.com/rmera/goxyz/xyzio"
)

// Reader is a forward-only, single-pass reader of extended-XYZ frames. It
// owns its line source exclusively and holds no state for frames already
// yielded; re-reading a trajectory requires a fresh Reader over a fresh
// source. A Reader is not safe for concurrent use.
type Reader struct {
	src      xyz.LineSource
	closer   io.Closer
	filename string
	frames   int //frames yielded so far; also the index of the frame being read.
	readable bool
}

// New opens the named trajectory file (plain or compressed, see xyzio) and
// returns a Reader over it.
func New(name string) (*Reader, error) {
	src, err := xyzio.Open(name)
	if err != nil {
		return nil, Error{kind: KindIO, message: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"New"}, critical: true}
	}
	return &Reader{src: src, closer: src, filename: name, readable: true}, nil
}

// NewReader returns a Reader over an already-open line source. The caller
// keeps ownership of the source; Close on the Reader will not close it.
func NewReader(src xyz.LineSource) *Reader {
	return &Reader{src: src, readable: true}
}

// Readable returns true if the handle is readable (if it is possible to call Next on it)
func (R *Reader) Readable() bool {
	return R.readable
}

// FramesRead returns the number of frames yielded so far.
func (R *Reader) FramesRead() int {
	return R.frames
}

// Close closes the object, and marks it as unreadable. Frames already
// yielded remain valid.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	if R.closer != nil {
		R.closer.Close()
	}
	R.readable = false
}

// Next reads and returns the next frame of the trajectory. At the normal
// end of the input (i.e. at a frame boundary) it returns an error
// implementing xyz.LastFrameError and closes the reader. Any malformed
// content aborts the read with an Error (no partial frame is ever
// returned) and also closes the reader; frames yielded before the failure
// stay valid.
func (R *Reader) Next() (*xyz.Frame, error) {
	if !R.readable {
		return nil, Error{kind: KindIO, message: TrajUnIniRead, filename: R.filename, frame: R.frames, deco: []string{"Next"}, critical: true}
	}
	line, err := R.src.ReadLine()
	if err == io.EOF {
		//nothing bad happened here, the trajectory just ended.
		R.Close()
		return nil, newlastFrameError(R.filename, "Next")
	}
	if err != nil {
		R.Close()
		return nil, R.newError(KindIO, ReadError+": "+err.Error())
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		R.Close()
		return nil, R.newError(KindTruncatedFrame, fmt.Sprintf("can't read atom count from %q", strings.TrimSpace(line)))
	}
	comment, err := R.src.ReadLine()
	if err != nil {
		R.Close()
		return nil, R.newError(KindTruncatedFrame, "input ended before the comment line")
	}
	lat, sch, extra, err := parseComment(comment)
	if err != nil {
		R.Close()
		e := err.(Error)
		e.filename = R.filename
		e.frame = R.frames
		e.deco = []string{"Next"}
		return nil, e
	}
	frame := xyz.NewFrame(natoms, lat, sch, extra)
	for i := 0; i < natoms; i++ {
		line, err := R.src.ReadLine()
		if err != nil {
			R.Close()
			return nil, R.newError(KindTruncatedFrame, fmt.Sprintf("input ended at atom row %d of %d", i+1, natoms))
		}
		if err := frame.AppendRow(strings.Fields(line)); err != nil {
			R.Close()
			switch e := err.(type) {
			case *xyz.RowError:
				return nil, R.newError(KindMalformedRow, fmt.Sprintf("expected %d columns, got %d, at line %d", e.Expected, e.Got, e.Line))
			case *xyz.CoerceError:
				return nil, R.newError(KindTypeMismatch, fmt.Sprintf("atom row %d: can't coerce token %q to %s", i+1, e.Token, e.Type))
			default:
				return nil, errDecorate(err, "Next")
			}
		}
	}
	R.frames++
	return frame, nil
}

func (R *Reader) newError(kind ErrKind, message string) Error {
	return Error{kind: kind, message: message, filename: R.filename, frame: R.frames, deco: []string{"Next"}, critical: true}
}
