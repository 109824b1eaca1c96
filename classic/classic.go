/*
 * classic.go, part of goxyz.
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

//Package classic reads classic XYZ trajectories: an atom-count line, a
//free comment line kept verbatim, and one "label x y z" row per atom,
//possibly with extra numeric columns. The extras may be ragged (rows with
//differing extra counts); they accumulate column-major, each extra column
//as long as the number of rows that reached it.
//
//There is no schema here: the rows are decoded through the shared
//assembler of the root package with the implicit schema species:S:1,pos:R:3
//in permissive (prefix) mode.
package classic

import (
	"io"
	"strconv"
	"strings"

	xyz "github.com/rmera/goxyz"
	"github.com/rmera/goxyz/xyzio"
	"gonum.org/v1/gonum/mat"
)

//the implicit column layout of every classic XYZ row.
func implicitSchema() xyz.Schema {
	return xyz.Schema{
		{Label: "species", Type: xyz.String, Count: 1},
		{Label: "pos", Type: xyz.Real, Count: 3},
	}
}

// Frame is one parsed classic-XYZ configuration.
type Frame struct {
	comment string
	data    *xyz.Frame
	labels  []xyz.Value
	extra   [][]float64
}

// Len returns the number of atoms in the frame.
func (F *Frame) Len() int { return F.data.Len() }

// Comment returns the frame's comment line, verbatim.
func (F *Frame) Comment() string { return F.comment }

// Labels returns the per-atom labels. A label that parses as an integer
// (some codes write atomic numbers instead of symbols) is an Int value;
// anything else stays a String.
func (F *Frame) Labels() []xyz.Value { return F.labels }

// Label returns the label of the ith atom.
func (F *Frame) Label(i int) xyz.Value { return F.labels[i] }

// Pos returns the coordinates as a Len()x3 gonum matrix, one atom per row.
func (F *Frame) Pos() (*mat.Dense, error) {
	return F.data.Pos()
}

// Extras returns the extra numeric columns beyond x, y, z, column-major.
// The columns may have different lengths if the input rows were ragged.
func (F *Frame) Extras() [][]float64 { return F.extra }

// Data returns the frame's fixed columns (species, pos) in the columnar
// form of the root package, e.g. for tabular export.
func (F *Frame) Data() *xyz.Frame { return F.data }

// Reader is a forward-only, single-pass reader of classic XYZ frames.
// Like its extended sibling, it is not safe for concurrent use and cannot
// be rewound.
type Reader struct {
	src      xyz.LineSource
	closer   io.Closer
	filename string
	frames   int
	readable bool
}

// New opens the named XYZ file (plain or compressed, see xyzio) and
// returns a Reader over it.
func New(name string) (*Reader, error) {
	src, err := xyzio.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	return &Reader{src: src, closer: src, filename: name, readable: true}, nil
}

// NewReader returns a Reader over an already-open line source. The caller
// keeps ownership of the source.
func NewReader(src xyz.LineSource) *Reader {
	return &Reader{src: src, readable: true}
}

// Readable returns true if the handle is readable (if it is possible to call Next on it)
func (R *Reader) Readable() bool {
	return R.readable
}

// Close closes the object, and marks it as unreadable.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	if R.closer != nil {
		R.closer.Close()
	}
	R.readable = false
}

// Next reads and returns the next frame. At the normal end of the input it
// returns an error implementing xyz.LastFrameError and closes the reader.
func (R *Reader) Next() (*Frame, error) {
	if !R.readable {
		return nil, Error{TrajUnIni, R.filename, []string{"Next"}, true}
	}
	line, err := R.src.ReadLine()
	if err == io.EOF {
		//nothing bad happened here, the trajectory just ended.
		R.Close()
		return nil, newlastFrameError(R.filename, "Next")
	}
	if err != nil {
		R.Close()
		return nil, Error{ReadError + ": " + err.Error(), R.filename, []string{"Next"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		R.Close()
		return nil, Error{"can't read atom count from " + strconv.Quote(strings.TrimSpace(line)), R.filename, []string{"Next"}, true}
	}
	comment, err := R.src.ReadLine()
	if err != nil {
		R.Close()
		return nil, Error{"input ended before the comment line", R.filename, []string{"Next"}, true}
	}
	data := xyz.NewFrame(natoms, xyz.Lattice{}, implicitSchema(), nil)
	extra := make([][]float64, 0)
	for i := 0; i < natoms; i++ {
		line, err := R.src.ReadLine()
		if err != nil {
			R.Close()
			return nil, Error{"input ended at atom row " + strconv.Itoa(i+1) + " of " + strconv.Itoa(natoms), R.filename, []string{"Next"}, true}
		}
		rest, err := data.AppendRowPrefix(strings.Fields(line))
		if err != nil {
			R.Close()
			return nil, Error{err.Error(), R.filename, []string{"Next"}, true}
		}
		for idx, tok := range rest {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				R.Close()
				return nil, Error{"atom row " + strconv.Itoa(i+1) + ": extra column " + strconv.Quote(tok) + " is not numeric", R.filename, []string{"Next"}, true}
			}
			if idx < len(extra) {
				extra[idx] = append(extra[idx], v)
			} else {
				extra = append(extra, []float64{v})
			}
		}
	}
	species := data.Column("species")
	labels := make([]xyz.Value, natoms)
	for i := 0; i < natoms; i++ {
		s := species.Scalar(i).Str()
		//support for int atom labels
		if n, err := strconv.Atoi(s); err == nil {
			labels[i] = xyz.IntValue(n)
		} else {
			labels[i] = xyz.StringValue(s)
		}
	}
	R.frames++
	return &Frame{comment: comment, data: data, labels: labels, extra: extra}, nil
}
