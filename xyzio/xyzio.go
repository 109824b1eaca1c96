/*
 * xyzio.go, part of goxyz.
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

//Package xyzio opens trajectory files and hands them to the readers
//one line at a time. It owns everything the readers should not care
//about: the file handle, buffering, transparent decompression, and the
//check that the input is plain 7-bit text.
package xyzio

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const lzwLitwidth int = 8

// Source reads a (possibly compressed) trajectory file line by line. It
// implements xyz.LineSource. A Source obtained from Open must be closed;
// one wrapping a caller-supplied io.Reader has nothing to close, and Close
// is then a no-op.
type Source struct {
	f *os.File
	z io.ReadCloser
	h *bufio.Reader
}

//This will cause additional indirections
//but I suppose it won't matter, as each call will
//take enough time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func() //The things I have to do xD
	*zstd.Decoder
}

// Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

// Open opens the named trajectory file for line-oriented reading. The
// compression is selected by the file extension: ".gz" for gzip, ".zst"
// for zstd, ".flate" for DEFLATE, ".lzw" for LZW; anything else is read
// as plain text.
func Open(name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	S := &Source{f: f}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	flatereader := func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	lzwreader := func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		AnyNewReader = gzreader
	case ".zst":
		AnyNewReader = zstdreader
	case ".flate":
		AnyNewReader = flatereader
	case ".lzw":
		AnyNewReader = lzwreader
	default:
		AnyNewReader = nil
	}
	if AnyNewReader == nil {
		S.h = bufio.NewReader(f)
		return S, nil
	}
	S.z, err = AnyNewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("can't open compressed trajectory %s: %v", name, err)
	}
	S.h = bufio.NewReader(S.z)
	return S, nil
}

// NewSource wraps an already-open reader, e.g. a strings.Reader in tests
// or a network stream. The caller keeps ownership of r.
func NewSource(r io.Reader) *Source {
	return &Source{h: bufio.NewReader(r)}
}

// ReadLine returns the next line of the input without its terminator
// ("\n" or "\r\n"), or io.EOF at the end of the input. A last line without
// a trailing newline is still returned as a line; the EOF comes on the
// call after it. Input is required to be 7-bit text; any byte above 127
// is an error.
func (S *Source) ReadLine() (string, error) {
	line, err := S.h.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			err = nil //a last line without newline is still a line
		} else {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	for i := 0; i < len(line); i++ {
		if line[i] > 127 {
			return "", fmt.Errorf("non-ASCII byte 0x%x in input; only 7-bit text is supported", line[i])
		}
	}
	return line, err
}

// Close releases the file and any decompressor. Calling it on an
// already-closed Source is harmless.
func (S *Source) Close() error {
	var err error
	if S.z != nil {
		err = S.z.Close()
		S.z = nil
	}
	if S.f != nil {
		if err2 := S.f.Close(); err == nil {
			err = err2
		}
		S.f = nil
	}
	return err
}
