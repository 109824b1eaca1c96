/*
 * xyzio_test.go, part of goxyz.
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

package xyzio

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func readAll(Te *testing.T, S *Source) []string {
	Te.Helper()
	lines := make([]string, 0)
	for {
		line, err := S.ReadLine()
		if err == io.EOF {
			return lines
		}
		if err != nil {
			Te.Fatal(err)
		}
		lines = append(lines, line)
	}
}

func TestPlain(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "t.xyz")
	//note the missing final newline: the last line still counts
	if err := os.WriteFile(name, []byte("2\ncomment\nO 0 0 0"), 0644); err != nil {
		Te.Fatal(err)
	}
	S, err := Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer S.Close()
	lines := readAll(Te, S)
	if len(lines) != 3 || lines[2] != "O 0 0 0" {
		Te.Errorf("lines are %q", lines)
	}
}

func TestCRLF(Te *testing.T) {
	S := NewSource(strings.NewReader("2\r\ncomment\r\n"))
	lines := readAll(Te, S)
	if len(lines) != 2 || lines[0] != "2" || lines[1] != "comment" {
		Te.Errorf("lines are %q", lines)
	}
}

func TestGzip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "t.xyz.gz")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	w := gzip.NewWriter(f)
	w.Write([]byte("1\ncomment\nO 0 0 0\n"))
	w.Close()
	f.Close()
	S, err := Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer S.Close()
	lines := readAll(Te, S)
	if len(lines) != 3 || lines[0] != "1" {
		Te.Errorf("lines are %q", lines)
	}
}

func TestZstd(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "t.xyz.zst")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	w, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	w.Write([]byte("1\ncomment\nO 0 0 0\n"))
	w.Close()
	f.Close()
	S, err := Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer S.Close()
	lines := readAll(Te, S)
	if len(lines) != 3 || lines[2] != "O 0 0 0" {
		Te.Errorf("lines are %q", lines)
	}
}

func TestNonASCII(Te *testing.T) {
	S := NewSource(strings.NewReader("caf\xe9\n"))
	if _, err := S.ReadLine(); err == nil {
		Te.Error("a non-ASCII byte should be rejected")
	}
}
