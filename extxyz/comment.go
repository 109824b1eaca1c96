/*
 * comment.go, part of goxyz.
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
	"regexp"
	"strings"

	xyz "github.com/rmera/goxyz"
)

//A key is a word; a value is either double-quoted (possibly containing
//spaces) or a run of non-whitespace.
var kvRegexp = regexp.MustCompile(`(\w+)=("[^"]*"|\S+)`)

//parseComment decodes the metadata line of a frame: the mandatory Lattice
//and Properties keys into structured form, and every other key into a
//heuristically typed scalar. A key appearing twice keeps its last value;
//that is how the format behaves and it is not an error.
//On failure it returns an Error with the kind set but no file/frame
//context; the caller fills those in.
func parseComment(comment string) (xyz.Lattice, xyz.Schema, map[string]xyz.Value, error) {
	var lat xyz.Lattice
	kv := make(map[string]string)
	for _, m := range kvRegexp.FindAllStringSubmatch(comment, -1) {
		kv[m[1]] = strings.Trim(m[2], "\"")
	}
	latstr, ok := kv["Lattice"]
	if !ok {
		return lat, nil, nil, Error{kind: KindMalformedHeader, message: "comment line has no Lattice key", critical: true}
	}
	lat, err := xyz.ParseLattice(latstr)
	if err != nil {
		return lat, nil, nil, Error{kind: KindMalformedHeader, message: err.Error(), critical: true}
	}
	propstr, ok := kv["Properties"]
	if !ok {
		return lat, nil, nil, Error{kind: KindMalformedHeader, message: "comment line has no Properties key", critical: true}
	}
	sch, err := xyz.ParseSchema(propstr)
	if err != nil {
		return lat, nil, nil, Error{kind: KindMalformedHeader, message: err.Error(), critical: true}
	}
	extra := make(map[string]xyz.Value)
	for k, v := range kv {
		if k == "Lattice" || k == "Properties" {
			continue
		}
		extra[k] = xyz.InferScalar(v)
	}
	return lat, sch, extra, nil
}
