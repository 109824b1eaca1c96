/*
 * doc.go, part of goxyz.
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

/*Package xyz provides the shared data model for reading XYZ and extended-XYZ
trajectory files.


	**goxyz Capabilities**

    Reads extended-XYZ trajectories (the extxyz package): per-frame lattice,
	typed "Properties" column schemas and free-form key=value metadata on the
	comment line, with per-atom columns assembled into typed, columnar form.

    Reads classic XYZ files (the classic package): label, x, y, z and any
	number of extra numeric columns, which may be ragged.

    Opens plain and compressed (gzip, zstd, lzw) trajectory files through a
	single line-oriented source (the xyzio package).

    Exports parsed frames to Apache Arrow tables for analysis (the table
	package), flattening multi-column properties on request.

    Plots numeric per-frame metadata, such as energies, against the frame
	index (the xyzplot package).

This root package holds what every reader shares: the column type system and
its token coercion rules, the property schema, the lattice, the Frame object
with its columnar per-property storage, and the error interfaces all goxyz
readers implement.

Frames expose coordinate-like properties as gonum matrices (one row per
atom), so they can be fed directly to gonum-based analysis code.

A note on panics: accessors on Value and Column panic when asked for the
wrong kind (e.g. the integer value of a string column entry). These are
"fundamental" operations; calling them with the wrong kind means the program
logic is wrong, and crashing early beats silently returning zero values.
Everything that depends on the input file, in contrast, returns errors.*/
package xyz
