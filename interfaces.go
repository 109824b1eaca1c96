/*
 * interfaces.go, part of goxyz.
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

// LineSource is what a reader consumes: something that produces the input
// one line at a time, without the trailing newline, and signals the end of
// the input with io.EOF. File handling, buffering and decompression are the
// source's problem (see the xyzio package), never the reader's.
type LineSource interface {

	//ReadLine returns the next line of the input, without its line
	//terminator. At the end of the input it returns io.EOF.
	ReadLine() (string, error)
}

// FrameSource is the interface for any trajectory reader in this library.
// A FrameSource is forward-only and single-pass: once a frame has been
// produced there is no way back, and re-reading requires opening a fresh
// source. Implementations are not safe for concurrent use.
type FrameSource interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads and returns the next frame of the trajectory. At the normal
	//end of the trajectory it returns an error implementing LastFrameError.
	Next() (*Frame, error)
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's

}
