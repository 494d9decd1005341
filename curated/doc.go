// This file is part of Framepoll.
//
// Framepoll is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepoll is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepoll.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Patterns that callers are
// expected to test for should be stored as exported string constants:
//
//	const ControllersUnavailable = "controllers: unavailable: %v"
//
//	err := curated.Errorf(ControllersUnavailable, cause)
//
//	if curated.Is(err, ControllersUnavailable) {
//		fmt.Println("continuing without controllers")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the chain of curated errors.
//
//	f := curated.Errorf("input: %v", err)
//
//	curated.Has(f, ControllersUnavailable) // true
//	curated.Is(f, ControllersUnavailable)  // false
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference as being between 'expected' and
// 'unexpected' errors.
//
// The Error() implementation normalises the chain so that it does not contain
// duplicate adjacent parts. Parts are the sub-strings separated by ': ' as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
// This means that code does not need to worry about whether the caller has
// already added the same context:
//
//	curated.Errorf("playback: %v", curated.Errorf("playback: bad line"))
//
// prints as "playback: bad line" and not "playback: playback: bad line".
//
// Values of type error passed to Errorf() are available to the errors package
// in the standard library through Unwrap(), so errors.Is() and errors.As()
// work through a curated error.
package curated
