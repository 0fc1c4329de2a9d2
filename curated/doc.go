// This file is part of mipsdatapath.
//
// mipsdatapath is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mipsdatapath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mipsdatapath.  If not, see <https://www.gnu.org/licenses/>.

// Package curated creates and inspects the errors produced by the simulator.
//
// Errors are created with Errorf(), which takes a pattern and the values for
// that pattern in the same way as fmt.Errorf(). The pattern is remembered and
// is used to identify the error later on. Patterns that callers need to test
// for are exported by the package that raises them as const strings. For
// example, the memory package exports:
//
//	const AddressOutOfRange = "memory: address out of range (%#08x)"
//
// and a caller can then test with:
//
//	if curated.Is(err, memory.AddressOutOfRange) {
//		...
//	}
//
// Has() performs the same check but looks through the whole chain of curated
// errors that have been wrapped with Errorf("...: %v", err).
//
// The Error() function normalises the message chain by removing adjacent
// duplicate parts. This means a package can prefix an error with its own name
// without worrying whether the wrapped error already carries the same prefix.
//
//	part 1: part 2: part 3
//
// A curated error also unwraps to the first error value it was created with,
// so errors.Is() and errors.As() from the standard library see through it.
package curated
