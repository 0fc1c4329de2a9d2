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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failed expectation with t.Errorf() and allow
// the test to continue. The Demand functions use t.Fatalf() and should be used
// when later parts of the test depend on the value being correct, for example
// when a function that returns an error must succeed before its result can be
// examined.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// type. A bool is successful if it is true and an error is successful if it is
// nil. An untyped nil is considered a success because of how errors are
// normally returned.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison against an expected string.
package test
