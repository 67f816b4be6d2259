// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand functions report with t.Fatalf() and should be
// used when the result is required by the rest of the test. For example,
// demanding that the length of a slice is correct before iterating over it.
//
// ExpectSuccess() and ExpectFailure() test for success or failure in a way
// that suits the type of the value. A bool is successful if it is true and an
// error is successful if it is nil. An untyped nil is considered a success
// because that is how a nil error arrives when passed as an interface value.
//
// The CompareWriter, RingWriter and CappedWriter types implement io.Writer and
// are used to capture output for later comparison.
//
// All functions accept a list of optional tags. The tags are printed before
// the failure message and are useful for identifying which iteration of a
// loop has failed.
package test
