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

// Package memory implements the 4096 byte address space and the call stack.
//
// There is no memory mapping of any kind. Every address is masked to twelve
// bits before it is used, meaning that an access beyond the end of memory
// wraps around to the start. The font lives at address zero and programs are
// loaded at Origin.
//
// The call stack is separate from the address space. It holds a limited
// number of return addresses and Push() fails with faults.StackOverflow when
// the limit is reached. Pop() on an empty stack fails with
// faults.StackUnderflow.
package memory
