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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// The generator is a 32 bit permuted congruential generator (PCG-XSH-RR) with
// a fixed increment. For a given seed the sequence of numbers is always the
// same, which means that two emulations started with the same seed will
// produce identical results for every CXNN instruction.
//
// The Byte() function is what the CPU uses. It takes two numbers from the
// generator, using the first to choose which byte of the second is returned.
package random
