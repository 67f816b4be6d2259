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

// Package digest produces a cryptographic hash of the output of the
// emulation. The hash can be compared with the hash from a later execution of
// the same program: if the new hash differs from the recorded value then
// something has changed.
package digest

// Digest implementations return a cryptographic hash of everything they have
// seen since the digest was created or reset.
type Digest interface {
	Hash() string
	ResetDigest()
}
