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

// Package memory implements the CHIP-8 memory model: 4096 bytes of RAM
// addressable by the CPU, shared by program code, sprite data and the font
// table.
//
// The memory map is simple. The lowest 512 bytes are reserved for the
// interpreter itself; the only thing of note in that space is the font table
// at FontStart. Program data occupies the space from ProgramStart upwards.
//
//	0x000 ------------------------
//	       interpreter area
//	0x050  font sprites (16 x 5 bytes)
//	0x0a0
//	       interpreter area
//	0x200 ------------------------
//	       program space
//	0xfff ------------------------
//
// Every access is range checked. Requests that stray outside addressable
// memory return an error and leave memory untouched, range writes included;
// it is the caller's decision whether that is fatal.
package memory
