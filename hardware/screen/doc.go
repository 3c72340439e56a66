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

// Package screen implements the 64x32 monochrome display of the CHIP-8
// machine.
//
// Drawing is XOR composition: sprite pixels toggle screen pixels, and the
// draw operation reports whether any pixel was toggled from on to off. That
// report is how CHIP-8 programs detect collisions.
//
// A renderer watches the screen through Modified() and Snapshot(). Snapshots
// are deep copies so the renderer never contends with the CPU for longer
// than the copy takes.
package screen
