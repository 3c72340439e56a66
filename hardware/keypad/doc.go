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

// Package keypad implements the sixteen key input device of the CHIP-8
// machine. Keys are identified by their hexadecimal digit, 0x0 to 0xf.
//
// The CPU and the input collaborator run on different goroutines. Key state
// lives behind a mutex and the wait-key instruction is served by a
// capacity-one channel registered for the duration of the wait: the input
// goroutine never blocks on a slow CPU, and the CPU sees the first change
// that arrives while it is waiting. One waiter at a time is supported,
// which is all a single CPU can ask for.
package keypad
