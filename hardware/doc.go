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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and holds references to every
// sub-system: memory, screen, keypad, timers, sound and the CPU. One Chip8
// value is one session. From here the emulation can be run continuously,
// with an optional callback to check for continuation, or stepped one
// instruction at a time.
//
// All execution is bounded by a context. Cancelling it interrupts whatever
// the machine happens to be doing, including an instruction blocked waiting
// on the keypad, and is the normal way to end a session.
package hardware
