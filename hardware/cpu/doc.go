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

// Package cpu implements the CHIP-8 processor. One instruction passes
// through three stages, each its own function: FetchOpcode reads the two
// bytes at the program counter; the instructions package decodes them; and
// ExecuteInstruction carries the decoded instruction out against the
// memory, screen, keypad and timers the CPU was built with.
//
// The fourth function, SyncTime, holds execution to the configured
// frequency. It is a separate stage rather than part of execution so that
// the driving loop decides when pacing applies. Pacing is selective: only
// instructions with observable effects wait for the right moment; pure
// register work runs as fast as the host allows.
//
// The sixteen V registers, the index register and the program counter are
// exported fields. They are free to read while the CPU is stopped but
// nothing in this package protects them from concurrent access during
// execution; they belong to whichever goroutine is driving the CPU.
package cpu
