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

// Package instructions defines the CHIP-8 instruction set and the decoder
// that turns a sixteen bit opcode into an Instruction value. Decoding is a
// pure function, which is what allows the disassembly package to share the
// decoder with the CPU.
//
// The instruction set is small enough to be listed by hand. Each Definition
// pairs a mask with a value; an opcode belongs to the first form in the
// table whose mask leaves the value. Opcodes matching no form at all are an
// error, and the CPU treats such an error as fatal.
package instructions
