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

// Package disassembly produces a listing of a CHIP-8 program file.
//
// The listing is linear: every pair of bytes is treated as a candidate
// instruction, starting at the program origin. Pairs that do not decode to an
// instruction are listed as data. Programs freely mix sprite data with code
// so a data entry is in no way unusual, and because the disassembler does not
// follow the flow of the program an instruction entry may really be data that
// happens to decode. The listing is a map, not the territory.
package disassembly

import (
	"github.com/hexkey/gopher8/hardware/cpu/instructions"
	"github.com/hexkey/gopher8/hardware/memory"
	"github.com/hexkey/gopher8/romloader"
)

// Entry is a single line of the disassembly.
type Entry struct {
	// address the entry would occupy once loaded
	Address uint16

	// the raw bytes of the entry. two bytes for an instruction. one or two
	// bytes for data, depending on whether the program ends on a full
	// instruction boundary
	ByteCode []uint8

	// empty when the entry does not decode to an instruction
	Mnemonic string
}

// Disassembly of a program file.
type Disassembly struct {
	Entries []Entry
}

// FromLoader disassembles the program attached to the loader.
func FromLoader(loader romloader.Loader) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, (len(loader.Data)+1)/2),
	}

	addr := uint16(memory.ProgramStart)

	for i := 0; i < len(loader.Data); i += 2 {
		// a program with an odd number of bytes ends on a lone data byte
		if i+1 >= len(loader.Data) {
			dsm.Entries = append(dsm.Entries, Entry{
				Address:  addr,
				ByteCode: []uint8{loader.Data[i]},
			})
			break
		}

		e := Entry{
			Address:  addr,
			ByteCode: []uint8{loader.Data[i], loader.Data[i+1]},
		}

		opcode := uint16(loader.Data[i])<<8 | uint16(loader.Data[i+1])
		ins, err := instructions.Decode(opcode)
		if err == nil {
			e.Mnemonic = ins.String()
		}

		dsm.Entries = append(dsm.Entries, e)
		addr += 2
	}

	return dsm
}
