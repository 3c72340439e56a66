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

package memory

import (
	"github.com/hexkey/gopher8/curated"
)

// OutOfRange is returned on any attempt to access an address outside of
// addressable memory. Partially out of range requests fail in their
// entirety; memory is never silently corrupted.
const OutOfRange = "memory: address out of range (%#04x)"

const (
	// MemorySize is the extent of addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the address at which program data is loaded and at
	// which execution begins.
	ProgramStart = 0x200

	// FontStart is the address at which the font sprites are loaded.
	FontStart = 0x050

	// FontGlyphSize is the height in bytes of a single font sprite.
	FontGlyphSize = 5
)

// FontAddress returns the address of the font sprite for a hexadecimal
// digit. The full byte value takes part in the calculation, exactly as the
// FX29 instruction requires. Values greater than 0x0f address past the end
// of the font table and whether that is a problem is for the subsequent
// memory access to decide.
func FontAddress(digit uint8) uint16 {
	return FontStart + uint16(digit)*FontGlyphSize
}

// Memory is the addressable memory of the CHIP-8 machine. Program data
// occupies the space from ProgramStart; the font sprites sit below it at
// FontStart.
//
// Memory is accessed by the CPU goroutine only and requires no
// synchronisation.
type Memory struct {
	ram [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset contents of memory, including the reloading of the font sprites.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[FontStart:], fontData[:])
}

// Read a single byte of memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= MemorySize {
		return 0, curated.Errorf(OutOfRange, address)
	}
	return mem.ram[address], nil
}

// ReadRange reads length bytes of memory starting at address. The returned
// slice is a copy.
func (mem *Memory) ReadRange(address uint16, length uint16) ([]uint8, error) {
	if int(address)+int(length) > MemorySize {
		return nil, curated.Errorf(OutOfRange, address)
	}
	data := make([]uint8, length)
	copy(data, mem.ram[address:int(address)+int(length)])
	return data, nil
}

// Write a single byte of memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= MemorySize {
		return curated.Errorf(OutOfRange, address)
	}
	mem.ram[address] = data
	return nil
}

// WriteRange writes the data slice to memory starting at address. A range
// that would extend past the end of memory writes nothing at all.
func (mem *Memory) WriteRange(address uint16, data []uint8) error {
	if int(address)+len(data) > MemorySize {
		return curated.Errorf(OutOfRange, address)
	}
	copy(mem.ram[address:], data)
	return nil
}
