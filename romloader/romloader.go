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

// Package romloader reads CHIP-8 program files. Programs are read whole at
// load time; a Loader carries the data and never touches the file again, so
// it can be passed around and reused for resets freely.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/hardware/memory"
)

// sentinel errors returned by NewLoader.
const (
	EmptyFile = "romloader: empty program file (%s)"
	TooLarge  = "romloader: program too large (%d bytes)"
)

// MaxProgramSize is the number of bytes between the program start address
// and the end of memory.
const MaxProgramSize = memory.MemorySize - memory.ProgramStart

// Loader is a program file read into memory, ready for attachment to the
// machine.
type Loader struct {
	Filename string

	// the entire program
	Data []uint8

	// SHA1 of Data
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The file is read in full and validated against the size of the program
// area.
func NewLoader(filename string) (Loader, error) {
	ld := Loader{Filename: filename}

	var err error
	ld.Data, err = os.ReadFile(filename)
	if err != nil {
		return Loader{}, curated.Errorf("romloader: %v", err)
	}

	if len(ld.Data) == 0 {
		return Loader{}, curated.Errorf(EmptyFile, filename)
	}
	if len(ld.Data) > MaxProgramSize {
		return Loader{}, curated.Errorf(TooLarge, len(ld.Data))
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))

	return ld, nil
}

// ShortName returns a shortened version of the loader filename: the base
// name with the file extension removed.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}
