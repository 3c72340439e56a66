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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for i := range dsm.Entries {
		err := dsm.WriteLine(output, attr, &dsm.Entries[i])
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteLine writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("$%04x", e.Address))

	if attr.ByteCode {
		s.WriteString("  ")
		for _, b := range e.ByteCode {
			s.WriteString(fmt.Sprintf("%02x", b))
		}
		if len(e.ByteCode) < 2 {
			s.WriteString("  ")
		}
	}

	s.WriteString("  ")

	if e.Mnemonic != "" {
		s.WriteString(e.Mnemonic)
	} else {
		// data directive in the style of a traditional assembler
		s.WriteString(".db ")
		for i, b := range e.ByteCode {
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(fmt.Sprintf("$%02x", b))
		}
	}

	s.WriteString("\n")

	_, err := output.Write([]byte(s.String()))
	return err
}
