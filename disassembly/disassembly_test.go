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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/hexkey/gopher8/disassembly"
	"github.com/hexkey/gopher8/romloader"
	"github.com/hexkey/gopher8/test"
)

func TestDisassembly(t *testing.T) {
	loader := romloader.Loader{
		Filename: "test.ch8",
		Data: []uint8{
			0x00, 0xe0, // CLS
			0x6a, 0x02, // LD VA, #$02
			0xa2, 0x1e, // LD I, $21e
			0xd0, 0x15, // DRW V0, V1, $5
			0xff, 0xff, // does not decode
			0x30, // lone data byte
		},
	}

	dsm := disassembly.FromLoader(loader)
	test.ExpectEquality(t, len(dsm.Entries), 6)

	s := &strings.Builder{}
	err := dsm.Write(s, disassembly.WriteAttr{})
	test.ExpectSuccess(t, err)

	expected := "$0200  CLS\n" +
		"$0202  LD VA, #$02\n" +
		"$0204  LD I, $21e\n" +
		"$0206  DRW V0, V1, $5\n" +
		"$0208  .db $ff, $ff\n" +
		"$020a  .db $30\n"
	test.ExpectEquality(t, s.String(), expected)
}

func TestDisassemblyByteCode(t *testing.T) {
	loader := romloader.Loader{
		Filename: "test.ch8",
		Data: []uint8{
			0x12, 0x00, // JP $200
			0x80, 0x14, // ADD V0, V1
			0xfc, // lone data byte
		},
	}

	dsm := disassembly.FromLoader(loader)

	s := &strings.Builder{}
	err := dsm.Write(s, disassembly.WriteAttr{ByteCode: true})
	test.ExpectSuccess(t, err)

	expected := "$0200  1200  JP $200\n" +
		"$0202  8014  ADD V0, V1\n" +
		"$0204  fc    .db $fc\n"
	test.ExpectEquality(t, s.String(), expected)
}
