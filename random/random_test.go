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

package random_test

import (
	"testing"

	"github.com/hexkey/gopher8/random"
	"github.com/hexkey/gopher8/test"
)

type machine struct {
	cycles uint64
}

func (m *machine) Cycles() uint64 {
	return m.cycles
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&machine{cycles: 100})
	b := random.NewRandom(&machine{cycles: 100})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestRandomAdvancingClock(t *testing.T) {
	m := &machine{}
	a := random.NewRandom(m)
	a.ZeroSeed = true

	// gather a sequence of values over an advancing clock
	seq := make([]int, 0, 256)
	for m.cycles = 0; m.cycles < 256; m.cycles++ {
		seq = append(seq, a.Intn(256))
	}

	// rewinding the clock reproduces the same sequence
	for m.cycles = 0; m.cycles < 256; m.cycles++ {
		test.ExpectEquality(t, a.Intn(256), seq[m.cycles])
	}
}
