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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Cycler is implemented by types that can say how many instructions the
// emulation has executed since the machine was switched on.
type Cycler interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. Two emulations with the same base seed will see the same value
// for the same cycle count.
type Random struct {
	cyc Cycler

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(cyc Cycler) *Random {
	return &Random{
		cyc: cyc,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.cyc.Cycles())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.cyc.Cycles())))
}

func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
