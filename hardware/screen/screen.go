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

package screen

import (
	"strings"
	"sync"

	"github.com/hexkey/gopher8/logger"
)

// Dimensions of the visible grid.
const (
	Width  = 64
	Height = 32
)

// Screen is the monochrome bitmap display of the CHIP-8 machine. Pixels are
// false for background and true for foreground.
//
// All operations take place under a single lock. The CPU goroutine draws
// and the render goroutine takes snapshots; neither ever sees a partially
// drawn frame.
type Screen struct {
	crit sync.Mutex

	// Wrap causes sprite pixels that fall outside of the visible grid to
	// reappear on the opposite edge. When false those pixels are simply not
	// drawn. Set before the machine starts running.
	Wrap bool

	// AllowOOB controls how starting coordinates outside of the visible
	// grid are treated: wrapped into range when true; rejected (logged,
	// nothing drawn) when false. Set before the machine starts running.
	AllowOOB bool

	pixels [Height][Width]bool

	// whether the screen has changed since the last consuming snapshot
	drawFlag bool
}

// NewScreen is the preferred method of initialisation for the Screen type.
// Sprites wrap around the grid edges; out of bounds starting coordinates are
// rejected.
func NewScreen() *Screen {
	scr := &Screen{
		Wrap: true,
	}
	scr.Clear()
	return scr
}

// Clear the screen, setting every pixel to the background colour.
func (scr *Screen) Clear() {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	scr.pixels = [Height][Width]bool{}
	scr.drawFlag = true
}

// DrawSprite XOR-composes a sprite onto the screen at column x, row y. Each
// sprite byte is one row of eight pixels, most significant bit leftmost.
//
// Returns true if any pixel that was on has been turned off by the draw.
func (scr *Screen) DrawSprite(sprite []uint8, x int, y int) bool {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	// starting coordinates out of bounds are resolved by the AllowOOB
	// policy: wrapped into the grid or rejected outright
	if x < 0 || x >= Width || y < 0 || y >= Height {
		if !scr.AllowOOB {
			logger.Logf("screen", "sprite coordinates out of bounds (%d, %d)", x, y)
			return false
		}
		x = ((x % Width) + Width) % Width
		y = ((y % Height) + Height) % Height
	}

	// true if an on pixel has been turned off
	collision := false

	for _, line := range sprite {
		mask := uint8(1)
		for i := 7; i >= 0; i-- {
			// pixels past the right edge are dropped when not wrapping
			if !(x+i >= Width && !scr.Wrap) {
				pixel := line&mask == mask
				if pixel && scr.pixels[y%Height][(x+i)%Width] {
					collision = true
				}
				scr.pixels[y%Height][(x+i)%Width] = scr.pixels[y%Height][(x+i)%Width] != pixel
			}
			mask <<= 1
		}
		y++
		if y >= Height && !scr.Wrap {
			break
		}
	}

	scr.drawFlag = true

	return collision
}

// Snapshot returns a deep copy of the pixel grid, indexed [row][column]. The
// caller can render it without holding up the emulation.
//
// When consume is true the draw flag is cleared in the same critical section
// that copies the grid; a draw arriving between the copy and the clearing of
// the flag can therefore never be lost.
func (scr *Screen) Snapshot(consume bool) [][]bool {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	grid := make([][]bool, Height)
	for y := 0; y < Height; y++ {
		grid[y] = make([]bool, Width)
		copy(grid[y], scr.pixels[y][:])
	}

	if consume {
		scr.drawFlag = false
	}

	return grid
}

// Modified returns true if the screen has changed since the last consuming
// Snapshot().
func (scr *Screen) Modified() bool {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	return scr.drawFlag
}

func (scr *Screen) String() string {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if scr.pixels[y][x] {
				s.WriteRune('X')
			} else {
				s.WriteRune(' ')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
