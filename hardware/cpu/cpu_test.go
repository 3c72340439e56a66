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

package cpu_test

import (
	"context"
	"testing"
	"time"

	"github.com/hexkey/gopher8/hardware/cpu"
	"github.com/hexkey/gopher8/hardware/cpu/instructions"
	"github.com/hexkey/gopher8/hardware/keypad"
	"github.com/hexkey/gopher8/hardware/memory"
	"github.com/hexkey/gopher8/hardware/screen"
	"github.com/hexkey/gopher8/hardware/timers"
	"github.com/hexkey/gopher8/test"
)

type testMachine struct {
	mem *memory.Memory
	scr *screen.Screen
	key *keypad.Keypad
	tmr *timers.Timers
	mc  *cpu.CPU
}

func newTestMachine() *testMachine {
	m := &testMachine{
		mem: memory.NewMemory(),
		scr: screen.NewScreen(),
		key: keypad.NewKeypad(),
		tmr: timers.NewTimers(),
	}
	m.mc = cpu.NewCPU(m.mem, m.scr, m.key, m.tmr)
	return m
}

// decode and execute a single instruction.
func (m *testMachine) step(t *testing.T, opcode uint16) {
	t.Helper()
	ins, err := instructions.Decode(opcode)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.mc.ExecuteInstruction(context.Background(), ins))
}

func TestAdditionCarry(t *testing.T) {
	m := newTestMachine()

	m.mc.V[0] = 200
	m.mc.V[1] = 100
	m.step(t, 0x8014)
	test.ExpectEquality(t, m.mc.V[0], 44)
	test.ExpectEquality(t, m.mc.V[0xf], 1)

	m.mc.V[0] = 10
	m.mc.V[1] = 20
	m.step(t, 0x8014)
	test.ExpectEquality(t, m.mc.V[0], 30)
	test.ExpectEquality(t, m.mc.V[0xf], 0)

	// when VF is the destination the flag write wins over the sum
	m.mc.V[0xf] = 3
	m.mc.V[4] = 200
	m.step(t, 0x8f44)
	test.ExpectEquality(t, m.mc.V[0xf], 0)

	m.mc.V[0xf] = 200
	m.mc.V[4] = 100
	m.step(t, 0x8f44)
	test.ExpectEquality(t, m.mc.V[0xf], 1)
}

func TestSubtractionBorrow(t *testing.T) {
	m := newTestMachine()

	m.mc.V[0] = 30
	m.mc.V[1] = 10
	m.step(t, 0x8015)
	test.ExpectEquality(t, m.mc.V[0], 20)
	test.ExpectEquality(t, m.mc.V[0xf], 1)

	m.mc.V[0] = 10
	m.mc.V[1] = 30
	m.step(t, 0x8015)
	test.ExpectEquality(t, m.mc.V[0], 236)
	test.ExpectEquality(t, m.mc.V[0xf], 0)

	// equal operands leave no borrow
	m.mc.V[0] = 25
	m.mc.V[1] = 25
	m.step(t, 0x8015)
	test.ExpectEquality(t, m.mc.V[0], 0)
	test.ExpectEquality(t, m.mc.V[0xf], 1)
}

func TestSubtractionReversed(t *testing.T) {
	m := newTestMachine()

	m.mc.V[0] = 10
	m.mc.V[1] = 30
	m.step(t, 0x8017)
	test.ExpectEquality(t, m.mc.V[0], 20)
	test.ExpectEquality(t, m.mc.V[0xf], 1)

	m.mc.V[0] = 30
	m.mc.V[1] = 10
	m.step(t, 0x8017)
	test.ExpectEquality(t, m.mc.V[0], 236)
	test.ExpectEquality(t, m.mc.V[0xf], 0)
}

func TestShifts(t *testing.T) {
	m := newTestMachine()

	// the classic forms shift VY into VX
	m.mc.V[1] = 0xaa
	m.mc.V[2] = 0x05
	m.step(t, 0x8126)
	test.ExpectEquality(t, m.mc.V[1], 0x02)
	test.ExpectEquality(t, m.mc.V[2], 0x05)
	test.ExpectEquality(t, m.mc.V[0xf], 1)

	m.mc.V[2] = 0x81
	m.step(t, 0x812e)
	test.ExpectEquality(t, m.mc.V[1], 0x02)
	test.ExpectEquality(t, m.mc.V[0xf], 1)

	// the flag write comes after the result write
	m.mc.V[2] = 0x02
	m.step(t, 0x8f26)
	test.ExpectEquality(t, m.mc.V[0xf], 0)
}

func TestShiftQuirk(t *testing.T) {
	m := newTestMachine()
	m.mc.ShiftQuirk = true

	// VX shifted in place, VY ignored
	m.mc.V[1] = 0x06
	m.mc.V[2] = 0xff
	m.step(t, 0x8126)
	test.ExpectEquality(t, m.mc.V[1], 0x03)
	test.ExpectEquality(t, m.mc.V[2], 0xff)
	test.ExpectEquality(t, m.mc.V[0xf], 0)

	m.mc.V[1] = 0x81
	m.step(t, 0x812e)
	test.ExpectEquality(t, m.mc.V[1], 0x02)
	test.ExpectEquality(t, m.mc.V[0xf], 1)
}

func TestBCD(t *testing.T) {
	m := newTestMachine()

	m.mc.V[3] = 255
	m.mc.I = 0x300
	m.step(t, 0xf333)
	b, err := m.mem.ReadRange(0x300, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b[0], 2)
	test.ExpectEquality(t, b[1], 5)
	test.ExpectEquality(t, b[2], 5)

	m.mc.V[3] = 7
	m.step(t, 0xf333)
	b, err = m.mem.ReadRange(0x300, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b[0], 0)
	test.ExpectEquality(t, b[1], 0)
	test.ExpectEquality(t, b[2], 7)
}

func TestBCDOutOfRange(t *testing.T) {
	m := newTestMachine()

	// the write would stray past the end of memory. nothing is written and
	// the program carries on
	m.mc.V[3] = 123
	m.mc.I = memory.MemorySize - 2
	m.step(t, 0xf333)

	b, err := m.mem.ReadRange(memory.MemorySize-2, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b[0], 0)
	test.ExpectEquality(t, b[1], 0)
	test.ExpectEquality(t, m.mc.PC, uint16(memory.ProgramStart+2))
	test.ExpectEquality(t, m.mc.Cycles(), 1)
}

func TestDumpLoadRoundTrip(t *testing.T) {
	m := newTestMachine()

	for i := 0; i <= 7; i++ {
		m.mc.V[i] = uint8(i * 3)
	}
	m.mc.I = 0x400
	m.step(t, 0xf755)
	test.ExpectEquality(t, m.mc.I, uint16(0x408))

	b, err := m.mem.ReadRange(0x400, 8)
	test.DemandSuccess(t, err)
	for i := 0; i <= 7; i++ {
		test.ExpectEquality(t, b[i], uint8(i*3))
	}

	for i := 0; i <= 7; i++ {
		m.mc.V[i] = 0xee
	}
	m.mc.I = 0x400
	m.step(t, 0xf765)
	test.ExpectEquality(t, m.mc.I, uint16(0x408))
	for i := 0; i <= 7; i++ {
		test.ExpectEquality(t, m.mc.V[i], uint8(i*3))
	}

	// V8 onwards untouched by both directions
	test.ExpectEquality(t, m.mc.V[8], 0)
}

func TestDumpLoadIndexQuirk(t *testing.T) {
	m := newTestMachine()
	m.mc.IndexQuirk = true

	m.mc.V[0] = 99
	m.mc.I = 0x500
	m.step(t, 0xf055)
	test.ExpectEquality(t, m.mc.I, uint16(0x500))

	m.step(t, 0xf065)
	test.ExpectEquality(t, m.mc.I, uint16(0x500))
	test.ExpectEquality(t, m.mc.V[0], 99)
}

func TestCallReturn(t *testing.T) {
	m := newTestMachine()

	m.step(t, 0x2300)
	test.ExpectEquality(t, m.mc.PC, uint16(0x300))
	test.ExpectEquality(t, m.mc.Depth(), 1)

	m.step(t, 0x2400)
	test.ExpectEquality(t, m.mc.PC, uint16(0x400))
	test.ExpectEquality(t, m.mc.Depth(), 2)

	// returns resume at the instruction after each call
	m.step(t, 0x00ee)
	test.ExpectEquality(t, m.mc.PC, uint16(0x302))
	m.step(t, 0x00ee)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
	test.ExpectEquality(t, m.mc.Depth(), 0)
}

func TestEmptyStackReturn(t *testing.T) {
	m := newTestMachine()

	m.step(t, 0x00ee)
	test.ExpectEquality(t, m.mc.PC, uint16(memory.ProgramStart))
	test.ExpectEquality(t, m.mc.Depth(), 0)

	// the instruction still counts as executed
	test.ExpectEquality(t, m.mc.Cycles(), 1)
}

func TestSkips(t *testing.T) {
	m := newTestMachine()

	m.step(t, 0x6a02)
	test.ExpectEquality(t, m.mc.V[0xa], 0x02)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))

	m.step(t, 0x3a02)
	test.ExpectEquality(t, m.mc.PC, uint16(0x206))

	m.step(t, 0x3a03)
	test.ExpectEquality(t, m.mc.PC, uint16(0x208))

	m.step(t, 0x4a03)
	test.ExpectEquality(t, m.mc.PC, uint16(0x20c))

	m.mc.V[0xb] = 0x02
	m.step(t, 0x5ab0)
	test.ExpectEquality(t, m.mc.PC, uint16(0x210))

	m.step(t, 0x9ab0)
	test.ExpectEquality(t, m.mc.PC, uint16(0x212))

	m.mc.V[0xb] = 0x03
	m.step(t, 0x9ab0)
	test.ExpectEquality(t, m.mc.PC, uint16(0x216))
}

func TestJumps(t *testing.T) {
	m := newTestMachine()

	m.step(t, 0x1234)
	test.ExpectEquality(t, m.mc.PC, uint16(0x234))

	m.mc.V[0] = 0x10
	m.step(t, 0xb200)
	test.ExpectEquality(t, m.mc.PC, uint16(0x210))
}

func TestRandomMask(t *testing.T) {
	m := newTestMachine()

	for i := 0; i < 32; i++ {
		m.step(t, 0xc00f)
		test.ExpectEquality(t, m.mc.V[0]&0xf0, 0)
	}

	m.step(t, 0xc300)
	test.ExpectEquality(t, m.mc.V[3], 0)
}

func TestFontAndDraw(t *testing.T) {
	m := newTestMachine()

	m.mc.V[0] = 0x0a
	m.step(t, 0xf029)
	test.ExpectEquality(t, m.mc.I, memory.FontAddress(0x0a))

	// draw the zero glyph at the origin
	m.mc.V[0] = 0x00
	m.step(t, 0xf029)
	test.ExpectEquality(t, m.mc.I, memory.FontAddress(0x00))

	m.mc.V[1] = 0
	m.mc.V[2] = 0
	m.step(t, 0xd125)
	test.ExpectEquality(t, m.mc.V[0xf], 0)

	n := 0
	for _, row := range m.scr.Snapshot(false) {
		for _, p := range row {
			if p {
				n++
			}
		}
	}
	test.ExpectEquality(t, n, 14)

	// drawing the same glyph again erases it and reports the collision
	m.step(t, 0xd125)
	test.ExpectEquality(t, m.mc.V[0xf], 1)

	n = 0
	for _, row := range m.scr.Snapshot(false) {
		for _, p := range row {
			if p {
				n++
			}
		}
	}
	test.ExpectEquality(t, n, 0)
}

func TestKeySkips(t *testing.T) {
	m := newTestMachine()

	m.mc.V[4] = 0x07
	m.key.SetKey(0x07, true)

	m.step(t, 0xe49e)
	test.ExpectEquality(t, m.mc.PC, uint16(0x204))

	m.step(t, 0xe4a1)
	test.ExpectEquality(t, m.mc.PC, uint16(0x206))

	m.key.SetKey(0x07, false)
	m.step(t, 0xe49e)
	test.ExpectEquality(t, m.mc.PC, uint16(0x208))
	m.step(t, 0xe4a1)
	test.ExpectEquality(t, m.mc.PC, uint16(0x20c))
}

func TestDelayTimer(t *testing.T) {
	m := newTestMachine()

	m.mc.V[5] = 60
	m.step(t, 0xf515)
	test.ExpectAbsorbedDifference(t, int(m.tmr.Delay()), 60, 1)

	m.step(t, 0xf607)
	test.ExpectAbsorbedDifference(t, int(m.mc.V[6]), 60, 1)
}

func TestSoundTimer(t *testing.T) {
	m := newTestMachine()

	m.mc.V[4] = 30
	m.step(t, 0xf418)
	test.ExpectAbsorbedDifference(t, int(m.tmr.Sound()), 30, 1)

	select {
	case <-m.tmr.SoundChange():
	default:
		t.Fatalf("setting the sound timer did not signal a change")
	}
}

func TestAddIndex(t *testing.T) {
	m := newTestMachine()

	m.mc.I = 0x0fff
	m.mc.V[0] = 0x01
	m.mc.V[0xf] = 0
	m.step(t, 0xf01e)
	test.ExpectEquality(t, m.mc.I, uint16(0x1000))
	test.ExpectEquality(t, m.mc.V[0xf], 0)
}

func TestWaitKey(t *testing.T) {
	m := newTestMachine()

	ins, err := instructions.Decode(0xf50a)
	test.DemandSuccess(t, err)

	done := make(chan error)
	go func() {
		done <- m.mc.ExecuteInstruction(context.Background(), ins)
	}()

	time.Sleep(10 * time.Millisecond)
	m.key.SetKey(0x0b, true)

	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, m.mc.V[5], 0x0b)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
}

func TestWaitKeyRelease(t *testing.T) {
	m := newTestMachine()
	m.mc.WaitForRelease = true

	ins, err := instructions.Decode(0xf50a)
	test.DemandSuccess(t, err)

	done := make(chan error)
	go func() {
		done <- m.mc.ExecuteInstruction(context.Background(), ins)
	}()

	// a press is not enough
	time.Sleep(10 * time.Millisecond)
	m.key.SetKey(0x02, true)
	select {
	case <-done:
		t.Fatalf("wait ended on a key press")
	case <-time.After(50 * time.Millisecond):
	}

	m.key.SetKey(0x02, false)
	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, m.mc.V[5], 0x02)
}

func TestWaitKeyCancellation(t *testing.T) {
	m := newTestMachine()

	ins, err := instructions.Decode(0xf50a)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- m.mc.ExecuteInstruction(ctx, ins)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	// the instruction is abandoned rather than completed
	test.ExpectFailure(t, <-done)
	test.ExpectEquality(t, m.mc.PC, uint16(memory.ProgramStart))
	test.ExpectEquality(t, m.mc.Cycles(), 0)
}

func TestThrottle(t *testing.T) {
	m := newTestMachine()
	m.mc.Frequency = 1000

	// run up a sleep debt of around a tenth of a second
	for i := 0; i < 100; i++ {
		m.step(t, 0x6000)
	}

	// the zero bytes at the program counter decode to a SYS instruction,
	// which is not peripheral, so no pause happens
	start := time.Now()
	test.ExpectSuccess(t, m.mc.SyncTime(context.Background(), false))
	test.ExpectEquality(t, time.Since(start) < 50*time.Millisecond, true)

	// a peripheral instruction at the program counter settles the debt
	err := m.mem.WriteRange(m.mc.PC, []uint8{0xf0, 0x15})
	test.DemandSuccess(t, err)

	start = time.Now()
	test.ExpectSuccess(t, m.mc.SyncTime(context.Background(), false))
	test.ExpectEquality(t, time.Since(start) > 50*time.Millisecond, true)
}

func TestThrottleForce(t *testing.T) {
	m := newTestMachine()
	m.mc.Frequency = 1000

	for i := 0; i < 100; i++ {
		m.step(t, 0x6000)
	}

	start := time.Now()
	test.ExpectSuccess(t, m.mc.SyncTime(context.Background(), true))
	test.ExpectEquality(t, time.Since(start) > 50*time.Millisecond, true)
}

func TestThrottleUnlimited(t *testing.T) {
	m := newTestMachine()
	m.mc.Frequency = 0

	for i := 0; i < 100; i++ {
		m.step(t, 0x6000)
	}

	start := time.Now()
	test.ExpectSuccess(t, m.mc.SyncTime(context.Background(), true))
	test.ExpectEquality(t, time.Since(start) < 50*time.Millisecond, true)
}

func TestThrottleCancellation(t *testing.T) {
	m := newTestMachine()
	m.mc.Frequency = 10

	// a full second of debt
	for i := 0; i < 10; i++ {
		m.step(t, 0x6000)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	test.ExpectFailure(t, m.mc.SyncTime(ctx, true))
	test.ExpectEquality(t, time.Since(start) < 500*time.Millisecond, true)
}

func TestReset(t *testing.T) {
	m := newTestMachine()
	m.mc.ShiftQuirk = true

	m.step(t, 0x6a02)
	m.step(t, 0x2300)
	m.mc.I = 0x123

	m.mc.Reset()
	test.ExpectEquality(t, m.mc.PC, uint16(memory.ProgramStart))
	test.ExpectEquality(t, m.mc.I, uint16(0))
	test.ExpectEquality(t, m.mc.V[0xa], 0)
	test.ExpectEquality(t, m.mc.Depth(), 0)
	test.ExpectEquality(t, m.mc.Cycles(), uint64(0))

	// configuration survives a reset
	test.ExpectEquality(t, m.mc.ShiftQuirk, true)
}
