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

package cpu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/hardware/cpu/instructions"
	"github.com/hexkey/gopher8/hardware/keypad"
	"github.com/hexkey/gopher8/hardware/memory"
	"github.com/hexkey/gopher8/hardware/screen"
	"github.com/hexkey/gopher8/hardware/timers"
	"github.com/hexkey/gopher8/random"
)

// DefaultFrequency is the execution speed used when nothing else has been
// asked for, in instructions per second.
const DefaultFrequency = 500

// CPU implements the CHIP-8 processor.
type CPU struct {
	mem *memory.Memory
	scr *screen.Screen
	key *keypad.Keypad
	tmr *timers.Timers

	// registers. V[0xf] doubles as the flag register and is clobbered by
	// the arithmetic, shift and draw instructions
	V  [16]uint8
	I  uint16
	PC uint16

	// subroutine return addresses. the stack has no fixed depth
	stack []uint16

	// number of instructions executed since the last reset
	cycles uint64

	// the moment of the last reset. the reference point for throttling
	startTime time.Time

	rnd *random.Random

	// Frequency is the target execution speed in instructions per second.
	// zero removes the throttle entirely
	Frequency int

	// ShiftQuirk selects the alternate form of the shift instructions in
	// which VX is shifted in place and VY ignored
	ShiftQuirk bool

	// IndexQuirk selects the alternate form of the register dump and load
	// instructions in which the index register is left unchanged
	IndexQuirk bool

	// WaitForRelease causes the wait-key instruction to react only to key
	// releases, the way the COSMAC VIP did
	WaitForRelease bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, scr *screen.Screen, key *keypad.Keypad, tmr *timers.Timers) *CPU {
	cpu := &CPU{
		mem:       mem,
		scr:       scr,
		key:       key,
		tmr:       tmr,
		Frequency: DefaultFrequency,
	}
	cpu.rnd = random.NewRandom(cpu)
	cpu.Reset()
	return cpu
}

// Reset the CPU. Registers are zeroed, the stack emptied and the program
// counter set to the program start address. Configuration fields are left
// alone.
func (cpu *CPU) Reset() {
	cpu.V = [16]uint8{}
	cpu.I = 0
	cpu.PC = memory.ProgramStart
	cpu.stack = cpu.stack[:0]
	cpu.cycles = 0
	cpu.startTime = time.Now()
}

// Cycles returns the number of instructions executed since the last reset.
func (cpu *CPU) Cycles() uint64 {
	return cpu.cycles
}

// Depth of the subroutine stack.
func (cpu *CPU) Depth() int {
	return len(cpu.stack)
}

func (cpu *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x sp=%d cycles=%d\n", cpu.PC, cpu.I, len(cpu.stack), cpu.cycles))
	for i, v := range cpu.V {
		s.WriteString(fmt.Sprintf("V%X=%02x ", i, v))
	}
	return strings.TrimSpace(s.String())
}

// FetchOpcode reads the two bytes at the program counter. The program
// counter is not advanced; execution of the instruction decides how it
// moves.
func (cpu *CPU) FetchOpcode() (uint16, error) {
	b, err := cpu.mem.ReadRange(cpu.PC, 2)
	if err != nil {
		return 0, curated.Errorf("cpu: %v", err)
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// SyncTime pauses execution as required to hold the CPU at the configured
// Frequency. A no-op when Frequency is zero.
//
// Pausing only happens when the instruction about to execute has a
// peripheral effect: a program can only perceive the passage of time
// through the screen, the keypad and the timers. Sleeps of less than a
// millisecond are skipped. The force argument pauses without looking at
// the next instruction.
//
// The sleep is cut short by cancellation of the context, which is the only
// error condition.
func (cpu *CPU) SyncTime(ctx context.Context, force bool) error {
	if cpu.Frequency <= 0 {
		return nil
	}

	if !force {
		// a failed fetch here is not an error. the same fetch will happen
		// again for execution and be reported then
		opcode, err := cpu.FetchOpcode()
		if err != nil {
			return nil
		}
		ins, err := instructions.Decode(opcode)
		if err != nil {
			return nil
		}
		if !ins.Defn.Peripheral() {
			return nil
		}
	}

	expected := time.Duration(cpu.cycles) * time.Second / time.Duration(cpu.Frequency)
	d := expected - time.Since(cpu.startTime)
	if d < time.Millisecond {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	return nil
}
