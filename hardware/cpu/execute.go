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

	"github.com/hexkey/gopher8/hardware/cpu/instructions"
	"github.com/hexkey/gopher8/hardware/keypad"
	"github.com/hexkey/gopher8/hardware/memory"
	"github.com/hexkey/gopher8/logger"
)

// The interpreter tolerates certain program errors, logging them and
// carrying on. The recover functions below are the only places where that
// policy lives; changing them to return an error would make the whole
// interpreter fail-fast.

// a memory access outside of the address space. the operation that wanted
// it is skipped.
func (cpu *CPU) recoverMemory(err error) {
	logger.Logf("cpu", "%v", err)
}

// a subroutine return with nothing on the stack. the program counter stays
// where it is.
func (cpu *CPU) recoverStack() {
	logger.Log("cpu", "subroutine return with an empty stack")
}

// a wait for key that produced something other than a key. key 0 is
// substituted.
func (cpu *CPU) recoverKey(key int) uint8 {
	if key >= 0 && key < keypad.NumKeys {
		return uint8(key)
	}
	logger.Logf("cpu", "wait for key returned %d; substituting key 0", key)
	return 0
}

// ExecuteInstruction executes a previously decoded instruction. The program
// counter is moved by the instruction itself: by two for most forms, by
// four for a satisfied skip and not at all by an unconditional jump or
// call.
//
// The context is consulted only by the wait-key instruction. On
// cancellation the instruction is abandoned with the program counter
// unmoved, so stepping can resume with the same instruction.
func (cpu *CPU) ExecuteInstruction(ctx context.Context, ins instructions.Instruction) error {
	switch ins.Defn.Operator {
	case instructions.Clear:
		cpu.scr.Clear()
		cpu.PC += 2

	case instructions.Return:
		if len(cpu.stack) == 0 {
			cpu.recoverStack()
		} else {
			cpu.PC = cpu.stack[len(cpu.stack)-1] + 2
			cpu.stack = cpu.stack[:len(cpu.stack)-1]
		}

	case instructions.Sys:
		// machine code routines on the host computer. nothing to call
		cpu.PC += 2

	case instructions.Jump:
		cpu.PC = ins.NNN

	case instructions.Call:
		// the address pushed is that of the call instruction itself; the
		// return adds the two
		cpu.stack = append(cpu.stack, cpu.PC)
		cpu.PC = ins.NNN

	case instructions.SkipEqual:
		if cpu.V[ins.X] == ins.NN {
			cpu.PC += 4
		} else {
			cpu.PC += 2
		}

	case instructions.SkipNotEqual:
		if cpu.V[ins.X] != ins.NN {
			cpu.PC += 4
		} else {
			cpu.PC += 2
		}

	case instructions.SkipEqualRegister:
		if cpu.V[ins.X] == cpu.V[ins.Y] {
			cpu.PC += 4
		} else {
			cpu.PC += 2
		}

	case instructions.Load:
		cpu.V[ins.X] = ins.NN
		cpu.PC += 2

	case instructions.Add:
		// no carry flag for the literal form
		cpu.V[ins.X] += ins.NN
		cpu.PC += 2

	case instructions.Move:
		cpu.V[ins.X] = cpu.V[ins.Y]
		cpu.PC += 2

	case instructions.Or:
		cpu.V[ins.X] |= cpu.V[ins.Y]
		cpu.PC += 2

	case instructions.And:
		cpu.V[ins.X] &= cpu.V[ins.Y]
		cpu.PC += 2

	case instructions.Xor:
		cpu.V[ins.X] ^= cpu.V[ins.Y]
		cpu.PC += 2

	case instructions.AddRegister:
		// the flag is written after the result so that it wins when VF is
		// the destination register
		r := uint16(cpu.V[ins.X]) + uint16(cpu.V[ins.Y])
		cpu.V[ins.X] = uint8(r)
		if r > 0xff {
			cpu.V[0xf] = 1
		} else {
			cpu.V[0xf] = 0
		}
		cpu.PC += 2

	case instructions.Sub:
		x := cpu.V[ins.X]
		y := cpu.V[ins.Y]
		cpu.V[ins.X] = x - y
		if x >= y {
			cpu.V[0xf] = 1
		} else {
			cpu.V[0xf] = 0
		}
		cpu.PC += 2

	case instructions.ShiftRight:
		src := cpu.V[ins.Y]
		if cpu.ShiftQuirk {
			src = cpu.V[ins.X]
		}
		cpu.V[ins.X] = src >> 1
		cpu.V[0xf] = src & 0x01
		cpu.PC += 2

	case instructions.SubNegate:
		x := cpu.V[ins.X]
		y := cpu.V[ins.Y]
		cpu.V[ins.X] = y - x
		if y >= x {
			cpu.V[0xf] = 1
		} else {
			cpu.V[0xf] = 0
		}
		cpu.PC += 2

	case instructions.ShiftLeft:
		src := cpu.V[ins.Y]
		if cpu.ShiftQuirk {
			src = cpu.V[ins.X]
		}
		cpu.V[ins.X] = src << 1
		cpu.V[0xf] = src >> 7
		cpu.PC += 2

	case instructions.SkipNotEqualRegister:
		if cpu.V[ins.X] != cpu.V[ins.Y] {
			cpu.PC += 4
		} else {
			cpu.PC += 2
		}

	case instructions.LoadIndex:
		cpu.I = ins.NNN
		cpu.PC += 2

	case instructions.JumpOffset:
		cpu.PC = ins.NNN + uint16(cpu.V[0])

	case instructions.Random:
		cpu.V[ins.X] = uint8(cpu.rnd.Intn(256)) & ins.NN
		cpu.PC += 2

	case instructions.Draw:
		sprite, err := cpu.mem.ReadRange(cpu.I, uint16(ins.N))
		if err != nil {
			cpu.recoverMemory(err)
		} else if cpu.scr.DrawSprite(sprite, int(cpu.V[ins.X]), int(cpu.V[ins.Y])) {
			cpu.V[0xf] = 1
		} else {
			cpu.V[0xf] = 0
		}
		cpu.PC += 2

	case instructions.SkipPressed:
		if cpu.key.IsPressed(int(cpu.V[ins.X])) {
			cpu.PC += 4
		} else {
			cpu.PC += 2
		}

	case instructions.SkipNotPressed:
		if !cpu.key.IsPressed(int(cpu.V[ins.X])) {
			cpu.PC += 4
		} else {
			cpu.PC += 2
		}

	case instructions.ReadDelay:
		cpu.V[ins.X] = cpu.tmr.Delay()
		cpu.PC += 2

	case instructions.WaitKey:
		key, err := cpu.key.WaitForChange(ctx, 0, cpu.WaitForRelease)
		if err != nil {
			return err
		}
		cpu.V[ins.X] = cpu.recoverKey(key)
		cpu.PC += 2

	case instructions.SetDelay:
		cpu.tmr.SetDelay(cpu.V[ins.X])
		cpu.PC += 2

	case instructions.SetSound:
		cpu.tmr.SetSound(cpu.V[ins.X])
		cpu.PC += 2

	case instructions.AddIndex:
		// no carry flag
		cpu.I += uint16(cpu.V[ins.X])
		cpu.PC += 2

	case instructions.FontAddress:
		cpu.I = memory.FontAddress(cpu.V[ins.X])
		cpu.PC += 2

	case instructions.StoreDigits:
		v := cpu.V[ins.X]
		err := cpu.mem.WriteRange(cpu.I, []uint8{v / 100, v / 10 % 10, v % 10})
		if err != nil {
			cpu.recoverMemory(err)
		}
		cpu.PC += 2

	case instructions.StoreRegisters:
		if err := cpu.mem.WriteRange(cpu.I, cpu.V[:ins.X+1]); err != nil {
			cpu.recoverMemory(err)
		} else if !cpu.IndexQuirk {
			cpu.I += uint16(ins.X) + 1
		}
		cpu.PC += 2

	case instructions.ReadRegisters:
		b, err := cpu.mem.ReadRange(cpu.I, uint16(ins.X)+1)
		if err != nil {
			cpu.recoverMemory(err)
		} else {
			copy(cpu.V[:ins.X+1], b)
			if !cpu.IndexQuirk {
				cpu.I += uint16(ins.X) + 1
			}
		}
		cpu.PC += 2

	default:
		panic(fmt.Sprintf("cpu: execution of %s has not been implemented", ins.Defn.Mnemonic))
	}

	cpu.cycles++

	return nil
}
