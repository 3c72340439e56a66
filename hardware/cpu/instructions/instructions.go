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

package instructions

import (
	"fmt"

	"github.com/hexkey/gopher8/curated"
)

// sentinel error returned by Decode.
const UnknownOpcode = "instructions: unknown opcode (%#04x)"

// Operator identifies one of the thirty-five operations in the CHIP-8
// instruction set. Several operators share a mnemonic; the operator is what
// execution switches on.
type Operator int

// List of operators, in opcode order.
const (
	Clear Operator = iota // 00E0
	Return                // 00EE
	Sys                   // 0NNN
	Jump                  // 1NNN
	Call                  // 2NNN
	SkipEqual             // 3XNN
	SkipNotEqual          // 4XNN
	SkipEqualRegister     // 5XY0
	Load                  // 6XNN
	Add                   // 7XNN
	Move                  // 8XY0
	Or                    // 8XY1
	And                   // 8XY2
	Xor                   // 8XY3
	AddRegister           // 8XY4
	Sub                   // 8XY5
	ShiftRight            // 8XY6
	SubNegate             // 8XY7
	ShiftLeft             // 8XYE
	SkipNotEqualRegister  // 9XY0
	LoadIndex             // ANNN
	JumpOffset            // BNNN
	Random                // CXNN
	Draw                  // DXYN
	SkipPressed           // EX9E
	SkipNotPressed        // EXA1
	ReadDelay             // FX07
	WaitKey               // FX0A
	SetDelay              // FX15
	SetSound              // FX18
	AddIndex              // FX1E
	FontAddress           // FX29
	StoreDigits           // FX33
	StoreRegisters        // FX55
	ReadRegisters         // FX65
)

// EffectCategory categorises an instruction by the part of the machine it
// affects.
type EffectCategory int

// List of effect categories.
const (
	// register, index and memory movement; arithmetic
	Data EffectCategory = iota

	// jumps, calls and conditional skips
	Flow

	// drawing and clearing
	Screen

	// keypad tests and waits
	Input

	// delay and sound timer access
	Timer
)

// Definition defines one instruction form. An opcode belongs to the form
// when masking it with Mask leaves Value.
type Definition struct {
	Value    uint16
	Mask     uint16
	Operator Operator
	Mnemonic string
	Effect   EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%s (%04x/%04x)", defn.Mnemonic, defn.Value, defn.Mask)
}

// Peripheral returns true if the instruction touches hardware outside of
// the CPU. These are the instructions whose timing a program can observe
// and the only ones worth pausing for when pacing execution.
func (defn Definition) Peripheral() bool {
	switch defn.Effect {
	case Screen, Input, Timer:
		return true
	}
	return false
}

// Definitions is the table of instruction forms in decode order. Order
// matters for the 00E0 and 00EE forms, which would otherwise match the
// 0NNN pattern.
var Definitions = []*Definition{
	{Value: 0x00e0, Mask: 0xffff, Operator: Clear, Mnemonic: "CLS", Effect: Screen},
	{Value: 0x00ee, Mask: 0xffff, Operator: Return, Mnemonic: "RET", Effect: Flow},
	{Value: 0x0000, Mask: 0xf000, Operator: Sys, Mnemonic: "SYS", Effect: Flow},
	{Value: 0x1000, Mask: 0xf000, Operator: Jump, Mnemonic: "JP", Effect: Flow},
	{Value: 0x2000, Mask: 0xf000, Operator: Call, Mnemonic: "CALL", Effect: Flow},
	{Value: 0x3000, Mask: 0xf000, Operator: SkipEqual, Mnemonic: "SE", Effect: Flow},
	{Value: 0x4000, Mask: 0xf000, Operator: SkipNotEqual, Mnemonic: "SNE", Effect: Flow},
	{Value: 0x5000, Mask: 0xf00f, Operator: SkipEqualRegister, Mnemonic: "SE", Effect: Flow},
	{Value: 0x6000, Mask: 0xf000, Operator: Load, Mnemonic: "LD", Effect: Data},
	{Value: 0x7000, Mask: 0xf000, Operator: Add, Mnemonic: "ADD", Effect: Data},
	{Value: 0x8000, Mask: 0xf00f, Operator: Move, Mnemonic: "LD", Effect: Data},
	{Value: 0x8001, Mask: 0xf00f, Operator: Or, Mnemonic: "OR", Effect: Data},
	{Value: 0x8002, Mask: 0xf00f, Operator: And, Mnemonic: "AND", Effect: Data},
	{Value: 0x8003, Mask: 0xf00f, Operator: Xor, Mnemonic: "XOR", Effect: Data},
	{Value: 0x8004, Mask: 0xf00f, Operator: AddRegister, Mnemonic: "ADD", Effect: Data},
	{Value: 0x8005, Mask: 0xf00f, Operator: Sub, Mnemonic: "SUB", Effect: Data},
	{Value: 0x8006, Mask: 0xf00f, Operator: ShiftRight, Mnemonic: "SHR", Effect: Data},
	{Value: 0x8007, Mask: 0xf00f, Operator: SubNegate, Mnemonic: "SUBN", Effect: Data},
	{Value: 0x800e, Mask: 0xf00f, Operator: ShiftLeft, Mnemonic: "SHL", Effect: Data},
	{Value: 0x9000, Mask: 0xf00f, Operator: SkipNotEqualRegister, Mnemonic: "SNE", Effect: Flow},
	{Value: 0xa000, Mask: 0xf000, Operator: LoadIndex, Mnemonic: "LD", Effect: Data},
	{Value: 0xb000, Mask: 0xf000, Operator: JumpOffset, Mnemonic: "JP", Effect: Flow},
	{Value: 0xc000, Mask: 0xf000, Operator: Random, Mnemonic: "RND", Effect: Data},
	{Value: 0xd000, Mask: 0xf000, Operator: Draw, Mnemonic: "DRW", Effect: Screen},
	{Value: 0xe09e, Mask: 0xf0ff, Operator: SkipPressed, Mnemonic: "SKP", Effect: Input},
	{Value: 0xe0a1, Mask: 0xf0ff, Operator: SkipNotPressed, Mnemonic: "SKNP", Effect: Input},
	{Value: 0xf007, Mask: 0xf0ff, Operator: ReadDelay, Mnemonic: "LD", Effect: Timer},
	{Value: 0xf00a, Mask: 0xf0ff, Operator: WaitKey, Mnemonic: "LD", Effect: Input},
	{Value: 0xf015, Mask: 0xf0ff, Operator: SetDelay, Mnemonic: "LD", Effect: Timer},
	{Value: 0xf018, Mask: 0xf0ff, Operator: SetSound, Mnemonic: "LD", Effect: Timer},
	{Value: 0xf01e, Mask: 0xf0ff, Operator: AddIndex, Mnemonic: "ADD", Effect: Data},
	{Value: 0xf029, Mask: 0xf0ff, Operator: FontAddress, Mnemonic: "LD", Effect: Data},
	{Value: 0xf033, Mask: 0xf0ff, Operator: StoreDigits, Mnemonic: "LD", Effect: Data},
	{Value: 0xf055, Mask: 0xf0ff, Operator: StoreRegisters, Mnemonic: "LD", Effect: Data},
	{Value: 0xf065, Mask: 0xf0ff, Operator: ReadRegisters, Mnemonic: "LD", Effect: Data},
}

// Instruction is a decoded opcode. The operand fields are all extracted
// regardless of which of them the instruction form actually uses.
type Instruction struct {
	OpCode uint16
	Defn   *Definition

	// register operands
	X uint8
	Y uint8

	// literal operands
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode an opcode into an Instruction. Pure: no machine state is consulted
// or affected. Opcodes matching none of the thirty-five instruction forms
// return an UnknownOpcode error.
func Decode(opcode uint16) (Instruction, error) {
	for _, defn := range Definitions {
		if opcode&defn.Mask == defn.Value {
			return Instruction{
				OpCode: opcode,
				Defn:   defn,
				X:      uint8(opcode >> 8 & 0x000f),
				Y:      uint8(opcode >> 4 & 0x000f),
				N:      uint8(opcode & 0x000f),
				NN:     uint8(opcode & 0x00ff),
				NNN:    opcode & 0x0fff,
			}, nil
		}
	}
	return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
}

// String returns the instruction in conventional assembly notation.
// Registers are written V0 to VF; literal bytes take a # prefix and
// addresses a $ prefix.
func (ins Instruction) String() string {
	switch ins.Defn.Operator {
	case Clear, Return:
		return ins.Defn.Mnemonic
	case Sys, Jump, Call:
		return fmt.Sprintf("%s $%03x", ins.Defn.Mnemonic, ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("%s V0, $%03x", ins.Defn.Mnemonic, ins.NNN)
	case LoadIndex:
		return fmt.Sprintf("%s I, $%03x", ins.Defn.Mnemonic, ins.NNN)
	case SkipEqual, SkipNotEqual, Load, Add, Random:
		return fmt.Sprintf("%s V%X, #$%02x", ins.Defn.Mnemonic, ins.X, ins.NN)
	case SkipEqualRegister, SkipNotEqualRegister, Move, Or, And, Xor, AddRegister, Sub, SubNegate:
		return fmt.Sprintf("%s V%X, V%X", ins.Defn.Mnemonic, ins.X, ins.Y)
	case ShiftRight, ShiftLeft, SkipPressed, SkipNotPressed:
		return fmt.Sprintf("%s V%X", ins.Defn.Mnemonic, ins.X)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, $%x", ins.Defn.Mnemonic, ins.X, ins.Y, ins.N)
	case ReadDelay:
		return fmt.Sprintf("%s V%X, DT", ins.Defn.Mnemonic, ins.X)
	case WaitKey:
		return fmt.Sprintf("%s V%X, K", ins.Defn.Mnemonic, ins.X)
	case SetDelay:
		return fmt.Sprintf("%s DT, V%X", ins.Defn.Mnemonic, ins.X)
	case SetSound:
		return fmt.Sprintf("%s ST, V%X", ins.Defn.Mnemonic, ins.X)
	case AddIndex:
		return fmt.Sprintf("%s I, V%X", ins.Defn.Mnemonic, ins.X)
	case FontAddress:
		return fmt.Sprintf("%s F, V%X", ins.Defn.Mnemonic, ins.X)
	case StoreDigits:
		return fmt.Sprintf("%s B, V%X", ins.Defn.Mnemonic, ins.X)
	case StoreRegisters:
		return fmt.Sprintf("%s [I], V%X", ins.Defn.Mnemonic, ins.X)
	case ReadRegisters:
		return fmt.Sprintf("%s V%X, [I]", ins.Defn.Mnemonic, ins.X)
	}
	return "unknown instruction"
}
