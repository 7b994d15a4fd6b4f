// Package instruction decodes the bit-fields of a raw CHIP-8 opcode.
package instruction

import "fmt"

// Instruction is one 16-bit opcode word as fetched from memory.
type Instruction uint16

// Digits returns the four nibbles of the opcode, highest first.
func (ins Instruction) Digits() (uint8, uint8, uint8, uint8) {
	return uint8(ins >> 12 & 0xF), uint8(ins >> 8 & 0xF), uint8(ins >> 4 & 0xF), uint8(ins & 0xF)
}

// NNN is the lowest 12 bits, a memory address.
func (ins Instruction) NNN() uint16 {
	return uint16(ins) & 0x0FFF
}

// N is the lowest nibble.
func (ins Instruction) N() uint8 {
	return uint8(ins & 0x000F)
}

// X is the lower nibble of the high byte, a register index.
func (ins Instruction) X() uint8 {
	return uint8(ins >> 8 & 0xF)
}

// Y is the upper nibble of the low byte, a register index.
func (ins Instruction) Y() uint8 {
	return uint8(ins >> 4 & 0xF)
}

// KK is the lowest 8 bits.
func (ins Instruction) KK() uint8 {
	return uint8(ins & 0x00FF)
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%04X", uint16(ins))
}
