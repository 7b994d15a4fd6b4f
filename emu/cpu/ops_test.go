package cpu

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/beanboi7/chyp8/emu/instruction"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected Op
	}{
		{0x0000, OpNOP},
		{0x00E0, OpCLS},
		{0x00EE, OpRET},
		{0x00E1, OpUnknown},
		{0x1ABC, OpJP},
		{0x2ABC, OpCALL},
		{0x3A12, OpSEByte},
		{0x4A12, OpSNEByte},
		{0x5AB0, OpSEReg},
		{0x5AB1, OpUnknown},
		{0x6A12, OpLDByte},
		{0x7A12, OpADDByte},
		{0x8AB0, OpLDReg},
		{0x8AB1, OpOR},
		{0x8AB2, OpAND},
		{0x8AB3, OpXOR},
		{0x8AB4, OpADDReg},
		{0x8AB5, OpSUB},
		{0x8AB6, OpSHR},
		{0x8AB7, OpSUBN},
		{0x8ABE, OpSHL},
		{0x8AB8, OpUnknown},
		{0x9AB0, OpSNEReg},
		{0x9AB1, OpUnknown},
		{0xAABC, OpLDI},
		{0xBABC, OpJPV0},
		{0xCA12, OpRND},
		{0xDAB5, OpDRW},
		{0xEA9E, OpSKP},
		{0xEAA1, OpSKNP},
		{0xEA00, OpUnknown},
		{0xFA07, OpLDVxDT},
		{0xFA0A, OpLDVxK},
		{0xFA15, OpLDDTVx},
		{0xFA18, OpLDSTVx},
		{0xFA1E, OpADDI},
		{0xFA29, OpLDF},
		{0xFA33, OpLDB},
		{0xFA55, OpLDIVx},
		{0xFA65, OpLDVxI},
		{0xFAFF, OpUnknown},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.opcode), func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(instruction.Instruction(tt.opcode)))
		})
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "ADD Vx, Vy", OpADDReg.String())
	assert.Equal(t, "???", Op(200).String())
}

// every op except the unimplemented ones must have a handler
func TestHandlerTable(t *testing.T) {
	unimplemented := map[Op]bool{
		OpUnknown: true, OpDRW: true, OpLDDTVx: true, OpLDSTVx: true, OpADDI: true,
		OpLDF: true, OpLDB: true, OpLDIVx: true, OpLDVxI: true,
	}
	for op := Op(0); op < opCount; op++ {
		assert.Equal(t, unimplemented[op], handlers[op] == nil, op.String())
	}
}
