package cpu

import "github.com/beanboi7/chyp8/emu/instruction"

// Op identifies an instruction family once the fixed nibbles of an opcode
// have been matched.
type Op uint8

const (
	OpUnknown Op = iota
	OpNOP        // 0000
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1nnn
	OpCALL       // 2nnn
	OpSEByte     // 3xkk
	OpSNEByte    // 4xkk
	OpSEReg      // 5xy0
	OpLDByte     // 6xkk
	OpADDByte    // 7xkk
	OpLDReg      // 8xy0
	OpOR         // 8xy1
	OpAND        // 8xy2
	OpXOR        // 8xy3
	OpADDReg     // 8xy4
	OpSUB        // 8xy5
	OpSHR        // 8xy6
	OpSUBN       // 8xy7
	OpSHL        // 8xyE
	OpSNEReg     // 9xy0
	OpLDI        // Annn
	OpJPV0       // Bnnn
	OpRND        // Cxkk
	OpDRW        // Dxyn
	OpSKP        // Ex9E
	OpSKNP       // ExA1
	OpLDVxDT     // Fx07
	OpLDVxK      // Fx0A
	OpLDDTVx     // Fx15
	OpLDSTVx     // Fx18
	OpADDI       // Fx1E
	OpLDF        // Fx29
	OpLDB        // Fx33
	OpLDIVx      // Fx55
	OpLDVxI      // Fx65

	opCount
)

var opNames = [opCount]string{
	OpUnknown: "???",
	OpNOP:     "NOP",
	OpCLS:     "CLS",
	OpRET:     "RET",
	OpJP:      "JP addr",
	OpCALL:    "CALL addr",
	OpSEByte:  "SE Vx, byte",
	OpSNEByte: "SNE Vx, byte",
	OpSEReg:   "SE Vx, Vy",
	OpLDByte:  "LD Vx, byte",
	OpADDByte: "ADD Vx, byte",
	OpLDReg:   "LD Vx, Vy",
	OpOR:      "OR Vx, Vy",
	OpAND:     "AND Vx, Vy",
	OpXOR:     "XOR Vx, Vy",
	OpADDReg:  "ADD Vx, Vy",
	OpSUB:     "SUB Vx, Vy",
	OpSHR:     "SHR Vx",
	OpSUBN:    "SUBN Vx, Vy",
	OpSHL:     "SHL Vx",
	OpSNEReg:  "SNE Vx, Vy",
	OpLDI:     "LD I, addr",
	OpJPV0:    "JP V0, addr",
	OpRND:     "RND Vx, byte",
	OpDRW:     "DRW Vx, Vy, nibble",
	OpSKP:     "SKP Vx",
	OpSKNP:    "SKNP Vx",
	OpLDVxDT:  "LD Vx, DT",
	OpLDVxK:   "LD Vx, K",
	OpLDDTVx:  "LD DT, Vx",
	OpLDSTVx:  "LD ST, Vx",
	OpADDI:    "ADD I, Vx",
	OpLDF:     "LD F, Vx",
	OpLDB:     "LD B, Vx",
	OpLDIVx:   "LD [I], Vx",
	OpLDVxI:   "LD Vx, [I]",
}

func (op Op) String() string {
	if op >= opCount {
		return opNames[OpUnknown]
	}
	return opNames[op]
}

// Decode matches the fixed nibbles of an opcode. Register and immediate
// nibbles are ignored.
func Decode(ins instruction.Instruction) Op {
	d1, _, _, d4 := ins.Digits()
	switch d1 {
	case 0x0:
		switch ins {
		case 0x0000:
			return OpNOP
		case 0x00E0:
			return OpCLS
		case 0x00EE:
			return OpRET
		}
	case 0x1:
		return OpJP
	case 0x2:
		return OpCALL
	case 0x3:
		return OpSEByte
	case 0x4:
		return OpSNEByte
	case 0x5:
		if d4 == 0 {
			return OpSEReg
		}
	case 0x6:
		return OpLDByte
	case 0x7:
		return OpADDByte
	case 0x8:
		switch d4 {
		case 0x0:
			return OpLDReg
		case 0x1:
			return OpOR
		case 0x2:
			return OpAND
		case 0x3:
			return OpXOR
		case 0x4:
			return OpADDReg
		case 0x5:
			return OpSUB
		case 0x6:
			return OpSHR
		case 0x7:
			return OpSUBN
		case 0xE:
			return OpSHL
		}
	case 0x9:
		if d4 == 0 {
			return OpSNEReg
		}
	case 0xA:
		return OpLDI
	case 0xB:
		return OpJPV0
	case 0xC:
		return OpRND
	case 0xD:
		return OpDRW
	case 0xE:
		switch ins.KK() {
		case 0x9E:
			return OpSKP
		case 0xA1:
			return OpSKNP
		}
	case 0xF:
		switch ins.KK() {
		case 0x07:
			return OpLDVxDT
		case 0x0A:
			return OpLDVxK
		case 0x15:
			return OpLDDTVx
		case 0x18:
			return OpLDSTVx
		case 0x1E:
			return OpADDI
		case 0x29:
			return OpLDF
		case 0x33:
			return OpLDB
		case 0x55:
			return OpLDIVx
		case 0x65:
			return OpLDVxI
		}
	}
	return OpUnknown
}
