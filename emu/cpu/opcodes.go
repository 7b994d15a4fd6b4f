package cpu

import "github.com/beanboi7/chyp8/emu/instruction"

type handler func(emu *EMU, ins instruction.Instruction) error

// Ops missing from the table are recognised but not executed: Tick reports
// them as unimplemented.
var handlers = [opCount]handler{
	OpNOP:     (*EMU).nop,
	OpCLS:     (*EMU).cls,
	OpRET:     (*EMU).ret,
	OpJP:      (*EMU).jp,
	OpCALL:    (*EMU).call,
	OpSEByte:  (*EMU).seByte,
	OpSNEByte: (*EMU).sneByte,
	OpSEReg:   (*EMU).seReg,
	OpLDByte:  (*EMU).ldByte,
	OpADDByte: (*EMU).addByte,
	OpLDReg:   (*EMU).ldReg,
	OpOR:      (*EMU).or,
	OpAND:     (*EMU).and,
	OpXOR:     (*EMU).xor,
	OpADDReg:  (*EMU).addReg,
	OpSUB:     (*EMU).sub,
	OpSHR:     (*EMU).shr,
	OpSUBN:    (*EMU).subn,
	OpSHL:     (*EMU).shl,
	OpSNEReg:  (*EMU).sneReg,
	OpLDI:     (*EMU).ldI,
	OpJPV0:    (*EMU).jpV0,
	OpRND:     (*EMU).rndByte,
	OpSKP:     (*EMU).skp,
	OpSKNP:    (*EMU).sknp,
	OpLDVxDT:  (*EMU).ldVxDT,
	OpLDVxK:   (*EMU).ldVxK,
}

// skipIf jumps over the next instruction. fetch has already moved past the
// current one.
func (emu *EMU) skipIf(cond bool) {
	if cond {
		emu.pc += opcodeWidth
	}
}

func (emu *EMU) nop(ins instruction.Instruction) error {
	return nil
}

func (emu *EMU) cls(ins instruction.Instruction) error {
	emu.display = [ScreenWidth * ScreenHeight]bool{}
	return nil
}

func (emu *EMU) ret(ins instruction.Instruction) error {
	addr, err := emu.pop()
	if err != nil {
		return err
	}
	emu.pc = addr
	return nil
}

func (emu *EMU) jp(ins instruction.Instruction) error {
	emu.pc = ins.NNN()
	return nil
}

func (emu *EMU) call(ins instruction.Instruction) error {
	if err := emu.push(emu.pc); err != nil {
		return err
	}
	emu.pc = ins.NNN()
	return nil
}

func (emu *EMU) seByte(ins instruction.Instruction) error {
	emu.skipIf(emu.V[ins.X()] == ins.KK())
	return nil
}

func (emu *EMU) sneByte(ins instruction.Instruction) error {
	emu.skipIf(emu.V[ins.X()] != ins.KK())
	return nil
}

func (emu *EMU) seReg(ins instruction.Instruction) error {
	emu.skipIf(emu.V[ins.X()] == emu.V[ins.Y()])
	return nil
}

func (emu *EMU) ldByte(ins instruction.Instruction) error {
	emu.V[ins.X()] = ins.KK()
	return nil
}

// 8-bit addition wraps and leaves VF alone
func (emu *EMU) addByte(ins instruction.Instruction) error {
	emu.V[ins.X()] += ins.KK()
	return nil
}

func (emu *EMU) ldReg(ins instruction.Instruction) error {
	emu.V[ins.X()] = emu.V[ins.Y()]
	return nil
}

func (emu *EMU) or(ins instruction.Instruction) error {
	emu.V[ins.X()] |= emu.V[ins.Y()]
	return nil
}

func (emu *EMU) and(ins instruction.Instruction) error {
	emu.V[ins.X()] &= emu.V[ins.Y()]
	return nil
}

func (emu *EMU) xor(ins instruction.Instruction) error {
	emu.V[ins.X()] ^= emu.V[ins.Y()]
	return nil
}

// The flag ops below compute the result and flag from the operands first,
// then write VF, then Vx. When x is F the result is what remains in VF.

func (emu *EMU) addReg(ins instruction.Instruction) error {
	x, y := ins.X(), ins.Y()
	sum := uint16(emu.V[x]) + uint16(emu.V[y])
	emu.V[VF] = flag(sum > 0xFF)
	emu.V[x] = uint8(sum)
	return nil
}

func (emu *EMU) sub(ins instruction.Instruction) error {
	x, y := ins.X(), ins.Y()
	vx, vy := emu.V[x], emu.V[y]
	emu.V[VF] = flag(vx > vy)
	emu.V[x] = vx - vy
	return nil
}

func (emu *EMU) shr(ins instruction.Instruction) error {
	x := ins.X()
	vx := emu.V[x]
	emu.V[VF] = vx & 0x01
	emu.V[x] = vx >> 1
	return nil
}

func (emu *EMU) subn(ins instruction.Instruction) error {
	x, y := ins.X(), ins.Y()
	vx, vy := emu.V[x], emu.V[y]
	emu.V[VF] = flag(vy > vx)
	emu.V[x] = vy - vx
	return nil
}

func (emu *EMU) shl(ins instruction.Instruction) error {
	x := ins.X()
	vx := emu.V[x]
	emu.V[VF] = vx >> 7
	emu.V[x] = vx << 1
	return nil
}

func (emu *EMU) sneReg(ins instruction.Instruction) error {
	emu.skipIf(emu.V[ins.X()] != emu.V[ins.Y()])
	return nil
}

func (emu *EMU) ldI(ins instruction.Instruction) error {
	emu.I = ins.NNN()
	return nil
}

// the target is not wrapped to 12 bits; an address past the end of memory
// faults on the next fetch
func (emu *EMU) jpV0(ins instruction.Instruction) error {
	emu.pc = uint16(emu.V[0]) + ins.NNN()
	return nil
}

func (emu *EMU) rndByte(ins instruction.Instruction) error {
	emu.V[ins.X()] = uint8(emu.rnd.Intn(256)) & ins.KK()
	return nil
}

func (emu *EMU) skp(ins instruction.Instruction) error {
	emu.skipIf(emu.keyState[emu.V[ins.X()]&0xF])
	return nil
}

func (emu *EMU) sknp(ins instruction.Instruction) error {
	emu.skipIf(!emu.keyState[emu.V[ins.X()]&0xF])
	return nil
}

func (emu *EMU) ldVxDT(ins instruction.Instruction) error {
	emu.V[ins.X()] = emu.delayTimer
	return nil
}

// Until a key is down the program counter is wound back so the same
// instruction is fetched on the next tick. The lowest pressed key wins.
func (emu *EMU) ldVxK(ins instruction.Instruction) error {
	for k, pressed := range emu.keyState {
		if pressed {
			emu.V[ins.X()] = uint8(k)
			return nil
		}
	}
	emu.pc -= opcodeWidth
	return nil
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
