package cpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// load assembles opcodes big-endian at 0x200
func load(t *testing.T, opcodes ...uint16) *EMU {
	t.Helper()
	rom := make([]byte, 0, len(opcodes)*2)
	for _, op := range opcodes {
		rom = append(rom, byte(op>>8), byte(op))
	}
	emu := NewEMU()
	emu.SetSeed(1)
	assert.NoError(t, emu.LoadROM(rom))
	return emu
}

func step(t *testing.T, emu *EMU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		assert.NoError(t, emu.Tick())
	}
}

func TestNewEMU(t *testing.T) {
	emu := NewEMU()
	assert.Equal(t, uint16(0x200), emu.PC())
	assert.Equal(t, uint16(0), emu.sp)
	assert.Equal(t, uint16(0), emu.I)
	assert.Equal(t, uint8(0), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())
	assert.Equal(t, 16, len(emu.V))
	assert.Equal(t, ScreenWidth*ScreenHeight, len(emu.Screen()))
}

func TestLoadROM(t *testing.T) {
	emu := NewEMU()
	assert.NoError(t, emu.LoadROM([]byte{0xAB, 0xCD}))
	assert.Equal(t, uint8(0xAB), emu.memory[0x200])
	assert.Equal(t, uint8(0xCD), emu.memory[0x201])

	assert.NoError(t, emu.LoadROM(make([]byte, maxRomSize)))

	err := emu.LoadROM(make([]byte, maxRomSize+1))
	var sizeErr *ROMSizeError
	assert.True(t, errors.As(err, &sizeErr))
}

func TestReset(t *testing.T) {
	emu := load(t, 0x6A42, 0x2300)
	emu.SetKey(3, true)
	step(t, emu, 2)
	emu.Reset()

	assert.Equal(t, uint16(0x200), emu.PC())
	assert.Equal(t, uint8(0), emu.V[0xA])
	assert.Equal(t, uint16(0), emu.sp)
	assert.False(t, emu.keyState[3])
	assert.Equal(t, uint8(0), emu.memory[0x200])
	assert.True(t, emu.rnd != nil)
}

func TestFetchAdvancesPC(t *testing.T) {
	emu := load(t, 0x0000, 0x0000)
	step(t, emu, 2)
	assert.Equal(t, uint16(0x204), emu.PC())
}

func TestFetchOutOfBounds(t *testing.T) {
	emu := NewEMU()
	emu.pc = 0xFFF

	err := emu.Tick()
	var boundsErr *MemoryBoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("expected MemoryBoundsError, got %v", err)
	}
	assert.Equal(t, uint16(0xFFF), boundsErr.Addr)

	// the last whole opcode in memory is still fetchable
	emu.pc = 0xFFE
	assert.NoError(t, emu.Tick())
}

func TestUnimplementedOpcodes(t *testing.T) {
	for _, op := range []uint16{0xD125, 0xF315, 0xF318, 0xF31E, 0xF329, 0xF333, 0xF355, 0xF365, 0x5121, 0x812F, 0xE1FF, 0x0123} {
		emu := load(t, op)

		err := emu.Tick()
		var opErr *UnimplementedOpcodeError
		if !errors.As(err, &opErr) {
			t.Fatalf("%04X: expected UnimplementedOpcodeError, got %v", op, err)
		}
		assert.Equal(t, op, opErr.Opcode)
		assert.Equal(t, uint16(0x200), opErr.PC)
		assert.Equal(t, uint16(0x200), emu.PC())
	}
}

func TestTickTimers(t *testing.T) {
	emu := NewEMU()
	emu.TickTimers()
	assert.Equal(t, uint8(0), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())

	emu.delayTimer = 5
	emu.soundTimer = 2
	for i := 0; i < 6; i++ {
		emu.TickTimers()
	}
	assert.Equal(t, uint8(0), emu.DelayTimer())

	emu.TickTimers()
	assert.Equal(t, uint8(0), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())
}

func TestSounding(t *testing.T) {
	emu := NewEMU()
	emu.soundTimer = 1
	assert.True(t, emu.Sounding())
	emu.TickTimers()
	assert.False(t, emu.Sounding())
}

func TestSetKey(t *testing.T) {
	emu := NewEMU()
	emu.SetKey(0xF, true)
	emu.SetKey(0x10, true)
	assert.True(t, emu.keyState[0xF])
	emu.SetKey(0xF, false)
	assert.False(t, emu.keyState[0xF])
}
