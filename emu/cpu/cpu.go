// Package cpu holds the CHIP-8 machine state and executes it one opcode at a
// time. Pacing, input, video and audio belong to the caller.
package cpu

import (
	"math/rand"
	"time"

	"github.com/beanboi7/chyp8/emu/instruction"
)

const (
	memorySize  = 4096
	stackSize   = 16
	numKeys     = 16
	startAddr   = 0x200
	maxRomSize  = memorySize - startAddr
	opcodeWidth = 2

	// ScreenWidth and ScreenHeight are the dimensions of the display buffer.
	ScreenWidth  = 64
	ScreenHeight = 32
)

// VF doubles as the carry, borrow and shift-out flag.
const VF = 0xF

type EMU struct {
	memory     [memorySize]uint8
	V          [16]uint8
	I          uint16 //address register
	pc         uint16
	display    [ScreenWidth * ScreenHeight]bool
	delayTimer uint8 //counts down at 60Hz
	soundTimer uint8 //same as above
	stack      [stackSize]uint16
	sp         uint16
	keyState   [numKeys]bool //tells whether key is pressed or not
	rnd        *rand.Rand
}

// NewEMU returns a machine in its reset state, ready for LoadROM.
func NewEMU() *EMU {
	emu := &EMU{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	emu.Reset()
	return emu
}

// Reset zeroes memory, registers, timers, display and keypad and moves the
// program counter back to the load address. The random source is kept.
func (emu *EMU) Reset() {
	rnd := emu.rnd
	*emu = EMU{
		pc:  startAddr,
		rnd: rnd,
	}
}

// SetSeed makes the RND opcode reproducible.
func (emu *EMU) SetSeed(seed int64) {
	emu.rnd = rand.New(rand.NewSource(seed))
}

// LoadROM copies the program into memory at 0x200. The bytes are not
// inspected.
func (emu *EMU) LoadROM(rom []byte) error {
	if len(rom) > maxRomSize {
		return &ROMSizeError{Size: len(rom)}
	}
	copy(emu.memory[startAddr:], rom)
	return nil
}

// Tick fetches and executes one instruction. On error the program counter
// is left pointing at the faulting instruction.
func (emu *EMU) Tick() error {
	addr := emu.pc
	ins, err := emu.fetch()
	if err != nil {
		return err
	}
	if err := emu.execute(ins); err != nil {
		emu.pc = addr
		return err
	}
	return nil
}

func (emu *EMU) fetch() (instruction.Instruction, error) {
	if int(emu.pc)+1 >= memorySize {
		return 0, &MemoryBoundsError{Addr: emu.pc}
	}
	opcode := uint16(emu.memory[emu.pc])<<8 | uint16(emu.memory[emu.pc+1])
	emu.pc += opcodeWidth
	return instruction.Instruction(opcode), nil
}

func (emu *EMU) execute(ins instruction.Instruction) error {
	op := Decode(ins)
	h := handlers[op]
	if h == nil {
		return &UnimplementedOpcodeError{Opcode: uint16(ins), PC: emu.pc - opcodeWidth}
	}
	return h(emu, ins)
}

// TickTimers decrements the delay and sound timers, stopping at zero. Call it
// at 60Hz.
func (emu *EMU) TickTimers() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
}

func (emu *EMU) push(addr uint16) error {
	if int(emu.sp) >= stackSize {
		return &StackOverflowError{PC: emu.pc - opcodeWidth}
	}
	emu.stack[emu.sp] = addr
	emu.sp++
	return nil
}

func (emu *EMU) pop() (uint16, error) {
	if emu.sp == 0 {
		return 0, &StackUnderflowError{PC: emu.pc - opcodeWidth}
	}
	emu.sp--
	return emu.stack[emu.sp], nil
}

// PC is the address of the next instruction to be fetched.
func (emu *EMU) PC() uint16 {
	return emu.pc
}

// Screen is the 64x32 display, row-major with the origin at the top left.
// The slice aliases the machine's buffer and must not be modified.
func (emu *EMU) Screen() []bool {
	return emu.display[:]
}

// SetKey sets the state of one of the 16 hex keys. Other values are ignored.
func (emu *EMU) SetKey(key uint8, pressed bool) {
	if int(key) < numKeys {
		emu.keyState[key] = pressed
	}
}

func (emu *EMU) DelayTimer() uint8 {
	return emu.delayTimer
}

func (emu *EMU) SoundTimer() uint8 {
	return emu.soundTimer
}

// Sounding reports whether the tone should be playing.
func (emu *EMU) Sounding() bool {
	return emu.soundTimer != 0
}
