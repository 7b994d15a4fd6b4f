package cpu

import "fmt"

// UnimplementedOpcodeError is returned when the fetched opcode matches no
// instruction, or matches one this interpreter does not execute.
type UnimplementedOpcodeError struct {
	Opcode uint16
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode %04X at %03X", e.Opcode, e.PC)
}

// MemoryBoundsError is returned when an access falls outside of memory.
type MemoryBoundsError struct {
	Addr uint16
}

func (e *MemoryBoundsError) Error() string {
	return fmt.Sprintf("memory access out of bounds at %04X", e.Addr)
}

// StackOverflowError is returned by CALL when all 16 stack slots are in use.
type StackOverflowError struct {
	PC uint16
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("stack overflow at %03X", e.PC)
}

// StackUnderflowError is returned by RET when the stack is empty.
type StackUnderflowError struct {
	PC uint16
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow at %03X", e.PC)
}

// ROMSizeError is returned when a program does not fit above the load address.
type ROMSizeError struct {
	Size int
}

func (e *ROMSizeError) Error() string {
	return fmt.Sprintf("ROM too big: %d bytes, can't cross %d bytes", e.Size, maxRomSize)
}
