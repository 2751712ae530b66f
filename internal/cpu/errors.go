package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is matched by errors returned for bytes that have
	// no instruction in either opcode space.
	ErrUnknownOpcode = errors.New("cpu: unknown opcode")
	// ErrUnimplemented is matched by errors returned for instructions
	// whose operand combination has no handler.
	ErrUnimplemented = errors.New("cpu: unimplemented instruction")
)

// UnknownOpcodeError is returned by Step when the fetched byte cannot be
// decoded.
type UnknownOpcodeError struct {
	Opcode   uint8
	Prefixed bool
	// PC is the address the opcode (or its prefix) was fetched from.
	PC uint16
}

func (e *UnknownOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unknown instruction 0xCB%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unknown instruction 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *UnknownOpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// UnimplementedError is returned when a decoded instruction has no
// handler for its operands.
type UnimplementedError struct {
	Instruction Instruction
	// PC is the address the opcode (or its prefix) was fetched from when
	// returned by Step. Execute has no fetch, so it reports PC as it was
	// when Execute was called.
	PC uint16
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("cpu: unimplemented instruction %s at 0x%04X", e.Instruction, e.PC)
}

func (e *UnimplementedError) Unwrap() error {
	return ErrUnimplemented
}
