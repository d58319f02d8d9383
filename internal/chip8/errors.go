package chip8

import (
	"errors"
	"fmt"
)

// Fatal call stack conditions. Both abort the running session, there is
// no recovery at the instruction level.
var (
	// ErrStackOverflow is returned by a call instruction when the call
	// stack is already at its maximum depth.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow is returned by a return instruction when the call
	// stack is empty.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// InvalidInstructionError is returned when an opcode does not match any
// instruction of the baseline instruction set. It carries the raw opcode
// for diagnostics.
type InvalidInstructionError struct {
	Opcode uint16
}

func (e InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction $%04X", e.Opcode)
}
