// Package chip8 implements the CHIP-8 virtual machine core: the machine
// state, the instruction decoder and the instruction executor.
// CHIP-8 is an interpreted instruction set from the 1970s designed for
// simple games on early microcomputers.
package chip8

import "time"

// Memory layout and machine geometry of the CHIP-8 virtual machine.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: interpreter area, holds the builtin font
//	0x200-0xFFF: user program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory space in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxImageSize is the number of bytes available to a program image.
	MaxImageSize = MemorySize - ProgramStart

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// InstructionSize is the size of an encoded instruction in bytes.
	InstructionSize = 2

	// RegisterCount is the number of general purpose registers V0..VF.
	RegisterCount = 16

	// flagRegister is VF, written by every instruction that defines a
	// carry, borrow or collision outcome.
	flagRegister = 0xF

	// glyphSize is the size of a builtin font character in bytes.
	glyphSize = 5
)

// State holds the complete machine state of one emulation session.
// It is pure data: construction and image loading are the only behavior,
// all mutation rules live in the executor.
type State struct {
	// Memory is the 4KB addressable space. The builtin font occupies the
	// start of the interpreter area, the program image starts at
	// ProgramStart.
	Memory [MemorySize]byte

	// V are the 16 general purpose 8-bit registers V0..VF. VF doubles as
	// the carry/borrow/collision flag.
	V [RegisterCount]uint8

	// I is the 16-bit index register used by memory indirect instructions.
	I uint16

	// PC is the program counter.
	PC uint16

	// Stack holds the return addresses of nested subroutine calls.
	Stack [StackDepth]uint16

	// SP is the number of return addresses currently on the stack.
	SP uint8

	// DelayTimer and SoundTimer decrement toward zero at a fixed 60 Hz
	// rate, independent of instruction throughput.
	DelayTimer uint8
	SoundTimer uint8

	// LastTimerTick is the monotonic timestamp of the last timer
	// decrement, maintained by the cycle runner to gate the fixed rate.
	LastTimerTick time.Time
}

// NewState returns a zeroed machine state with the builtin font loaded
// and the program counter set to the program start address.
func NewState() *State {
	s := &State{
		PC: ProgramStart,
	}
	copy(s.Memory[:], font[:])
	return s
}

// LoadImage copies a program image verbatim into memory starting at
// ProgramStart, overwriting whatever was there. Image length is not
// validated against the remaining memory capacity, that boundary belongs
// to the caller.
func (s *State) LoadImage(image []byte) {
	copy(s.Memory[ProgramStart:], image)
}

// FetchOpcode reads the big-endian 16-bit instruction word at the program
// counter. Reads past the end of the address space yield zero, so a
// truncated image decodes as an invalid instruction instead of panicking.
func (s *State) FetchOpcode() uint16 {
	return uint16(s.readByte(s.PC))<<8 | uint16(s.readByte(s.PC+1))
}

// readByte returns the memory byte at address, zero for addresses outside
// the addressable space.
func (s *State) readByte(address uint16) byte {
	if int(address) >= MemorySize {
		return 0
	}
	return s.Memory[address]
}

// writeByte stores a byte at address, ignoring addresses outside the
// addressable space.
func (s *State) writeByte(address uint16, value byte) {
	if int(address) >= MemorySize {
		return
	}
	s.Memory[address] = value
}

// setFlag writes the VF flag register.
func (s *State) setFlag(value uint8) {
	s.V[flagRegister] = value
}
