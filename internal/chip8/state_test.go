package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewState(t *testing.T) {
	state := NewState()

	assert.Equal(t, uint16(ProgramStart), state.PC)
	assert.Equal(t, uint8(0), state.SP)
	assert.Equal(t, uint16(0), state.I)
	assert.Equal(t, uint8(0), state.DelayTimer)
	assert.Equal(t, uint8(0), state.SoundTimer)

	for i := range state.V {
		assert.Equal(t, uint8(0), state.V[i])
	}

	// glyph 0 at the start of the font table
	assert.Equal(t, byte(0xF0), state.Memory[0])
	assert.Equal(t, byte(0x90), state.Memory[1])
	// glyph F at the end
	assert.Equal(t, byte(0xF0), state.Memory[15*glyphSize])
	assert.Equal(t, byte(0x80), state.Memory[15*glyphSize+4])
}

func TestStateLoadImage(t *testing.T) {
	state := NewState()
	state.LoadImage([]byte{0x12, 0x34, 0x56})

	assert.Equal(t, byte(0x12), state.Memory[ProgramStart])
	assert.Equal(t, byte(0x34), state.Memory[ProgramStart+1])
	assert.Equal(t, byte(0x56), state.Memory[ProgramStart+2])
	assert.Equal(t, byte(0x00), state.Memory[ProgramStart+3])

	// loading overwrites the previous image
	state.LoadImage([]byte{0xFF})
	assert.Equal(t, byte(0xFF), state.Memory[ProgramStart])
	assert.Equal(t, byte(0x34), state.Memory[ProgramStart+1])
}

func TestStateFetchOpcode(t *testing.T) {
	state := NewState()
	state.LoadImage([]byte{0x12, 0x34})

	assert.Equal(t, uint16(0x1234), state.FetchOpcode())

	// instruction words are big-endian
	state.PC = ProgramStart + 1
	assert.Equal(t, uint16(0x3400), state.FetchOpcode())
}

func TestStateFetchOpcodeOutOfRange(t *testing.T) {
	state := NewState()
	state.Memory[MemorySize-1] = 0xAB

	// second byte is past the end of memory and reads as zero
	state.PC = MemorySize - 1
	assert.Equal(t, uint16(0xAB00), state.FetchOpcode())

	// both bytes out of range
	state.PC = 0x2000
	assert.Equal(t, uint16(0), state.FetchOpcode())
}

func TestStateWriteByteOutOfRange(t *testing.T) {
	state := NewState()

	state.writeByte(MemorySize, 0xFF) // must not panic
	state.writeByte(MemorySize-1, 0xFF)
	assert.Equal(t, byte(0xFF), state.Memory[MemorySize-1])
}
