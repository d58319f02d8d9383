package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   Instruction
	}{
		{"cls", 0x00E0, Instruction{Op: ClearScreen}},
		{"ret", 0x00EE, Instruction{Op: Return}},
		{"jp addr", 0x1234, Instruction{Op: Jump, Addr: 0x234}},
		{"call addr", 0x2345, Instruction{Op: Call, Addr: 0x345}},
		{"se Vx byte", 0x3234, Instruction{Op: SkipEqualByte, X: 2, Byte: 0x34}},
		{"sne Vx byte", 0x4234, Instruction{Op: SkipNotEqualByte, X: 2, Byte: 0x34}},
		{"se Vx Vy", 0x5230, Instruction{Op: SkipEqualRegister, X: 2, Y: 3}},
		{"ld Vx byte", 0x6A42, Instruction{Op: LoadByte, X: 0xA, Byte: 0x42}},
		{"add Vx byte", 0x7A42, Instruction{Op: AddByte, X: 0xA, Byte: 0x42}},
		{"ld Vx Vy", 0x8230, Instruction{Op: LoadRegister, X: 2, Y: 3}},
		{"or", 0x8231, Instruction{Op: Or, X: 2, Y: 3}},
		{"and", 0x8232, Instruction{Op: And, X: 2, Y: 3}},
		{"xor", 0x8233, Instruction{Op: Xor, X: 2, Y: 3}},
		{"add Vx Vy", 0x8234, Instruction{Op: AddRegister, X: 2, Y: 3}},
		{"sub", 0x8235, Instruction{Op: SubRegister, X: 2, Y: 3}},
		{"shr", 0x8236, Instruction{Op: ShiftRight, X: 2, Y: 3}},
		{"subn", 0x8237, Instruction{Op: SubRegisterReverse, X: 2, Y: 3}},
		{"shl", 0x823E, Instruction{Op: ShiftLeft, X: 2, Y: 3}},
		{"sne Vx Vy", 0x9230, Instruction{Op: SkipNotEqualRegister, X: 2, Y: 3}},
		{"ld I addr", 0xA234, Instruction{Op: LoadIndex, Addr: 0x234}},
		{"jp offset", 0xB234, Instruction{Op: JumpOffset, Addr: 0x234}},
		{"rnd", 0xC2F0, Instruction{Op: Random, X: 2, Byte: 0xF0}},
		{"drw", 0xD235, Instruction{Op: Draw, X: 2, Y: 3, N: 5}},
		{"skp", 0xE29E, Instruction{Op: SkipKeyPressed, X: 2}},
		{"sknp", 0xE2A1, Instruction{Op: SkipKeyNotPressed, X: 2}},
		{"ld Vx DT", 0xF207, Instruction{Op: LoadDelayTimer, X: 2}},
		{"ld Vx K", 0xF20A, Instruction{Op: WaitKey, X: 2}},
		{"ld DT Vx", 0xF215, Instruction{Op: SetDelayTimer, X: 2}},
		{"ld ST Vx", 0xF218, Instruction{Op: SetSoundTimer, X: 2}},
		{"add I Vx", 0xF21E, Instruction{Op: AddIndex, X: 2}},
		{"ld F Vx", 0xF229, Instruction{Op: LoadFontAddress, X: 2}},
		{"ld B Vx", 0xF233, Instruction{Op: StoreBCD, X: 2}},
		{"ld [I] Vx", 0xF255, Instruction{Op: StoreRegisters, X: 2}},
		{"ld Vx [I]", 0xF265, Instruction{Op: LoadRegisters, X: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := Decode(tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ins)
		})
	}
}

func TestDecodeInvalidInstruction(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
	}{
		{"zero word", 0x0000},
		{"sys call", 0x0123},
		{"almost cls", 0x00E1},
		{"se with nonzero nibble", 0x5231},
		{"arithmetic gap 8", 0x8238},
		{"arithmetic gap d", 0x823D},
		{"sne with nonzero nibble", 0x9005},
		{"key test gap", 0xE200},
		{"key test high byte", 0xE2FF},
		{"misc gap", 0xF200},
		{"misc unknown", 0xF266},
		{"all bits set", 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.opcode)
			assert.Error(t, err)

			var invalidErr InvalidInstructionError
			assert.True(t, errors.As(err, &invalidErr))
			assert.Equal(t, tt.opcode, invalidErr.Opcode)
		})
	}
}

// Decoding is a pure function of the opcode: identical opcodes yield
// identical instructions.
func TestDecodeDeterministic(t *testing.T) {
	for opcode := 0; opcode <= 0xFFFF; opcode++ {
		first, errFirst := Decode(uint16(opcode))
		second, errSecond := Decode(uint16(opcode))

		assert.Equal(t, first, second)
		assert.Equal(t, errFirst == nil, errSecond == nil)
	}
}
