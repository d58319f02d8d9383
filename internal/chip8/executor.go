package chip8

import (
	"math/rand"
	"time"
)

// Executor applies decoded instructions to the machine state. It holds no
// machine state itself, only the display and input collaborators and the
// pseudo-random source of the random instruction.
type Executor struct {
	display Display
	input   Input
	rand    *rand.Rand
}

// NewExecutor returns an executor using the given display and input
// collaborators.
func NewExecutor(display Display, input Input) *Executor {
	return &Executor{
		display: display,
		input:   input,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Execute applies the effect of exactly one instruction to the state.
// The program counter already points past the instruction when Execute is
// called, so skips advance it by one more instruction width and the
// blocking key wait steps it back to re-fetch the same instruction.
//
// VF is overwritten by every instruction that defines a flag outcome,
// after the result register, so VF as a destination receives the flag.
// Instructions without a flag outcome leave VF untouched.
func (e *Executor) Execute(state *State, ins Instruction) error {
	switch ins.Op {
	case ClearScreen:
		e.display.Clear()

	case Return:
		if state.SP == 0 {
			return ErrStackUnderflow
		}
		state.SP--
		state.PC = state.Stack[state.SP]

	case Jump:
		state.PC = ins.Addr

	case Call:
		if state.SP == StackDepth {
			return ErrStackOverflow
		}
		state.Stack[state.SP] = state.PC
		state.SP++
		state.PC = ins.Addr

	case SkipEqualByte:
		if state.V[ins.X] == ins.Byte {
			state.PC += InstructionSize
		}

	case SkipNotEqualByte:
		if state.V[ins.X] != ins.Byte {
			state.PC += InstructionSize
		}

	case SkipEqualRegister:
		if state.V[ins.X] == state.V[ins.Y] {
			state.PC += InstructionSize
		}

	case SkipNotEqualRegister:
		if state.V[ins.X] != state.V[ins.Y] {
			state.PC += InstructionSize
		}

	case LoadByte:
		state.V[ins.X] = ins.Byte

	case AddByte:
		sum := uint16(state.V[ins.X]) + uint16(ins.Byte)
		state.V[ins.X] = uint8(sum)
		state.setFlag(flag(sum > 0xFF))

	case LoadRegister:
		state.V[ins.X] = state.V[ins.Y]

	case Or:
		state.V[ins.X] |= state.V[ins.Y]

	case And:
		state.V[ins.X] &= state.V[ins.Y]

	case Xor:
		state.V[ins.X] ^= state.V[ins.Y]

	case AddRegister:
		sum := uint16(state.V[ins.X]) + uint16(state.V[ins.Y])
		state.V[ins.X] = uint8(sum)
		state.setFlag(flag(sum > 0xFF))

	case SubRegister:
		noBorrow := state.V[ins.X] >= state.V[ins.Y]
		state.V[ins.X] -= state.V[ins.Y]
		state.setFlag(flag(noBorrow))

	case SubRegisterReverse:
		noBorrow := state.V[ins.Y] >= state.V[ins.X]
		state.V[ins.X] = state.V[ins.Y] - state.V[ins.X]
		state.setFlag(flag(noBorrow))

	case ShiftRight:
		bit := state.V[ins.X] & 0x01
		state.V[ins.X] >>= 1
		state.setFlag(bit)

	case ShiftLeft:
		bit := state.V[ins.X] >> 7
		state.V[ins.X] <<= 1
		state.setFlag(bit)

	case LoadIndex:
		state.I = ins.Addr

	case JumpOffset:
		state.PC = state.I + ins.Addr

	case Random:
		state.V[ins.X] = uint8(e.rand.Intn(0x100)) & ins.Byte

	case Draw:
		e.draw(state, ins)

	case SkipKeyPressed:
		if e.input.KeyPressed(state.V[ins.X]) {
			state.PC += InstructionSize
		}

	case SkipKeyNotPressed:
		if !e.input.KeyPressed(state.V[ins.X]) {
			state.PC += InstructionSize
		}

	case LoadDelayTimer:
		state.V[ins.X] = state.DelayTimer

	case WaitKey:
		key, ok := e.input.PressedKey()
		if !ok {
			// busy wait: re-fetch the same instruction next cycle
			state.PC -= InstructionSize
			break
		}
		state.V[ins.X] = key

	case SetDelayTimer:
		state.DelayTimer = state.V[ins.X]

	case SetSoundTimer:
		state.SoundTimer = state.V[ins.X]

	case AddIndex:
		state.I += uint16(state.V[ins.X])

	case LoadFontAddress:
		state.I = uint16(state.V[ins.X]&0x0F) * glyphSize

	case StoreBCD:
		value := state.V[ins.X]
		state.writeByte(state.I, value/100)
		state.writeByte(state.I+1, value/10%10)
		state.writeByte(state.I+2, value%10)

	case StoreRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			state.writeByte(state.I+i, state.V[i])
		}

	case LoadRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			state.V[i] = state.readByte(state.I + i)
		}
	}

	return nil
}

// draw XORs an 8-bit-wide, N-row-tall sprite read from memory at the
// index register onto the framebuffer at (VX, VY). The collaborator is
// called once per lit source bit with per-pixel wrapped coordinates.
// VF is set iff any pixel transitioned from set to unset.
func (e *Executor) draw(state *State, ins Instruction) {
	collision := false

	for row := uint8(0); row < ins.N; row++ {
		bits := state.readByte(state.I + uint16(row))

		for bit := uint8(0); bit < 8; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			x := (state.V[ins.X] + bit) % DisplayWidth
			y := (state.V[ins.Y] + row) % DisplayHeight
			if e.display.SetPixel(x, y) {
				collision = true
			}
		}
	}

	state.setFlag(flag(collision))
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
