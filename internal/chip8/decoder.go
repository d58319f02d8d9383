package chip8

// Decode classifies a 16-bit opcode into its decoded instruction. It is a
// pure function of the opcode: identical opcodes always yield identical
// instructions, independent of any machine state.
//
// Classification masks the high nibble to select the instruction family
// and, for the 0x0, 0x5, 0x8, 0x9, 0xE and 0xF families, the low byte or
// low nibble to select the sub-operation. Operand fields are constrained
// by their bit width extraction, no further bounds checks are needed.
func Decode(opcode uint16) (Instruction, error) {
	addr := opcode & 0x0FFF
	x := uint8(opcode>>8) & 0x0F
	y := uint8(opcode>>4) & 0x0F
	b := uint8(opcode)
	n := b & 0x0F

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return Instruction{Op: ClearScreen}, nil
		case 0x00EE:
			return Instruction{Op: Return}, nil
		}

	case 0x1000:
		return Instruction{Op: Jump, Addr: addr}, nil

	case 0x2000:
		return Instruction{Op: Call, Addr: addr}, nil

	case 0x3000:
		return Instruction{Op: SkipEqualByte, X: x, Byte: b}, nil

	case 0x4000:
		return Instruction{Op: SkipNotEqualByte, X: x, Byte: b}, nil

	case 0x5000:
		if n == 0 {
			return Instruction{Op: SkipEqualRegister, X: x, Y: y}, nil
		}

	case 0x6000:
		return Instruction{Op: LoadByte, X: x, Byte: b}, nil

	case 0x7000:
		return Instruction{Op: AddByte, X: x, Byte: b}, nil

	case 0x8000:
		return decodeArithmetic(opcode, x, y, n)

	case 0x9000:
		if n == 0 {
			return Instruction{Op: SkipNotEqualRegister, X: x, Y: y}, nil
		}

	case 0xA000:
		return Instruction{Op: LoadIndex, Addr: addr}, nil

	case 0xB000:
		return Instruction{Op: JumpOffset, Addr: addr}, nil

	case 0xC000:
		return Instruction{Op: Random, X: x, Byte: b}, nil

	case 0xD000:
		return Instruction{Op: Draw, X: x, Y: y, N: n}, nil

	case 0xE000:
		switch b {
		case 0x9E:
			return Instruction{Op: SkipKeyPressed, X: x}, nil
		case 0xA1:
			return Instruction{Op: SkipKeyNotPressed, X: x}, nil
		}

	case 0xF000:
		return decodeMisc(opcode, x, b)
	}

	return Instruction{}, InvalidInstructionError{Opcode: opcode}
}

// decodeArithmetic selects one of the 9 register-register sub-operations
// of the 0x8 family by the low nibble.
func decodeArithmetic(opcode uint16, x, y, n uint8) (Instruction, error) {
	var op Op

	switch n {
	case 0x0:
		op = LoadRegister
	case 0x1:
		op = Or
	case 0x2:
		op = And
	case 0x3:
		op = Xor
	case 0x4:
		op = AddRegister
	case 0x5:
		op = SubRegister
	case 0x6:
		op = ShiftRight
	case 0x7:
		op = SubRegisterReverse
	case 0xE:
		op = ShiftLeft
	default:
		return Instruction{}, InvalidInstructionError{Opcode: opcode}
	}

	return Instruction{Op: op, X: x, Y: y}, nil
}

// decodeMisc selects one of the 9 timer/memory/key sub-operations of the
// 0xF family by the low byte.
func decodeMisc(opcode uint16, x, b uint8) (Instruction, error) {
	var op Op

	switch b {
	case 0x07:
		op = LoadDelayTimer
	case 0x0A:
		op = WaitKey
	case 0x15:
		op = SetDelayTimer
	case 0x18:
		op = SetSoundTimer
	case 0x1E:
		op = AddIndex
	case 0x29:
		op = LoadFontAddress
	case 0x33:
		op = StoreBCD
	case 0x55:
		op = StoreRegisters
	case 0x65:
		op = LoadRegisters
	default:
		return Instruction{}, InvalidInstructionError{Opcode: opcode}
	}

	return Instruction{Op: op, X: x}, nil
}
