// Package trace formats raw CHIP-8 opcodes as assembly mnemonics for
// execution trace logging. Opcodes are matched against the instruction
// tables of retrogolib.
package trace

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Format returns the assembly rendition of an opcode, for example
// "jp $234" or "drw V2, V3, $5". Opcodes that match no instruction are
// rendered as a data word.
func Format(opcode uint16) string {
	ins := lookup(opcode)
	if ins == nil {
		return fmt.Sprintf(".word $%04X", opcode)
	}

	params := formatParams(ins.Name, opcode)
	if params == "" {
		return ins.Name
	}
	return fmt.Sprintf("%s %s", ins.Name, params)
}

// lookup matches an opcode against the instruction table of its high
// nibble by mask and value.
func lookup(opcode uint16) *chip8.Instruction {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// formatParams formats the operands of an instruction, selected by the
// instruction name and disambiguated by the opcode family where one name
// covers multiple encodings.
func formatParams(name string, opcode uint16) string {
	x := registerX(opcode)
	y := registerY(opcode)

	switch name {
	case chip8.JpName:
		if opcode&0xF000 == 0xB000 {
			// jump with offset is relative to the index register
			return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
		}
		return fmt.Sprintf("$%03X", opcode&0x0FFF)

	case chip8.CallName:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)

	case chip8.SeName, chip8.SneName:
		if opcode&0xF000 == 0x5000 || opcode&0xF000 == 0x9000 {
			return fmt.Sprintf("V%X, V%X", x, y)
		}
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)

	case chip8.LdName:
		return formatLoad(opcode, x, y)

	case chip8.AddName:
		switch opcode & 0xF000 {
		case 0x7000:
			return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
		case 0x8000:
			return fmt.Sprintf("V%X, V%X", x, y)
		case 0xF000:
			return fmt.Sprintf("I, V%X", x)
		}

	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return fmt.Sprintf("V%X, V%X", x, y)

	case chip8.ShrName, chip8.ShlName:
		return fmt.Sprintf("V%X", x)

	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)

	case chip8.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, opcode&0x000F)

	case chip8.SkpName, chip8.SknpName:
		return fmt.Sprintf("V%X", x)
	}

	return ""
}

// formatLoad covers the load family: register, immediate, index and the
// timer, key, font, BCD and register block encodings of the 0xF group.
func formatLoad(opcode uint16, x, y uint16) string {
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		switch opcode & 0x00FF {
		case 0x07:
			return fmt.Sprintf("V%X, DT", x)
		case 0x0A:
			return fmt.Sprintf("V%X, K", x)
		case 0x15:
			return fmt.Sprintf("DT, V%X", x)
		case 0x18:
			return fmt.Sprintf("ST, V%X", x)
		case 0x29:
			return fmt.Sprintf("F, V%X", x)
		case 0x33:
			return fmt.Sprintf("B, V%X", x)
		case 0x55:
			return fmt.Sprintf("[I], V%X", x)
		case 0x65:
			return fmt.Sprintf("V%X, [I]", x)
		}
	}
	return ""
}

// registerX extracts the X register nibble from an opcode.
func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// registerY extracts the Y register nibble from an opcode.
func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
