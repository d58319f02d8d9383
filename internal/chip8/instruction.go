package chip8

// Op identifies one semantic operation of the CHIP-8 instruction set.
type Op uint8

// The complete baseline instruction set, one case per semantic operation.
const (
	ClearScreen          Op = iota // 00E0
	Return                         // 00EE
	Jump                           // 1nnn
	Call                           // 2nnn
	SkipEqualByte                  // 3xnn
	SkipNotEqualByte               // 4xnn
	SkipEqualRegister              // 5xy0
	LoadByte                       // 6xnn
	AddByte                        // 7xnn
	LoadRegister                   // 8xy0
	Or                             // 8xy1
	And                            // 8xy2
	Xor                            // 8xy3
	AddRegister                    // 8xy4
	SubRegister                    // 8xy5, Vx = Vx - Vy
	ShiftRight                     // 8xy6
	SubRegisterReverse             // 8xy7, Vx = Vy - Vx
	ShiftLeft                      // 8xyE
	SkipNotEqualRegister           // 9xy0
	LoadIndex                      // Annn
	JumpOffset                     // Bnnn
	Random                         // Cxnn
	Draw                           // Dxyn
	SkipKeyPressed                 // Ex9E
	SkipKeyNotPressed              // ExA1
	LoadDelayTimer                 // Fx07
	WaitKey                        // Fx0A
	SetDelayTimer                  // Fx15
	SetSoundTimer                  // Fx18
	AddIndex                       // Fx1E
	LoadFontAddress                // Fx29
	StoreBCD                       // Fx33
	StoreRegisters                 // Fx55
	LoadRegisters                  // Fx65
)

// Instruction is a decoded CHIP-8 instruction. Op selects the semantic
// operation, the other fields carry the operands extracted from the
// opcode. Each instruction family reads only the operand fields its
// encoding defines, the remaining fields are zero.
type Instruction struct {
	Op Op

	// Addr is the 12-bit address operand of the jump/call/set-index
	// families.
	Addr uint16

	// X and Y are register indices, extracted from the second and third
	// opcode nibble.
	X uint8
	Y uint8

	// Byte is the 8-bit immediate operand.
	Byte uint8

	// N is the low nibble operand, the sprite height of draw.
	N uint8
}
