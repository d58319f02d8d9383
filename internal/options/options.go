// Package options contains the program options.
package options

// DefaultInstructionsPerFrame approximates the historic execution speed
// of roughly 700 instructions per second at 60 frames per second. The
// original hardware has no published per-opcode cycle counts, so the
// batch size is the only speed model.
const DefaultInstructionsPerFrame = 12

// Program contains the command line options of the emulator.
type Program struct {
	Input string // path of the ROM image to run

	Debug bool
	Quiet bool
}

// Emulator defines options to control the emulation core.
type Emulator struct {
	// InstructionsPerFrame is the number of fetch/decode/execute cycles
	// batched into one 60 Hz frame.
	InstructionsPerFrame int

	// TraceExecution logs every executed instruction at debug level.
	TraceExecution bool
}

// NewEmulator returns emulator options with default settings.
func NewEmulator() Emulator {
	return Emulator{
		InstructionsPerFrame: DefaultInstructionsPerFrame,
	}
}
