package chip8

// Framebuffer geometry of the monochrome display.
const (
	// DisplayWidth is the framebuffer width in pixels.
	DisplayWidth = 64

	// DisplayHeight is the framebuffer height in pixels.
	DisplayHeight = 32
)

// Display is the framebuffer collaborator the executor draws to. The core
// only consumes this interface, rendering is external.
type Display interface {
	// Clear sets all framebuffer pixels to unset.
	Clear()

	// SetPixel toggles the pixel at (x, y) and returns whether it was
	// previously set. The caller applies this only for lit source bits,
	// with coordinates already taken modulo the framebuffer size.
	SetPixel(x, y byte) bool
}

// Input is the keypad collaborator the executor tests key state against.
// The historic keypad has 16 keys with values 0..F.
type Input interface {
	// KeyPressed reports whether the key with the given value is held.
	KeyPressed(key byte) bool

	// PressedKey returns the value of a currently pressed key, or false
	// when no key is pressed.
	PressedKey() (byte, bool)
}
