// Package terminal implements the display and input collaborator of the
// emulator core on an ANSI terminal. The framebuffer is rendered with
// half block characters, two pixel rows per text line, and the keypad is
// read from raw non-blocking stdin.
package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// keyHoldFrames is the number of polls a key read from the terminal
// counts as held. Terminals deliver key presses but no key releases, so
// a press decays after a few frames instead.
const keyHoldFrames = 6

// quitKey ends the emulation session.
const quitKey = 0x1B // Esc

// keypadMap maps terminal characters to the 16 keys of the historic
// keypad, preserving its physical layout on the left side of a QWERTY
// keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   q w e r
//	7 8 9 E        a s d f
//	A 0 B F        z x c v
var keypadMap = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Terminal renders the 64x32 monochrome framebuffer and polls raw
// keyboard input. It satisfies the frontend contract of the runner.
type Terminal struct {
	in  *os.File
	out *os.File

	pixels [chip8.DisplayHeight][chip8.DisplayWidth]bool
	dirty  bool

	keys [16]int // frames remaining until the key counts as released
	quit bool

	soundPlaying bool
	restore      func()
}

// New switches the terminal to raw non-blocking input mode and returns
// the frontend. Close restores the previous terminal state.
func New() (*Terminal, error) {
	t := &Terminal{
		in:    os.Stdin,
		out:   os.Stdout,
		dirty: true,
	}

	restore, err := setRawIO(t.in.Fd())
	if err != nil {
		return nil, fmt.Errorf("switching terminal to raw mode: %w", err)
	}
	t.restore = restore

	_, _ = fmt.Fprint(t.out, "\x1b[2J\x1b[?25l") // clear screen, hide cursor
	return t, nil
}

// Close restores the terminal state.
func (t *Terminal) Close() {
	_, _ = fmt.Fprint(t.out, "\x1b[?25h\x1b[2J\x1b[H") // show cursor, clear
	if t.restore != nil {
		t.restore()
	}
}

// Clear implements chip8.Display.
func (t *Terminal) Clear() {
	t.pixels = [chip8.DisplayHeight][chip8.DisplayWidth]bool{}
	t.dirty = true
}

// SetPixel implements chip8.Display, toggling the pixel and returning its
// previous state.
func (t *Terminal) SetPixel(x, y byte) bool {
	previous := t.pixels[y][x]
	t.pixels[y][x] = !previous
	t.dirty = true
	return previous
}

// KeyPressed implements chip8.Input.
func (t *Terminal) KeyPressed(key byte) bool {
	if int(key) >= len(t.keys) {
		return false
	}
	return t.keys[key] > 0
}

// PressedKey implements chip8.Input.
func (t *Terminal) PressedKey() (byte, bool) {
	for key := range t.keys {
		if t.keys[key] > 0 {
			return byte(key), true
		}
	}
	return 0, false
}

// Poll drains pending terminal input and updates key and quit state.
// Reads do not block, the terminal is in non-canonical mode with no
// minimum character count.
func (t *Terminal) Poll() {
	for key := range t.keys {
		if t.keys[key] > 0 {
			t.keys[key]--
		}
	}

	buf := make([]byte, 16)
	n, err := t.in.Read(buf)
	if err != nil || n == 0 {
		return
	}

	for _, c := range buf[:n] {
		if c == quitKey {
			t.quit = true
			continue
		}
		if key, ok := keypadMap[c]; ok {
			t.keys[key] = keyHoldFrames
		}
	}
}

// ShouldQuit reports whether the quit key was pressed.
func (t *Terminal) ShouldQuit() bool {
	return t.quit
}

// SetSoundPlaying rings the terminal bell when the sound timer becomes
// active.
func (t *Terminal) SetSoundPlaying(playing bool) {
	if playing && !t.soundPlaying {
		_, _ = fmt.Fprint(t.out, "\a")
	}
	t.soundPlaying = playing
}

// Render draws the framebuffer when it changed since the last frame.
func (t *Terminal) Render() error {
	if !t.dirty {
		return nil
	}
	t.dirty = false

	if _, err := fmt.Fprint(t.out, t.renderFrame()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// renderFrame builds the full screen as a single string, two pixel rows
// per text line using half block characters.
func (t *Terminal) renderFrame() string {
	var sb strings.Builder
	sb.WriteString("\x1b[H") // move cursor to home position

	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := 0; x < chip8.DisplayWidth; x++ {
			top := t.pixels[y][x]
			bottom := t.pixels[y+1][x]

			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
