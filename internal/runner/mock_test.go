package runner

import "github.com/retroenv/chip8emu/internal/chip8"

// mockFrontend is a minimal frontend for testing.
type mockFrontend struct {
	pixels [chip8.DisplayHeight][chip8.DisplayWidth]bool
	keys   [16]bool

	quit          bool
	quitAfterPoll int // request quit after this many polls, 0 disables

	polls   int
	renders int
	sound   bool
}

func (m *mockFrontend) Clear() {
	m.pixels = [chip8.DisplayHeight][chip8.DisplayWidth]bool{}
}

func (m *mockFrontend) SetPixel(x, y byte) bool {
	previous := m.pixels[y][x]
	m.pixels[y][x] = !previous
	return previous
}

func (m *mockFrontend) KeyPressed(key byte) bool {
	if int(key) >= len(m.keys) {
		return false
	}
	return m.keys[key]
}

func (m *mockFrontend) PressedKey() (byte, bool) {
	for key, pressed := range m.keys {
		if pressed {
			return byte(key), true
		}
	}
	return 0, false
}

func (m *mockFrontend) Poll() {
	m.polls++
	if m.quitAfterPoll > 0 && m.polls >= m.quitAfterPoll {
		m.quit = true
	}
}

func (m *mockFrontend) Render() error {
	m.renders++
	return nil
}

func (m *mockFrontend) SetSoundPlaying(playing bool) {
	m.sound = playing
}

func (m *mockFrontend) ShouldQuit() bool {
	return m.quit
}
