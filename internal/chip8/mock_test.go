package chip8

// mockDisplay is a minimal framebuffer mock for testing.
type mockDisplay struct {
	pixels   [DisplayHeight][DisplayWidth]bool
	cleared  bool
	setCalls [][2]byte
}

func (m *mockDisplay) Clear() {
	m.pixels = [DisplayHeight][DisplayWidth]bool{}
	m.cleared = true
}

func (m *mockDisplay) SetPixel(x, y byte) bool {
	m.setCalls = append(m.setCalls, [2]byte{x, y})
	previous := m.pixels[y][x]
	m.pixels[y][x] = !previous
	return previous
}

// mockInput is a minimal keypad mock for testing.
type mockInput struct {
	keys [16]bool
}

func (m *mockInput) KeyPressed(key byte) bool {
	if int(key) >= len(m.keys) {
		return false
	}
	return m.keys[key]
}

func (m *mockInput) PressedKey() (byte, bool) {
	for key, pressed := range m.keys {
		if pressed {
			return byte(key), true
		}
	}
	return 0, false
}

func newTestExecutor() (*Executor, *mockDisplay, *mockInput) {
	display := &mockDisplay{}
	input := &mockInput{}
	return NewExecutor(display, input), display, input
}
