package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestRead(t *testing.T) {
	image, err := Read(bytes.NewReader([]byte{0x12, 0x00, 0xAB}))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x00, 0xAB}, image)
}

func TestReadEmptyImage(t *testing.T) {
	_, err := Read(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, ErrEmptyImage))
}

func TestReadImageSizeLimit(t *testing.T) {
	image, err := Read(bytes.NewReader(make([]byte, chip8.MaxImageSize)))
	assert.NoError(t, err)
	assert.Equal(t, chip8.MaxImageSize, len(image))

	_, err = Read(bytes.NewReader(make([]byte, chip8.MaxImageSize+1)))
	assert.True(t, errors.Is(err, ErrImageTooLarge))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, []byte{0x60, 0x05}, 0o644))

	image, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x05}, image)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
}
