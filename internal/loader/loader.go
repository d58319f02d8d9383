// Package loader handles ROM image loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// ErrImageTooLarge is returned for images that do not fit into the
// program area of the 4KB address space.
var ErrImageTooLarge = errors.New("image exceeds the program memory area")

// ErrEmptyImage is returned for images without any content.
var ErrEmptyImage = errors.New("image is empty")

// Load reads the ROM image from the given file path. The image itself is
// treated as an opaque byte sequence, only its size is validated: the
// machine state does not enforce the program area boundary, the loader
// does.
func Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	image, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return image, nil
}

// Read reads a ROM image from the reader and validates its size against
// the program memory area.
func Read(reader io.Reader) ([]byte, error) {
	image, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	switch {
	case len(image) == 0:
		return nil, ErrEmptyImage
	case len(image) > chip8.MaxImageSize:
		return nil, fmt.Errorf("%w: %d bytes, %d usable", ErrImageTooLarge, len(image), chip8.MaxImageSize)
	}
	return image, nil
}
