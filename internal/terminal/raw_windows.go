//go:build windows

package terminal

import "errors"

// setRawIO is not supported on Windows terminals.
func setRawIO(uintptr) (func(), error) {
	return nil, errors.New("raw terminal mode is not supported on windows")
}
