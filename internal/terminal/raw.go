//go:build !windows

package terminal

import (
	"fmt"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// setRawIO switches the terminal to raw non-blocking input and returns a
// function that restores the previous state. Signal generation (ISIG)
// stays enabled so Ctrl-C still reaches the signal-aware context.
func setRawIO(fd uintptr) (func(), error) {
	var tios unix.Termios
	if err := termios.Tcgetattr(fd, &tios); err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}

	a := tios
	a.Iflag &^= unix.BRKINT | unix.ISTRIP | unix.IXON | unix.IXOFF
	a.Iflag |= unix.IGNBRK | unix.IGNPAR
	a.Lflag &^= unix.ICANON | unix.IEXTEN | unix.ECHO
	// non-blocking reads: no minimum character count, no timeout
	a.Cc[unix.VMIN] = 0
	a.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(fd, termios.TCSANOW, &a); err != nil {
		// try to restore as it was if it errors
		_ = termios.Tcsetattr(fd, termios.TCSANOW, &tios)
		return nil, fmt.Errorf("setting terminal attributes: %w", err)
	}

	return func() {
		_ = termios.Tcsetattr(fd, termios.TCSANOW, &tios)
	}, nil
}
