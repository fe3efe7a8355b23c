package monitor

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("monitor: stdin is not a terminal")

// Keyboard puts the terminal into raw mode and delivers single key presses.
type Keyboard struct {
	fd    int
	state *term.State
	keys  chan byte
}

// OpenKeyboard switches stdin to raw mode. Close restores it.
func OpenKeyboard() (*Keyboard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("monitor: raw mode: %w", err)
	}

	k := &Keyboard{fd: fd, state: state, keys: make(chan byte, 16)}
	go k.read()

	return k, nil
}

// Keys delivers key presses until stdin closes.
func (k *Keyboard) Keys() <-chan byte { return k.keys }

// Close restores the terminal state.
func (k *Keyboard) Close() error {
	return term.Restore(k.fd, k.state)
}

func (k *Keyboard) read() {
	defer close(k.keys)

	buf := make([]byte, 1)

	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			k.keys <- buf[0]
		}

		if err != nil {
			return
		}
	}
}
