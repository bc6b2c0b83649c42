package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WaitForKeypress writes prompt to out and blocks until a single key is
// pressed on in. It returns immediately when in is not a terminal, so a
// relay started by a service manager exits without waiting.
func WaitForKeypress(in *os.File, out io.Writer, prompt string) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	fmt.Fprint(out, prompt)

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("make terminal raw: %w", err)
	}
	defer term.Restore(fd, state)

	if _, err := in.Read(make([]byte, 1)); err != nil {
		return fmt.Errorf("read keypress: %w", err)
	}
	return nil
}
