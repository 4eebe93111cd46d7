package console

import (
	"bufio"
	"errors"
	"io"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyEsc   = 0x1b
)

// ReadAction reads one key press from raw terminal input and maps it to an
// action. Unbound keys yield ActionNone. Only lowercase letters are bound.
// Arrow keys arrive as ESC [ A..D (or ESC O A..D in application cursor mode).
func ReadAction(r *bufio.Reader) (core.Action, error) {
	b, err := r.ReadByte()
	if err != nil {
		return core.ActionNone, err
	}

	switch b {
	case keyEsc:
		return readEscape(r)
	case keyCtrlC, keyCtrlD, 'q':
		return core.ActionQuit, nil
	case 'r':
		return core.ActionRestart, nil
	case 'w', 'k':
		return core.ActionUp, nil
	case 's', 'j':
		return core.ActionDown, nil
	case 'a', 'h':
		return core.ActionLeft, nil
	case 'd', 'l':
		return core.ActionRight, nil
	}
	return core.ActionNone, nil
}

// readEscape decodes the rest of an escape sequence, blocking until its bytes
// arrive. An ESC followed by anything else consumes that byte; an ESC at the
// end of input is ignored.
func readEscape(r *bufio.Reader) (core.Action, error) {
	intro, err := r.ReadByte()
	if err != nil {
		return escapeEnd(err)
	}
	if intro != '[' && intro != 'O' {
		return core.ActionNone, nil
	}

	final, err := r.ReadByte()
	if err != nil {
		return escapeEnd(err)
	}
	switch final {
	case 'A':
		return core.ActionUp, nil
	case 'B':
		return core.ActionDown, nil
	case 'C':
		return core.ActionRight, nil
	case 'D':
		return core.ActionLeft, nil
	}
	return core.ActionNone, nil
}

// escapeEnd drops a sequence cut short by the end of input. The next read
// reports io.EOF.
func escapeEnd(err error) (core.Action, error) {
	if errors.Is(err, io.EOF) {
		return core.ActionNone, nil
	}
	return core.ActionNone, err
}
