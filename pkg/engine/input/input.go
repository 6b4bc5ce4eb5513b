package input

import (
	"bufio"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin. Used by the cooked-mode setup
// prompts, never during play.
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')

	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	return strings.TrimRight(line, "\r\n")
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after an ESC
// byte has been consumed. Returns the arrow code, "escape" for a bare ESC
// that leads nowhere, or "" for an unknown sequence.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Both CSI (ESC [) and SS3 (ESC O) sequences carry the key in byte 3
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}

	// Unknown escape sequence - discard it
	return ""
}

// ReadKey blocks for exactly one keypress in raw mode and returns its code:
// "arrow_up" style names for arrows, "ctrl_c" for interrupt, "enter" for
// CR/LF, or the lowercased character itself for printable keys. Unprintable
// keys come back as "".
func ReadKey() string {
	// Drop any cooked-mode buffering so raw reads see the next byte
	stdinReader = nil

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		term.Restore(int(os.Stdin.Fd()), oldState)
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	switch {
	case b == 0x1b:
		return tryReadArrowKey()
	case b == 3:
		return "ctrl_c"
	case b == '\n' || b == '\r':
		return "enter"
	case b >= 32 && b < 127:
		return strings.ToLower(string(b))
	}

	return ""
}
