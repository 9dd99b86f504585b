package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// arrowCommands maps arrow keys to the movement command they stand for
var arrowCommands = map[byte]string{
	'A': "n",
	'B': "s",
	'C': "e",
	'D': "w",
}

// GetInput reads a line of input from stdin.
// Returns io.EOF once stdin is exhausted.
func GetInput() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// IsInteractive reports whether stdin is a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the movement command if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}
	return arrowCommands[b3]
}

// GetInputWithArrows reads a command line in raw mode.
// Arrow keys return a movement command immediately without needing Enter.
// Ctrl+C and Ctrl+D return io.EOF.
func GetInputWithArrows() (string, error) {
	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	var line []byte
	for {
		b, err := readByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == 0x1b:
			if cmd := tryReadArrowKey(b); cmd != "" && len(line) == 0 {
				fmt.Print(cmd + "\r\n")
				return cmd, nil
			}
			// Arrows pressed mid-line are discarded
		case b == 3 || b == 4:
			fmt.Print("\r\n")
			return "", io.EOF
		case b == '\n' || b == '\r':
			fmt.Print("\r\n")
			return string(line), nil
		case b == 127 || b == 8:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Print("\b \b")
			}
		case b >= 32 && b < 127:
			line = append(line, b)
			fmt.Print(string(b))
		}
	}
}
