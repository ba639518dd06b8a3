package utils

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// ReadSecretLine reads the first line of r, without its line ending. It is
// used for --password-stdin, so an empty line is an error.
func ReadSecretLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}

	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 {
		return nil, fmt.Errorf("stdin is empty")
	}

	return line, nil
}
