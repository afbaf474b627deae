package assignment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// MaxLineSize is the longest input line ReadLines accepts, terminator included.
const MaxLineSize = 1 << 20

// ReadLines reads every line from rd before returning. Line terminators,
// including a trailing carriage return, are dropped. A line longer than
// MaxLineSize fails with a LineError wrapping bufio.ErrTooLong.
func ReadLines(rd io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LineError{Line: len(lines) + 1, Err: err}
		}
		return nil, fmt.Errorf("fail to read input: %w", err)
	}
	return lines, nil
}
