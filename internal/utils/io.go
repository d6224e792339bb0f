package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// maxPipedInput bounds what ReadStdin accepts; piped input here is a key
// file, never bulk data.
const maxPipedInput = 64 << 10

// ReadStdin reads piped input from stdin. It refuses to block on an
// interactive terminal and rejects empty or oversized input.
func ReadStdin() ([]byte, error) {
	return readPiped(os.Stdin)
}

func readPiped(f *os.File) ([]byte, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice != 0 {
		return nil, errors.New("stdin is a terminal: pipe the key file in, or use --prompt")
	}

	data, err := io.ReadAll(io.LimitReader(f, maxPipedInput+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	switch {
	case len(data) == 0:
		return nil, errors.New("stdin is empty")
	case len(data) > maxPipedInput:
		return nil, fmt.Errorf("stdin input exceeds %d bytes", maxPipedInput)
	}
	return data, nil
}
