package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/leaudio/leaudio-go/pkg/log"
)

// RunFilter copies the matching events to a new trace file and returns how
// many were written.
func RunFilter(path, output string, opts FilterOptions) (int, error) {
	if output == "" {
		return 0, fmt.Errorf("output file required")
	}
	reader, err := openReader(path, opts)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output trace: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	written, failed := logger.Stats()
	if failed > 0 {
		return written, fmt.Errorf("%d events failed to encode", failed)
	}
	return written, nil
}
