package capture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Sentinel opens an active artifact file.
const Sentinel = "// Crunch\n"

// Default location of the artifact, relative to the working directory.
const (
	DefaultDir  = "target/unwrapgen"
	DefaultFile = "out.txt"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Sink receives the text of every generated declaration.
type Sink interface {
	// Start creates or truncates the artifact and enables appends.
	Start() error
	// Append adds one declaration when capture is active.
	Append(text string) error
	// Stop keeps the captured content and disables further appends.
	Stop() error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Start() error { return nil }

func (NopSink) Append(string) error { return nil }

func (NopSink) Stop() error { return nil }

// FileSink implements Sink on top of a file. Appends are serialized.
type FileSink struct {
	dir    string
	file   string
	logger *slog.Logger

	mu sync.Mutex
}

// NewFileSink creates a sink writing to dir/file. Empty values use the
// defaults.
func NewFileSink(dir, file string, logger *slog.Logger) *FileSink {
	if dir == "" {
		dir = DefaultDir
	}

	if file == "" {
		file = DefaultFile
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FileSink{dir: dir, file: file, logger: logger}
}

// Path returns the artifact path.
func (s *FileSink) Path() string {
	return filepath.Join(s.dir, s.file)
}

// Start implements Sink.
func (s *FileSink) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("creating capture directory: %w", err)
	}

	if err := os.WriteFile(s.Path(), []byte(Sentinel), filePerm); err != nil {
		return fmt.Errorf("creating capture file: %w", err)
	}

	s.logger.Debug("capture started", slog.String("path", s.Path()))

	return nil
}

// Append implements Sink.
func (s *FileSink) Append(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.edit(func(f *os.File) error {
		if _, err := io.WriteString(f, text+"\n"); err != nil {
			return fmt.Errorf("appending to capture file: %w", err)
		}

		return nil
	})
}

// Stop implements Sink.
func (s *FileSink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.edit(func(f *os.File) error {
		rest, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("reading capture file: %w", err)
		}

		if err := f.Truncate(0); err != nil {
			return fmt.Errorf("truncating capture file: %w", err)
		}

		if _, err := f.Write(rest); err != nil {
			return fmt.Errorf("rewriting capture file: %w", err)
		}

		s.logger.Debug("capture stopped", slog.String("path", s.Path()), slog.Int("bytes", len(rest)))

		return nil
	})
}

// edit opens the artifact and runs action positioned after the sentinel.
// A missing file is not an error.
func (s *FileSink) edit(action func(f *os.File) error) error {
	f, err := os.OpenFile(s.Path(), os.O_RDWR|os.O_APPEND, filePerm)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("opening capture file: %w", err)
	}

	header := make([]byte, len(Sentinel))
	if _, err := io.ReadFull(f, header); err != nil {
		f.Close()

		s.logger.Warn("stale capture directory, removing", slog.String("dir", s.dir))

		if err := os.RemoveAll(s.dir); err != nil {
			return fmt.Errorf("removing stale capture directory: %w", err)
		}

		return nil
	}

	defer f.Close()

	if !bytes.Equal(header, []byte(Sentinel)) {
		return nil
	}

	return action(f)
}
