package solidify

import (
	"io"
	"os"
)

// DefaultLineBuffer is the formatted-path line buffer size (§4.9).
const DefaultLineBuffer = 768

// Sink is the solidifier's output abstraction: append-only, no seek, no
// read. Write goes through a fixed-size formatted buffer (truncation
// silently accepted); WriteRaw bypasses it for unbounded-length payloads
// such as long string-constant identifiers (§4.2, testable property 5).
type Sink interface {
	Write(s string) error
	WriteRaw(s string) error
}

type writerSink struct {
	w         io.Writer
	lineBytes int
}

// NewWriterSink wraps an io.Writer as a sink with the default line buffer.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w, lineBytes: DefaultLineBuffer}
}

// NewWriterSinkWithBuffer is NewWriterSink with a caller-chosen formatted
// line buffer size, for targets tighter or looser than the default 768.
func NewWriterSinkWithBuffer(w io.Writer, lineBytes int) Sink {
	if lineBytes <= 0 {
		lineBytes = DefaultLineBuffer
	}
	return &writerSink{w: w, lineBytes: lineBytes}
}

// NewFileSink opens path for writing and returns a sink over it plus a
// close function the caller must invoke.
func NewFileSink(path string) (Sink, func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return NewWriterSink(f), f.Close, nil
}

func (s *writerSink) Write(str string) error {
	if len(str) > s.lineBytes {
		str = str[:s.lineBytes]
	}
	_, err := io.WriteString(s.w, str)
	return err
}

func (s *writerSink) WriteRaw(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}
