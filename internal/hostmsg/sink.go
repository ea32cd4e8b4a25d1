package hostmsg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// WriterSink writes each message as one JSON line.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Send(_ context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := Validate(data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// NopSink discards every message.
type NopSink struct{}

func (NopSink) Send(context.Context, Message) error { return nil }

// RecordingSink keeps every message it receives.
type RecordingSink struct {
	mu       sync.Mutex
	messages []Message
	Err      error // returned from Send when set
}

func (s *RecordingSink) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.Err
}

// Messages returns a copy of the received messages.
func (s *RecordingSink) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open resolves a host output target into a sink:
// "" or "none" discards, "stdout" and "stderr" write to the process streams,
// anything else is a file path opened for append.
// The returned closer must be closed when the sink is no longer used.
func Open(target string) (Sink, io.Closer, error) {
	switch target {
	case "", "none":
		return NopSink{}, nopCloser{}, nil
	case "stdout":
		return NewWriterSink(os.Stdout), nopCloser{}, nil
	case "stderr":
		return NewWriterSink(os.Stderr), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create host output dir: %w", err)
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open host output: %w", err)
	}
	return NewWriterSink(f), f, nil
}
