package hostmsg

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSink_WritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	require.NoError(t, sink.Send(context.Background(), Redirect("")))
	assert.Equal(t, `{"type":"REDIRECT","buttonId":"auto-click-target"}`+"\n", buf.String())
}

func TestWriterSink_RejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	err := sink.Send(context.Background(), Message{Type: "CLOSE", ButtonID: "x"})
	require.ErrorIs(t, err, ErrInvalidMessage)
	assert.Zero(t, buf.Len(), "invalid messages must not reach the host")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriterSink_WriteError(t *testing.T) {
	err := NewWriterSink(failingWriter{}).Send(context.Background(), Redirect(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestRecordingSink(t *testing.T) {
	sink := &RecordingSink{}
	require.NoError(t, sink.Send(context.Background(), Redirect("a")))
	require.NoError(t, sink.Send(context.Background(), Redirect("b")))

	msgs := sink.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "a", msgs[0].ButtonID)
	assert.Equal(t, "b", msgs[1].ButtonID)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		target string
		want   any
	}{
		{"", NopSink{}},
		{"none", NopSink{}},
	}
	for _, tt := range tests {
		sink, closer, err := Open(tt.target)
		require.NoError(t, err)
		assert.Equal(t, tt.want, sink)
		assert.NoError(t, closer.Close())
	}

	for _, target := range []string{"stdout", "stderr"} {
		sink, closer, err := Open(target)
		require.NoError(t, err)
		assert.IsType(t, &WriterSink{}, sink)
		assert.NoError(t, closer.Close())
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "host.jsonl")

	for i := 0; i < 2; i++ {
		sink, closer, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, sink.Send(context.Background(), Redirect("")))
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2, "file sink appends")
}

func TestWithLogging(t *testing.T) {
	var log bytes.Buffer
	inner := &RecordingSink{}
	sink := WithLogging(inner, &log)
	sink.(*LoggingSink).now = func() time.Time {
		return time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	}

	require.NoError(t, sink.Send(context.Background(), Redirect("")))
	assert.Equal(t, "2026-01-02T03:04:05Z host message REDIRECT(auto-click-target) sent\n", log.String())

	log.Reset()
	inner.Err = errors.New("host gone")
	err := sink.Send(context.Background(), Redirect(""))
	require.Error(t, err)
	assert.Contains(t, log.String(), "warning: host message REDIRECT(auto-click-target) not delivered: host gone")
}
