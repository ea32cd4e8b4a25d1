package hostmsg

import (
	"context"
	"fmt"
	"io"
	"time"
)

// LoggingSink is a decorator that records every delivery attempt.
type LoggingSink struct {
	inner Sink
	out   io.Writer
	now   func() time.Time
}

// WithLogging wraps a Sink so each send is logged to out.
func WithLogging(s Sink, out io.Writer) Sink {
	return &LoggingSink{inner: s, out: out, now: time.Now}
}

func (l *LoggingSink) Send(ctx context.Context, msg Message) error {
	err := l.inner.Send(ctx, msg)

	ts := l.now().UTC().Format(time.RFC3339)
	if err != nil {
		fmt.Fprintf(l.out, "%s warning: host message %s(%s) not delivered: %v\n", ts, msg.Type, msg.ButtonID, err)
	} else {
		fmt.Fprintf(l.out, "%s host message %s(%s) sent\n", ts, msg.Type, msg.ButtonID)
	}
	return err
}
