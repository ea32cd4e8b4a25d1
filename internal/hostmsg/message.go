package hostmsg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// TypeRedirect asks the host to follow a call-to-action.
const TypeRedirect = "REDIRECT"

// DefaultTarget is the host element the redirect points at.
const DefaultTarget = "auto-click-target"

// ErrInvalidMessage is returned when a message does not match the wire schema.
var ErrInvalidMessage = errors.New("invalid host message")

// Message is a one-way notification to the embedding host.
type Message struct {
	Type     string `json:"type"`
	ButtonID string `json:"buttonId"`
}

// Redirect builds a redirect message for the given target.
// An empty target falls back to DefaultTarget.
func Redirect(target string) Message {
	if target == "" {
		target = DefaultTarget
	}
	return Message{Type: TypeRedirect, ButtonID: target}
}

// Sink delivers messages to the host. Delivery is one-way: no reply is
// awaited and failures are not retried.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// Notify sends msg and drops any error. Callers that want failures recorded
// wrap the sink with WithLogging.
func Notify(ctx context.Context, sink Sink, msg Message) {
	if sink == nil {
		return
	}
	_ = sink.Send(ctx, msg)
}

const messageSchema = `{
  "type": "object",
  "properties": {
    "type": {"type": "string", "enum": ["REDIRECT"]},
    "buttonId": {"type": "string", "minLength": 1}
  },
  "required": ["type", "buttonId"],
  "additionalProperties": false
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(messageSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://host-message.json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

// Validate checks raw JSON against the host message schema.
func Validate(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	sch, err := schema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return nil
}
