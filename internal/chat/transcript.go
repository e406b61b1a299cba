// Package chat implements the advisor chat: an append-only transcript on
// the key-value store and a canned-response assistant.
package chat

import (
	"encoding/json"
	"time"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/kv"
)

// Namespace is the store key holding the chat transcript. It is independent
// of the company collection namespace.
const Namespace = "job-tracker-chat"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry. Content may contain newlines and
// **bold** markers; interpreting them is a rendering concern.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// newMessage creates a message with a fresh ID and the current timestamp.
func newMessage(role Role, content string) (Message, error) {
	id, err := company.NewID()
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:        id,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// Transcript is the persisted message log. Individual messages are never
// edited or deleted; the only mutations are append and whole-log clear.
type Transcript struct {
	store kv.Store
}

// NewTranscript creates a Transcript backed by the given store.
func NewTranscript(store kv.Store) *Transcript {
	return &Transcript{store: store}
}

// Messages returns the full transcript in append order. An absent namespace
// is an empty transcript.
func (t *Transcript) Messages() ([]Message, error) {
	data, ok, err := t.store.Get(Namespace)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if !ok || data == "" {
		return []Message{}, nil
	}

	var messages []Message
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, errors.NewParse(Namespace, err)
	}
	return messages, nil
}

// save persists the full transcript.
func (t *Transcript) save(messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return errors.NewInternal(err)
	}
	if err := t.store.Set(Namespace, string(data)); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// Clear removes the whole transcript.
func (t *Transcript) Clear() error {
	if err := t.store.Remove(Namespace); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
