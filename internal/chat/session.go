package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/ayumik/jobtrack/internal/errors"
)

// DefaultReplyDelay is how long the assistant "types" before replying.
const DefaultReplyDelay = 800 * time.Millisecond

// Session runs the send flow with at most one in-flight reply: append the
// user message, persist, wait out the reply delay, append the assistant
// reply, persist. A pending reply can be cancelled by Clear.
type Session struct {
	transcript *Transcript
	responder  Responder
	delay      time.Duration

	mu      sync.Mutex
	pending bool
	timer   *time.Timer
	replyCh chan Message
}

// NewSession creates a Session. A non-positive delay delivers the reply as
// soon as the scheduler runs it (used by tests).
func NewSession(transcript *Transcript, responder Responder, delay time.Duration) *Session {
	return &Session{
		transcript: transcript,
		responder:  responder,
		delay:      delay,
	}
}

// Pending reports whether an assistant reply is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Send appends the trimmed user message to the transcript and schedules the
// assistant reply. The returned channel yields the assistant message once it
// has been persisted; the channel is closed without a value if the pending
// reply is cancelled. Empty input and sends while a reply is pending are
// rejected.
func (s *Session) Send(text string) (Message, <-chan Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, nil, errors.NewInvalidRequest("message must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return Message{}, nil, errors.NewReplyPending()
	}

	messages, err := s.transcript.Messages()
	if err != nil {
		return Message{}, nil, err
	}

	userMsg, err := newMessage(RoleUser, text)
	if err != nil {
		return Message{}, nil, errors.NewInternal(err)
	}

	messages = append(messages, userMsg)
	if err := s.transcript.save(messages); err != nil {
		return Message{}, nil, err
	}

	ch := make(chan Message, 1)
	s.pending = true
	s.replyCh = ch
	s.timer = time.AfterFunc(s.delay, func() {
		s.deliver(text, ch)
	})

	return userMsg, ch, nil
}

// deliver appends and persists the assistant reply, then hands it to the
// waiter. Runs on the timer goroutine.
func (s *Session) deliver(userText string, ch chan Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Cancelled between scheduling and firing.
	if !s.pending {
		return
	}

	s.pending = false
	s.timer = nil
	s.replyCh = nil

	reply, err := newMessage(RoleAssistant, s.responder.Reply(userText))
	if err != nil {
		close(ch)
		return
	}

	messages, err := s.transcript.Messages()
	if err != nil {
		close(ch)
		return
	}
	messages = append(messages, reply)
	if err := s.transcript.save(messages); err != nil {
		close(ch)
		return
	}

	ch <- reply
	close(ch)
}

// Clear cancels any pending reply and wipes the transcript. A cancelled
// reply never lands, even if its timer already fired.
func (s *Session) Clear() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.replyCh != nil {
		close(s.replyCh)
	}
	s.pending = false
	s.timer = nil
	s.replyCh = nil
	s.mu.Unlock()

	return s.transcript.Clear()
}
