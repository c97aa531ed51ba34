package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"go-healthnav/bridge"
	"go-healthnav/notify"
	"go-healthnav/types"
)

const (
	thinkingText = "Thinking..."
	errorText    = "Error communicating with server"
)

// ErrBusy is returned when Submit is called while a previous request is
// still in flight. Duplicate submissions are rejected rather than raced.
var ErrBusy = errors.New("a request is already pending")

// Asker is the backend bridge as the session sees it.
type Asker interface {
	Ask(ctx context.Context, question string, severity types.Severity, incident *types.Incident) (*bridge.Reply, error)
}

// Session owns all per-visit UI state: the append-only chat history,
// the severity toggle, the single incident marker, and the current
// recommendation set. One owner, defined update methods; handlers never
// touch the fields directly.
type Session struct {
	ID string

	mu       sync.Mutex
	messages []types.Message
	severity types.Severity
	incident *types.Incident
	recs     []types.Recommendation
	pending  bool

	asker  Asker
	toasts *notify.Center
}

func New(asker Asker, toasts *notify.Center) *Session {
	return &Session{
		ID:       uuid.NewString(),
		severity: types.Critical,
		asker:    asker,
		toasts:   toasts,
	}
}

// Submit runs the full chat round trip: append the user message, show a
// thinking placeholder, ask the backend, then append either the reply
// or a single fixed error message. Empty or whitespace-only input is
// silently ignored. While a request is pending further submissions get
// ErrBusy.
func (s *Session) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrBusy
	}
	s.pending = true
	s.messages = append(s.messages, types.Message{Sender: types.SenderUser, Text: text})
	s.messages = append(s.messages, types.Message{Sender: types.SenderMeta, Text: thinkingText})
	severity := s.severity
	incident := s.incident
	s.mu.Unlock()

	reply, err := s.asker.Ask(ctx, text, severity, incident)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	s.removeThinkingLocked()

	if err != nil {
		log.Printf("session %s: backend request failed: %v", s.ID, err)
		s.messages = append(s.messages, types.Message{Sender: types.SenderMeta, Text: errorText})
		return nil
	}

	s.messages = append(s.messages, types.Message{Sender: types.SenderAI, Text: reply.Text})
	if reply.Recommendations != nil {
		// Full replace, never a merge. An empty (non-nil) list clears
		// the cards; an absent field leaves them alone.
		s.recs = append([]types.Recommendation(nil), reply.Recommendations...)
	}
	return nil
}

// Append adds a message without any backend interaction.
func (s *Session) Append(sender types.Sender, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, types.Message{Sender: sender, Text: text})
}

// removeThinkingLocked drops the trailing thinking placeholder if it is
// still the newest entry. Callers hold s.mu.
func (s *Session) removeThinkingLocked() {
	n := len(s.messages)
	if n > 0 && s.messages[n-1].Sender == types.SenderMeta && s.messages[n-1].Text == thinkingText {
		s.messages = s.messages[:n-1]
	}
}

// SetSeverity switches the toggle. Idempotent; exactly one value is
// active afterwards either way, and a toast announces the state.
func (s *Session) SetSeverity(sev types.Severity) {
	s.mu.Lock()
	s.severity = sev
	s.mu.Unlock()
	s.toasts.Notify(fmt.Sprintf("Mode set to %s", strings.ToUpper(string(sev))), 0)
}

// SetIncident replaces the single incident marker and raises a toast.
func (s *Session) SetIncident(lat, lng float64) {
	s.mu.Lock()
	s.incident = &types.Incident{Lat: lat, Lng: lng}
	s.mu.Unlock()
	s.toasts.Notify("Incident location set", 0)
}

func (s *Session) Severity() types.Severity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.severity
}

// Incident returns a copy of the current marker, or nil if none is set.
func (s *Session) Incident() *types.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.incident == nil {
		return nil
	}
	inc := *s.incident
	return &inc
}

// Messages returns the chat history in order.
func (s *Session) Messages() []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Recommendations returns the current card set.
func (s *Session) Recommendations() []types.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Recommendation, len(s.recs))
	copy(out, s.recs)
	return out
}

// Pending reports whether a backend request is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
