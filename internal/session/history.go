package session

import (
	"fmt"
	"strings"
	"time"
)

// Message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// DefaultHistorySize is the message capacity used when none is configured.
const DefaultHistorySize = 10

// Message is one entry in a conversation transcript.
type Message struct {
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// History is a bounded FIFO message log. When an append exceeds the
// capacity the oldest messages are dropped, so len(messages) never exceeds
// the capacity and ordering always reflects arrival order.
type History struct {
	max      int
	messages []Message
}

// NewHistory creates a history with the given capacity.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// Append records a message with the current timestamp, evicting from the
// front when the capacity is exceeded.
func (h *History) Append(sender, content string) {
	h.messages = append(h.messages, Message{
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now(),
	})
	if excess := len(h.messages) - h.max; excess > 0 {
		h.messages = h.messages[excess:]
	}
}

// Messages returns a copy of the retained messages, oldest first.
func (h *History) Messages() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Len returns the number of retained messages.
func (h *History) Len() int { return len(h.messages) }

// Formatted renders a numbered transcript, oldest first, with localized
// sender labels. Returns the empty string when there are no messages.
func (h *History) Formatted() string {
	if len(h.messages) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, msg := range h.messages {
		label := "Cliente"
		if msg.Sender == SenderAssistant {
			label = "Assistente"
		}
		fmt.Fprintf(&sb, "%d. %s: %s\n", i+1, label, msg.Content)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Clear empties the log.
func (h *History) Clear() { h.messages = nil }
