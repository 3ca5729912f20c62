package domain

import (
	"strings"
	"time"
)

// Message is one direct message between two users. Messages never embed a
// user snapshot; senders and receivers are always resolved by id against the
// canonical users collection.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	SentAt     time.Time
	Read       bool
}

// ConversationKey derives the identity of the two-party thread between a and
// b. The pair is sorted before joining, so the key never depends on who
// sent first.
func ConversationKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return strings.Join([]string{a, b}, "-")
}

// ConversationKeyOf returns the thread key for one message.
func (m Message) ConversationKeyOf() string {
	return ConversationKey(m.SenderID, m.ReceiverID)
}
