// Package view derives view-ready structures from store state.
//
// Every derivation here is pure: it can be recomputed at any time from the
// current collections alone, with no cached invariant to maintain.
package view

import (
	"sort"
	"time"

	"github.com/louisbranch/plaza/internal/social/domain"
)

// Conversation is one two-party thread, represented by its most recent
// message.
type Conversation struct {
	ID           string
	Participants [2]string
	LastMessage  domain.Message
}

// Conversations groups messages by thread key, keeps the message with the
// maximum timestamp as each thread's representative, and orders threads by
// that timestamp descending.
func Conversations(messages []domain.Message) []Conversation {
	byKey := make(map[string]Conversation)
	for _, message := range messages {
		key := message.ConversationKeyOf()
		current, exists := byKey[key]
		if !exists || message.SentAt.After(current.LastMessage.SentAt) {
			byKey[key] = Conversation{
				ID:           key,
				Participants: sortedPair(message.SenderID, message.ReceiverID),
				LastMessage:  message,
			}
		}
	}

	conversations := make([]Conversation, 0, len(byKey))
	for _, conversation := range byKey {
		conversations = append(conversations, conversation)
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.SentAt.After(conversations[j].LastMessage.SentAt)
	})
	return conversations
}

// ConversationWith returns the thread between currentID and targetID. When no
// message exists yet it synthesizes a placeholder whose last message is a
// non-actionable sentinel, so an empty thread can still be rendered.
func ConversationWith(messages []domain.Message, currentID, targetID string) Conversation {
	key := domain.ConversationKey(currentID, targetID)
	for _, conversation := range Conversations(messages) {
		if conversation.ID == key {
			return conversation
		}
	}
	return Conversation{
		ID:           key,
		Participants: sortedPair(currentID, targetID),
		LastMessage: domain.Message{
			SenderID:   currentID,
			ReceiverID: targetID,
			Read:       true,
		},
	}
}

// UnreadMessageCount counts messages in the given thread addressed to userID
// that are still unread.
func UnreadMessageCount(messages []domain.Message, conversationKey, userID string) int {
	count := 0
	for _, message := range messages {
		if message.ConversationKeyOf() != conversationKey {
			continue
		}
		if message.ReceiverID == userID && !message.Read {
			count++
		}
	}
	return count
}

// UnreadNotificationCount counts notifications that are still unread.
func UnreadNotificationCount(notifications []domain.Notification) int {
	count := 0
	for _, notification := range notifications {
		if !notification.Read {
			count++
		}
	}
	return count
}

// StoryGroup is all stories of one author, in arrival order.
type StoryGroup struct {
	Author  domain.User
	Stories []domain.Story
}

// FullySeen reports whether every story id in the group is in the seen set.
func (g StoryGroup) FullySeen(seen map[string]bool) bool {
	for _, story := range g.Stories {
		if !seen[story.ID] {
			return false
		}
	}
	return true
}

// StoryGroups groups stories by author id. Group order follows each author's
// first appearance; story order within a group is arrival order.
func StoryGroups(stories []domain.Story) []StoryGroup {
	index := make(map[string]int)
	var groups []StoryGroup
	for _, story := range stories {
		if at, exists := index[story.Author.ID]; exists {
			groups[at].Stories = append(groups[at].Stories, story)
			continue
		}
		index[story.Author.ID] = len(groups)
		groups = append(groups, StoryGroup{
			Author:  story.Author,
			Stories: []domain.Story{story},
		})
	}
	return groups
}

// FilterExpiredStories drops stories older than the story TTL relative to
// loadedAt. This runs once at load time; the surviving working set is not
// re-filtered against the wall clock afterwards.
func FilterExpiredStories(stories []domain.Story, loadedAt time.Time) []domain.Story {
	kept := make([]domain.Story, 0, len(stories))
	for _, story := range stories {
		if !story.Expired(loadedAt) {
			kept = append(kept, story)
		}
	}
	return kept
}

func sortedPair(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
