package store

import (
	"fmt"

	"github.com/louisbranch/plaza/internal/social/domain"
)

// AppendMessage adds a direct message to the end of the messages collection.
func (s *Store) AppendMessage(message domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

// MarkConversationRead flips the read flag on every message of the given
// thread that is addressed to userID. Messages sent by userID are untouched.
func (s *Store) MarkConversationRead(conversationKey, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ConversationKeyOf() != conversationKey {
			continue
		}
		if s.messages[i].ReceiverID == userID {
			s.messages[i].Read = true
		}
	}
}

// AppendNotification prepends a notification, newest first.
func (s *Store) AppendNotification(notification domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification.Actor = notification.Actor.Clone()
	s.notifications = append([]domain.Notification{notification}, s.notifications...)
}

// MarkNotificationsRead flips the read flag on the given notification ids.
// Unknown ids are skipped: the set was captured from a snapshot that may
// predate newer mutations.
func (s *Store) MarkNotificationsRead(ids []string) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if wanted[s.notifications[i].ID] {
			s.notifications[i].Read = true
		}
	}
}

// AppendStory prepends a story, newest first.
func (s *Store) AppendStory(story domain.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	story.Author = story.Author.Clone()
	s.stories = append([]domain.Story{story}, s.stories...)
}

// AppendGroup prepends a group.
func (s *Store) AppendGroup(group domain.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append([]domain.Group{group.Clone()}, s.groups...)
}

// AddGroupMember adds a membership to a group. Joining twice is idempotent.
func (s *Store) AddGroupMember(groupID, userID string, role domain.GroupRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userIndex(userID) < 0 {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	for i := range s.groups {
		if s.groups[i].ID != groupID {
			continue
		}
		if s.groups[i].HasMember(userID) {
			return nil
		}
		s.groups[i].Members = append(s.groups[i].Members, domain.GroupMember{
			UserID: userID,
			Role:   role,
		})
		return nil
	}
	return fmt.Errorf("group %s: %w", groupID, ErrNotFound)
}

// AppendAdvertisement prepends an advertisement.
func (s *Store) AppendAdvertisement(ad domain.Advertisement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ad.Author = ad.Author.Clone()
	s.advertisements = append([]domain.Advertisement{ad}, s.advertisements...)
}
