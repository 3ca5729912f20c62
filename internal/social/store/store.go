// Package store holds the canonical in-memory social-graph collections and
// the only sanctioned path for structural mutation.
//
// The store owns all entity memory. Accessors return deep copies, so callers
// can never alias internal state; mutators run under one lock, so no mutation
// is observably partial. Remote confirmations from the syncer arrive on their
// own goroutines and apply against current state through the same lock.
package store

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/louisbranch/plaza/internal/errors"
	"github.com/louisbranch/plaza/internal/social/domain"
)

// ErrNotFound indicates a mutation referenced an unknown entity id. The store
// never silently no-ops: an unknown id is a programmer error surfaced to the
// caller.
var ErrNotFound = errors.WithCode(stderrors.New("record not found"), errors.CodeNotFound)

// ErrSelfFriendship indicates a friendship request naming the same user on
// both sides.
var ErrSelfFriendship = errors.WithCode(stderrors.New("friendship requires two distinct users"), errors.CodeInvalidInput)

// Store is the canonical in-memory entity store.
type Store struct {
	mu             sync.RWMutex
	users          []domain.User
	posts          []domain.Post
	messages       []domain.Message
	notifications  []domain.Notification
	groups         []domain.Group
	stories        []domain.Story
	advertisements []domain.Advertisement
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Users returns a copy of the users collection.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, len(s.users))
	for i, user := range s.users {
		users[i] = user.Clone()
	}
	return users
}

// User returns the canonical user with the given id.
func (s *Store) User(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.userIndex(id)
	if idx < 0 {
		return domain.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return s.users[idx].Clone(), nil
}

// Posts returns a copy of the posts collection in feed order.
func (s *Store) Posts() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]domain.Post, len(s.posts))
	for i, post := range s.posts {
		posts[i] = post.Clone()
	}
	return posts
}

// Post returns the post with the given id.
func (s *Store) Post(id string) (domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.postIndex(id)
	if idx < 0 {
		return domain.Post{}, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return s.posts[idx].Clone(), nil
}

// Messages returns a copy of the messages collection in arrival order.
func (s *Store) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Message(nil), s.messages...)
}

// Notifications returns a copy of the notifications collection.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notifications := make([]domain.Notification, len(s.notifications))
	for i, notification := range s.notifications {
		notification.Actor = notification.Actor.Clone()
		notifications[i] = notification
	}
	return notifications
}

// Groups returns a copy of the groups collection.
func (s *Store) Groups() []domain.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	groups := make([]domain.Group, len(s.groups))
	for i, group := range s.groups {
		groups[i] = group.Clone()
	}
	return groups
}

// Group returns the group with the given id.
func (s *Store) Group(id string) (domain.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, group := range s.groups {
		if group.ID == id {
			return group.Clone(), nil
		}
	}
	return domain.Group{}, fmt.Errorf("group %s: %w", id, ErrNotFound)
}

// Stories returns a copy of the stories collection in arrival order.
func (s *Store) Stories() []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stories := make([]domain.Story, len(s.stories))
	for i, story := range s.stories {
		story.Author = story.Author.Clone()
		stories[i] = story
	}
	return stories
}

// Advertisements returns a copy of the advertisements collection.
func (s *Store) Advertisements() []domain.Advertisement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ads := make([]domain.Advertisement, len(s.advertisements))
	for i, ad := range s.advertisements {
		ad.Author = ad.Author.Clone()
		ads[i] = ad
	}
	return ads
}

// ReplaceUsers swaps the whole users collection. Used at initial load.
func (s *Store) ReplaceUsers(users []domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]domain.User, len(users))
	for i, user := range users {
		s.users[i] = user.Clone()
	}
}

// ReplacePosts swaps the whole posts collection. Used at initial load.
func (s *Store) ReplacePosts(posts []domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = make([]domain.Post, len(posts))
	for i, post := range posts {
		s.posts[i] = post.Clone()
	}
}

// ReplaceMessages swaps the whole messages collection. Used at initial load.
func (s *Store) ReplaceMessages(messages []domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]domain.Message(nil), messages...)
}

// ReplaceNotifications swaps the whole notifications collection. Used at
// initial load.
func (s *Store) ReplaceNotifications(notifications []domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]domain.Notification(nil), notifications...)
}

// ReplaceStories swaps the whole stories collection. Used at initial load,
// after expiry filtering.
func (s *Store) ReplaceStories(stories []domain.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stories = append([]domain.Story(nil), stories...)
}

func (s *Store) userIndex(id string) int {
	for i, user := range s.users {
		if user.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) postIndex(id string) int {
	for i, post := range s.posts {
		if post.ID == id {
			return i
		}
	}
	return -1
}
