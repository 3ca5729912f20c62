package store

import (
	"fmt"

	"github.com/louisbranch/plaza/internal/social/domain"
)

// UpsertUser inserts or replaces a canonical user record, then rewrites every
// denormalized snapshot of that user across posts, comments, stories,
// advertisements and notifications. The whole pass runs under one lock;
// callers never observe a partially propagated state.
func (s *Store) UpsertUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertUserLocked(user)
}

func (s *Store) upsertUserLocked(user domain.User) {
	canonical := user.Clone()
	if idx := s.userIndex(canonical.ID); idx >= 0 {
		s.users[idx] = canonical
	} else {
		s.users = append(s.users, canonical)
	}
	s.propagateLocked(canonical)
}

// propagateLocked rewrites every embedded snapshot whose id matches the
// canonical user. Partial propagation is a correctness bug, so all
// collections are covered in this single pass.
func (s *Store) propagateLocked(user domain.User) {
	for i := range s.posts {
		if s.posts[i].Author.ID == user.ID {
			s.posts[i].Author = user.Clone()
		}
		for j := range s.posts[i].Comments {
			if s.posts[i].Comments[j].Author.ID == user.ID {
				s.posts[i].Comments[j].Author = user.Clone()
			}
		}
	}
	for i := range s.stories {
		if s.stories[i].Author.ID == user.ID {
			s.stories[i].Author = user.Clone()
		}
	}
	for i := range s.advertisements {
		if s.advertisements[i].Author.ID == user.ID {
			s.advertisements[i].Author = user.Clone()
		}
	}
	for i := range s.notifications {
		if s.notifications[i].Actor.ID == user.ID {
			s.notifications[i].Actor = user.Clone()
		}
	}
}

// RemoveUser deletes a user from the canonical collection. Denormalized
// snapshots elsewhere are left as historical records, matching account
// deletion semantics.
func (s *Store) RemoveUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.userIndex(id)
	if idx < 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	return nil
}

// AddFriendship records a symmetric friendship between two users. Both friend
// lists change in the same logical transaction, and both sides are
// re-propagated so snapshots elsewhere catch up. Adding an existing
// friendship is idempotent.
func (s *Store) AddFriendship(idA, idB string) error {
	if idA == idB {
		return ErrSelfFriendship
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idxA := s.userIndex(idA)
	if idxA < 0 {
		return fmt.Errorf("user %s: %w", idA, ErrNotFound)
	}
	idxB := s.userIndex(idB)
	if idxB < 0 {
		return fmt.Errorf("user %s: %w", idB, ErrNotFound)
	}

	userA := s.users[idxA].Clone()
	userB := s.users[idxB].Clone()
	if !userA.HasFriend(idB) {
		userA.FriendIDs = append(userA.FriendIDs, idB)
	}
	if !userB.HasFriend(idA) {
		userB.FriendIDs = append(userB.FriendIDs, idA)
	}
	s.upsertUserLocked(userA)
	s.upsertUserLocked(userB)
	return nil
}

// RemoveFriendship removes the symmetric friendship between two users.
func (s *Store) RemoveFriendship(idA, idB string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idxA := s.userIndex(idA)
	if idxA < 0 {
		return fmt.Errorf("user %s: %w", idA, ErrNotFound)
	}
	idxB := s.userIndex(idB)
	if idxB < 0 {
		return fmt.Errorf("user %s: %w", idB, ErrNotFound)
	}

	userA := s.users[idxA].Clone()
	userB := s.users[idxB].Clone()
	userA.FriendIDs = removeID(userA.FriendIDs, idB)
	userB.FriendIDs = removeID(userB.FriendIDs, idA)
	s.upsertUserLocked(userA)
	s.upsertUserLocked(userB)
	return nil
}

// SetBlocked edits only the blocker's blocked list; blocking is
// one-directional.
func (s *Store) SetBlocked(blockerID, blockedID string, blocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.userIndex(blockerID)
	if idx < 0 {
		return fmt.Errorf("user %s: %w", blockerID, ErrNotFound)
	}
	if s.userIndex(blockedID) < 0 {
		return fmt.Errorf("user %s: %w", blockedID, ErrNotFound)
	}

	blocker := s.users[idx].Clone()
	if blocked {
		if !blocker.HasBlocked(blockedID) {
			blocker.BlockedUserIDs = append(blocker.BlockedUserIDs, blockedID)
		}
	} else {
		blocker.BlockedUserIDs = removeID(blocker.BlockedUserIDs, blockedID)
	}
	s.upsertUserLocked(blocker)
	return nil
}

func removeID(ids []string, id string) []string {
	kept := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			kept = append(kept, candidate)
		}
	}
	return kept
}
