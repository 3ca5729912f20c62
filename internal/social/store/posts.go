package store

import (
	"fmt"

	"github.com/louisbranch/plaza/internal/social/domain"
)

// AppendPost prepends a post to the feed, newest first.
func (s *Store) AppendPost(post domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]domain.Post{post.Clone()}, s.posts...)
}

// RemovePost deletes a post from the feed.
func (s *Store) RemovePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.postIndex(id)
	if idx < 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	s.posts = append(s.posts[:idx], s.posts[idx+1:]...)
	return nil
}

// ReplacePost swaps a placeholder post for its canonical replacement,
// preserving feed position. Used when a remote confirmation arrives.
func (s *Store) ReplacePost(oldID string, post domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.postIndex(oldID)
	if idx < 0 {
		return fmt.Errorf("post %s: %w", oldID, ErrNotFound)
	}
	s.posts[idx] = post.Clone()
	return nil
}

// AppendComment adds a comment to the end of a post's comment list.
func (s *Store) AppendComment(postID string, comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.postIndex(postID)
	if idx < 0 {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}
	comment.Author = comment.Author.Clone()
	s.posts[idx].Comments = append(s.posts[idx].Comments, comment)
	return nil
}

// IncrementLikes adjusts a post's like counter by delta. The counter never
// goes below zero.
func (s *Store) IncrementLikes(postID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.postIndex(postID)
	if idx < 0 {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}
	likes := s.posts[idx].Likes + delta
	if likes < 0 {
		likes = 0
	}
	s.posts[idx].Likes = likes
	return nil
}

// IncrementShares bumps a post's share counter.
func (s *Store) IncrementShares(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.postIndex(postID)
	if idx < 0 {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}
	s.posts[idx].Shares++
	return nil
}
