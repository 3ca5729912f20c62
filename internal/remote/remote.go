// Package remote defines the contract with the remote social service. The
// engine depends only on this interface; the transport lives in subpackages.
package remote

import (
	"context"
	stderrors "errors"

	"github.com/louisbranch/plaza/internal/errors"
	"github.com/louisbranch/plaza/internal/social/domain"
)

var (
	// ErrInvalidInput indicates the service rejected the request shape, e.g.
	// a post with neither content nor media.
	ErrInvalidInput = errors.WithCode(stderrors.New("remote rejected input"), errors.CodeInvalidInput)
	// ErrNotFound indicates the referenced entity is unknown to the service.
	ErrNotFound = errors.WithCode(stderrors.New("remote entity not found"), errors.CodeNotFound)
	// ErrConflict indicates a uniqueness conflict, e.g. an already registered
	// email.
	ErrConflict = errors.WithCode(stderrors.New("remote conflict"), errors.CodeDuplicateEmail)
)

// CreatePostInput describes one post creation request.
type CreatePostInput struct {
	Content  string
	Media    *domain.Media
	AuthorID string
}

// RegisterInput describes one account registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Service is the remote authority the sync engine reconciles against.
type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	ListStories(ctx context.Context) ([]domain.Story, error)
	CreatePost(ctx context.Context, input CreatePostInput) (domain.Post, error)
	ToggleLike(ctx context.Context, postID string) error
	Register(ctx context.Context, input RegisterInput) (domain.User, error)
}
