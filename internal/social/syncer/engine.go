// Package syncer applies writes to the entity store optimistically and
// reconciles them with the remote service in the background. A rejected
// write is reverted to its exact pre-mutation state.
package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/plaza/internal/platform/id"
	"github.com/louisbranch/plaza/internal/remote"
	"github.com/louisbranch/plaza/internal/social/domain"
	"github.com/louisbranch/plaza/internal/social/store"
	"github.com/louisbranch/plaza/internal/social/view"
	"github.com/louisbranch/plaza/internal/storage"
)

// Options configures an Engine.
type Options struct {
	Clock  func() time.Time
	NewID  func() (string, error)
	Logger zerolog.Logger
}

// Engine owns the optimistic mutation protocol. Remote confirmations run on
// goroutines and apply their outcome against current store state; there is
// no cancellation once a write is in flight.
type Engine struct {
	store  *store.Store
	remote remote.Service
	opts   Options
	tracer trace.Tracer

	mu    sync.Mutex
	liked map[string]map[string]bool
}

// New builds an engine over the given store and remote service.
func New(entities *store.Store, svc remote.Service, opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = id.NewID
	}
	return &Engine{
		store:  entities,
		remote: svc,
		opts:   opts,
		tracer: otel.Tracer("github.com/louisbranch/plaza/internal/social/syncer"),
		liked:  make(map[string]map[string]bool),
	}
}

// LoadInitial fetches the working set from the remote service and merges the
// durable snapshot. Remote users are overlaid onto locally-held records
// rather than replacing them: the directory carries no credentials, friend
// lists, blocked lists or photo albums, and wiping those would invalidate
// every locally-registered account. Story expiry is applied once here,
// against the load instant; the working set is not re-filtered afterwards.
func (e *Engine) LoadInitial(ctx context.Context, snapshot storage.Snapshot) error {
	ctx, span := e.tracer.Start(ctx, "syncer.load_initial")
	defer span.End()

	remoteUsers, err := e.remote.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	posts, err := e.remote.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}
	stories, err := e.remote.ListStories(ctx)
	if err != nil {
		return fmt.Errorf("list stories: %w", err)
	}
	stories = view.FilterExpiredStories(stories, e.opts.Clock())
	users := mergeUsers(e.store.Users(), remoteUsers)

	e.store.ReplaceUsers(users)
	e.store.ReplacePosts(posts)
	e.store.ReplaceStories(stories)
	e.store.ReplaceMessages(snapshot.Messages)
	e.store.ReplaceNotifications(snapshot.Notifications)

	e.opts.Logger.Info().
		Int("users", len(users)).
		Int("posts", len(posts)).
		Int("stories", len(stories)).
		Int("messages", len(snapshot.Messages)).
		Int("notifications", len(snapshot.Notifications)).
		Msg("initial state loaded")
	return nil
}

// mergeUsers overlays the remote directory onto the locally-held records.
// Fields the remote never serves survive from the local record; local users
// absent from the remote list are kept.
func mergeUsers(local, remote []domain.User) []domain.User {
	byID := make(map[string]domain.User, len(local))
	for _, user := range local {
		byID[user.ID] = user
	}

	merged := make([]domain.User, 0, len(remote))
	fromRemote := make(map[string]bool, len(remote))
	for _, user := range remote {
		if existing, ok := byID[user.ID]; ok {
			user.PasswordHash = existing.PasswordHash
			user.FriendIDs = existing.FriendIDs
			user.BlockedUserIDs = existing.BlockedUserIDs
			user.Photos = existing.Photos
			if user.Settings == (domain.UserSettings{}) {
				user.Settings = existing.Settings
			}
		}
		merged = append(merged, user)
		fromRemote[user.ID] = true
	}
	for _, user := range local {
		if !fromRemote[user.ID] {
			merged = append(merged, user)
		}
	}
	return merged
}

// Liked reports whether userID has liked postID in this session.
func (e *Engine) Liked(userID, postID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.liked[userID][postID]
}

// LikedPosts returns the post ids userID has liked in this session.
func (e *Engine) LikedPosts(userID string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.liked[userID]))
	for postID, liked := range e.liked[userID] {
		if liked {
			ids = append(ids, postID)
		}
	}
	return ids
}

func (e *Engine) setLikedLocked(userID, postID string, liked bool) {
	set, ok := e.liked[userID]
	if !ok {
		set = make(map[string]bool)
		e.liked[userID] = set
	}
	if liked {
		set[postID] = true
		return
	}
	delete(set, postID)
}
