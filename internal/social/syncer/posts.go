package syncer

import (
	"context"
	"fmt"

	"github.com/louisbranch/plaza/internal/remote"
	"github.com/louisbranch/plaza/internal/social/domain"
)

// CreatePost appends the post under a placeholder id so the feed reflects it
// immediately, then confirms it with the remote service. On success the
// placeholder entry is replaced in place with the canonical post; on failure
// it is removed from the feed entirely.
func (e *Engine) CreatePost(ctx context.Context, author domain.User, content string, media *domain.Media) (domain.Post, *Mutation, error) {
	placeholderID, err := e.opts.NewID()
	if err != nil {
		return domain.Post{}, nil, fmt.Errorf("placeholder id: %w", err)
	}
	placeholder := domain.Post{
		ID:        placeholderID,
		Author:    author,
		Content:   content,
		Media:     media,
		CreatedAt: e.opts.Clock(),
	}
	e.store.AppendPost(placeholder)

	mutation := newMutation()
	go e.confirmCreatePost(context.WithoutCancel(ctx), placeholder, mutation)
	return placeholder, mutation, nil
}

func (e *Engine) confirmCreatePost(ctx context.Context, placeholder domain.Post, mutation *Mutation) {
	ctx, span := e.tracer.Start(ctx, "syncer.create_post")
	defer span.End()

	canonical, err := e.remote.CreatePost(ctx, remote.CreatePostInput{
		Content:  placeholder.Content,
		Media:    placeholder.Media,
		AuthorID: placeholder.Author.ID,
	})
	if err != nil {
		if removeErr := e.store.RemovePost(placeholder.ID); removeErr != nil {
			e.opts.Logger.Warn().Err(removeErr).Str("post_id", placeholder.ID).Msg("rollback: placeholder already gone")
		}
		e.opts.Logger.Warn().Err(err).Str("post_id", placeholder.ID).Msg("create post rejected")
		mutation.rollback(fmt.Errorf("create post: %w", err))
		return
	}

	if replaceErr := e.store.ReplacePost(placeholder.ID, canonical); replaceErr != nil {
		// Placeholder was removed while in flight; the canonical post still
		// exists remotely, so surface it.
		e.store.AppendPost(canonical)
	}
	e.opts.Logger.Debug().Str("post_id", canonical.ID).Msg("post confirmed")
	mutation.commit()
}

// ToggleLike flips userID's like on postID, moving the post's like counter
// optimistically. On rejection the counter moves back by the same amount and
// the liked set is restored, mirroring whichever transition was attempted.
// Rapid repeated toggles on one post are not coalesced; each resolves
// independently and the last response wins.
func (e *Engine) ToggleLike(ctx context.Context, userID, postID string) (*Mutation, error) {
	post, err := e.store.Post(postID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	wasLiked := e.liked[userID][postID]
	delta := 1
	if wasLiked {
		delta = -1
	}
	e.setLikedLocked(userID, postID, !wasLiked)
	e.mu.Unlock()

	// A decrement floored at zero applied no counter change; its rollback
	// must not move the counter either.
	applied := delta
	if delta < 0 && post.Likes == 0 {
		applied = 0
	}

	if err := e.store.IncrementLikes(postID, delta); err != nil {
		e.mu.Lock()
		e.setLikedLocked(userID, postID, wasLiked)
		e.mu.Unlock()
		return nil, err
	}

	mutation := newMutation()
	go e.confirmToggleLike(context.WithoutCancel(ctx), userID, postID, wasLiked, applied, mutation)
	return mutation, nil
}

func (e *Engine) confirmToggleLike(ctx context.Context, userID, postID string, wasLiked bool, applied int, mutation *Mutation) {
	ctx, span := e.tracer.Start(ctx, "syncer.toggle_like")
	defer span.End()

	err := e.remote.ToggleLike(ctx, postID)
	if err == nil {
		mutation.commit()
		return
	}

	e.mu.Lock()
	e.setLikedLocked(userID, postID, wasLiked)
	e.mu.Unlock()
	if incErr := e.store.IncrementLikes(postID, -applied); incErr != nil {
		e.opts.Logger.Warn().Err(incErr).Str("post_id", postID).Msg("rollback: post gone")
	}
	e.opts.Logger.Warn().Err(err).Str("post_id", postID).Msg("like toggle rejected")
	mutation.rollback(fmt.Errorf("toggle like: %w", err))
}
