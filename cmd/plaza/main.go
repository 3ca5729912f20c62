// Command plaza boots the client-resident state engine: it loads
// configuration, opens the durable state store, restores any persisted
// session, fetches the initial working set from the remote service and logs
// a summary of the resulting state.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/louisbranch/plaza/internal/platform/config"
	"github.com/louisbranch/plaza/internal/platform/otel"
	"github.com/louisbranch/plaza/internal/remote/httpapi"
	"github.com/louisbranch/plaza/internal/session"
	"github.com/louisbranch/plaza/internal/social/store"
	"github.com/louisbranch/plaza/internal/social/syncer"
	"github.com/louisbranch/plaza/internal/social/view"
	"github.com/louisbranch/plaza/internal/storage"
	"github.com/louisbranch/plaza/internal/storage/sqlite"
)

func main() {
	if err := run(context.Background()); err != nil {
		log := zerolog.New(os.Stderr)
		log.Error().Err(err).Msg("plaza failed")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel)

	shutdown, err := otel.Setup(ctx, "plaza")
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown")
		}
	}()

	kv, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		return err
	}
	defer kv.Close()

	snapshot, reset, err := storage.LoadSnapshot(ctx, kv)
	if err != nil {
		return err
	}
	for _, key := range reset {
		log.Warn().Str("key", key).Msg("corrupt durable key reset")
	}

	entities := store.New()
	entities.ReplaceUsers(snapshot.Users)
	entities.ReplacePosts(snapshot.Posts)
	entities.ReplaceMessages(snapshot.Messages)
	entities.ReplaceNotifications(snapshot.Notifications)

	remoteAPI := httpapi.New(cfg.RemoteBaseURL, cfg.RequestTimeout, log)
	engine := syncer.New(entities, remoteAPI, syncer.Options{Logger: log})
	sessions := session.NewManager(entities, remoteAPI, session.NewDurableTier(kv), session.NewMemoryTier(), session.Options{
		Secret:      []byte(cfg.SessionSecret),
		LoginByName: cfg.LoginByName,
		Logger:      log,
	})

	if user, ok := sessions.RestoreSession(ctx); ok {
		log.Info().Str("user_id", user.ID).Str("name", user.Name).Msg("session active")
	} else {
		log.Info().Msg("session anonymous")
	}

	if err := engine.LoadInitial(ctx, snapshot); err != nil {
		// The durable snapshot still provides a usable working set.
		log.Warn().Err(err).Msg("remote unavailable, running from durable snapshot")
	}

	messages := entities.Messages()
	currentUserID := ""
	if user, ok := sessions.CurrentUser(); ok {
		currentUserID = user.ID
	}
	conversations := view.Conversations(messages)
	unreadMessages := 0
	for _, conversation := range conversations {
		unreadMessages += view.UnreadMessageCount(messages, conversation.ID, currentUserID)
	}
	log.Info().
		Int("users", len(entities.Users())).
		Int("posts", len(entities.Posts())).
		Int("conversations", len(conversations)).
		Int("unread_messages", unreadMessages).
		Int("unread_notifications", view.UnreadNotificationCount(entities.Notifications())).
		Int("story_groups", len(view.StoryGroups(entities.Stories()))).
		Str("theme", snapshot.Theme).
		Msg("state ready")

	snapshot.Users = entities.Users()
	snapshot.Posts = entities.Posts()
	snapshot.Messages = entities.Messages()
	snapshot.Notifications = entities.Notifications()
	return storage.SaveSnapshot(ctx, kv, snapshot)
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}
