package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/louisbranch/plaza/internal/social/domain"
)

// ThemeLight is the safe default when the stored theme is missing or corrupt.
const ThemeLight = "light"

// ThemeDark is the alternative theme value.
const ThemeDark = "dark"

// Snapshot is the durable copy of client state, one collection per key.
type Snapshot struct {
	Users         []domain.User
	Posts         []domain.Post
	Messages      []domain.Message
	Notifications []domain.Notification
	Theme         string
}

// LoadSnapshot reads every durable key independently. A value that fails to
// parse is reset: the key is cleared from storage, its collection loads as
// the safe default, and all other keys load normally. The returned slice
// names the keys that were reset.
func LoadSnapshot(ctx context.Context, kv KV) (Snapshot, []string, error) {
	snapshot := Snapshot{Theme: ThemeLight}
	var reset []string

	loadJSON := func(key string, target any) error {
		value, err := kv.Get(ctx, key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return fmt.Errorf("get %s: %w", key, err)
		}
		if err := json.Unmarshal([]byte(value), target); err != nil {
			reset = append(reset, key)
			if err := kv.Delete(ctx, key); err != nil {
				return fmt.Errorf("clear corrupt %s: %w", key, err)
			}
		}
		return nil
	}

	if err := loadJSON(KeyUsers, &snapshot.Users); err != nil {
		return Snapshot{}, nil, err
	}
	if err := loadJSON(KeyPosts, &snapshot.Posts); err != nil {
		return Snapshot{}, nil, err
	}
	if err := loadJSON(KeyMessages, &snapshot.Messages); err != nil {
		return Snapshot{}, nil, err
	}
	if err := loadJSON(KeyNotifications, &snapshot.Notifications); err != nil {
		return Snapshot{}, nil, err
	}

	theme, err := kv.Get(ctx, KeyTheme)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return Snapshot{}, nil, fmt.Errorf("get %s: %w", KeyTheme, err)
	case theme == ThemeLight || theme == ThemeDark:
		snapshot.Theme = theme
	default:
		reset = append(reset, KeyTheme)
		if err := kv.Delete(ctx, KeyTheme); err != nil {
			return Snapshot{}, nil, fmt.Errorf("clear corrupt %s: %w", KeyTheme, err)
		}
	}

	return snapshot, reset, nil
}

// SaveSnapshot writes every durable key. Keys are written independently so a
// failure on one leaves the rest in their prior valid state.
func SaveSnapshot(ctx context.Context, kv KV, snapshot Snapshot) error {
	saveJSON := func(key string, source any) error {
		value, err := json.Marshal(source)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		if err := kv.Put(ctx, key, string(value)); err != nil {
			return fmt.Errorf("put %s: %w", key, err)
		}
		return nil
	}

	if err := saveJSON(KeyUsers, snapshot.Users); err != nil {
		return err
	}
	if err := saveJSON(KeyPosts, snapshot.Posts); err != nil {
		return err
	}
	if err := saveJSON(KeyMessages, snapshot.Messages); err != nil {
		return err
	}
	if err := saveJSON(KeyNotifications, snapshot.Notifications); err != nil {
		return err
	}

	theme := snapshot.Theme
	if theme != ThemeDark {
		theme = ThemeLight
	}
	if err := kv.Put(ctx, KeyTheme, theme); err != nil {
		return fmt.Errorf("put %s: %w", KeyTheme, err)
	}
	return nil
}
