package session

import (
	"context"
	"fmt"

	"github.com/louisbranch/plaza/internal/social/domain"
)

// ProfileUpdate carries the profile fields a user may edit. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	Name      *string
	Bio       *string
	AvatarURL *string
	CoverURL  *string
	Info      *domain.UserInfo
	Photos    []string
}

// SettingsUpdate merges section-wise into the current settings. Nil sections
// are left unchanged.
type SettingsUpdate struct {
	Account       *domain.AccountSettings
	Privacy       *domain.PrivacySettings
	Notifications *domain.NotificationSettings
	General       *domain.GeneralSettings
}

// UpdateProfile rewrites the current user's profile fields. The upsert
// propagates the change into every denormalized snapshot.
func (m *Manager) UpdateProfile(update ProfileUpdate) (domain.User, error) {
	user, ok := m.CurrentUser()
	if !ok {
		return domain.User{}, ErrNotAuthenticated
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.CoverURL != nil {
		user.CoverURL = *update.CoverURL
	}
	if update.Info != nil {
		user.Info = *update.Info
	}
	if update.Photos != nil {
		user.Photos = append([]string(nil), update.Photos...)
	}

	m.store.UpsertUser(user)
	return user, nil
}

// UpdateSettings merges the given sections into the current user's settings.
// A general section with a language is normalized against the supported set
// before it is accepted.
func (m *Manager) UpdateSettings(update SettingsUpdate) (domain.User, error) {
	user, ok := m.CurrentUser()
	if !ok {
		return domain.User{}, ErrNotAuthenticated
	}

	if update.Account != nil {
		user.Settings.Account = *update.Account
	}
	if update.Privacy != nil {
		user.Settings.Privacy = *update.Privacy
	}
	if update.Notifications != nil {
		user.Settings.Notifications = *update.Notifications
	}
	if update.General != nil {
		language, err := domain.NormalizeLanguage(update.General.Language)
		if err != nil {
			return domain.User{}, fmt.Errorf("update settings: %w", err)
		}
		user.Settings.General = domain.GeneralSettings{Language: language}
	}

	m.store.UpsertUser(user)
	return user, nil
}

// ChangePassword replaces the current user's credential hash.
func (m *Manager) ChangePassword(newSecret string) error {
	user, ok := m.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}
	hash, err := domain.HashCredential(newSecret)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	m.store.UpsertUser(user)
	return nil
}

// DeactivateAccount flags the current user inactive and ends the session.
func (m *Manager) DeactivateAccount(ctx context.Context) error {
	user, ok := m.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}
	user.IsActive = false
	m.store.UpsertUser(user)
	m.Logout(ctx)
	return nil
}

// DeleteAccount removes the current user from the canonical collection and
// ends the session.
func (m *Manager) DeleteAccount(ctx context.Context) error {
	user, ok := m.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}
	if err := m.store.RemoveUser(user.ID); err != nil {
		return err
	}
	m.Logout(ctx)
	return nil
}

// BlockUser adds userID to the current user's blocked list.
func (m *Manager) BlockUser(userID string) error {
	return m.setBlocked(userID, true)
}

// UnblockUser removes userID from the current user's blocked list.
func (m *Manager) UnblockUser(userID string) error {
	return m.setBlocked(userID, false)
}

func (m *Manager) setBlocked(userID string, blocked bool) error {
	user, ok := m.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}
	return m.store.SetBlocked(user.ID, userID, blocked)
}
