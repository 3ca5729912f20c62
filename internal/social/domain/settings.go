package domain

import (
	"fmt"

	"golang.org/x/text/language"
)

// PrivacyLevel controls who can see a profile surface.
type PrivacyLevel string

const (
	PrivacyPublic  PrivacyLevel = "public"
	PrivacyFriends PrivacyLevel = "friends"
	PrivacyOnlyMe  PrivacyLevel = "only_me"
)

// IsValid reports whether the privacy level is supported.
func (p PrivacyLevel) IsValid() bool {
	switch p {
	case PrivacyPublic, PrivacyFriends, PrivacyOnlyMe:
		return true
	default:
		return false
	}
}

// AccountSettings holds contact identity for the account.
type AccountSettings struct {
	Email string
	Phone string
}

// PrivacySettings holds per-surface visibility choices.
type PrivacySettings struct {
	PostVisibility    PrivacyLevel
	ProfileVisibility PrivacyLevel
	MessagePrivacy    PrivacyLevel
	SearchPrivacy     PrivacyLevel
}

// NotificationSettings toggles each notification category.
type NotificationSettings struct {
	Likes        bool
	Comments     bool
	Mentions     bool
	Messages     bool
	GroupUpdates bool
}

// GeneralSettings holds remaining preferences.
type GeneralSettings struct {
	// Language is a BCP 47 tag, validated against supported languages.
	Language string
}

// UserSettings groups the four settings sections of an account.
type UserSettings struct {
	Account       AccountSettings
	Privacy       PrivacySettings
	Notifications NotificationSettings
	General       GeneralSettings
}

// DefaultLanguage is the language assigned to new accounts.
const DefaultLanguage = "es"

var supportedLanguages = []language.Tag{
	language.Spanish,
	language.English,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NormalizeLanguage resolves a language tag against the supported set,
// falling back through the matcher for regional variants (e.g. es-MX).
func NormalizeLanguage(tag string) (string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", tag, err)
	}
	matched, _, confidence := languageMatcher.Match(parsed)
	if confidence == language.No {
		return "", fmt.Errorf("unsupported language %q", tag)
	}
	base, _ := matched.Base()
	return base.String(), nil
}

// DefaultSettings returns the settings assigned at registration: public
// visibility on every surface, all notification categories enabled, and the
// default language.
func DefaultSettings(email string) UserSettings {
	return UserSettings{
		Account: AccountSettings{Email: email},
		Privacy: PrivacySettings{
			PostVisibility:    PrivacyPublic,
			ProfileVisibility: PrivacyPublic,
			MessagePrivacy:    PrivacyPublic,
			SearchPrivacy:     PrivacyPublic,
		},
		Notifications: NotificationSettings{
			Likes:        true,
			Comments:     true,
			Mentions:     true,
			Messages:     true,
			GroupUpdates: true,
		},
		General: GeneralSettings{Language: DefaultLanguage},
	}
}
