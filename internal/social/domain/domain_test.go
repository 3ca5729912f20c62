package domain

import (
	"testing"
	"time"
)

func TestUserCloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	original := User{
		ID:             "user-1",
		Name:           "Ana",
		FriendIDs:      []string{"user-2"},
		BlockedUserIDs: []string{"user-3"},
		Photos:         []string{"p1"},
	}
	clone := original.Clone()
	clone.FriendIDs[0] = "user-9"
	clone.BlockedUserIDs[0] = "user-9"
	clone.Photos[0] = "p9"

	if original.FriendIDs[0] != "user-2" {
		t.Fatal("clone mutation leaked into original friend list")
	}
	if original.BlockedUserIDs[0] != "user-3" {
		t.Fatal("clone mutation leaked into original blocked list")
	}
	if original.Photos[0] != "p1" {
		t.Fatal("clone mutation leaked into original photos")
	}
}

func TestPostCloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	media := Media{Kind: MediaImage, URL: "https://cdn.example/img.png"}
	original := Post{
		ID:     "post-1",
		Author: User{ID: "user-1", Name: "Ana"},
		Media:  &media,
		Comments: []Comment{
			{ID: "c-1", Author: User{ID: "user-2", Name: "Bruno"}, Content: "hola"},
		},
	}
	clone := original.Clone()
	clone.Media.URL = "changed"
	clone.Comments[0].Content = "changed"
	clone.Author.Name = "changed"

	if original.Media.URL != "https://cdn.example/img.png" {
		t.Fatal("clone mutation leaked into original media")
	}
	if original.Comments[0].Content != "hola" {
		t.Fatal("clone mutation leaked into original comments")
	}
	if original.Author.Name != "Ana" {
		t.Fatal("clone mutation leaked into original author")
	}
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings("ana@example.com")
	if settings.Account.Email != "ana@example.com" {
		t.Fatalf("email = %q", settings.Account.Email)
	}
	if settings.Privacy.PostVisibility != PrivacyPublic ||
		settings.Privacy.ProfileVisibility != PrivacyPublic ||
		settings.Privacy.MessagePrivacy != PrivacyPublic ||
		settings.Privacy.SearchPrivacy != PrivacyPublic {
		t.Fatalf("expected public defaults, got %+v", settings.Privacy)
	}
	n := settings.Notifications
	if !n.Likes || !n.Comments || !n.Mentions || !n.Messages || !n.GroupUpdates {
		t.Fatalf("expected all notification categories enabled, got %+v", n)
	}
	if settings.General.Language != DefaultLanguage {
		t.Fatalf("language = %q, want %q", settings.General.Language, DefaultLanguage)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag     string
		want    string
		wantErr bool
	}{
		{tag: "es", want: "es"},
		{tag: "en", want: "en"},
		{tag: "es-MX", want: "es"},
		{tag: "en-GB", want: "en"},
		{tag: "not a tag", wantErr: true},
	}
	for _, tc := range tests {
		got, err := NormalizeLanguage(tc.tag)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NormalizeLanguage(%q): expected error", tc.tag)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeLanguage(%q): %v", tc.tag, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestCredentialMatching(t *testing.T) {
	t.Parallel()

	hash, err := HashCredential("pw1")
	if err != nil {
		t.Fatalf("hash credential: %v", err)
	}
	user := User{ID: "user-1", PasswordHash: hash}

	if !user.CredentialMatches("pw1") {
		t.Fatal("expected exact secret to match")
	}
	if user.CredentialMatches("pw2") {
		t.Fatal("expected different secret to fail")
	}
	if user.CredentialMatches("pw1 ") {
		t.Fatal("expected padded secret to fail")
	}
	if (User{}).CredentialMatches("pw1") {
		t.Fatal("expected empty hash to never match")
	}
}

func TestStoryExpiredBoundary(t *testing.T) {
	t.Parallel()

	loadedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	justInside := Story{CreatedAt: loadedAt.Add(-StoryTTL + time.Millisecond)}
	justOutside := Story{CreatedAt: loadedAt.Add(-StoryTTL - time.Millisecond)}

	if justInside.Expired(loadedAt) {
		t.Fatal("story aged 24h minus 1ms must be retained")
	}
	if !justOutside.Expired(loadedAt) {
		t.Fatal("story aged 24h plus 1ms must be excluded")
	}
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	if !NotificationLike.IsValid() || !NotificationFriendRequest.IsValid() {
		t.Fatal("expected known notification types to be valid")
	}
	if NotificationType("poke").IsValid() {
		t.Fatal("expected unknown notification type to be invalid")
	}
	if !MediaImage.IsValid() || MediaKind("gif").IsValid() {
		t.Fatal("media kind validity mismatch")
	}
	if !AdFlyer.IsValid() || AdType("banner").IsValid() {
		t.Fatal("ad type validity mismatch")
	}
	if !PrivacyOnlyMe.IsValid() || PrivacyLevel("secret").IsValid() {
		t.Fatal("privacy level validity mismatch")
	}
}
