package httpapi

import (
	"time"

	"github.com/louisbranch/plaza/internal/social/domain"
)

type userDTO struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	AvatarURL  string       `json:"avatarUrl"`
	CoverURL   string       `json:"coverUrl"`
	Bio        string       `json:"bio"`
	IsActive   *bool        `json:"isActive"`
	IsVerified bool         `json:"isVerified"`
	Settings   *settingsDTO `json:"settings"`
}

type settingsDTO struct {
	Account struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"account"`
	Privacy struct {
		PostVisibility    string `json:"postVisibility"`
		ProfileVisibility string `json:"profileVisibility"`
		MessagePrivacy    string `json:"messagePrivacy"`
		SearchPrivacy     string `json:"searchPrivacy"`
	} `json:"privacy"`
	Notifications struct {
		Likes        bool `json:"likes"`
		Comments     bool `json:"comments"`
		Mentions     bool `json:"mentions"`
		Messages     bool `json:"messages"`
		GroupUpdates bool `json:"groupUpdates"`
	} `json:"notifications"`
	General struct {
		Language string `json:"language"`
	} `json:"general"`
}

type mediaDTO struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type postDTO struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	Media     *mediaDTO    `json:"media"`
	CreatedAt string       `json:"createdAt"`
	Likes     int          `json:"likes"`
	Shares    int          `json:"shares"`
	Author    userDTO      `json:"author"`
	Comments  []commentDTO `json:"comments"`
}

type commentDTO struct {
	ID        string  `json:"id"`
	Author    userDTO `json:"author"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"createdAt"`
}

type storyDTO struct {
	ID        string  `json:"id"`
	Author    userDTO `json:"author"`
	MediaURL  string  `json:"mediaUrl"`
	MediaType string  `json:"mediaType"`
	Timestamp int64   `json:"timestamp"`
}

func (d userDTO) toDomain() domain.User {
	user := domain.User{
		ID:         d.ID,
		Name:       d.Name,
		AvatarURL:  d.AvatarURL,
		CoverURL:   d.CoverURL,
		Bio:        d.Bio,
		IsActive:   true,
		IsVerified: d.IsVerified,
	}
	if d.IsActive != nil {
		user.IsActive = *d.IsActive
	}
	if d.Settings != nil {
		user.Settings = domain.UserSettings{
			Account: domain.AccountSettings{
				Email: d.Settings.Account.Email,
				Phone: d.Settings.Account.Phone,
			},
			Privacy: domain.PrivacySettings{
				PostVisibility:    domain.PrivacyLevel(d.Settings.Privacy.PostVisibility),
				ProfileVisibility: domain.PrivacyLevel(d.Settings.Privacy.ProfileVisibility),
				MessagePrivacy:    domain.PrivacyLevel(d.Settings.Privacy.MessagePrivacy),
				SearchPrivacy:     domain.PrivacyLevel(d.Settings.Privacy.SearchPrivacy),
			},
			Notifications: domain.NotificationSettings{
				Likes:        d.Settings.Notifications.Likes,
				Comments:     d.Settings.Notifications.Comments,
				Mentions:     d.Settings.Notifications.Mentions,
				Messages:     d.Settings.Notifications.Messages,
				GroupUpdates: d.Settings.Notifications.GroupUpdates,
			},
			General: domain.GeneralSettings{
				Language: d.Settings.General.Language,
			},
		}
	}
	return user
}

func (d postDTO) toDomain() domain.Post {
	post := domain.Post{
		ID:        d.ID,
		Content:   d.Content,
		Likes:     d.Likes,
		Shares:    d.Shares,
		Author:    d.Author.toDomain(),
		CreatedAt: parseTimestamp(d.CreatedAt),
	}
	if d.Media != nil {
		post.Media = &domain.Media{
			Kind: domain.MediaKind(d.Media.Type),
			URL:  d.Media.URL,
		}
	}
	if len(d.Comments) > 0 {
		post.Comments = make([]domain.Comment, len(d.Comments))
		for i, comment := range d.Comments {
			post.Comments[i] = domain.Comment{
				ID:        comment.ID,
				Author:    comment.Author.toDomain(),
				Content:   comment.Content,
				CreatedAt: parseTimestamp(comment.CreatedAt),
			}
		}
	}
	return post
}

func (d storyDTO) toDomain() domain.Story {
	return domain.Story{
		ID:        d.ID,
		Author:    d.Author.toDomain(),
		MediaURL:  d.MediaURL,
		MediaKind: domain.MediaKind(d.MediaType),
		CreatedAt: time.UnixMilli(d.Timestamp).UTC(),
	}
}

func mediaToDTO(media *domain.Media) *mediaDTO {
	if media == nil {
		return nil
	}
	return &mediaDTO{Type: string(media.Kind), URL: media.URL}
}

// parseTimestamp accepts RFC 3339 timestamps; anything else yields the zero
// time rather than failing the whole payload.
func parseTimestamp(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
