package domain

import "time"

// NotificationType identifies what a notification is about.
type NotificationType string

const (
	NotificationLike             NotificationType = "like"
	NotificationComment          NotificationType = "comment"
	NotificationShare            NotificationType = "share"
	NotificationMention          NotificationType = "mention"
	NotificationMessage          NotificationType = "message"
	NotificationGroupJoinRequest NotificationType = "group_join_request"
	NotificationFriendRequest    NotificationType = "friend_request"
)

// IsValid reports whether the notification type is supported.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationLike,
		NotificationComment,
		NotificationShare,
		NotificationMention,
		NotificationMessage,
		NotificationGroupJoinRequest,
		NotificationFriendRequest:
		return true
	default:
		return false
	}
}

// Notification is one inbox entry with a denormalized actor snapshot.
type Notification struct {
	ID        string
	Type      NotificationType
	Actor     User
	PostID    string
	GroupID   string
	Message   string
	Read      bool
	CreatedAt time.Time
}
