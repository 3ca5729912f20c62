package view

import (
	"time"

	"github.com/louisbranch/plaza/internal/social/domain"
)

// DefaultMarkReadDelay is how long NotificationMarker waits before flipping
// unread notifications, so a user opening the inbox still perceives which
// items were unread at the moment of opening.
const DefaultMarkReadDelay = 500 * time.Millisecond

// NotificationStore is the mutation surface NotificationMarker needs.
type NotificationStore interface {
	Notifications() []domain.Notification
	MarkNotificationsRead(ids []string)
}

// NotificationMarker acknowledges inbox notifications after a short delay.
type NotificationMarker struct {
	store NotificationStore
	delay time.Duration
	after func(time.Duration, func())
}

// NewNotificationMarker builds a marker over the given store. A nil after
// function schedules with time.AfterFunc.
func NewNotificationMarker(store NotificationStore, delay time.Duration, after func(time.Duration, func())) *NotificationMarker {
	if delay <= 0 {
		delay = DefaultMarkReadDelay
	}
	if after == nil {
		after = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	return &NotificationMarker{store: store, delay: delay, after: after}
}

// MarkAllRead captures the ids that are unread right now and flips them to
// read after the configured delay. Notifications arriving during the delay
// stay unread.
func (m *NotificationMarker) MarkAllRead() {
	var unread []string
	for _, notification := range m.store.Notifications() {
		if !notification.Read {
			unread = append(unread, notification.ID)
		}
	}
	if len(unread) == 0 {
		return
	}
	m.after(m.delay, func() {
		m.store.MarkNotificationsRead(unread)
	})
}
