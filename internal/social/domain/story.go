package domain

import "time"

// StoryTTL is how long a story remains visible after creation. Expiry is
// applied once when the working set is loaded, not continuously.
const StoryTTL = 24 * time.Hour

// Story is one ephemeral media entry with a denormalized author snapshot.
type Story struct {
	ID        string
	Author    User
	MediaURL  string
	MediaKind MediaKind
	CreatedAt time.Time
}

// Expired reports whether the story is older than StoryTTL at now. A story
// aged exactly StoryTTL is expired; anything strictly newer is retained.
func (s Story) Expired(now time.Time) bool {
	return now.Sub(s.CreatedAt) >= StoryTTL
}
