package domain

import "time"

// AdType identifies the advertisement format.
type AdType string

const (
	AdFlyer   AdType = "flyer"
	AdContent AdType = "content"
	AdVideo   AdType = "video"
)

// IsValid reports whether the advertisement type is supported.
func (t AdType) IsValid() bool {
	return t == AdFlyer || t == AdContent || t == AdVideo
}

// Advertisement is one promoted entry with a denormalized author snapshot.
type Advertisement struct {
	ID          string
	Author      User
	Type        AdType
	Title       string
	Description string
	MediaURL    string
	Category    string
	CreatedAt   time.Time
}
