package domain

import "time"

// MediaKind identifies the kind of an attached media descriptor.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// IsValid reports whether the media kind is supported.
func (k MediaKind) IsValid() bool {
	return k == MediaImage || k == MediaVideo
}

// Media describes one attached image or video by locator.
type Media struct {
	Kind MediaKind
	URL  string
}

// Comment is one nested reply on a post, with its own author snapshot.
type Comment struct {
	ID        string
	Author    User
	Content   string
	CreatedAt time.Time
}

// Post is one feed entry with a denormalized author snapshot.
type Post struct {
	ID        string
	Author    User
	Content   string
	Media     *Media
	Likes     int
	Comments  []Comment
	Shares    int
	CreatedAt time.Time
}

// Clone returns a deep copy of the post, including its comment list and
// media descriptor.
func (p Post) Clone() Post {
	clone := p
	clone.Author = p.Author.Clone()
	if p.Media != nil {
		media := *p.Media
		clone.Media = &media
	}
	if p.Comments != nil {
		clone.Comments = make([]Comment, len(p.Comments))
		for i, comment := range p.Comments {
			comment.Author = comment.Author.Clone()
			clone.Comments[i] = comment
		}
	}
	return clone
}
