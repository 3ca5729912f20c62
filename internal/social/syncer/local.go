package syncer

import (
	stderrors "errors"
	"fmt"

	"github.com/louisbranch/plaza/internal/errors"
	"github.com/louisbranch/plaza/internal/social/domain"
)

// Writes in this file have no remote endpoint; they apply locally and are
// final, so they return no Mutation.

// ErrInvalidInput indicates a local write with a malformed payload.
var ErrInvalidInput = errors.WithCode(stderrors.New("invalid input"), errors.CodeInvalidInput)

// SendMessage appends a direct message to the conversation between sender
// and receiver.
func (e *Engine) SendMessage(senderID, receiverID, content string) (domain.Message, error) {
	if senderID == "" || receiverID == "" || content == "" {
		return domain.Message{}, ErrInvalidInput
	}
	messageID, err := e.opts.NewID()
	if err != nil {
		return domain.Message{}, err
	}
	message := domain.Message{
		ID:         messageID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     e.opts.Clock(),
	}
	e.store.AppendMessage(message)
	return message, nil
}

// AddComment appends a comment to the post.
func (e *Engine) AddComment(postID string, author domain.User, content string) (domain.Comment, error) {
	if content == "" {
		return domain.Comment{}, ErrInvalidInput
	}
	commentID, err := e.opts.NewID()
	if err != nil {
		return domain.Comment{}, err
	}
	comment := domain.Comment{
		ID:        commentID,
		Author:    author,
		Content:   content,
		CreatedAt: e.opts.Clock(),
	}
	if err := e.store.AppendComment(postID, comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

// SharePost bumps the post's share counter.
func (e *Engine) SharePost(postID string) error {
	return e.store.IncrementShares(postID)
}

// CreateStory appends a story for the author. The story stays in the working
// set until the next initial load after it ages past the story TTL.
func (e *Engine) CreateStory(author domain.User, mediaURL string, kind domain.MediaKind) (domain.Story, error) {
	if mediaURL == "" || !kind.IsValid() {
		return domain.Story{}, ErrInvalidInput
	}
	storyID, err := e.opts.NewID()
	if err != nil {
		return domain.Story{}, err
	}
	story := domain.Story{
		ID:        storyID,
		Author:    author,
		MediaURL:  mediaURL,
		MediaKind: kind,
		CreatedAt: e.opts.Clock(),
	}
	e.store.AppendStory(story)
	return story, nil
}

// GroupInput describes one group creation request.
type GroupInput struct {
	Name        string
	Description string
	CoverURL    string
	Privacy     domain.GroupPrivacy
}

// CreateGroup records a new group with the creator as its admin.
func (e *Engine) CreateGroup(creatorID string, input GroupInput) (domain.Group, error) {
	if input.Name == "" || creatorID == "" {
		return domain.Group{}, ErrInvalidInput
	}
	if input.Privacy != domain.GroupPublic && input.Privacy != domain.GroupPrivate {
		return domain.Group{}, ErrInvalidInput
	}
	groupID, err := e.opts.NewID()
	if err != nil {
		return domain.Group{}, err
	}
	group := domain.Group{
		ID:          groupID,
		Name:        input.Name,
		Description: input.Description,
		CoverURL:    input.CoverURL,
		Privacy:     input.Privacy,
		Members:     []domain.GroupMember{{UserID: creatorID, Role: domain.GroupRoleAdmin}},
	}
	e.store.AppendGroup(group)
	return group, nil
}

// JoinGroup adds userID to the group as a plain member. Joining twice is a
// no-op.
func (e *Engine) JoinGroup(groupID, userID string) error {
	return e.store.AddGroupMember(groupID, userID, domain.GroupRoleMember)
}

// AdvertisementInput describes one advertisement creation request.
type AdvertisementInput struct {
	Type        domain.AdType
	Title       string
	Description string
	MediaURL    string
	Category    string
}

// CreateAdvertisement records a promoted entry authored by the given user.
func (e *Engine) CreateAdvertisement(author domain.User, input AdvertisementInput) (domain.Advertisement, error) {
	if input.Title == "" || !input.Type.IsValid() {
		return domain.Advertisement{}, ErrInvalidInput
	}
	adID, err := e.opts.NewID()
	if err != nil {
		return domain.Advertisement{}, err
	}
	ad := domain.Advertisement{
		ID:          adID,
		Author:      author,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		MediaURL:    input.MediaURL,
		Category:    input.Category,
		CreatedAt:   e.opts.Clock(),
	}
	e.store.AppendAdvertisement(ad)
	return ad, nil
}

// Notify appends an inbox entry for the given actor and type, assigning id
// and timestamp.
func (e *Engine) Notify(notificationType domain.NotificationType, actor domain.User, message, postID, groupID string) (domain.Notification, error) {
	if !notificationType.IsValid() {
		return domain.Notification{}, fmt.Errorf("%w: notification type %q", ErrInvalidInput, notificationType)
	}
	notificationID, err := e.opts.NewID()
	if err != nil {
		return domain.Notification{}, err
	}
	notification := domain.Notification{
		ID:        notificationID,
		Type:      notificationType,
		Actor:     actor,
		PostID:    postID,
		GroupID:   groupID,
		Message:   message,
		CreatedAt: e.opts.Clock(),
	}
	e.store.AppendNotification(notification)
	return notification, nil
}
