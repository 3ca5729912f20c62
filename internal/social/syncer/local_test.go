package syncer

import (
	"errors"
	"testing"

	"github.com/louisbranch/plaza/internal/social/domain"
	"github.com/louisbranch/plaza/internal/social/store"
)

func TestSendMessage(t *testing.T) {
	t.Parallel()
	engine, entities := newTestEngine(&fakeRemote{})

	message, err := engine.SendMessage("user-ana", "user-bruno", "hola")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if message.ID == "" || !message.SentAt.Equal(loadClock()) {
		t.Errorf("message not stamped: %+v", message)
	}
	if message.Read {
		t.Error("new message marked read")
	}

	stored := entities.Messages()
	if len(stored) != 1 || stored[0].ID != message.ID {
		t.Fatalf("message not appended: %+v", stored)
	}
	if got := stored[0].ConversationKeyOf(); got != domain.ConversationKey("user-bruno", "user-ana") {
		t.Errorf("conversation key = %q", got)
	}
}

func TestSendMessageInvalid(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(&fakeRemote{})

	if _, err := engine.SendMessage("user-ana", "user-bruno", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestAddComment(t *testing.T) {
	t.Parallel()
	engine, entities := newTestEngine(&fakeRemote{})
	entities.AppendPost(domain.Post{ID: "post-1"})
	author := domain.User{ID: "user-ana", Name: "Ana"}

	comment, err := engine.AddComment("post-1", author, "nice")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	post, err := entities.Post("post-1")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if len(post.Comments) != 1 || post.Comments[0].ID != comment.ID {
		t.Fatalf("comment not attached: %+v", post.Comments)
	}

	if _, err := engine.AddComment("post-missing", author, "nice"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
}

func TestSharePost(t *testing.T) {
	t.Parallel()
	engine, entities := newTestEngine(&fakeRemote{})
	entities.AppendPost(domain.Post{ID: "post-1", Shares: 1})

	if err := engine.SharePost("post-1"); err != nil {
		t.Fatalf("SharePost: %v", err)
	}
	post, err := entities.Post("post-1")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if post.Shares != 2 {
		t.Errorf("shares = %d, want 2", post.Shares)
	}
}

func TestCreateStory(t *testing.T) {
	t.Parallel()
	engine, entities := newTestEngine(&fakeRemote{})
	author := domain.User{ID: "user-ana", Name: "Ana"}

	story, err := engine.CreateStory(author, "https://cdn.example.com/s.jpg", domain.MediaImage)
	if err != nil {
		t.Fatalf("CreateStory: %v", err)
	}
	if !story.CreatedAt.Equal(loadClock()) {
		t.Error("story not stamped with the clock")
	}
	if len(entities.Stories()) != 1 {
		t.Fatal("story not appended")
	}

	if _, err := engine.CreateStory(author, "https://cdn.example.com/s.jpg", "gif"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid media kind accepted, err = %v", err)
	}
}

func TestCreateGroupAndJoin(t *testing.T) {
	t.Parallel()
	engine, entities := newTestEngine(&fakeRemote{})

	group, err := engine.CreateGroup("user-ana", GroupInput{
		Name:    "Runners",
		Privacy: domain.GroupPublic,
	})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if len(group.Members) != 1 || group.Members[0].Role != domain.GroupRoleAdmin {
		t.Fatalf("creator not admin: %+v", group.Members)
	}

	if err := engine.JoinGroup(group.ID, "user-bruno"); err != nil {
		t.Fatalf("JoinGroup: %v", err)
	}
	if err := engine.JoinGroup(group.ID, "user-bruno"); err != nil {
		t.Fatalf("repeat JoinGroup: %v", err)
	}

	stored, err := entities.Group(group.ID)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if len(stored.Members) != 2 {
		t.Errorf("members = %+v, want creator plus one", stored.Members)
	}

	if _, err := engine.CreateGroup("user-ana", GroupInput{Privacy: domain.GroupPublic}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nameless group accepted, err = %v", err)
	}
}

func TestCreateAdvertisement(t *testing.T) {
	t.Parallel()
	engine, entities := newTestEngine(&fakeRemote{})
	author := domain.User{ID: "user-ana", Name: "Ana"}

	ad, err := engine.CreateAdvertisement(author, AdvertisementInput{
		Type:     domain.AdFlyer,
		Title:    "Garage sale",
		Category: "local",
	})
	if err != nil {
		t.Fatalf("CreateAdvertisement: %v", err)
	}
	if len(entities.Advertisements()) != 1 {
		t.Fatal("advertisement not appended")
	}
	if ad.Author.ID != "user-ana" {
		t.Errorf("author = %q", ad.Author.ID)
	}

	if _, err := engine.CreateAdvertisement(author, AdvertisementInput{Type: "banner", Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid ad type accepted, err = %v", err)
	}
}

func TestNotify(t *testing.T) {
	t.Parallel()
	engine, entities := newTestEngine(&fakeRemote{})
	actor := domain.User{ID: "user-bruno", Name: "Bruno"}

	notification, err := engine.Notify(domain.NotificationLike, actor, "liked your post", "post-1", "")
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if notification.Read {
		t.Error("new notification marked read")
	}
	if len(entities.Notifications()) != 1 {
		t.Fatal("notification not appended")
	}

	if _, err := engine.Notify("poke", actor, "", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid type accepted, err = %v", err)
	}
}
