package view

import (
	"testing"
	"time"

	"github.com/louisbranch/plaza/internal/social/domain"
)

func TestConversationKeyOrderIndependent(t *testing.T) {
	t.Parallel()

	if domain.ConversationKey("user-1", "user-2") != domain.ConversationKey("user-2", "user-1") {
		t.Fatal("conversation key must not depend on participant order")
	}
}

func TestConversationsKeepLatestMessagePerThread(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	messages := []domain.Message{
		{ID: "m-1", SenderID: "user-1", ReceiverID: "user-2", SentAt: base},
		{ID: "m-2", SenderID: "user-2", ReceiverID: "user-1", SentAt: base.Add(2 * time.Minute)},
		{ID: "m-3", SenderID: "user-1", ReceiverID: "user-3", SentAt: base.Add(time.Minute)},
		{ID: "m-4", SenderID: "user-3", ReceiverID: "user-1", SentAt: base.Add(5 * time.Minute)},
	}

	conversations := Conversations(messages)
	if len(conversations) != 2 {
		t.Fatalf("conversations = %d, want 2", len(conversations))
	}
	if conversations[0].LastMessage.ID != "m-4" {
		t.Fatalf("newest thread first: got %s", conversations[0].LastMessage.ID)
	}
	if conversations[1].LastMessage.ID != "m-2" {
		t.Fatalf("thread representative = %s, want m-2", conversations[1].LastMessage.ID)
	}
	if conversations[1].Participants != [2]string{"user-1", "user-2"} {
		t.Fatalf("participants = %v", conversations[1].Participants)
	}
}

func TestConversationWithSynthesizesPlaceholder(t *testing.T) {
	t.Parallel()

	conversation := ConversationWith(nil, "user-1", "user-9")
	if conversation.ID != domain.ConversationKey("user-1", "user-9") {
		t.Fatalf("placeholder id = %q", conversation.ID)
	}
	if conversation.LastMessage.ID != "" || conversation.LastMessage.Content != "" {
		t.Fatalf("placeholder message must be empty: %+v", conversation.LastMessage)
	}
	if !conversation.LastMessage.Read {
		t.Fatal("placeholder message must not count as unread")
	}
}

func TestConversationWithFindsExistingThread(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	messages := []domain.Message{
		{ID: "m-1", SenderID: "user-2", ReceiverID: "user-1", SentAt: base},
	}
	conversation := ConversationWith(messages, "user-1", "user-2")
	if conversation.LastMessage.ID != "m-1" {
		t.Fatalf("expected existing thread, got %+v", conversation)
	}
}

func TestUnreadMessageCount(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	key := domain.ConversationKey("user-1", "user-2")
	messages := []domain.Message{
		{ID: "m-1", SenderID: "user-2", ReceiverID: "user-1", SentAt: base},
		{ID: "m-2", SenderID: "user-2", ReceiverID: "user-1", SentAt: base, Read: true},
		{ID: "m-3", SenderID: "user-1", ReceiverID: "user-2", SentAt: base},
		{ID: "m-4", SenderID: "user-3", ReceiverID: "user-1", SentAt: base},
	}
	if got := UnreadMessageCount(messages, key, "user-1"); got != 1 {
		t.Fatalf("unread = %d, want 1", got)
	}
}

func TestUnreadNotificationCount(t *testing.T) {
	t.Parallel()

	notifications := []domain.Notification{
		{ID: "n-1"},
		{ID: "n-2", Read: true},
		{ID: "n-3"},
	}
	if got := UnreadNotificationCount(notifications); got != 2 {
		t.Fatalf("unread = %d, want 2", got)
	}
}

func TestStoryGroupsPreserveArrivalOrder(t *testing.T) {
	t.Parallel()

	ana := domain.User{ID: "user-1", Name: "Ana"}
	bruno := domain.User{ID: "user-2", Name: "Bruno"}
	stories := []domain.Story{
		{ID: "s-1", Author: ana},
		{ID: "s-2", Author: bruno},
		{ID: "s-3", Author: ana},
	}

	groups := StoryGroups(stories)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Author.ID != "user-1" || groups[1].Author.ID != "user-2" {
		t.Fatalf("group order by first appearance broken: %s, %s", groups[0].Author.ID, groups[1].Author.ID)
	}
	if groups[0].Stories[0].ID != "s-1" || groups[0].Stories[1].ID != "s-3" {
		t.Fatalf("arrival order within group broken: %+v", groups[0].Stories)
	}
}

func TestStoryGroupFullySeen(t *testing.T) {
	t.Parallel()

	group := StoryGroup{Stories: []domain.Story{{ID: "s-1"}, {ID: "s-2"}}}
	if group.FullySeen(map[string]bool{"s-1": true}) {
		t.Fatal("group with one unseen story must not be fully seen")
	}
	if !group.FullySeen(map[string]bool{"s-1": true, "s-2": true}) {
		t.Fatal("group with all stories seen must be fully seen")
	}
}

func TestFilterExpiredStoriesBoundary(t *testing.T) {
	t.Parallel()

	loadedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	stories := []domain.Story{
		{ID: "fresh", CreatedAt: loadedAt.Add(-domain.StoryTTL + time.Millisecond)},
		{ID: "stale", CreatedAt: loadedAt.Add(-domain.StoryTTL - time.Millisecond)},
	}
	kept := FilterExpiredStories(stories, loadedAt)
	if len(kept) != 1 || kept[0].ID != "fresh" {
		t.Fatalf("kept = %+v, want only fresh", kept)
	}
}
