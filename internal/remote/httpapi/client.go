// Package httpapi implements the remote service contract over JSON HTTP.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/louisbranch/plaza/internal/remote"
	"github.com/louisbranch/plaza/internal/social/domain"
)

// Client talks to the remote social API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// New builds a client for the API at baseURL. A zero timeout disables the
// per-request deadline; callers are expected to pass bounded contexts.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// ListUsers fetches the canonical user directory.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var payload struct {
		Users []userDTO `json:"users"`
	}
	if err := c.get(ctx, "/api/users", &payload); err != nil {
		return nil, err
	}
	users := make([]domain.User, len(payload.Users))
	for i, dto := range payload.Users {
		users[i] = dto.toDomain()
	}
	return users, nil
}

// ListPosts fetches the feed. Comments may arrive empty and be populated
// lazily by a collaborator.
func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var payload struct {
		Posts []postDTO `json:"posts"`
	}
	if err := c.get(ctx, "/api/posts", &payload); err != nil {
		return nil, err
	}
	posts := make([]domain.Post, len(payload.Posts))
	for i, dto := range payload.Posts {
		posts[i] = dto.toDomain()
	}
	return posts, nil
}

// ListStories fetches the story records; the list may be empty when the
// service has no persistent story storage yet.
func (c *Client) ListStories(ctx context.Context) ([]domain.Story, error) {
	var payload struct {
		Stories []storyDTO `json:"stories"`
	}
	if err := c.get(ctx, "/api/stories", &payload); err != nil {
		return nil, err
	}
	stories := make([]domain.Story, len(payload.Stories))
	for i, dto := range payload.Stories {
		stories[i] = dto.toDomain()
	}
	return stories, nil
}

// CreatePost submits a new post and returns the canonical record.
func (c *Client) CreatePost(ctx context.Context, input remote.CreatePostInput) (domain.Post, error) {
	body := struct {
		Content  string    `json:"content"`
		Media    *mediaDTO `json:"media"`
		AuthorID string    `json:"authorId"`
	}{
		Content:  input.Content,
		Media:    mediaToDTO(input.Media),
		AuthorID: input.AuthorID,
	}
	var payload struct {
		Post postDTO `json:"post"`
	}
	if err := c.post(ctx, "/api/posts", body, &payload); err != nil {
		return domain.Post{}, err
	}
	return payload.Post.toDomain(), nil
}

// ToggleLike records one like toggle on the service.
func (c *Client) ToggleLike(ctx context.Context, postID string) error {
	return c.post(ctx, "/api/posts/"+postID+"/like", nil, nil)
}

// Register creates an account and returns the canonical user with default
// settings embedded.
func (c *Client) Register(ctx context.Context, input remote.RegisterInput) (domain.User, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}
	var payload struct {
		User userDTO `json:"user"`
	}
	if err := c.post(ctx, "/api/register", body, &payload); err != nil {
		return domain.User{}, err
	}
	return payload.User.toDomain(), nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	return c.do(req, target)
}

func (c *Client) post(ctx context.Context, path string, body any, target any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request %s: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target any) error {
	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("remote call")

	if res.StatusCode >= 400 {
		return c.statusError(req, res)
	}
	if target == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) statusError(req *http.Request, res *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(res.Body, 4096)).Decode(&payload)

	var base error
	switch res.StatusCode {
	case http.StatusBadRequest:
		base = remote.ErrInvalidInput
	case http.StatusNotFound:
		base = remote.ErrNotFound
	case http.StatusConflict:
		base = remote.ErrConflict
	default:
		base = fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	if payload.Error != "" {
		return fmt.Errorf("%s %s: %s: %w", req.Method, req.URL.Path, payload.Error, base)
	}
	return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, base)
}
