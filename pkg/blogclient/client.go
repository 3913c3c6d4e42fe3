// Package blogclient is the Go client for the posts API, plus the
// view-model logic the admin list and editor screens share.
package blogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("blogclient: post not found")
	ErrSlugConflict = errors.New("blogclient: slug already in use")
)

const relatedCount = 3

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a client for the API at baseURL. token may be empty for
// public-only usage.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer = &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrSlugConflict
	case resp.StatusCode >= 400:
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("blogclient: %s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("blogclient: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ListPosts(ctx context.Context, q ListQuery) (*PostsPage, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Featured {
		query.Set("featured", "true")
	}
	if q.Unpublished {
		query.Set("published", "false")
	}

	var page PostsPage
	if err := c.do(ctx, http.MethodGet, "/posts", query, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+id, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/posts/slug/"+url.PathEscape(slug), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, input PostInput) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/posts", nil, input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, id string, input PostInput) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPut, "/posts/"+id, nil, input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil, nil)
}

// RegisterView records one view and returns the updated total.
func (c *Client) RegisterView(ctx context.Context, id string) (int64, error) {
	var body struct {
		Views int64 `json:"views"`
	}
	if err := c.do(ctx, http.MethodPost, "/posts/"+id+"/views", nil, nil, &body); err != nil {
		return 0, err
	}
	return body.Views, nil
}

// RelatedPosts returns up to three published posts from the same
// category, excluding the post being read. It overfetches by one so a
// full set survives the exclusion.
func (c *Client) RelatedPosts(ctx context.Context, category, excludeID string) ([]Post, error) {
	page, err := c.ListPosts(ctx, ListQuery{Limit: relatedCount + 1, Category: category})
	if err != nil {
		return nil, err
	}

	related := make([]Post, 0, relatedCount)
	for _, post := range page.Posts {
		if post.ID == excludeID {
			continue
		}
		related = append(related, post)
		if len(related) == relatedCount {
			break
		}
	}

	return related, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &body); err != nil {
		return nil, err
	}
	return body.Categories, nil
}
