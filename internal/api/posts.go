package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListPostsByEnvironment returns the posts of one environment in server order.
func (c *Client) ListPostsByEnvironment(ctx context.Context, envID int64) ([]Post, error) {
	var posts []Post
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/posts/environment/%d", envID), nil, nil,
		"list posts", "Failed to load posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post and returns the stored record.
func (c *Client) CreatePost(ctx context.Context, id Identity, payload PostPayload) (Post, error) {
	var post Post
	err := c.doJSON(ctx, http.MethodPost, "/posts", payload, &id,
		"create post", "Failed to create post", &post)
	return post, err
}

// DeletePost removes a post and its comments.
func (c *Client) DeletePost(ctx context.Context, id Identity, postID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", postID), nil, &id,
		"delete post", "Failed to delete post", nil)
}
