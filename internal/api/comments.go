package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListComments returns the comments of one post.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]Comment, error) {
	var comments []Comment
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/posts/%d/comments", postID), nil, nil,
		"list comments", "Failed to load comments", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment attaches a comment to a post.
func (c *Client) AddComment(ctx context.Context, id Identity, postID int64, payload CommentPayload) (Comment, error) {
	var comment Comment
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), payload, &id,
		"add comment", "Failed to add comment", &comment)
	return comment, err
}

// DeleteComment removes a single comment.
func (c *Client) DeleteComment(ctx context.Context, id Identity, commentID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", commentID), nil, &id,
		"delete comment", "Failed to delete comment", nil)
}
