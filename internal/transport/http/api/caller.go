package api

import (
	"context"
	"net/url"
)

// Caller is the slice of *Client the domain stores depend on.
type Caller interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, query url.Values, body, out any) error
	Delete(ctx context.Context, path string) error
	PostMultipart(ctx context.Context, path string, form *Multipart, out any) error
	Download(ctx context.Context, path string, query url.Values) ([]byte, string, error)
}

var _ Caller = (*Client)(nil)
