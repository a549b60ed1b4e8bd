// Package auth provides HTTP clients for sheets behind an OAuth2 client
// credentials flow.
package auth

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// NewHTTPClient returns a client that fetches and refreshes tokens with conf.
// base supplies the transport and timeout; nil uses http.DefaultClient. When
// conf is not enabled base is returned unchanged.
func NewHTTPClient(ctx context.Context, conf Conf, base *http.Client) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	if !conf.Enabled() {
		return base
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	c := conf.toOauth2Config()
	client := c.Client(ctx)
	client.Timeout = base.Timeout
	return client
}

// Token requests a token once, mainly to fail fast on bad credentials.
func Token(ctx context.Context, conf Conf, timeout time.Duration) (*oauth2.Token, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	c := conf.toOauth2Config()
	return c.Token(ctx)
}
