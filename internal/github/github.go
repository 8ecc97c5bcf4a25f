// Package github fetches repository listings for the profile proxy route.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const apiBase = "https://api.github.com"

type Client struct {
	httpClient *http.Client
	clientID   string
	secret     string
}

func NewClient(clientID, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		clientID:   clientID,
		secret:     secret,
	}
}

// ListRepos returns GitHub's status code and raw response body for a user's
// five most recently created repositories. The body is passed through
// untouched so the route behaves as a transparent proxy.
func (c *Client) ListRepos(ctx context.Context, username string) (int, []byte, error) {
	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if c.clientID != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.secret)
	}
	u := fmt.Sprintf("%s/users/%s/repos?%s", apiBase, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", "devlink")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
