// Package github fetches public user profiles from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/devfinder/internal/logger"
	devfindererrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

const (
	// DefaultUserAgent identifies requests; the API rejects anonymous agents.
	DefaultUserAgent = "devfinder"

	maxBodyBytes = 1 << 20
)

// ProfileFetcher is the single operation the lookup layer depends on.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*Profile, error)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client performs unauthenticated profile lookups.
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient validates the base URL and builds a Client.
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, devfindererrors.NewValidationError("base_url", "base URL is required", nil)
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, devfindererrors.NewValidationError("base_url", "base URL is not a valid URL", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, devfindererrors.NewValidationError("base_url", fmt.Sprintf("unsupported base URL %q", raw), nil)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if opts.Timeout > 0 {
		clone := *httpClient
		clone.Timeout = opts.Timeout
		httpClient = &clone
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:    base,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     log,
	}, nil
}

// ProfileURL returns the endpoint for username with the name path-escaped.
func (c *Client) ProfileURL(username string) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/users/" + username
	u.RawPath = strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + "/users/" + url.PathEscape(username)
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// FetchProfile issues GET <base>/users/<username>. Any non-2xx status yields a
// *errors.RequestError, a missing response a *errors.TransportError, and an
// undecodable 2xx body a *errors.DecodeError.
func (c *Client) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	endpoint := c.ProfileURL(username)
	log := c.logger.WithFields(map[string]any{"username": username, "url": endpoint})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, devfindererrors.NewTransportError(username, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	log.Debug("requesting profile")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, devfindererrors.NewTransportError(username, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithFields(map[string]any{"status": resp.StatusCode}).Debug("profile request rejected")
		return nil, devfindererrors.NewRequestError(username, resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&profile); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, devfindererrors.NewTransportError(username, ctxErr)
		}
		return nil, devfindererrors.NewDecodeError(username, err)
	}

	log.Debug("profile decoded")
	return &profile, nil
}

var _ ProfileFetcher = (*Client)(nil)
