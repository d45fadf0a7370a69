// Package waocard wraps the upstream WaoCard REST API behind a single typed
// client. The upstream speaks form-encoded POSTs and answers JSON; responses
// may arrive with missing fields or non-200 statuses.
package waocard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Mrwowow/WaoCard-Landing/internal/events"
)

// Config carries everything the client needs. Credentials are injected here;
// they must never appear as literals anywhere in this package.
type Config struct {
	BaseURL   string
	ServerKey string
	Username  string
	Password  string
	Timeout   time.Duration
	Retries   int
}

type Client struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("waocard"),
	}
}

// Authenticate obtains a bearer token for subsequent calls. An upstream
// answer without an access_token field is an error, not an empty token.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	form := c.baseForm()
	form.Set("username", c.cfg.Username)
	form.Set("password", c.cfg.Password)
	form.Set("device_type", "windows")

	var result struct {
		APIStatus   int    `json:"api_status"`
		AccessToken string `json:"access_token"`
	}
	if err := c.postForm(ctx, "/api/auth", "", form, &result); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("auth response carried no access token (api_status=%d)", result.APIStatus)
	}
	return result.AccessToken, nil
}

// ListEvents fetches the full event collection. A response without an events
// field decodes to an empty slice.
func (c *Client) ListEvents(ctx context.Context, token string) ([]events.Event, error) {
	form := c.baseForm()
	form.Set("fetch", "events")

	var result struct {
		APIStatus int            `json:"api_status"`
		Events    []events.Event `json:"events"`
	}
	if err := c.postForm(ctx, "/api/get-events", token, form, &result); err != nil {
		return nil, err
	}
	return result.Events, nil
}

// GetEvent fetches a single event by id. A response without an event field
// returns nil, nil; callers treat that as not found.
func (c *Client) GetEvent(ctx context.Context, token, eventID string) (*events.Event, error) {
	form := c.baseForm()
	form.Set("event_id", eventID)

	var result struct {
		APIStatus int           `json:"api_status"`
		Event     *events.Event `json:"event"`
	}
	if err := c.postForm(ctx, "/api/get-event", token, form, &result); err != nil {
		return nil, err
	}
	return result.Event, nil
}

// UpdateAttendance sets the viewer's RSVP state for an event.
func (c *Client) UpdateAttendance(ctx context.Context, token, eventID string, status events.AttendanceStatus) error {
	form := c.baseForm()
	form.Set("event_id", eventID)
	form.Set("going", boolFlag(status == events.AttendanceGoing))
	form.Set("interested", boolFlag(status == events.AttendanceInterested))

	var result struct {
		APIStatus int    `json:"api_status"`
		Message   string `json:"message"`
	}
	if err := c.postForm(ctx, "/api/update-event-going", token, form, &result); err != nil {
		return err
	}
	if result.APIStatus != 0 && result.APIStatus != http.StatusOK {
		return fmt.Errorf("attendance update rejected: api_status=%d message=%q", result.APIStatus, result.Message)
	}
	return nil
}

// ListAttendees fetches the users who marked themselves as going.
func (c *Client) ListAttendees(ctx context.Context, token, eventID string) ([]events.Attendee, error) {
	form := c.baseForm()
	form.Set("event_id", eventID)

	var result struct {
		APIStatus int              `json:"api_status"`
		Users     []events.Attendee `json:"users"`
	}
	if err := c.postForm(ctx, "/api/get-event-going", token, form, &result); err != nil {
		return nil, err
	}
	return result.Users, nil
}

func (c *Client) baseForm() url.Values {
	form := url.Values{}
	form.Set("server_key", c.cfg.ServerKey)
	return form
}

// postForm issues a form-encoded POST to path, carrying the access token as a
// query parameter the way the upstream expects, and decodes the JSON body
// into out. Transport failures are retried up to cfg.Retries times; HTTP
// error statuses and malformed bodies are not.
func (c *Client) postForm(ctx context.Context, path, token string, form url.Values, out interface{}) error {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + path
	if token != "" {
		u += "?access_token=" + url.QueryEscape(token)
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = c.doPostForm(ctx, u, path, form, out)
		if lastErr == nil {
			return nil
		}
		var retryable *transportError
		if !errors.As(lastErr, &retryable) {
			return lastErr
		}
		c.logger.Warn("upstream request failed, retrying",
			zap.String("path", path),
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr))
	}
	return lastErr
}

func (c *Client) doPostForm(ctx context.Context, u, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return &transportError{path: path, err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return &transportError{path: path, err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("upstream returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("upstream %s: status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("failed to decode upstream response",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// transportError marks network-level failures, the only kind worth retrying.
type transportError struct {
	path string
	err  error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.path, e.err)
}

func (e *transportError) Unwrap() error { return e.err }

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
