// Package practicum queries the Practicum homework status API.
package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

const maxResponseBodySize = 1 << 20 // 1MB

// Client fetches homework statuses for one user.
// It never retries; the status watcher decides when to ask again.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client. timeout bounds a single request, including reading the body.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FetchStatuses requests the statuses changed since cursor (Unix seconds).
// Every failure is returned as *homework.FetchError.
func (c *Client) FetchStatuses(ctx context.Context, cursor int64) (homework.RawResponse, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, transportError(fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err))
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(cursor, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, transportError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	// one byte past the limit tells an oversized body apart from one that fits exactly
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize+1))
	if err != nil {
		return nil, transportError(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// the error body is diagnostic only; a malformed one still yields a server status error
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		return nil, &homework.FetchError{
			Kind:          homework.KindServerStatus,
			StatusCode:    resp.StatusCode,
			Code:          eb.Code,
			ServerMessage: eb.Message,
		}
	}

	if len(body) > maxResponseBodySize {
		return nil, transportError(fmt.Errorf("response body too large: exceeds %d bytes", maxResponseBodySize))
	}

	var raw homework.RawResponse
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, transportError(fmt.Errorf("malformed response body: %w", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, transportError(errors.New("malformed response body: unexpected data after JSON value"))
	}
	return raw, nil
}

func transportError(err error) *homework.FetchError {
	return &homework.FetchError{Kind: homework.KindTransport, Err: err}
}
