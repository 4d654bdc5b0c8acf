// Package client talks to the leaderboard API from a game host.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/simukka/ninja-slice/common"
	"github.com/simukka/ninja-slice/game"
)

// Endpoint paths
const (
	SubmitPath    = "/api/leaderboard/submit"
	TopPath       = "/api/leaderboard/top"
	ChallengePath = "/api/leaderboard/challenge"
)

// Entry is one leaderboard row.
type Entry struct {
	Rank     int     `json:"rank,omitempty"`
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// Board is the featured daily leaderboard.
type Board struct {
	Top           []Entry              `json:"top"`
	Me            *Entry               `json:"me"`
	ChallengeType common.ChallengeType `json:"challengeType"`
}

// SubmitResult echoes the stored metrics; skipped metrics are nil.
type SubmitResult struct {
	Status string              `json:"status"`
	Saved  map[string]*float64 `json:"saved"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("leaderboard: status %d", e.Code)
	}
	return fmt.Sprintf("leaderboard: status %d: %s", e.Code, e.Message)
}

// Client calls the leaderboard API.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	// Identity headers. The hosting platform sets them in production; a
	// standalone host fills them in itself.
	UserID   string
	Username string
}

// New creates a client for the API at baseURL. An empty baseURL makes
// requests relative to the page origin.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserID != "" {
		req.Header.Set("X-User-Id", c.UserID)
	}
	if c.Username != "" {
		req.Header.Set("X-Username", c.Username)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{Code: resp.StatusCode, Message: apiErr.Message}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Submit posts the metrics of a finished run.
func (c *Client) Submit(ctx context.Context, m game.Metrics) (*SubmitResult, error) {
	var res SubmitResult
	if err := c.do(ctx, http.MethodPost, SubmitPath, m, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Top fetches today's featured leaderboard.
func (c *Client) Top(ctx context.Context) (*Board, error) {
	var board Board
	if err := c.do(ctx, http.MethodGet, TopPath, nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// Challenge fetches today's challenge.
func (c *Client) Challenge(ctx context.Context) (*common.Challenge, error) {
	var ch common.Challenge
	if err := c.do(ctx, http.MethodGet, ChallengePath, nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}
