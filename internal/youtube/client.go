// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrVideoNotFound is returned when the Data API knows nothing about the
// requested video identifier.
var ErrVideoNotFound = errors.New("youtube: video not found")

// Stats holds the raw statistics counters for a single video. The Data API
// returns them as decimal strings and they are stored as-is.
type Stats struct {
	ViewCount    string
	LikeCount    string
	CommentCount string
}

// Client fetches video statistics from the YouTube Data API v3.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a Data API client. The key may be empty, in which case
// FetchStats reports ErrNoAPIKey so callers can degrade gracefully.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://www.googleapis.com/youtube/v3",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// ErrNoAPIKey indicates the client was constructed without an API key.
var ErrNoAPIKey = errors.New("youtube: api key not configured")

// FetchStats retrieves the statistics part for a single video.
func (c *Client) FetchStats(ctx context.Context, videoID string) (*Stats, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	q := url.Values{}
	q.Set("part", "statistics")
	q.Set("id", videoID)
	q.Set("key", c.apiKey)
	reqURL := c.baseURL + "/videos?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("youtube read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result videosResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("youtube unmarshal: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	s := result.Items[0].Statistics
	return &Stats{
		ViewCount:    s.ViewCount,
		LikeCount:    s.LikeCount,
		CommentCount: s.CommentCount,
	}, nil
}

// --- Data API v3 response types ---

type videoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

type videoItem struct {
	Statistics videoStatistics `json:"statistics"`
}

type videosResponse struct {
	Items []videoItem `json:"items"`
}
