// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlockKind identifies the renderable variant of a content block.
type BlockKind string

const (
	BlockText     BlockKind = "text"
	BlockImage    BlockKind = "image"
	BlockVideo    BlockKind = "video"
	BlockCarousel BlockKind = "carousel"
)

// Valid reports whether the kind is one of the four known block variants.
func (k BlockKind) Valid() bool {
	switch k {
	case BlockText, BlockImage, BlockVideo, BlockCarousel:
		return true
	}
	return false
}

// BlockLayout is the left/right hint for media blocks with accompanying text.
type BlockLayout string

const (
	LayoutLeft  BlockLayout = "left"
	LayoutRight BlockLayout = "right"
)

// ContentBlock is one renderable unit in a project's detail page body.
// Blocks are stored as an ordered JSONB array on the project row; order
// is the rendering order.
type ContentBlock struct {
	ID           string      `json:"id"`
	Kind         BlockKind   `json:"kind"`
	Title        string      `json:"title,omitempty"`
	Content      string      `json:"content,omitempty"`
	URL          string      `json:"url,omitempty"`           // image/video kinds
	ThumbnailURL string      `json:"thumbnail_url,omitempty"` // video kind only
	URLs         []string    `json:"urls,omitempty"`          // carousel kind
	Layout       BlockLayout `json:"layout,omitempty"`
}

// HasText reports whether the block carries body text alongside its media.
// Media blocks without text render full-width; with text they render as a
// two-column split.
func (b ContentBlock) HasText() bool {
	return b.Content != ""
}

// LinkKind identifies the icon/color treatment of a custom link.
type LinkKind string

const (
	LinkYouTube   LinkKind = "youtube"
	LinkInstagram LinkKind = "instagram"
	LinkTikTok    LinkKind = "tiktok"
	LinkOther     LinkKind = "other"
)

// Valid reports whether the kind is one of the four known link variants.
func (k LinkKind) Valid() bool {
	switch k {
	case LinkYouTube, LinkInstagram, LinkTikTok, LinkOther:
		return true
	}
	return false
}

// CustomLink is one outbound call-to-action button on a project detail page.
type CustomLink struct {
	ID    string   `json:"id"`
	Kind  LinkKind `json:"kind"`
	Label string   `json:"label"`
	URL   string   `json:"url"`
}

// Testimonial holds the optional client feedback shown on a detail page.
type Testimonial struct {
	Name      *string `json:"client_name,omitempty"`
	Role      *string `json:"client_role,omitempty"`
	AvatarURL *string `json:"client_avatar_url,omitempty"`
	Quote     *string `json:"client_quote,omitempty"`
	Stars     int     `json:"client_stars"`
	Headline  *string `json:"client_headline,omitempty"`
}

// HasQuote reports whether there is feedback worth rendering.
func (t Testimonial) HasQuote() bool {
	return t.Quote != nil && *t.Quote != ""
}

// Project is a portfolio case study. Content blocks, custom links, and the
// legacy media gallery are stored as JSONB columns; legacy scalar fields
// (description, youtube/tiktok/instagram URLs, media gallery) are retained
// only as fallback sources for records created before blocks existed.
type Project struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Description  *string        `json:"description,omitempty"`
	Content      []ContentBlock `json:"content,omitempty"`
	Links        []CustomLink   `json:"links,omitempty"`
	ThumbnailURL *string        `json:"thumbnail_url,omitempty"`
	MediaGallery []string       `json:"media_gallery"`

	YouTubeURL   *string `json:"youtube_url,omitempty"`
	TikTokURL    *string `json:"tiktok_url,omitempty"`
	InstagramURL *string `json:"instagram_url,omitempty"`

	StatViews    *string `json:"stat_views,omitempty"`
	StatLikes    *string `json:"stat_likes,omitempty"`
	StatComments *string `json:"stat_comments,omitempty"`
	StatShares   *string `json:"stat_shares,omitempty"`

	ShowYouTubeStats bool    `json:"show_youtube_stats"`
	YouTubeVideoID   *string `json:"youtube_video_id,omitempty"`

	Client Testimonial `json:"client"`

	IsVisible                bool       `json:"is_visible"`
	PublishedAt              *time.Time `json:"published_at,omitempty"`
	CollaborationCompletedAt *time.Time `json:"collaboration_completed_at,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

// DecodeBlocks parses a JSONB content column into a typed block list.
// A NULL column yields a nil slice. Unknown kinds are rejected rather than
// silently coerced — malformed legacy data should fail loudly at decode
// time, not at render time.
func DecodeBlocks(raw []byte) ([]ContentBlock, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var blocks []ContentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("decode content blocks: %w", err)
	}
	for i, b := range blocks {
		if !b.Kind.Valid() {
			return nil, fmt.Errorf("decode content blocks: block %d has unknown kind %q", i, b.Kind)
		}
	}
	return blocks, nil
}

// EncodeBlocks serializes a block list for the JSONB content column.
// A nil slice encodes as SQL NULL (legacy record shape is preserved).
func EncodeBlocks(blocks []ContentBlock) ([]byte, error) {
	if blocks == nil {
		return nil, nil
	}
	raw, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("encode content blocks: %w", err)
	}
	return raw, nil
}

// DecodeLinks parses a JSONB links column into a typed link list.
func DecodeLinks(raw []byte) ([]CustomLink, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var links []CustomLink
	if err := json.Unmarshal(raw, &links); err != nil {
		return nil, fmt.Errorf("decode custom links: %w", err)
	}
	for i, l := range links {
		if !l.Kind.Valid() {
			return nil, fmt.Errorf("decode custom links: link %d has unknown kind %q", i, l.Kind)
		}
	}
	return links, nil
}

// EncodeLinks serializes a link list for the JSONB links column.
func EncodeLinks(links []CustomLink) ([]byte, error) {
	if links == nil {
		return nil, nil
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("encode custom links: %w", err)
	}
	return raw, nil
}

// DecodeGallery parses the legacy media_gallery JSONB column. The column
// defaults to '[]' but very old rows may hold NULL.
func DecodeGallery(raw []byte) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return nil, fmt.Errorf("decode media gallery: %w", err)
	}
	return urls, nil
}

// EncodeGallery serializes the legacy media gallery list. Always encodes
// as an array, never NULL, matching the column default.
func EncodeGallery(urls []string) ([]byte, error) {
	if urls == nil {
		urls = []string{}
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return nil, fmt.Errorf("encode media gallery: %w", err)
	}
	return raw, nil
}
