// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content resolves what a project detail page renders. Older
// project rows predate the block editor and only carry a description and a
// flat media gallery; the resolvers decide when to use the explicit block
// and link lists and when to synthesize them from those legacy fields.
package content

import "sisumaja/internal/models"

// Synthetic identifiers for entries derived from legacy fields. Fixed so
// repeated resolution of the same row yields identical output.
const (
	legacyTextBlockID     = "legacy-description"
	legacyCarouselBlockID = "legacy-gallery"
)

// ResolveBlocks returns the ordered content blocks to render for a project.
//
// An explicit block list, even one whose legacy fields were since cleared,
// wins outright. Only when no list was ever saved do we fall back to the
// legacy description and media gallery.
func ResolveBlocks(p *models.Project) []models.ContentBlock {
	if len(p.Content) > 0 {
		return p.Content
	}

	var out []models.ContentBlock
	if desc := deref(p.Description); desc != "" {
		out = append(out, models.ContentBlock{
			ID:      legacyTextBlockID,
			Kind:    models.BlockText,
			Content: desc,
		})
	}
	if len(p.MediaGallery) > 0 {
		out = append(out, models.ContentBlock{
			ID:     legacyCarouselBlockID,
			Kind:   models.BlockCarousel,
			URLs:   p.MediaGallery,
			Layout: models.LayoutLeft,
		})
	}
	return out
}

// Default button labels for links synthesized from the legacy URL fields.
const (
	labelYouTube   = "Vaata YouTube'is"
	labelInstagram = "Vaata Instagramis"
	labelTikTok    = "Vaata TikTokis"
)

// ResolveLinks returns the ordered outbound links to render for a project.
//
// An explicit non-empty link list is returned verbatim and is never mixed
// with the legacy URL fields. Only a list of length exactly zero falls
// back, in fixed order: YouTube, Instagram, TikTok.
func ResolveLinks(p *models.Project) []models.CustomLink {
	if len(p.Links) > 0 {
		return p.Links
	}

	var out []models.CustomLink
	if u := deref(p.YouTubeURL); u != "" {
		out = append(out, models.CustomLink{
			ID:    "legacy-youtube",
			Kind:  models.LinkYouTube,
			Label: labelYouTube,
			URL:   u,
		})
	}
	if u := deref(p.InstagramURL); u != "" {
		out = append(out, models.CustomLink{
			ID:    "legacy-instagram",
			Kind:  models.LinkInstagram,
			Label: labelInstagram,
			URL:   u,
		})
	}
	if u := deref(p.TikTokURL); u != "" {
		out = append(out, models.CustomLink{
			ID:    "legacy-tiktok",
			Kind:  models.LinkTikTok,
			Label: labelTikTok,
			URL:   u,
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
