// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sisumaja/internal/models"
)

// projectColumns is the canonical SELECT column list for project queries.
const projectColumns = `
	id, title, slug, description, content, links, thumbnail_url, media_gallery,
	youtube_url, tiktok_url, instagram_url,
	stat_views, stat_likes, stat_comments, stat_shares,
	show_youtube_stats, youtube_video_id,
	client_name, client_role, client_avatar_url, client_quote, client_stars, client_headline,
	is_visible, published_at, collaboration_completed_at, created_at, updated_at`

// ProjectStore handles all project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// scanner abstracts *sql.Row and *sql.Rows for scanProject.
type scanner interface {
	Scan(dest ...any) error
}

// scanProject reads one project row, decoding the JSONB columns into their
// typed forms.
func scanProject(row scanner) (*models.Project, error) {
	p := &models.Project{}
	var contentRaw, linksRaw, galleryRaw []byte
	if err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &contentRaw, &linksRaw,
		&p.ThumbnailURL, &galleryRaw,
		&p.YouTubeURL, &p.TikTokURL, &p.InstagramURL,
		&p.StatViews, &p.StatLikes, &p.StatComments, &p.StatShares,
		&p.ShowYouTubeStats, &p.YouTubeVideoID,
		&p.Client.Name, &p.Client.Role, &p.Client.AvatarURL, &p.Client.Quote,
		&p.Client.Stars, &p.Client.Headline,
		&p.IsVisible, &p.PublishedAt, &p.CollaborationCompletedAt,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if p.Content, err = models.DecodeBlocks(contentRaw); err != nil {
		return nil, fmt.Errorf("project %s: %w", p.ID, err)
	}
	if p.Links, err = models.DecodeLinks(linksRaw); err != nil {
		return nil, fmt.Errorf("project %s: %w", p.ID, err)
	}
	if p.MediaGallery, err = models.DecodeGallery(galleryRaw); err != nil {
		return nil, fmt.Errorf("project %s: %w", p.ID, err)
	}
	return p, nil
}

// List returns all projects, visible or not, ordered by creation date
// descending. Used by the admin dashboard.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT` + projectColumns + ` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// ListVisible returns visible projects ordered by publish date descending.
// Used for the public project listing and the homepage.
func (s *ProjectStore) ListVisible() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT` + projectColumns + `
		FROM projects
		WHERE is_visible = TRUE
		ORDER BY published_at DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("list visible projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// Related returns up to limit visible projects excluding the given id.
// Used for the "see also" section on a detail page.
func (s *ProjectStore) Related(excludeID uuid.UUID, limit int) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT`+projectColumns+`
		FROM projects
		WHERE is_visible = TRUE AND id <> $1
		ORDER BY published_at DESC NULLS LAST
		LIMIT $2`, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list related projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

func collectProjects(rows *sql.Rows) ([]models.Project, error) {
	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT`+projectColumns+` FROM projects WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a project by its slug. Returns nil if not found.
// Used for public detail page rendering.
func (s *ProjectStore) FindBySlug(slug string) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT`+projectColumns+` FROM projects WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with the generated ID.
// published_at is set to now when the project has none yet.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	if p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	contentRaw, linksRaw, galleryRaw, err := encodeProjectJSON(p)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO projects (
			title, slug, description, content, links, thumbnail_url, media_gallery,
			youtube_url, tiktok_url, instagram_url,
			stat_views, stat_likes, stat_comments, stat_shares,
			show_youtube_stats, youtube_video_id,
			client_name, client_role, client_avatar_url, client_quote, client_stars, client_headline,
			is_visible, published_at, collaboration_completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING`+projectColumns,
		p.Title, p.Slug, p.Description, contentRaw, linksRaw, p.ThumbnailURL, galleryRaw,
		p.YouTubeURL, p.TikTokURL, p.InstagramURL,
		p.StatViews, p.StatLikes, p.StatComments, p.StatShares,
		p.ShowYouTubeStats, p.YouTubeVideoID,
		p.Client.Name, p.Client.Role, p.Client.AvatarURL, p.Client.Quote,
		clientStars(p), p.Client.Headline,
		p.IsVisible, p.PublishedAt, p.CollaborationCompletedAt,
	)

	result, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return result, nil
}

// Update modifies an existing project. published_at is set on first publish
// and never cleared afterwards.
func (s *ProjectStore) Update(p *models.Project) error {
	if p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	contentRaw, linksRaw, galleryRaw, err := encodeProjectJSON(p)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE projects SET
			title = $1, slug = $2, description = $3, content = $4, links = $5,
			thumbnail_url = $6, media_gallery = $7,
			youtube_url = $8, tiktok_url = $9, instagram_url = $10,
			stat_views = $11, stat_likes = $12, stat_comments = $13, stat_shares = $14,
			show_youtube_stats = $15, youtube_video_id = $16,
			client_name = $17, client_role = $18, client_avatar_url = $19,
			client_quote = $20, client_stars = $21, client_headline = $22,
			is_visible = $23, published_at = $24, collaboration_completed_at = $25,
			updated_at = NOW()
		WHERE id = $26`,
		p.Title, p.Slug, p.Description, contentRaw, linksRaw,
		p.ThumbnailURL, galleryRaw,
		p.YouTubeURL, p.TikTokURL, p.InstagramURL,
		p.StatViews, p.StatLikes, p.StatComments, p.StatShares,
		p.ShowYouTubeStats, p.YouTubeVideoID,
		p.Client.Name, p.Client.Role, p.Client.AvatarURL, p.Client.Quote,
		clientStars(p), p.Client.Headline,
		p.IsVisible, p.PublishedAt, p.CollaborationCompletedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project by ID.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// ToggleVisibility flips is_visible and returns the new value.
func (s *ProjectStore) ToggleVisibility(id uuid.UUID) (bool, error) {
	var visible bool
	err := s.db.QueryRow(`
		UPDATE projects SET is_visible = NOT is_visible, updated_at = NOW()
		WHERE id = $1
		RETURNING is_visible`, id).Scan(&visible)
	if err != nil {
		return false, fmt.Errorf("toggle project visibility: %w", err)
	}
	return visible, nil
}

// UpdateStats persists freshly fetched view/like/comment counts. Shares are
// never live-fetched and stay untouched.
func (s *ProjectStore) UpdateStats(id uuid.UUID, views, likes, comments string) error {
	_, err := s.db.Exec(`
		UPDATE projects SET
			stat_views = $1, stat_likes = $2, stat_comments = $3, updated_at = NOW()
		WHERE id = $4`, views, likes, comments, id)
	if err != nil {
		return fmt.Errorf("update project stats: %w", err)
	}
	return nil
}

// SlugExists reports whether a slug is taken by a project other than excludeID.
func (s *ProjectStore) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1 AND id <> $2)`,
		slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug exists: %w", err)
	}
	return exists, nil
}

func encodeProjectJSON(p *models.Project) (contentRaw, linksRaw, galleryRaw []byte, err error) {
	if contentRaw, err = models.EncodeBlocks(p.Content); err != nil {
		return nil, nil, nil, err
	}
	if linksRaw, err = models.EncodeLinks(p.Links); err != nil {
		return nil, nil, nil, err
	}
	if galleryRaw, err = models.EncodeGallery(p.MediaGallery); err != nil {
		return nil, nil, nil, err
	}
	return contentRaw, linksRaw, galleryRaw, nil
}

// clientStars clamps the testimonial star rating into the 1..5 range the
// schema enforces, defaulting to 5 when unset.
func clientStars(p *models.Project) int {
	stars := p.Client.Stars
	if stars < 1 {
		return 5
	}
	if stars > 5 {
		return 5
	}
	return stars
}
