package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"sisumaja/internal/models"
)

func strPtr(s string) *string { return &s }

func TestProjectStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	slug := "test-create-project-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanProjects(t, db, slug) })

	project := &models.Project{
		Title:       "Test Project",
		Slug:        slug,
		Description: strPtr("A test project."),
		Content: []models.ContentBlock{
			{ID: "b1", Kind: models.BlockText, Content: "Hello"},
			{ID: "b2", Kind: models.BlockCarousel, URLs: []string{"https://cdn.example.com/1.jpg"}, Layout: models.LayoutRight},
		},
		Links: []models.CustomLink{
			{ID: "l1", Kind: models.LinkYouTube, Label: "Watch", URL: "https://youtu.be/abc12345678"},
		},
		IsVisible: true,
	}

	created, err := s.Create(project)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.PublishedAt == nil {
		t.Error("expected published_at to be set on create")
	}
	if created.Client.Stars != 5 {
		t.Errorf("client stars: got %d, want default 5", created.Client.Stars)
	}

	// FindBySlug should return the JSONB columns decoded.
	found, err := s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("FindBySlug returned nil for existing project")
	}
	if len(found.Content) != 2 || found.Content[1].Kind != models.BlockCarousel {
		t.Errorf("content blocks not round-tripped: %+v", found.Content)
	}
	if len(found.Links) != 1 || found.Links[0].Kind != models.LinkYouTube {
		t.Errorf("links not round-tripped: %+v", found.Links)
	}
	if found.MediaGallery == nil {
		t.Error("media gallery should decode to an empty slice, not nil")
	}
}

func TestProjectStoreFindBySlugNotFound(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	found, err := s.FindBySlug("no-such-slug-" + uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for missing slug, got %+v", found)
	}
}

func TestProjectStoreLegacyRecord(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	slug := "test-legacy-project-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanProjects(t, db, slug) })

	// A legacy record: no blocks, no links, only scalar fields.
	created, err := s.Create(&models.Project{
		Title:       "Legacy Project",
		Slug:        slug,
		Description: strPtr("Old style description."),
		YouTubeURL:  strPtr("https://youtube.com/watch?v=abc12345678"),
		IsVisible:   true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Content != nil {
		t.Errorf("legacy record content should stay nil, got %+v", found.Content)
	}
	if found.Links != nil {
		t.Errorf("legacy record links should stay nil, got %+v", found.Links)
	}
}

func TestProjectStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	slug := "test-update-project-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanProjects(t, db, slug) })

	created, err := s.Create(&models.Project{Title: "Before", Slug: slug, IsVisible: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	firstPublished := created.PublishedAt

	created.Title = "After"
	created.Content = []models.ContentBlock{{ID: "b1", Kind: models.BlockText, Content: "now with blocks"}}
	if err := s.Update(created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Title != "After" {
		t.Errorf("title: got %q, want %q", found.Title, "After")
	}
	if len(found.Content) != 1 {
		t.Errorf("content blocks: got %d, want 1", len(found.Content))
	}
	// published_at must survive updates unchanged.
	if firstPublished != nil && !found.PublishedAt.Equal(*firstPublished) {
		t.Errorf("published_at changed on update: %v -> %v", firstPublished, found.PublishedAt)
	}
}

func TestProjectStoreListVisibleOrdering(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	older := "test-order-older-" + uuid.NewString()[:8]
	newer := "test-order-newer-" + uuid.NewString()[:8]
	hidden := "test-order-hidden-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanProjects(t, db, older, newer, hidden) })

	past := time.Now().Add(-48 * time.Hour)
	if _, err := s.Create(&models.Project{Title: "Older", Slug: older, IsVisible: true, PublishedAt: &past}); err != nil {
		t.Fatalf("Create older: %v", err)
	}
	if _, err := s.Create(&models.Project{Title: "Newer", Slug: newer, IsVisible: true}); err != nil {
		t.Fatalf("Create newer: %v", err)
	}
	if _, err := s.Create(&models.Project{Title: "Hidden", Slug: hidden, IsVisible: false}); err != nil {
		t.Fatalf("Create hidden: %v", err)
	}

	projects, err := s.ListVisible()
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}

	olderIdx, newerIdx := -1, -1
	for i, p := range projects {
		switch p.Slug {
		case older:
			olderIdx = i
		case newer:
			newerIdx = i
		case hidden:
			t.Error("hidden project returned by ListVisible")
		}
	}
	if olderIdx == -1 || newerIdx == -1 {
		t.Fatal("created projects missing from ListVisible")
	}
	if newerIdx > olderIdx {
		t.Errorf("expected newer before older, got indices %d and %d", newerIdx, olderIdx)
	}
}

func TestProjectStoreRelated(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	current := "test-related-current-" + uuid.NewString()[:8]
	other := "test-related-other-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanProjects(t, db, current, other) })

	created, err := s.Create(&models.Project{Title: "Current", Slug: current, IsVisible: true})
	if err != nil {
		t.Fatalf("Create current: %v", err)
	}
	if _, err := s.Create(&models.Project{Title: "Other", Slug: other, IsVisible: true}); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	related, err := s.Related(created.ID, 3)
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(related) > 3 {
		t.Errorf("Related returned %d projects, cap is 3", len(related))
	}
	for _, p := range related {
		if p.ID == created.ID {
			t.Error("Related included the excluded project")
		}
		if !p.IsVisible {
			t.Error("Related included a hidden project")
		}
	}
}

func TestProjectStoreToggleVisibility(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	slug := "test-toggle-project-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanProjects(t, db, slug) })

	created, err := s.Create(&models.Project{Title: "Toggle", Slug: slug, IsVisible: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	visible, err := s.ToggleVisibility(created.ID)
	if err != nil {
		t.Fatalf("ToggleVisibility: %v", err)
	}
	if visible {
		t.Error("expected visibility false after first toggle")
	}

	visible, err = s.ToggleVisibility(created.ID)
	if err != nil {
		t.Fatalf("second ToggleVisibility: %v", err)
	}
	if !visible {
		t.Error("expected visibility true after second toggle")
	}
}

func TestProjectStoreUpdateStats(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	slug := "test-stats-project-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanProjects(t, db, slug) })

	created, err := s.Create(&models.Project{
		Title:      "Stats",
		Slug:       slug,
		StatShares: strPtr("42"),
		IsVisible:  true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.UpdateStats(created.ID, "1000", "50", "7"); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.StatViews == nil || *found.StatViews != "1000" {
		t.Errorf("stat_views not updated: %v", found.StatViews)
	}
	// Shares are stored-only and must not be touched by a stats refresh.
	if found.StatShares == nil || *found.StatShares != "42" {
		t.Errorf("stat_shares changed by UpdateStats: %v", found.StatShares)
	}
}

func TestProjectStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	slug := "test-delete-project-" + uuid.NewString()[:8]

	created, err := s.Create(&models.Project{Title: "Doomed", Slug: slug, IsVisible: false})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("project still present after Delete")
	}
}

func TestProjectStoreHiddenByDefault(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	// Insert through raw SQL without is_visible so the column default
	// applies: new projects must start hidden until an editor publishes.
	slug := "test-default-hidden-" + uuid.NewString()[:8]
	var id uuid.UUID
	err := db.QueryRow(
		`INSERT INTO projects (title, slug) VALUES ($1, $2) RETURNING id`,
		"Vaikimisi peidetud", slug,
	).Scan(&id)
	if err != nil {
		t.Fatalf("raw insert: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM projects WHERE id = $1`, id) })

	found, err := s.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("inserted project not found")
	}
	if found.IsVisible {
		t.Error("project inserted without is_visible should default to hidden")
	}
}
