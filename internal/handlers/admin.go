// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Sisumaja site.
// Handlers are grouped by concern (public, admin, auth, contact, stats)
// and receive their dependencies through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sisumaja/internal/cache"
	"sisumaja/internal/models"
	"sisumaja/internal/render"
	"sisumaja/internal/session"
	"sisumaja/internal/slug"
	"sisumaja/internal/storage"
	"sisumaja/internal/store"
	"sisumaja/internal/youtube"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer      *render.Renderer
	sessions      *session.Store
	projectStore  *store.ProjectStore
	userStore     *store.UserStore
	storageClient *storage.Client
	pageCache     *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storageClient may be nil if S3 is not configured.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, projectStore *store.ProjectStore, userStore *store.UserStore, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:      renderer,
		sessions:      sessions,
		projectStore:  projectStore,
		userStore:     userStore,
		storageClient: storageClient,
		pageCache:     pageCache,
	}
}

// Dashboard renders the admin dashboard: every project, visible or not,
// newest first.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projectStore.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
	}

	visible := 0
	for _, p := range projects {
		if p.IsVisible {
			visible++
		}
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Töölaud",
		Section: "dashboard",
		Data: map[string]any{
			"Projects":     projects,
			"VisibleCount": visible,
		},
	})
}

// projectFormData builds the template data for the project editor. The
// block and link lists ride under their own keys because the HTMX editor
// fragments re-render them from the same shape.
func projectFormData(isNew bool, p *models.Project, errMsg string) map[string]any {
	data := map[string]any{
		"IsNew":   isNew,
		"Project": p,
		"Blocks":  p.Content,
		"Links":   p.Links,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	return data
}

// ProjectNew renders the empty project form.
func (a *Admin) ProjectNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "project_form", &render.PageData{
		Title:   "Uus projekt",
		Section: "dashboard",
		Data:    projectFormData(true, &models.Project{Client: models.Testimonial{Stars: 5}}, ""),
	})
}

// ProjectCreate handles the new project form submission.
func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	project, errMsg := a.projectFromForm(r, &models.Project{})
	if errMsg != "" {
		a.renderer.Page(w, r, "project_form", &render.PageData{
			Title:   "Uus projekt",
			Section: "dashboard",
			Data:    projectFormData(true, project, errMsg),
		})
		return
	}

	created, err := a.projectStore.Create(project)
	if err != nil {
		slog.Error("create project failed", "error", err)
		a.renderer.Page(w, r, "project_form", &render.PageData{
			Title:   "Uus projekt",
			Section: "dashboard",
			Data:    projectFormData(true, project, err.Error()),
		})
		return
	}

	a.pageCache.InvalidateAll(r.Context())
	slog.Info("project created", "id", created.ID, "slug", created.Slug)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// ProjectEdit renders the edit form for an existing project.
func (a *Admin) ProjectEdit(w http.ResponseWriter, r *http.Request) {
	project := a.projectFromURL(w, r)
	if project == nil {
		return
	}

	a.renderer.Page(w, r, "project_form", &render.PageData{
		Title:   "Muuda: " + project.Title,
		Section: "dashboard",
		Data:    projectFormData(false, project, ""),
	})
}

// ProjectUpdate handles the edit form submission.
func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	existing := a.projectFromURL(w, r)
	if existing == nil {
		return
	}

	project, errMsg := a.projectFromForm(r, existing)
	if errMsg != "" {
		a.renderer.Page(w, r, "project_form", &render.PageData{
			Title:   "Muuda: " + project.Title,
			Section: "dashboard",
			Data:    projectFormData(false, project, errMsg),
		})
		return
	}

	if err := a.projectStore.Update(project); err != nil {
		slog.Error("update project failed", "error", err, "id", project.ID)
		a.renderer.Page(w, r, "project_form", &render.PageData{
			Title:   "Muuda: " + project.Title,
			Section: "dashboard",
			Data:    projectFormData(false, project, err.Error()),
		})
		return
	}

	a.pageCache.InvalidateAll(r.Context())
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// ProjectDelete removes a project.
func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	project := a.projectFromURL(w, r)
	if project == nil {
		return
	}

	if err := a.projectStore.Delete(project.ID); err != nil {
		slog.Error("delete project failed", "error", err, "id", project.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.pageCache.InvalidateAll(r.Context())
	slog.Info("project deleted", "id", project.ID, "slug", project.Slug)

	// HTMX swaps the row out with the empty response.
	if render.IsHTMX(r) {
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// ProjectToggle flips a project's public visibility. For HTMX requests it
// responds with the refreshed row fragment; otherwise it redirects back.
func (a *Admin) ProjectToggle(w http.ResponseWriter, r *http.Request) {
	project := a.projectFromURL(w, r)
	if project == nil {
		return
	}

	visible, err := a.projectStore.ToggleVisibility(project.ID)
	if err != nil {
		slog.Error("toggle project visibility failed", "error", err, "id", project.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	project.IsVisible = visible

	a.pageCache.InvalidateAll(r.Context())

	if render.IsHTMX(r) {
		a.renderer.Fragment(w, "dashboard", "project_row", project)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// projectFromURL loads the project named by the {id} URL parameter,
// writing the error response and returning nil when that fails.
func (a *Admin) projectFromURL(w http.ResponseWriter, r *http.Request) *models.Project {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil
	}

	project, err := a.projectStore.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	if project == nil {
		http.NotFound(w, r)
		return nil
	}
	return project
}

// projectFromForm fills a project from the posted editor form. The base
// carries over fields the form does not own (ID, timestamps, stats written
// by the refresh endpoint). Returns a non-empty error message when
// validation fails; the returned project then holds the submitted values
// so the form can redisplay them.
func (a *Admin) projectFromForm(r *http.Request, base *models.Project) (*models.Project, string) {
	if err := r.ParseForm(); err != nil {
		return base, "Vormi lugemine ebaõnnestus."
	}

	p := *base
	p.Title = strings.TrimSpace(r.FormValue("title"))
	p.Slug = strings.TrimSpace(r.FormValue("slug"))
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}

	setOptional(&p.Description, r.FormValue("description"))
	setOptional(&p.ThumbnailURL, r.FormValue("thumbnail_url"))
	setOptional(&p.YouTubeURL, r.FormValue("youtube_url"))
	setOptional(&p.TikTokURL, r.FormValue("tiktok_url"))
	setOptional(&p.InstagramURL, r.FormValue("instagram_url"))
	setOptional(&p.StatViews, r.FormValue("stat_views"))
	setOptional(&p.StatLikes, r.FormValue("stat_likes"))
	setOptional(&p.StatComments, r.FormValue("stat_comments"))
	setOptional(&p.StatShares, r.FormValue("stat_shares"))
	setOptional(&p.Client.Name, r.FormValue("client_name"))
	setOptional(&p.Client.Role, r.FormValue("client_role"))
	setOptional(&p.Client.AvatarURL, r.FormValue("client_avatar_url"))
	setOptional(&p.Client.Quote, r.FormValue("client_quote"))
	setOptional(&p.Client.Headline, r.FormValue("client_headline"))

	if stars := formIndex(r.Form, "client_stars"); stars >= 1 && stars <= 5 {
		p.Client.Stars = stars
	}

	p.IsVisible = r.FormValue("is_visible") == "on"
	p.ShowYouTubeStats = r.FormValue("show_youtube_stats") == "on"
	setOptional(&p.YouTubeVideoID, r.FormValue("youtube_video_id"))

	// When live stats are on but no video ID was typed in, derive it from
	// the legacy YouTube URL so the refresh endpoint has something to use.
	if p.ShowYouTubeStats && p.YouTubeVideoID == nil && p.YouTubeURL != nil {
		if id := youtube.ExtractVideoID(*p.YouTubeURL); id != "" {
			p.YouTubeVideoID = &id
		}
	}

	if v := strings.TrimSpace(r.FormValue("collaboration_completed_at")); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			p.CollaborationCompletedAt = &t
		}
	} else {
		p.CollaborationCompletedAt = nil
	}

	p.MediaGallery = splitLines(r.FormValue("media_gallery"))
	p.Content = parseBlocksForm(r.Form)
	p.Links = parseLinksForm(r.Form)

	if errMsg := validateProject(p.Title, p.Slug); errMsg != "" {
		return &p, errMsg
	}
	if errMsg := validateProjectOptional(r.FormValue("description"), r.FormValue("client_quote")); errMsg != "" {
		return &p, errMsg
	}

	taken, err := a.projectStore.SlugExists(p.Slug, p.ID)
	if err != nil {
		slog.Error("check slug failed", "error", err)
	} else if taken {
		return &p, "See slug on juba kasutusel."
	}

	return &p, ""
}

// setOptional assigns a trimmed form value to an optional field, clearing
// it when the input is empty.
func setOptional(dst **string, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		*dst = nil
		return
	}
	*dst = &value
}
