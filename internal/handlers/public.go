// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sisumaja/internal/cache"
	"sisumaja/internal/content"
	"sisumaja/internal/render"
	"sisumaja/internal/store"
)

// Public groups handlers for the public-facing site. It checks the Valkey
// page cache before querying the database, and stores rendered results
// on miss.
type Public struct {
	projectStore *store.ProjectStore
	renderer     *render.Renderer
	pageCache    *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(projectStore *store.ProjectStore, renderer *render.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{
		projectStore: projectStore,
		renderer:     renderer,
		pageCache:    pageCache,
	}
}

// Home renders the homepage: hero section plus the most recent visible
// projects.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.HomeKey()); ok {
		writeHTML(w, cached)
		return
	}

	projects, err := p.projectStore.ListVisible()
	if err != nil {
		slog.Error("list visible projects failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if len(projects) > 3 {
		projects = projects[:3]
	}

	html, err := p.renderer.PublicHTML("home", &render.PublicData{
		Title: "Sisumaja",
		Data:  map[string]any{"Projects": projects},
	})
	if err != nil {
		slog.Error("render home failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.HomeKey(), html)
	writeHTML(w, html)
}

// WorkList renders the public project listing at /tehtud-tood.
func (p *Public) WorkList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.WorkListKey()); ok {
		writeHTML(w, cached)
		return
	}

	projects, err := p.projectStore.ListVisible()
	if err != nil {
		slog.Error("list visible projects failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := p.renderer.PublicHTML("work_list", &render.PublicData{
		Title: "Tehtud tööd",
		Data:  map[string]any{"Projects": projects},
	})
	if err != nil {
		slog.Error("render work list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.WorkListKey(), html)
	writeHTML(w, html)
}

// WorkDetail renders a project detail page at /tehtud-tood/{slug}. The
// content blocks and links shown are resolved through the legacy-fallback
// rules, so old records without explicit blocks still render.
func (p *Public) WorkDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.pageCache.Get(ctx, cache.ProjectKey(slugParam)); ok {
		writeHTML(w, cached)
		return
	}

	project, err := p.projectStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find project by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if project == nil || !project.IsVisible {
		http.NotFound(w, r)
		return
	}

	related, err := p.projectStore.Related(project.ID, 3)
	if err != nil {
		slog.Error("list related projects failed", "error", err, "slug", slugParam)
		related = nil
	}

	html, err := p.renderer.PublicHTML("work_detail", &render.PublicData{
		Title: project.Title,
		Data: map[string]any{
			"Project": project,
			"Blocks":  content.ResolveBlocks(project),
			"Links":   content.ResolveLinks(project),
			"Related": related,
		},
	})
	if err != nil {
		slog.Error("render work detail failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.ProjectKey(slugParam), html)
	writeHTML(w, html)
}

// Kontakt renders the contact page with the form posting to /api/contact.
func (p *Public) Kontakt(w http.ResponseWriter, r *http.Request) {
	p.staticPage(w, r, "kontakt", "Kontakt")
}

// Privacy renders the privacy policy page.
func (p *Public) Privacy(w http.ResponseWriter, r *http.Request) {
	p.staticPage(w, r, "privaatsuspoliitika", "Privaatsuspoliitika")
}

// Terms renders the terms of service page.
func (p *Public) Terms(w http.ResponseWriter, r *http.Request) {
	p.staticPage(w, r, "kasutustingimused", "Kasutustingimused")
}

// Cookies renders the cookie policy page.
func (p *Public) Cookies(w http.ResponseWriter, r *http.Request) {
	p.staticPage(w, r, "kupsiste-poliitika", "Küpsiste poliitika")
}

// staticPage renders a template that needs no database data, caching the
// result under the template name.
func (p *Public) staticPage(w http.ResponseWriter, r *http.Request, name, title string) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, name); ok {
		writeHTML(w, cached)
		return
	}

	html, err := p.renderer.PublicHTML(name, &render.PublicData{Title: title})
	if err != nil {
		slog.Error("render static page failed", "error", err, "page", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, name, html)
	writeHTML(w, html)
}

func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
