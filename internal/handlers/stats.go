// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"sisumaja/internal/store"
	"sisumaja/internal/youtube"
)

// Stats handles the stat-refresh endpoint the detail page polls while live
// stats are enabled for a project.
type Stats struct {
	projectStore *store.ProjectStore
	youtube      *youtube.Client
}

// NewStats creates a new Stats handler group.
func NewStats(projectStore *store.ProjectStore, yt *youtube.Client) *Stats {
	return &Stats{projectStore: projectStore, youtube: yt}
}

type updateStatsRequest struct {
	ProjectID string `json:"projectId"`
}

// Update refreshes a project's view/like/comment counts from the YouTube
// Data API and persists them. Projects with live stats disabled or no video
// ID get a "skipped" response so the frontend stops polling quietly.
func (s *Stats) Update(w http.ResponseWriter, r *http.Request) {
	var req updateStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Project ID is required"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Project ID is required"})
		return
	}

	project, err := s.projectStore.FindByID(projectID)
	if err != nil {
		slog.Error("find project for stats failed", "error", err, "project_id", projectID)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}
	if project == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Project not found"})
		return
	}

	if !project.ShowYouTubeStats || project.YouTubeVideoID == nil || *project.YouTubeVideoID == "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Auto-update disabled",
			"skipped": true,
		})
		return
	}

	fetched, err := s.youtube.FetchStats(r.Context(), *project.YouTubeVideoID)
	switch {
	case errors.Is(err, youtube.ErrNoAPIKey):
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "YouTube API Key missing on server"})
		return
	case errors.Is(err, youtube.ErrVideoNotFound):
		slog.Error("youtube video not found", "video_id", *project.YouTubeVideoID)
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Video not found on YouTube"})
		return
	case err != nil:
		slog.Error("youtube stats fetch failed", "error", err, "video_id", *project.YouTubeVideoID)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}

	if err := s.projectStore.UpdateStats(projectID, fetched.ViewCount, fetched.LikeCount, fetched.CommentCount); err != nil {
		slog.Error("persist fetched stats failed", "error", err, "project_id", projectID)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to update database"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]string{
			"stat_views":    fetched.ViewCount,
			"stat_likes":    fetched.LikeCount,
			"stat_comments": fetched.CommentCount,
		},
	})
}
