// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"sisumaja/internal/mailer"
	"sisumaja/internal/models"
	"sisumaja/internal/store"
)

// Contact handles the public contact-form endpoint. The database insert is
// a best-effort backup; email dispatch carries the message to the inbox.
type Contact struct {
	contactStore *store.ContactStore
	mailer       *mailer.Mailer // nil when SMTP is not configured
}

// NewContact creates a new Contact handler group.
func NewContact(contactStore *store.ContactStore, m *mailer.Mailer) *Contact {
	return &Contact{contactStore: contactStore, mailer: m}
}

// Submit accepts a form-encoded POST with name, email, optional phone, and
// message. Responses are JSON with stable error codes the frontend keys on:
// missing_fields (400) and email_failed (500).
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "missing_fields",
			"message": "Palun täida vähemalt nimi, e-mail ja sõnum.",
		})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	message := strings.TrimSpace(r.FormValue("message"))

	if name == "" || email == "" || message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "missing_fields",
			"message": "Palun täida vähemalt nimi, e-mail ja sõnum.",
		})
		return
	}

	msg := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if phone != "" {
		msg.Phone = &phone
	}

	// Save as a backup. A failed insert is logged but does not abort the
	// request, the email still carries the message.
	if _, err := c.contactStore.Insert(msg); err != nil {
		slog.Error("contact message insert failed", "error", err)
	}

	if c.mailer == nil {
		slog.Warn("SMTP not configured, contact email skipped",
			"name", name, "email", email)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	if err := c.mailer.SendContactNotification(r.Context(), msg); err != nil {
		slog.Error("contact email send failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "email_failed",
			"message": "Sõnumi saatmine ebaõnnestus.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// writeJSON serializes v to the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}
