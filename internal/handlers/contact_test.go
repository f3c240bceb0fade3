// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postContactForm(t *testing.T, c *Contact, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	c.Submit(rec, req)
	return rec
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

// Missing-field validation runs before any store or mailer access, so these
// cases need no database.
func TestContactSubmit_MissingFields(t *testing.T) {
	c := NewContact(nil, nil)

	tests := []struct {
		name string
		form url.Values
	}{
		{"empty form", url.Values{}},
		{"missing name", url.Values{"email": {"a@b.ee"}, "message": {"Tere"}}},
		{"missing email", url.Values{"name": {"Mari"}, "message": {"Tere"}}},
		{"missing message", url.Values{"name": {"Mari"}, "email": {"a@b.ee"}}},
		{"whitespace only", url.Values{"name": {"  "}, "email": {" "}, "message": {"\t"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postContactForm(t, c, tt.form)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want %d", rec.Code, http.StatusBadRequest)
			}
			body := decodeJSONBody(t, rec)
			if body["error"] != "missing_fields" {
				t.Errorf("error code: got %v, want missing_fields", body["error"])
			}
		})
	}
}

func TestContactSubmit_ValidWithoutSMTP_Succeeds(t *testing.T) {
	env := newTestEnv(t)

	// No mailer configured: the message is stored and the request still
	// reports success.
	c := NewContact(env.ContactStore, nil)

	form := url.Values{}
	form.Set("name", "Mari Maasikas")
	form.Set("email", "mari@example.ee")
	form.Set("phone", "+372 5555 5555")
	form.Set("message", "Soovin pakkumist sotsiaalmeedia kampaaniale.")

	rec := postContactForm(t, c, form)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := decodeJSONBody(t, rec)
	if body["success"] != true {
		t.Errorf("success: got %v, want true", body["success"])
	}

	// The backup row must exist.
	var count int
	err := env.DB.QueryRow(
		"SELECT COUNT(*) FROM contact_messages WHERE email = $1", "mari@example.ee",
	).Scan(&count)
	if err != nil {
		t.Fatalf("count messages: %v", err)
	}
	if count == 0 {
		t.Error("contact message was not stored")
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM contact_messages WHERE email = $1", "mari@example.ee")
	})
}
