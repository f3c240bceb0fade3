// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"sisumaja/internal/models"
)

// ContactStore persists inbound contact-form submissions. The application
// only ever writes this table; reading is left to whoever owns the inbox.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore with the given database connection.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Insert records a contact message and returns it with the generated ID.
func (s *ContactStore) Insert(m *models.ContactMessage) (*models.ContactMessage, error) {
	result := &models.ContactMessage{}
	err := s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, message, created_at
	`, m.Name, m.Email, m.Phone, m.Message).Scan(
		&result.ID, &result.Name, &result.Email, &result.Phone,
		&result.Message, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return result, nil
}
