package store

import (
	"testing"

	"github.com/google/uuid"

	"sisumaja/internal/models"
)

func TestContactStoreInsert(t *testing.T) {
	db := testDB(t)
	s := NewContactStore(db)

	email := "test-contact-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanContactMessages(t, db, email) })

	msg := &models.ContactMessage{
		Name:    "Mari Maasikas",
		Email:   email,
		Phone:   strPtr("+372 5555 5555"),
		Message: "Tere! Sooviksin koostööd.",
	}

	inserted, err := s.Insert(msg)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if inserted.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if inserted.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if inserted.Phone == nil || *inserted.Phone != "+372 5555 5555" {
		t.Errorf("phone not persisted: %v", inserted.Phone)
	}
}

func TestContactStoreInsertWithoutPhone(t *testing.T) {
	db := testDB(t)
	s := NewContactStore(db)

	email := "test-contact-nophone-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanContactMessages(t, db, email) })

	inserted, err := s.Insert(&models.ContactMessage{
		Name:    "Jaan Tamm",
		Email:   email,
		Message: "Ilma telefonita.",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if inserted.Phone != nil {
		t.Errorf("expected nil phone, got %v", inserted.Phone)
	}
}
