// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer sends contact-form notification emails over SMTP.
// Mail is a best-effort feature: when SMTP is not configured the mailer is
// nil and callers skip sending with a warning instead of failing requests.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/wneessen/go-mail"

	"sisumaja/internal/models"
)

// Mailer wraps an SMTP client with the fixed from/to addresses used for
// contact notifications.
type Mailer struct {
	client *mail.Client
	from   string
	to     string
}

// New creates a Mailer from SMTP settings. Returns (nil, nil) when host or
// from are empty so the app can run without outbound mail.
func New(host, port, user, pass, from, to string) (*Mailer, error) {
	if host == "" || from == "" {
		return nil, nil
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("smtp port %q: %w", port, err)
	}

	opts := []mail.Option{
		mail.WithPort(portNum),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(pass),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	if to == "" {
		to = from
	}

	slog.Info("mailer configured", "host", host, "from", from)
	return &Mailer{client: client, from: from, to: to}, nil
}

// SendContactNotification emails an inbound contact message to the site
// owner's inbox. Reply-To is set to the sender so replies go to them.
func (m *Mailer) SendContactNotification(ctx context.Context, msg *models.ContactMessage) error {
	mm := mail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := mm.To(m.to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	if err := mm.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("mail reply-to: %w", err)
	}

	mm.Subject("Uus kontaktivorm: " + msg.Name)

	phone := "-"
	if msg.Phone != nil && *msg.Phone != "" {
		phone = *msg.Phone
	}
	body := fmt.Sprintf("Nimi: %s\nE-post: %s\nTelefon: %s\n\nSõnum:\n%s\n",
		msg.Name, msg.Email, phone, msg.Message)
	mm.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}
