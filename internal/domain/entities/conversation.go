package entities

import (
	"errors"
	"time"
)

// Conversation registra uma correspondência enviada para um contato.
// O histórico é apenas-escrita: registros nunca são editados, e são
// soft-deletados em cascata quando o contato é removido.
type Conversation struct {
	ID        string
	UserID    string
	ContactID string
	Subject   string
	Body      string
	SentAt    time.Time
	CreatedAt time.Time
	DeletedAt *time.Time // Soft delete (cascata do contato)
}

// Validate valida regras de negócio da entidade Conversation
func (c *Conversation) Validate() error {
	if c.UserID == "" {
		return errors.New("owner is required")
	}

	if c.ContactID == "" {
		return errors.New("contact is required")
	}

	if c.Subject == "" {
		return errors.New("subject is required")
	}

	if c.SentAt.IsZero() {
		return errors.New("sent_at is required")
	}

	return nil
}
