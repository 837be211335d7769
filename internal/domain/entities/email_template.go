package entities

import (
	"errors"
	"time"
)

// Tone representa o tom solicitado para um rascunho de email
type Tone string

const (
	ToneFormal     Tone = "formal"
	ToneFriendly   Tone = "friendly"
	ToneConcise    Tone = "concise"
	TonePersuasive Tone = "persuasive"
)

// IsValid verifica se o tom é um dos tons suportados
func (t Tone) IsValid() bool {
	switch t {
	case ToneFormal, ToneFriendly, ToneConcise, TonePersuasive:
		return true
	}
	return false
}

// EmailTemplate representa um rascunho de email gerado pelo serviço de
// completion e salvo pelo usuário. ContactID é opcional: templates
// podem ser genéricos ou amarrados a um contato específico.
type EmailTemplate struct {
	ID        string
	UserID    string
	ContactID *string
	Purpose   string
	Tone      Tone
	Subject   string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// Validate valida regras de negócio da entidade EmailTemplate
func (t *EmailTemplate) Validate() error {
	if t.UserID == "" {
		return errors.New("owner is required")
	}

	if t.Subject == "" {
		return errors.New("subject is required")
	}

	if t.Body == "" {
		return errors.New("body is required")
	}

	if !t.Tone.IsValid() {
		return errors.New("invalid tone")
	}

	return nil
}
