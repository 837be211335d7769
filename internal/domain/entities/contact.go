package entities

import (
	"errors"
	"time"

	"github.com/rafabene/contactpro-backend/internal/domain/valueobjects"
)

// Contact representa um contato profissional pertencente a um usuário.
// O par (UserID, Email) é único entre registros vivos.
type Contact struct {
	ID        string
	UserID    string
	FirstName string
	LastName  string
	Email     valueobjects.Email
	Phone     *string
	Company   *string
	JobTitle  *string
	Notes     *string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// FullName retorna o nome completo do contato
func (c *Contact) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// IsDeleted verifica se o contato foi deletado (soft delete)
func (c *Contact) IsDeleted() bool {
	return c.DeletedAt != nil
}

// SoftDelete marca o contato como deletado
func (c *Contact) SoftDelete() {
	now := time.Now()
	c.DeletedAt = &now
}

// Validate valida regras de negócio da entidade Contact
func (c *Contact) Validate() error {
	if c.UserID == "" {
		return errors.New("owner is required")
	}

	if c.FirstName == "" {
		return errors.New("first name is required")
	}

	if len(c.FirstName) > 100 || len(c.LastName) > 100 {
		return errors.New("name must be at most 100 characters")
	}

	if c.Email.String() == "" {
		return errors.New("email is required")
	}

	if len(c.Tags) > 20 {
		return errors.New("at most 20 tags are allowed")
	}

	return nil
}
