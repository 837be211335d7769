package entities

import (
	"errors"
	"time"

	"github.com/rafabene/contactpro-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário autenticado via provedor externo.
// A identidade vem do token JWT emitido pelo Supabase; o campo
// SupabaseID guarda o subject do token e é único no banco.
type User struct {
	ID         string
	SupabaseID string
	Email      valueobjects.Email
	Name       string
	Title      *string
	Company    *string
	AvatarURL  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft delete
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.SupabaseID == "" {
		return errors.New("supabase id is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if len(u.Name) > 200 {
		return errors.New("name must be at most 200 characters")
	}

	return nil
}
