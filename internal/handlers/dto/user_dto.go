package dto

import (
	"time"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
)

// UpdateProfileRequest representa a requisição para atualizar o perfil.
// Campos ausentes são mantidos como estão.
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=200"`
	Title     *string `json:"title" binding:"omitempty,max=200"`
	Company   *string `json:"company" binding:"omitempty,max=200"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// ProfileResponse representa a resposta do perfil do usuário
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Title     *string   `json:"title,omitempty"`
	Company   *string   `json:"company,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProfileResponse converte uma entidade User para ProfileResponse
func ToProfileResponse(user *entities.User) ProfileResponse {
	return ProfileResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		Title:     user.Title,
		Company:   user.Company,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
