package dto

import (
	"time"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/services"
)

// ContactRequest representa a requisição para criar/atualizar um contato
type ContactRequest struct {
	FirstName string   `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string   `json:"last_name" binding:"omitempty,max=100"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     *string  `json:"phone" binding:"omitempty,max=50"`
	Company   *string  `json:"company" binding:"omitempty,max=200"`
	JobTitle  *string  `json:"job_title" binding:"omitempty,max=200"`
	Notes     *string  `json:"notes" binding:"omitempty,max=10000"`
	Tags      []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=50"`
}

// ToInput converte a requisição para o input do serviço
func (r *ContactRequest) ToInput() services.ContactInput {
	return services.ContactInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		JobTitle:  r.JobTitle,
		Notes:     r.Notes,
		Tags:      r.Tags,
	}
}

// ContactResponse representa a resposta de um contato
type ContactResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	JobTitle  *string   `json:"job_title,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactListResponse representa a resposta paginada da listagem
type ContactListResponse struct {
	Items    []ContactResponse `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int64             `json:"total"`
}

// ToContactResponse converte uma entidade Contact para ContactResponse
func ToContactResponse(contact *entities.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email.String(),
		Phone:     contact.Phone,
		Company:   contact.Company,
		JobTitle:  contact.JobTitle,
		Notes:     contact.Notes,
		Tags:      contact.Tags,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

// ToContactResponses converte uma lista de contatos
func ToContactResponses(contacts []*entities.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = ToContactResponse(contact)
	}
	return responses
}
