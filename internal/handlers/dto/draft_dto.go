package dto

import (
	"time"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/ports"
)

// GenerateTemplateRequest representa o pedido de geração de template
type GenerateTemplateRequest struct {
	ContactID *string `json:"contact_id" binding:"omitempty,uuid"`
	Purpose   string  `json:"purpose" binding:"required,min=3,max=500"`
	Tone      string  `json:"tone" binding:"required,oneof=formal friendly concise persuasive"`
}

// PolishDraftRequest representa o pedido de polimento de um rascunho
type PolishDraftRequest struct {
	Subject string `json:"subject" binding:"required,max=500"`
	Body    string `json:"body" binding:"required,max=50000"`
	Tone    string `json:"tone" binding:"required,oneof=formal friendly concise persuasive"`
}

// DraftResponse representa um rascunho não persistido
type DraftResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ToDraftResponse converte um rascunho do drafter
func ToDraftResponse(draft *ports.Draft) DraftResponse {
	return DraftResponse{
		Subject: draft.Subject,
		Body:    draft.Body,
	}
}

// TemplateResponse representa um template de email salvo
type TemplateResponse struct {
	ID        string    `json:"id"`
	ContactID *string   `json:"contact_id,omitempty"`
	Purpose   string    `json:"purpose"`
	Tone      string    `json:"tone"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTemplateResponse converte uma entidade EmailTemplate
func ToTemplateResponse(template *entities.EmailTemplate) TemplateResponse {
	return TemplateResponse{
		ID:        template.ID,
		ContactID: template.ContactID,
		Purpose:   template.Purpose,
		Tone:      string(template.Tone),
		Subject:   template.Subject,
		Body:      template.Body,
		CreatedAt: template.CreatedAt,
	}
}

// ToTemplateResponses converte uma lista de templates
func ToTemplateResponses(templates []*entities.EmailTemplate) []TemplateResponse {
	responses := make([]TemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = ToTemplateResponse(template)
	}
	return responses
}
