package dto

import (
	"time"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
)

// RecordConversationRequest registra um email enviado a um contato
type RecordConversationRequest struct {
	Subject string     `json:"subject" binding:"required,max=500"`
	Body    string     `json:"body" binding:"omitempty,max=100000"`
	SentAt  *time.Time `json:"sent_at" binding:"omitempty"`
}

// ConversationResponse representa uma entrada do histórico
type ConversationResponse struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// ToConversationResponse converte uma entidade Conversation
func ToConversationResponse(conversation *entities.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        conversation.ID,
		ContactID: conversation.ContactID,
		Subject:   conversation.Subject,
		Body:      conversation.Body,
		SentAt:    conversation.SentAt,
	}
}

// ToConversationResponses converte uma lista de conversas
func ToConversationResponses(conversations []*entities.Conversation) []ConversationResponse {
	responses := make([]ConversationResponse, len(conversations))
	for i, conversation := range conversations {
		responses[i] = ToConversationResponse(conversation)
	}
	return responses
}
