package repositories

import (
	"context"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
)

// ConversationRepository define a interface para o histórico de
// correspondência por contato
type ConversationRepository interface {
	Create(ctx context.Context, conversation *entities.Conversation) error
	// ListByContact retorna as conversas de um contato, mais recentes primeiro
	ListByContact(ctx context.Context, userID, contactID string, page, pageSize int) ([]*entities.Conversation, error)
	// DeleteByContact soft-deleta todas as conversas de um contato
	// (cascata quando o contato é removido)
	DeleteByContact(ctx context.Context, userID, contactID string) error
}
