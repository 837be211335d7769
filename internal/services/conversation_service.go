package services

import (
	"context"
	"time"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
)

// ConversationService contém a lógica do histórico de correspondência
type ConversationService struct {
	conversationRepo repositories.ConversationRepository
	contactRepo      repositories.ContactRepository
	logger           ports.Logger
}

// NewConversationService cria um novo ConversationService
func NewConversationService(
	conversationRepo repositories.ConversationRepository,
	contactRepo repositories.ContactRepository,
	logger ports.Logger,
) *ConversationService {
	return &ConversationService{
		conversationRepo: conversationRepo,
		contactRepo:      contactRepo,
		logger:           logger,
	}
}

// RecordConversation registra um email enviado contra um contato do
// usuário. SentAt vazio assume o momento atual.
func (s *ConversationService) RecordConversation(ctx context.Context, userID, contactID, subject, body string, sentAt time.Time) (*entities.Conversation, error) {
	contact, err := s.contactRepo.FindByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, errors.ErrContactNotFound
	}

	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	conversation := &entities.Conversation{
		UserID:    userID,
		ContactID: contactID,
		Subject:   subject,
		Body:      body,
		SentAt:    sentAt,
	}

	if err := conversation.Validate(); err != nil {
		return nil, err
	}

	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

// ListConversations lista as conversas de um contato, mais recentes
// primeiro
func (s *ConversationService) ListConversations(ctx context.Context, userID, contactID string, page, pageSize int) ([]*entities.Conversation, error) {
	contact, err := s.contactRepo.FindByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, errors.ErrContactNotFound
	}

	return s.conversationRepo.ListByContact(ctx, userID, contactID, page, pageSize)
}
