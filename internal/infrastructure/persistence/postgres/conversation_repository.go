package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
)

// ConversationRepository implementa repositories.ConversationRepository
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository cria um novo ConversationRepository
func NewConversationRepository(db *gorm.DB) repositories.ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) Create(ctx context.Context, conversation *entities.Conversation) error {
	model := r.toModel(conversation)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	conversation.ID = model.ID
	conversation.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *ConversationRepository) ListByContact(ctx context.Context, userID, contactID string, page, pageSize int) ([]*entities.Conversation, error) {
	var models []*ConversationModel

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	db := dbFromContext(ctx, r.db)
	err := db.Where("user_id = ? AND contact_id = ? AND deleted_at IS NULL", userID, contactID).
		Order("sent_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	conversations := make([]*entities.Conversation, 0, len(models))
	for _, model := range models {
		conversations = append(conversations, r.toEntity(model))
	}
	return conversations, nil
}

func (r *ConversationRepository) DeleteByContact(ctx context.Context, userID, contactID string) error {
	db := dbFromContext(ctx, r.db)
	now := time.Now().Unix()
	return db.Model(&ConversationModel{}).
		Where("user_id = ? AND contact_id = ? AND deleted_at IS NULL", userID, contactID).
		Update("deleted_at", now).Error
}

// Conversores
func (r *ConversationRepository) toModel(conversation *entities.Conversation) *ConversationModel {
	var deletedAt *int64
	if conversation.DeletedAt != nil {
		ts := conversation.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &ConversationModel{
		ID:        conversation.ID,
		UserID:    conversation.UserID,
		ContactID: conversation.ContactID,
		Subject:   conversation.Subject,
		Body:      conversation.Body,
		SentAt:    conversation.SentAt.Unix(),
		CreatedAt: unixOrZero(conversation.CreatedAt),
		DeletedAt: deletedAt,
	}
}

func (r *ConversationRepository) toEntity(model *ConversationModel) *entities.Conversation {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.Conversation{
		ID:        model.ID,
		UserID:    model.UserID,
		ContactID: model.ContactID,
		Subject:   model.Subject,
		Body:      model.Body,
		SentAt:    time.Unix(model.SentAt, 0),
		CreatedAt: time.Unix(model.CreatedAt, 0),
		DeletedAt: deletedAt,
	}
}
