package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
)

// AttachmentRepository implementa repositories.AttachmentRepository
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository cria um novo AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) repositories.AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, attachment *entities.Attachment) error {
	model := r.toModel(attachment)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	attachment.ID = model.ID
	attachment.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *AttachmentRepository) FindByKey(ctx context.Context, userID, key string) (*entities.Attachment, error) {
	var model AttachmentModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("user_id = ? AND key = ?", userID, key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *AttachmentRepository) DeleteByKey(ctx context.Context, userID, key string) error {
	db := dbFromContext(ctx, r.db)
	// Registros de anexo são removidos de fato: o objeto no storage
	// já foi deletado quando chegamos aqui
	return db.Where("user_id = ? AND key = ?", userID, key).Delete(&AttachmentModel{}).Error
}

// Conversores
func (r *AttachmentRepository) toModel(attachment *entities.Attachment) *AttachmentModel {
	return &AttachmentModel{
		ID:          attachment.ID,
		UserID:      attachment.UserID,
		Key:         attachment.Key,
		Filename:    attachment.Filename,
		ContentType: attachment.ContentType,
		Size:        attachment.Size,
		CreatedAt:   unixOrZero(attachment.CreatedAt),
	}
}

func (r *AttachmentRepository) toEntity(model *AttachmentModel) *entities.Attachment {
	return &entities.Attachment{
		ID:          model.ID,
		UserID:      model.UserID,
		Key:         model.Key,
		Filename:    model.Filename,
		ContentType: model.ContentType,
		Size:        model.Size,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
	}
}
