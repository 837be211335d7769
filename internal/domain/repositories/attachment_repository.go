package repositories

import (
	"context"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
)

// AttachmentRepository define a interface para os registros de anexos
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entities.Attachment) error
	FindByKey(ctx context.Context, userID, key string) (*entities.Attachment, error)
	DeleteByKey(ctx context.Context, userID, key string) error
}
