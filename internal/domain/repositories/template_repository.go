package repositories

import (
	"context"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
)

// TemplateRepository define a interface para persistência de
// templates de email salvos pelo usuário
type TemplateRepository interface {
	Create(ctx context.Context, template *entities.EmailTemplate) error
	FindByID(ctx context.Context, userID, id string) (*entities.EmailTemplate, error)
	List(ctx context.Context, userID string, page, pageSize int) ([]*entities.EmailTemplate, error)
	Delete(ctx context.Context, userID, id string) error
}
