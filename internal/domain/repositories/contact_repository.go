package repositories

import (
	"context"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
)

// ContactFilters contém filtros para listagem de contatos
type ContactFilters struct {
	Search   string // Busca livre sobre nome, email e empresa
	Page     int    // Página (começa em 1)
	PageSize int    // Itens por página (default: 20, max: 100)
}

// ContactRepository define a interface para persistência de contatos.
// Todas as operações são escopadas pelo dono (userID): um ID de outro
// usuário se comporta como inexistente.
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) error
	FindByID(ctx context.Context, userID, id string) (*entities.Contact, error)
	FindByEmail(ctx context.Context, userID, email string) (*entities.Contact, error)
	Update(ctx context.Context, contact *entities.Contact) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string, filters ContactFilters) ([]*entities.Contact, int64, error)
}
