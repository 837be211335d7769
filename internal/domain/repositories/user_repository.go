package repositories

import (
	"context"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	// Upsert insere ou atualiza o usuário chaveado por SupabaseID
	Upsert(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindBySupabaseID(ctx context.Context, supabaseID string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}
