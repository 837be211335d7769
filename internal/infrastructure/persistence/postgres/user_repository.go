package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
	"github.com/rafabene/contactpro-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// Upsert insere ou atualiza o usuário chaveado por supabase_id.
// Operação de linha única: é o que o guard de autenticação executa a
// cada primeira requisição de uma sessão.
func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "supabase_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return err
	}

	// O Create com OnConflict não devolve a linha existente; recarregar
	// para expor ID e campos de perfil já persistidos.
	persisted, err := r.FindBySupabaseID(ctx, user.SupabaseID)
	if err != nil {
		return err
	}
	if persisted != nil {
		*user = *persisted
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindBySupabaseID(ctx context.Context, supabaseID string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("supabase_id = ? AND deleted_at IS NULL", supabaseID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &UserModel{
		ID:         user.ID,
		SupabaseID: user.SupabaseID,
		Email:      user.Email.String(),
		Name:       user.Name,
		Title:      user.Title,
		Company:    user.Company,
		AvatarURL:  user.AvatarURL,
		CreatedAt:  unixOrZero(user.CreatedAt),
		UpdatedAt:  unixOrZero(user.UpdatedAt),
		DeletedAt:  deletedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.User{
		ID:         model.ID,
		SupabaseID: model.SupabaseID,
		Email:      email,
		Name:       model.Name,
		Title:      model.Title,
		Company:    model.Company,
		AvatarURL:  model.AvatarURL,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
		DeletedAt:  deletedAt,
	}, nil
}
