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

// TemplateRepository implementa repositories.TemplateRepository
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository cria um novo TemplateRepository
func NewTemplateRepository(db *gorm.DB) repositories.TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, template *entities.EmailTemplate) error {
	model := r.toModel(template)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	template.ID = model.ID
	template.CreatedAt = time.Unix(model.CreatedAt, 0)
	template.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, userID, id string) (*entities.EmailTemplate, error) {
	var model EmailTemplateModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TemplateRepository) List(ctx context.Context, userID string, page, pageSize int) ([]*entities.EmailTemplate, error) {
	var models []*EmailTemplateModel

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
	err := db.Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	templates := make([]*entities.EmailTemplate, 0, len(models))
	for _, model := range models {
		templates = append(templates, r.toEntity(model))
	}
	return templates, nil
}

func (r *TemplateRepository) Delete(ctx context.Context, userID, id string) error {
	db := dbFromContext(ctx, r.db)
	now := time.Now().Unix()
	return db.Model(&EmailTemplateModel{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		Update("deleted_at", now).Error
}

// Conversores
func (r *TemplateRepository) toModel(template *entities.EmailTemplate) *EmailTemplateModel {
	var deletedAt *int64
	if template.DeletedAt != nil {
		ts := template.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &EmailTemplateModel{
		ID:        template.ID,
		UserID:    template.UserID,
		ContactID: template.ContactID,
		Purpose:   template.Purpose,
		Tone:      string(template.Tone),
		Subject:   template.Subject,
		Body:      template.Body,
		CreatedAt: unixOrZero(template.CreatedAt),
		UpdatedAt: unixOrZero(template.UpdatedAt),
		DeletedAt: deletedAt,
	}
}

func (r *TemplateRepository) toEntity(model *EmailTemplateModel) *entities.EmailTemplate {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.EmailTemplate{
		ID:        model.ID,
		UserID:    model.UserID,
		ContactID: model.ContactID,
		Purpose:   model.Purpose,
		Tone:      entities.Tone(model.Tone),
		Subject:   model.Subject,
		Body:      model.Body,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
		DeletedAt: deletedAt,
	}
}
