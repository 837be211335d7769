package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
	"github.com/rafabene/contactpro-backend/internal/domain/valueobjects"
)

// ContactRepository implementa repositories.ContactRepository
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository cria um novo ContactRepository
func NewContactRepository(db *gorm.DB) repositories.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	model, err := r.toModel(contact)
	if err != nil {
		return err
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	contact.ID = model.ID
	contact.CreatedAt = time.Unix(model.CreatedAt, 0)
	contact.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, userID, id string) (*entities.Contact, error) {
	var model ContactModel

	db := dbFromContext(ctx, r.db)
	// Escopo do dono + soft delete
	if err := db.Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *ContactRepository) FindByEmail(ctx context.Context, userID, email string) (*entities.Contact, error) {
	var model ContactModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("user_id = ? AND email = ? AND deleted_at IS NULL", userID, email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *ContactRepository) Update(ctx context.Context, contact *entities.Contact) error {
	model, err := r.toModel(contact)
	if err != nil {
		return err
	}

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *ContactRepository) Delete(ctx context.Context, userID, id string) error {
	db := dbFromContext(ctx, r.db)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&ContactModel{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
		Update("deleted_at", now).Error
}

func (r *ContactRepository) List(ctx context.Context, userID string, filters repositories.ContactFilters) ([]*entities.Contact, int64, error) {
	var models []*ContactModel
	var total int64

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ContactModel{}).
		Where("user_id = ? AND deleted_at IS NULL", userID)

	// Busca livre sobre nome, email e empresa. O texto do usuário é
	// tratado como literal: % e _ não viram curingas.
	if filters.Search != "" {
		pattern := "%" + escapeLike(filters.Search) + "%"
		query = query.Where(
			"first_name LIKE ? ESCAPE '\\' OR last_name LIKE ? ESCAPE '\\' OR email LIKE ? ESCAPE '\\' OR company LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Order("created_at DESC").Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	contacts, err := r.toEntities(models)
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// escapeLike escapa os metacaracteres de LIKE no texto de busca
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Conversores
func (r *ContactRepository) toModel(contact *entities.Contact) (*ContactModel, error) {
	var deletedAt *int64
	if contact.DeletedAt != nil {
		ts := contact.DeletedAt.Unix()
		deletedAt = &ts
	}

	tags := "[]"
	if len(contact.Tags) > 0 {
		data, err := json.Marshal(contact.Tags)
		if err != nil {
			return nil, err
		}
		tags = string(data)
	}

	return &ContactModel{
		ID:        contact.ID,
		UserID:    contact.UserID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email.String(),
		Phone:     contact.Phone,
		Company:   contact.Company,
		JobTitle:  contact.JobTitle,
		Notes:     contact.Notes,
		Tags:      tags,
		CreatedAt: unixOrZero(contact.CreatedAt),
		UpdatedAt: unixOrZero(contact.UpdatedAt),
		DeletedAt: deletedAt,
	}, nil
}

func (r *ContactRepository) toEntity(model *ContactModel) (*entities.Contact, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var tags []string
	if model.Tags != "" {
		if err := json.Unmarshal([]byte(model.Tags), &tags); err != nil {
			return nil, err
		}
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.Contact{
		ID:        model.ID,
		UserID:    model.UserID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     email,
		Phone:     model.Phone,
		Company:   model.Company,
		JobTitle:  model.JobTitle,
		Notes:     model.Notes,
		Tags:      tags,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
		DeletedAt: deletedAt,
	}, nil
}

func (r *ContactRepository) toEntities(models []*ContactModel) ([]*entities.Contact, error) {
	contacts := make([]*entities.Contact, 0, len(models))

	for _, model := range models {
		contact, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	return contacts, nil
}
