package services

import (
	"context"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
	"github.com/rafabene/contactpro-backend/internal/domain/valueobjects"
)

// ContactService contém a lógica de negócio para contatos
type ContactService struct {
	contactRepo      repositories.ContactRepository
	conversationRepo repositories.ConversationRepository
	uow              ports.UnitOfWork
	logger           ports.Logger
}

// NewContactService cria um novo ContactService
func NewContactService(
	contactRepo repositories.ContactRepository,
	conversationRepo repositories.ConversationRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ContactService {
	return &ContactService{
		contactRepo:      contactRepo,
		conversationRepo: conversationRepo,
		uow:              uow,
		logger:           logger,
	}
}

// ContactInput representa os dados para criar ou atualizar um contato
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Company   *string
	JobTitle  *string
	Notes     *string
	Tags      []string
}

// CreateContact cria um novo contato para o usuário
func (s *ContactService) CreateContact(ctx context.Context, userID string, input ContactInput) (*entities.Contact, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	// Unicidade de email por dono (entre registros vivos)
	existing, err := s.contactRepo.FindByEmail(ctx, userID, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrContactEmailExists
	}

	contact := &entities.Contact{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Phone:     input.Phone,
		Company:   input.Company,
		JobTitle:  input.JobTitle,
		Notes:     input.Notes,
		Tags:      input.Tags,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.logger.Info("contact created", "user_id", userID, "contact_id", contact.ID)
	return contact, nil
}

// GetContact busca um contato do usuário por ID
func (s *ContactService) GetContact(ctx context.Context, userID, id string) (*entities.Contact, error) {
	contact, err := s.contactRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, errors.ErrContactNotFound
	}
	return contact, nil
}

// ListContacts lista contatos do usuário com filtros e paginação
func (s *ContactService) ListContacts(ctx context.Context, userID string, filters repositories.ContactFilters) ([]*entities.Contact, int64, error) {
	return s.contactRepo.List(ctx, userID, filters)
}

// UpdateContact atualiza um contato existente
func (s *ContactService) UpdateContact(ctx context.Context, userID, id string, input ContactInput) (*entities.Contact, error) {
	contact, err := s.contactRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, errors.ErrContactNotFound
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	// Se o email mudou, validar unicidade contra os demais contatos
	if email.String() != contact.Email.String() {
		existing, err := s.contactRepo.FindByEmail(ctx, userID, email.String())
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != contact.ID {
			return nil, errors.ErrContactEmailExists
		}
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = email
	contact.Phone = input.Phone
	contact.Company = input.Company
	contact.JobTitle = input.JobTitle
	contact.Notes = input.Notes
	contact.Tags = input.Tags

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// DeleteContact soft-deleta um contato e, em transação, suas
// conversas associadas
func (s *ContactService) DeleteContact(ctx context.Context, userID, id string) error {
	contact, err := s.contactRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return errors.ErrContactNotFound
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.contactRepo.Delete(txCtx, userID, id); err != nil {
			return err
		}
		return s.conversationRepo.DeleteByContact(txCtx, userID, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("contact deleted", "user_id", userID, "contact_id", id)
	return nil
}
