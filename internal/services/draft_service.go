package services

import (
	"context"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
)

// DraftService contém a lógica de geração e polimento de rascunhos
// de email assistidos pelo serviço de completion
type DraftService struct {
	templateRepo repositories.TemplateRepository
	contactRepo  repositories.ContactRepository
	drafter      ports.Drafter
	logger       ports.Logger
}

// NewDraftService cria um novo DraftService
func NewDraftService(
	templateRepo repositories.TemplateRepository,
	contactRepo repositories.ContactRepository,
	drafter ports.Drafter,
	logger ports.Logger,
) *DraftService {
	return &DraftService{
		templateRepo: templateRepo,
		contactRepo:  contactRepo,
		drafter:      drafter,
		logger:       logger,
	}
}

// GenerateTemplateInput representa o pedido de geração de um template
type GenerateTemplateInput struct {
	ContactID *string
	Purpose   string
	Tone      entities.Tone
}

// GenerateTemplate pede um rascunho ao serviço de completion e o
// persiste como template do usuário. Se ContactID for informado, o
// prompt é enriquecido com os dados do contato (escopados pelo dono).
func (s *DraftService) GenerateTemplate(ctx context.Context, userID string, input GenerateTemplateInput) (*entities.EmailTemplate, error) {
	req := ports.DraftRequest{
		Purpose: input.Purpose,
		Tone:    string(input.Tone),
	}

	if input.ContactID != nil {
		contact, err := s.contactRepo.FindByID(ctx, userID, *input.ContactID)
		if err != nil {
			return nil, err
		}
		if contact == nil {
			return nil, errors.ErrContactNotFound
		}
		req.ContactName = contact.FullName()
		if contact.Company != nil {
			req.ContactCompany = *contact.Company
		}
		if contact.JobTitle != nil {
			req.ContactTitle = *contact.JobTitle
		}
	}

	draft, err := s.drafter.GenerateTemplate(ctx, req)
	if err != nil {
		s.logger.Error("completion service failed", "user_id", userID, "error", err)
		return nil, errors.ErrDraftingUnavailable
	}

	template := &entities.EmailTemplate{
		UserID:    userID,
		ContactID: input.ContactID,
		Purpose:   input.Purpose,
		Tone:      input.Tone,
		Subject:   draft.Subject,
		Body:      draft.Body,
	}

	if err := template.Validate(); err != nil {
		return nil, err
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	s.logger.Info("email template generated", "user_id", userID, "template_id", template.ID)
	return template, nil
}

// PolishDraft pede ao serviço de completion uma versão polida do
// rascunho. O resultado não é persistido.
func (s *DraftService) PolishDraft(ctx context.Context, userID, subject, body string, tone entities.Tone) (*ports.Draft, error) {
	polished, err := s.drafter.Polish(ctx, ports.Draft{Subject: subject, Body: body}, string(tone))
	if err != nil {
		s.logger.Error("completion service failed", "user_id", userID, "error", err)
		return nil, errors.ErrDraftingUnavailable
	}
	return polished, nil
}

// GetTemplate busca um template salvo do usuário
func (s *DraftService) GetTemplate(ctx context.Context, userID, id string) (*entities.EmailTemplate, error) {
	template, err := s.templateRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, errors.ErrTemplateNotFound
	}
	return template, nil
}

// ListTemplates lista os templates salvos do usuário
func (s *DraftService) ListTemplates(ctx context.Context, userID string, page, pageSize int) ([]*entities.EmailTemplate, error) {
	return s.templateRepo.List(ctx, userID, page, pageSize)
}

// DeleteTemplate remove um template salvo
func (s *DraftService) DeleteTemplate(ctx context.Context, userID, id string) error {
	template, err := s.templateRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if template == nil {
		return errors.ErrTemplateNotFound
	}
	return s.templateRepo.Delete(ctx, userID, id)
}
