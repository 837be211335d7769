package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
	"github.com/rafabene/contactpro-backend/internal/handlers/dto"
	"github.com/rafabene/contactpro-backend/internal/handlers/middleware"
	"github.com/rafabene/contactpro-backend/internal/services"
	"github.com/rafabene/contactpro-backend/internal/ws"
)

// ContactHandler lida com requisições HTTP de contatos
type ContactHandler struct {
	contactService *services.ContactService
	hub            *ws.Hub
}

// NewContactHandler cria um novo ContactHandler. hub pode ser nil
// (eventos desabilitados).
func NewContactHandler(contactService *services.ContactService, hub *ws.Hub) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		hub:            hub,
	}
}

// CreateContact cria um novo contato
//
//	@Summary	Cria um contato
//	@Tags		contacts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ContactRequest	true	"Dados do contato"
//	@Success	201		{object}	dto.ContactResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req dto.ContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user := middleware.CurrentUser(c)

	contact, err := h.contactService.CreateContact(c.Request.Context(), user.ID, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrContactEmailExists):
			dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, "error.contact_email_exists"))
		case errs.Is(err, errors.ErrInvalidEmail):
			dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, nil))
		default:
			dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	h.publish(user.ID, "contact.created", dto.ToContactResponse(contact))
	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

// GetContact busca um contato por ID
//
//	@Summary	Busca um contato
//	@Tags		contacts
//	@Produce	json
//	@Param		id	path		string	true	"ID do contato"
//	@Success	200	{object}	dto.ContactResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	user := middleware.CurrentUser(c)

	contact, err := h.contactService.GetContact(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errs.Is(err, errors.ErrContactNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Contact"))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// ListContacts lista contatos com busca e paginação
//
//	@Summary	Lista contatos
//	@Tags		contacts
//	@Produce	json
//	@Param		search		query		string	false	"Busca livre (nome, email, empresa)"
//	@Param		page		query		int		false	"Página"
//	@Param		page_size	query		int		false	"Itens por página (max 100)"
//	@Success	200			{object}	dto.ContactListResponse
//	@Security	BearerAuth
//	@Router		/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	user := middleware.CurrentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filters := repositories.ContactFilters{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	contacts, total, err := h.contactService.ListContacts(c.Request.Context(), user.ID, filters)
	if err != nil {
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	c.JSON(http.StatusOK, dto.ContactListResponse{
		Items:    dto.ToContactResponses(contacts),
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// UpdateContact atualiza um contato existente
//
//	@Summary	Atualiza um contato
//	@Tags		contacts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"ID do contato"
//	@Param		request	body		dto.ContactRequest	true	"Dados do contato"
//	@Success	200		{object}	dto.ContactResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var req dto.ContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user := middleware.CurrentUser(c)

	contact, err := h.contactService.UpdateContact(c.Request.Context(), user.ID, c.Param("id"), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrContactNotFound):
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Contact"))
		case errs.Is(err, errors.ErrContactEmailExists):
			dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, "error.contact_email_exists"))
		case errs.Is(err, errors.ErrInvalidEmail):
			dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, nil))
		default:
			dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	h.publish(user.ID, "contact.updated", dto.ToContactResponse(contact))
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// DeleteContact soft-deleta um contato e suas conversas
//
//	@Summary	Remove um contato
//	@Tags		contacts
//	@Param		id	path	string	true	"ID do contato"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	if err := h.contactService.DeleteContact(c.Request.Context(), user.ID, id); err != nil {
		if errs.Is(err, errors.ErrContactNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Contact"))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	h.publish(user.ID, "contact.deleted", gin.H{"id": id})
	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) publish(userID, eventType string, data interface{}) {
	if h.hub != nil {
		h.hub.PublishToUser(userID, eventType, data)
	}
}
