package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/handlers/dto"
	"github.com/rafabene/contactpro-backend/internal/handlers/middleware"
	"github.com/rafabene/contactpro-backend/internal/services"
)

// DraftHandler lida com requisições HTTP de rascunhos assistidos e
// templates salvos
type DraftHandler struct {
	draftService *services.DraftService
}

// NewDraftHandler cria um novo DraftHandler
func NewDraftHandler(draftService *services.DraftService) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
	}
}

// GenerateTemplate gera e salva um template de email
//
//	@Summary	Gera um template de email via serviço de completion
//	@Tags		drafts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.GenerateTemplateRequest	true	"Parâmetros de geração"
//	@Success	201		{object}	dto.TemplateResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	502		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/drafts/template [post]
func (h *DraftHandler) GenerateTemplate(c *gin.Context) {
	var req dto.GenerateTemplateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user := middleware.CurrentUser(c)

	template, err := h.draftService.GenerateTemplate(c.Request.Context(), user.ID, services.GenerateTemplateInput{
		ContactID: req.ContactID,
		Purpose:   req.Purpose,
		Tone:      entities.Tone(req.Tone),
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrContactNotFound):
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Contact"))
		case errs.Is(err, errors.ErrDraftingUnavailable):
			dto.WriteProblem(c, dto.BadGatewayErrorResponseI18n(c))
		default:
			dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTemplateResponse(template))
}

// PolishDraft devolve uma versão polida do rascunho (não persiste)
//
//	@Summary	Pole um rascunho de email
//	@Tags		drafts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.PolishDraftRequest	true	"Rascunho e tom"
//	@Success	200		{object}	dto.DraftResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	502		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/drafts/polish [post]
func (h *DraftHandler) PolishDraft(c *gin.Context) {
	var req dto.PolishDraftRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user := middleware.CurrentUser(c)

	draft, err := h.draftService.PolishDraft(
		c.Request.Context(), user.ID, req.Subject, req.Body, entities.Tone(req.Tone),
	)
	if err != nil {
		if errs.Is(err, errors.ErrDraftingUnavailable) {
			dto.WriteProblem(c, dto.BadGatewayErrorResponseI18n(c))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

// ListTemplates lista os templates salvos do usuário
//
//	@Summary	Lista templates salvos
//	@Tags		drafts
//	@Produce	json
//	@Param		page		query	int	false	"Página"
//	@Param		page_size	query	int	false	"Itens por página"
//	@Success	200	{array}	dto.TemplateResponse
//	@Security	BearerAuth
//	@Router		/templates [get]
func (h *DraftHandler) ListTemplates(c *gin.Context) {
	user := middleware.CurrentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	templates, err := h.draftService.ListTemplates(c.Request.Context(), user.ID, page, pageSize)
	if err != nil {
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponses(templates))
}

// GetTemplate busca um template salvo
//
//	@Summary	Busca um template salvo
//	@Tags		drafts
//	@Produce	json
//	@Param		id	path		string	true	"ID do template"
//	@Success	200	{object}	dto.TemplateResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/templates/{id} [get]
func (h *DraftHandler) GetTemplate(c *gin.Context) {
	user := middleware.CurrentUser(c)

	template, err := h.draftService.GetTemplate(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errs.Is(err, errors.ErrTemplateNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Template"))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}

// DeleteTemplate remove um template salvo
//
//	@Summary	Remove um template salvo
//	@Tags		drafts
//	@Param		id	path	string	true	"ID do template"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/templates/{id} [delete]
func (h *DraftHandler) DeleteTemplate(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.draftService.DeleteTemplate(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		if errs.Is(err, errors.ErrTemplateNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Template"))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}
