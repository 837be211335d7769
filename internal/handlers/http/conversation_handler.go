package http

import (
	errs "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/handlers/dto"
	"github.com/rafabene/contactpro-backend/internal/handlers/middleware"
	"github.com/rafabene/contactpro-backend/internal/services"
)

// ConversationHandler lida com o histórico de correspondência
type ConversationHandler struct {
	conversationService *services.ConversationService
}

// NewConversationHandler cria um novo ConversationHandler
func NewConversationHandler(conversationService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{
		conversationService: conversationService,
	}
}

// RecordConversation registra um email enviado contra um contato
//
//	@Summary	Registra um email enviado
//	@Tags		conversations
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"ID do contato"
//	@Param		request	body		dto.RecordConversationRequest	true	"Dados do email"
//	@Success	201		{object}	dto.ConversationResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/contacts/{id}/conversations [post]
func (h *ConversationHandler) RecordConversation(c *gin.Context) {
	var req dto.RecordConversationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user := middleware.CurrentUser(c)

	var sentAt time.Time
	if req.SentAt != nil {
		sentAt = *req.SentAt
	}

	conversation, err := h.conversationService.RecordConversation(
		c.Request.Context(), user.ID, c.Param("id"), req.Subject, req.Body, sentAt,
	)
	if err != nil {
		if errs.Is(err, errors.ErrContactNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Contact"))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.ToConversationResponse(conversation))
}

// ListConversations lista o histórico de um contato
//
//	@Summary	Lista o histórico de um contato
//	@Tags		conversations
//	@Produce	json
//	@Param		id			path	string	true	"ID do contato"
//	@Param		page		query	int		false	"Página"
//	@Param		page_size	query	int		false	"Itens por página"
//	@Success	200	{array}	dto.ConversationResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/contacts/{id}/conversations [get]
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	user := middleware.CurrentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	conversations, err := h.conversationService.ListConversations(
		c.Request.Context(), user.ID, c.Param("id"), page, pageSize,
	)
	if err != nil {
		if errs.Is(err, errors.ErrContactNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Contact"))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToConversationResponses(conversations))
}
