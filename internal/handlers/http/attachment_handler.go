package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/handlers/dto"
	"github.com/rafabene/contactpro-backend/internal/handlers/middleware"
	"github.com/rafabene/contactpro-backend/internal/services"
	"github.com/rafabene/contactpro-backend/internal/ws"
)

// AttachmentHandler lida com requisições HTTP de anexos
type AttachmentHandler struct {
	attachmentService *services.AttachmentService
	hub               *ws.Hub
}

// NewAttachmentHandler cria um novo AttachmentHandler
func NewAttachmentHandler(attachmentService *services.AttachmentService, hub *ws.Hub) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
		hub:               hub,
	}
}

// CreatePresignedURL emite uma URL pré-assinada de upload
//
//	@Summary	Emite URL pré-assinada de upload
//	@Tags		attachments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.PresignedURLRequest	true	"Metadados do arquivo"
//	@Success	201		{object}	dto.PresignedURLResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	413		{object}	dto.ErrorResponse
//	@Failure	415		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/attachments/presigned-url [post]
func (h *AttachmentHandler) CreatePresignedURL(c *gin.Context) {
	var req dto.PresignedURLRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user := middleware.CurrentUser(c)

	upload, err := h.attachmentService.CreatePresignedUpload(
		c.Request.Context(), user.ID, req.Filename, req.ContentType, req.Size,
	)
	if err != nil {
		switch {
		case errs.Is(err, entities.ErrAttachmentTooLarge):
			dto.WriteProblem(c, dto.PayloadTooLargeErrorResponseI18n(c))
		case errs.Is(err, entities.ErrContentTypeNotAllowed):
			dto.WriteProblem(c, dto.UnsupportedMediaErrorResponseI18n(c))
		case errs.Is(err, entities.ErrInvalidAttachmentName), errs.Is(err, entities.ErrInvalidAttachmentSize):
			dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, nil))
		default:
			dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPresignedURLResponse(upload))
}

// DeleteAttachment remove o objeto do storage e seu registro
//
//	@Summary	Remove um anexo
//	@Tags		attachments
//	@Param		key	path	string	true	"Key do objeto"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/attachments/{key} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	// A key contém "/" (prefixo do dono), então a rota usa *key
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}

	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), user.ID, key); err != nil {
		if errs.Is(err, errors.ErrAttachmentNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "Attachment"))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	if h.hub != nil {
		h.hub.PublishToUser(user.ID, "attachment.deleted", gin.H{"key": key})
	}
	c.Status(http.StatusNoContent)
}
