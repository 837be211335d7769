package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/handlers/dto"
	"github.com/rafabene/contactpro-backend/internal/handlers/middleware"
	"github.com/rafabene/contactpro-backend/internal/services"
)

// UserHandler lida com requisições HTTP do perfil do usuário
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Me retorna o perfil do usuário autenticado
//
//	@Summary	Perfil do usuário autenticado
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	dto.ProfileResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)

	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}

// UpdateProfile atualiza os campos opcionais do perfil
//
//	@Summary	Atualiza o perfil do usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpdateProfileRequest	true	"Campos do perfil"
//	@Success	200		{object}	dto.ProfileResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Security	BearerAuth
//	@Router		/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user := middleware.CurrentUser(c)

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, services.UpdateProfileInput{
		Name:      req.Name,
		Title:     req.Title,
		Company:   req.Company,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "User"))
			return
		}
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(updated))
}
