package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/services"
)

// CurrentUserContextKey é a chave do usuário autenticado no contexto do Gin
const CurrentUserContextKey = "current_user"

// AuthMiddleware é o guard de autenticação: verifica o bearer token e
// garante (upsert) o usuário local correspondente ao subject do token
type AuthMiddleware struct {
	verifier ports.TokenVerifier
	users    *services.UserService
	logger   ports.Logger
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(verifier ports.TokenVerifier, users *services.UserService, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// RequireAuth rejeita requisições sem token válido e anexa o usuário
// ao contexto. Token ausente, malformado, expirado ou com assinatura
// inválida recebem a mesma resposta 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.requireAuth(func(c *gin.Context) string {
		return bearerToken(c.GetHeader("Authorization"))
	})
}

// RequireAuthWS autentica o handshake de websocket. Browsers não
// conseguem definir headers no handshake, então o token também é
// aceito via query string access_token.
func (m *AuthMiddleware) RequireAuthWS() gin.HandlerFunc {
	return m.requireAuth(func(c *gin.Context) string {
		if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			return token
		}
		return c.Query("access_token")
	})
}

func (m *AuthMiddleware) requireAuth(extract func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extract(c)
		if token == "" {
			m.abortUnauthorized(c)
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Debug("token rejected", "error", err)
			m.abortUnauthorized(c)
			return
		}

		user, err := m.users.EnsureUser(c.Request.Context(), claims)
		if err != nil {
			if err == errors.ErrInvalidEmail {
				m.abortUnauthorized(c)
				return
			}
			m.logger.Error("failed to ensure user", "supabase_id", claims.Subject, "error", err)
			m.abortInternal(c)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

func (m *AuthMiddleware) abortUnauthorized(c *gin.Context) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, problems.Problem{
		Type:     c.GetString("base_url") + "/problems/unauthorized",
		Title:    translate(c, "error.unauthorized.title"),
		Status:   http.StatusUnauthorized,
		Detail:   translate(c, "error.unauthorized.detail"),
		Instance: c.Request.URL.Path,
	})
}

func (m *AuthMiddleware) abortInternal(c *gin.Context) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusInternalServerError, problems.Problem{
		Type:     c.GetString("base_url") + "/problems/internal-error",
		Title:    translate(c, "error.internal.title"),
		Status:   http.StatusInternalServerError,
		Detail:   translate(c, "error.internal.detail"),
		Instance: c.Request.URL.Path,
	})
}

// bearerToken extrai o token do header Authorization
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentUser retorna o usuário autenticado do contexto da requisição
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*entities.User)
	if !ok {
		return nil
	}
	return user
}
