package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/auth"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/i18n"
)

const (
	// CurrentUserContextKey é a chave do usuário autenticado no contexto do Gin
	CurrentUserContextKey = "current_user"

	// JWTCookieName é o cookie httpOnly onde o token também é aceito
	JWTCookieName = "jwt"
)

// AuthMiddleware implementa os guards de autenticação e de admin
type AuthMiddleware struct {
	tokens   *auth.TokenManager
	userRepo repositories.UserRepository
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth valida o JWT (header Authorization: Bearer ou cookie),
// carrega o usuário do banco e o coloca no contexto. O usuário é
// carregado para que o guard de admin decida sobre o estado atual, não
// sobre claims antigas.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			abortUnauthorized(c)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequirePermission exige que o role do usuário autenticado carregue a
// permissão informada. Deve ser registrado depois de RequireAuth.
func (m *AuthMiddleware) RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		if !user.HasPermission(permission) {
			problem := newProblem(c, domainerrors.ProblemTypeForbidden,
				"error.forbidden.title", "error.forbidden.detail", http.StatusForbidden)
			c.Header("Content-Type", problems.ProblemMediaType)
			c.AbortWithStatusJSON(http.StatusForbidden, problem)
			return
		}

		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado da requisição
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entities.User)
	return user, ok
}

// extractToken pega o token do header Authorization ou do cookie jwt
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if cookie, err := c.Cookie(JWTCookieName); err == nil {
		return cookie
	}

	return ""
}

func abortUnauthorized(c *gin.Context) {
	problem := newProblem(c, domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title", "error.unauthorized.detail", http.StatusUnauthorized)
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, problem)
}

// newProblem monta um problem RFC 7807 traduzido. Este pacote não pode
// usar os helpers do pacote dto (o dto importa middleware), então a
// montagem é local.
func newProblem(c *gin.Context, problemType, titleKey, detailKey string, status int) *problems.DefaultProblem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	return &problems.DefaultProblem{
		Type:     baseURL + problemType,
		Title:    translate(c, titleKey),
		Status:   status,
		Detail:   translate(c, detailKey),
		Instance: c.Request.URL.Path,
	}
}

func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang := c.GetString(LanguageContextKey)
	return service.T(lang, key)
}
