package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/handlers/dto"
	"github.com/rcampos/vinylstore-backend/internal/handlers/middleware"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

const (
	oauthSessionName = "oauth_session"
	oauthStateKey    = "state"
	jwtCookieMaxAge  = 3600
)

// AuthHandler lida com o fluxo de login via Google OAuth
type AuthHandler struct {
	authService *services.AuthService
	provider    ports.IdentityProvider
	store       sessions.Store
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(
	authService *services.AuthService,
	provider ports.IdentityProvider,
	store sessions.Store,
	logger ports.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		provider:    provider,
		store:       store,
		logger:      logger,
	}
}

// GoogleLogin redireciona para a tela de consentimento do Google
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.NewString()

	session, _ := h.store.Get(c.Request, oauthSessionName)
	session.Values[oauthStateKey] = state
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.logger.Error("failed to persist oauth state", "error", err)
		dto.InternalErrorResponse(c)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.provider.AuthURL(state))
}

// GoogleCallback valida o state, troca o código e autentica o usuário
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	session, _ := h.store.Get(c.Request, oauthSessionName)
	saved, _ := session.Values[oauthStateKey].(string)

	// state é de uso único
	delete(session.Values, oauthStateKey)
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.logger.Error("failed to clear oauth state", "error", err)
	}

	if saved == "" || saved != c.Query("state") {
		h.logger.Warn("oauth callback with invalid state")
		dto.UnauthorizedResponse(c)
		return
	}

	profile, err := h.provider.FetchProfile(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.logger.Warn("oauth code exchange failed", "error", err)
		dto.UnauthorizedResponse(c)
		return
	}

	token, user, err := h.authService.Authenticate(c.Request.Context(), profile)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	h.logger.Info("user authenticated", "user_id", user.ID, "email", user.Email.String())

	c.SetCookie(middleware.JWTCookieName, token, jwtCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Logout limpa o cookie de autenticação
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.JWTCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "auth.logout.success")})
}
