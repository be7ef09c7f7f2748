package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rrens/fitcoach/internal/api/middleware"
	"github.com/Rrens/fitcoach/internal/api/response"
	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/Rrens/fitcoach/internal/service"
	"github.com/rs/zerolog/log"
)

// CookieOptions controls the auth cookie set on login
type CookieOptions struct {
	Name   string
	Secure bool
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
	cookie      CookieOptions
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if !decodeJSON(w, r, &input) || !validateStruct(w, input) {
		return
	}

	session, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Conflict(w, response.CodeEmailTaken, "Email já cadastrado")
			return
		}
		log.Error().Err(err).Msg("register failed")
		response.InternalError(w, "Erro interno do servidor")
		return
	}

	h.setCookie(w, session.Tokens.AccessToken)
	response.Created(w, session)
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if !decodeJSON(w, r, &input) || !validateStruct(w, input) {
		return
	}

	session, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(w, response.CodeInvalidCredentials, "Email ou senha inválidos")
			return
		}
		log.Error().Err(err).Msg("login failed")
		response.InternalError(w, "Erro interno do servidor")
		return
	}

	h.setCookie(w, session.Tokens.AccessToken)
	response.OK(w, session)
}

// Refresh handles token refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if !decodeJSON(w, r, &input) || !validateStruct(w, input) {
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) || errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(w, response.CodeInvalidToken, "Token inválido ou expirado")
			return
		}
		log.Error().Err(err).Msg("refresh failed")
		response.InternalError(w, "Erro interno do servidor")
		return
	}

	h.setCookie(w, tokens.AccessToken)
	response.OK(w, tokens)
}

// CheckEmail reports whether an email is already registered
func (h *AuthHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	var input domain.EmailCheck
	if !decodeJSON(w, r, &input) || !validateStruct(w, input) {
		return
	}

	exists, err := h.authService.EmailExists(r.Context(), input.Email)
	if err != nil {
		log.Error().Err(err).Msg("check email failed")
		response.InternalError(w, "Erro interno do servidor")
		return
	}

	response.OK(w, map[string]bool{"exists": exists})
}

// Logout clears the auth cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	response.OK(w, map[string]string{"message": "Logout realizado com sucesso"})
}

// Me returns the current authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, response.CodeNoToken, "Token não fornecido")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("get user failed")
		response.InternalError(w, "Erro interno do servidor")
		return
	}
	if user == nil {
		response.NotFound(w, response.CodeNotFound, "Usuário não encontrado")
		return
	}

	response.OK(w, map[string]any{"user": user})
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, token string) {
	ttl := h.authService.AccessTokenTTL()
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
