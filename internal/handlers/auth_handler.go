package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/session"
)

const adminSubject = "admin"

type AuthSettings struct {
	JWTSecret    string
	TokenTTL     time.Duration
	PasswordHash string
}

type AuthHandler struct {
	settings AuthSettings
	store    session.Store
	audit    *audit.Dispatcher
	log      *zap.Logger
	now      func() time.Time
}

func NewAuthHandler(
	settings AuthSettings,
	store session.Store,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{
		settings: settings,
		store:    store,
		audit:    dispatcher,
		log:      log,
		now:      time.Now,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(h.settings.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		h.log.Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
		httperr.Unauthorized(c, "invalid_credentials", "Contraseña incorrecta.")
		return
	}

	now := h.now()
	jti := uuid.NewString()

	token, err := h.generateToken(jti, now)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo iniciar sesión.")
		return
	}

	if err := h.store.Set(
		c.Request.Context(),
		middleware.AdminSessionPrefix+jti,
		middleware.AdminSession{IssuedAt: now.Unix()},
		h.settings.TokenTTL,
	); err != nil {
		h.log.Error("register admin session failed", zap.Error(err))
		httperr.Unavailable(c, "store_unavailable", "Servicio no disponible, intentá nuevamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action: audit.ActionAdminLogin,
		Entity: "admin_session",
		Metadata: map[string]any{
			"jti": jti,
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": now.Add(h.settings.TokenTTL).UTC().Format(time.RFC3339),
	})
}

// Logout revokes the token carried by the current request.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextAdminJTI)
	if strings.TrimSpace(jti) == "" {
		httperr.Unauthorized(c, "invalid_token", "Sesión de administrador inválida.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), middleware.AdminSessionPrefix+jti); err != nil {
		h.log.Error("revoke admin session failed", zap.Error(err))
		httperr.Unavailable(c, "store_unavailable", "Servicio no disponible, intentá nuevamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action: audit.ActionAdminLogout,
		Entity: "admin_session",
		Metadata: map[string]any{
			"jti": jti,
		},
	})

	c.Status(http.StatusNoContent)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(jti string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        jti,
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.settings.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.settings.JWTSecret))
}
