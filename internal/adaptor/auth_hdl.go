package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"user-management/internal/dto/request"
	"user-management/internal/usecase"
	"user-management/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	// Decode request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Datos inválidos", nil)
		return
	}

	// Validate request. The login endpoint reports only the message, no
	// per-field error list.
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Datos inválidos", nil)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.log.Warn("Login failed", zap.String("username", req.Username))
			utils.ResponseUnauthorized(w, "Credenciales inválidas")
			return
		}
		h.log.Error("Failed to login", zap.Error(err))
		utils.ResponseInternalError(w, "Error interno del servidor")
		return
	}

	utils.ResponseSuccess(w, "Inicio de sesión exitoso", response)
}

// Logout handles POST /api/v1/auth/logout. There is no session to
// invalidate, so it acknowledges unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())

	utils.ResponseSuccess(w, "Sesión cerrada exitosamente", nil)
}
