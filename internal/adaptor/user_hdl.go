package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"user-management/internal/data/repository"
	"user-management/internal/dto/request"
	"user-management/internal/usecase"
	"user-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/v1/usuarios/registro
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Datos de entrada inválidos", nil)
		return
	}

	// Structural validation first, uniqueness checks happen in the service
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Datos de entrada inválidos", validationErrors)
		return
	}

	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register user")
		return
	}

	utils.ResponseCreated(w, "Usuario registrado exitosamente", response)
}

// GetAll handles GET /api/v1/usuarios?page=1&pageSize=10
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("pageSize"), 10),
	}

	result, err := h.service.GetAll(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get all users")
		return
	}

	utils.ResponsePaginated(w, "Lista de usuarios obtenida exitosamente", result.Data, result.Pagination)
}

// GetByID handles GET /api/v1/usuarios/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	response, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "Usuario obtenido exitosamente", response)
}

// Update handles PUT /api/v1/usuarios/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Datos de entrada inválidos", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Datos de entrada inválidos", validationErrors)
		return
	}

	response, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "Usuario actualizado exitosamente", response)
}

// Delete handles DELETE /api/v1/usuarios/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "Usuario eliminado exitosamente", nil)
}

// parseID reads the {id} route param. A non-numeric id behaves like an
// unknown user, matching the original route constraint.
func (h *UserHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Usuario no encontrado")
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors onto the response envelope
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, "Datos de entrada inválidos", validationErr.Errors)

	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Usuario no encontrado")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Error interno del servidor")
	}
}
