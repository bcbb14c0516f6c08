package request

type LoginRequest struct {
	Username string `json:"nombreUsuario" validate:"required"`
	Password string `json:"contraseña" validate:"required"`
}
