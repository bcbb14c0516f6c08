package request

// RegisterRequest carries the full user record sent to the registration
// endpoint. JSON names follow the public Spanish contract.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Phone    string `json:"celular" validate:"required"`
	Email    string `json:"correoElectronico" validate:"required,email"`
	Username string `json:"nombreUsuario" validate:"required"`
	Password string `json:"contraseña" validate:"required"`
}

// UpdateUserRequest carries replacement fields. Password is optional: an
// empty value leaves the stored password unchanged.
type UpdateUserRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Phone    string `json:"celular" validate:"required"`
	Email    string `json:"correoElectronico" validate:"required,email"`
	Password string `json:"contraseña"`
}
