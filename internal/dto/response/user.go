package response

import (
	"time"

	"user-management/internal/data/entity"
)

// UserResponse is the public projection of a user. The password is never
// serialized. FechaActualizacion is only present on detail and update
// responses, matching the original contract.
type UserResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"nombre"`
	Phone     string     `json:"celular"`
	Email     string     `json:"correoElectronico"`
	Username  string     `json:"nombreUsuario"`
	CreatedAt time.Time  `json:"fechaCreacion"`
	UpdatedAt *time.Time `json:"fechaActualizacion,omitempty"`
}

// UserToResponse builds the summary projection (registration, listing)
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Phone:     user.Phone,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// UserToDetailResponse includes the update timestamp (detail, update)
func UserToDetailResponse(user *entity.User) UserResponse {
	resp := UserToResponse(user)
	updatedAt := user.UpdatedAt
	resp.UpdatedAt = &updatedAt
	return resp
}
