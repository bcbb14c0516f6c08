package response

import "user-management/internal/data/entity"

// UserProfile is the minimal projection returned on successful login
type UserProfile struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Username string `json:"nombreUsuario"`
	Email    string `json:"correoElectronico"`
}

type LoginResponse struct {
	Usuario UserProfile `json:"usuario"`
}

func LoginToResponse(user *entity.User) *LoginResponse {
	return &LoginResponse{
		Usuario: UserProfile{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
		},
	}
}
