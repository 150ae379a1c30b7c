package response

import "agro-marketplace/internal/data/entity"

// UserResponse is the public view of a user, password excluded
type UserResponse struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type RegisterResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	UserID  string       `json:"user_id"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type MeResponse struct {
	User UserResponse `json:"user"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:      user.ID.Hex(),
		Email:   user.Email,
		Name:    user.Name,
		Phone:   user.Phone,
		Address: user.Address,
	}
}
