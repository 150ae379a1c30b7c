package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,nomarkup"`
	Phone    string `json:"phone" validate:"nomarkup"`
	Address  string `json:"address" validate:"nomarkup"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
