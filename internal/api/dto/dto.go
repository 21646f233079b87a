package dto

type RegisterRequest struct {
	Login           string `json:"login"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type UserIDResponse struct {
	ID int64 `json:"id"`
}

type UsernameResponse struct {
	Login string `json:"login"`
}
