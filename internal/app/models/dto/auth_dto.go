package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
}

// LoginResponse is the body returned on a successful login
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message" example:"Login successful"`
}
