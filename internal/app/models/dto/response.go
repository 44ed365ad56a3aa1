package dto

// MessageResponse is the plain message body used by the compatibility
// surface (login failure, duplicate state).
type MessageResponse struct {
	Message string `json:"message"`
}
