package dto

// CreateStateRequest represents a new state name submission
type CreateStateRequest struct {
	StateName string `json:"stateName" binding:"required" example:"Texas"`
}

// StateResponse is the body returned when a state is created
type StateResponse struct {
	StateID   int64  `json:"stateId"`
	StateName string `json:"stateName"`
}
