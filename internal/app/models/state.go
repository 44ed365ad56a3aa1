package models

// State represents a row of the state_mast lookup table
type State struct {
	StateID   int64  `json:"stateId" db:"state_id" example:"3"`
	StateName string `json:"stateName" db:"state_name" example:"Texas"`
}
