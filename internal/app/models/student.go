package models

import "time"

// Student defines the student model based on the 'student_mast' table
type Student struct {
	StudentID   int64     `json:"studentId" db:"student_id" example:"1"`            // Unique identifier, server-assigned
	Name        string    `json:"name" db:"name" example:"Jane Doe"`                // Student's full name
	Age         int       `json:"age" db:"age" example:"21"`                        // Student's age
	DateOfBirth time.Time `json:"dateOfBirth" db:"date_of_birth"`                   // Date of birth
	Address     string    `json:"address" db:"address" example:"12 Main St"`        // Postal address
	PhoneNumber string    `json:"phoneNumber" db:"phone_number" example:"555-0142"` // Contact phone number
	StateID     int64     `json:"stateId" db:"state_id" example:"3"`                // Foreign key into state_mast

	// StateName is populated from the state_mast join on reads; it is never
	// written through this model.
	StateName string `json:"stateName" db:"state_name" example:"Texas"`

	// Subjects are the child rows from student_detail. The set is owned by the
	// student and replaced wholesale on every update.
	Subjects []string `json:"subjects"`

	// PhotoData holds the raw photo bytes stored in the photo_data column.
	PhotoData []byte `json:"photoData,omitempty" db:"photo_data"`
}
