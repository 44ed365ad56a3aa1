// Package services contains the business logic between the HTTP controllers
// and the repositories.
package services

import (
	"context"

	"github.com/keremavci/studentapi/internal/app/models"
)

// StudentService handles operations on student records
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

// StateService handles operations on the state lookup data
type StateService interface {
	GetAllStates(ctx context.Context) ([]*models.State, error)
	CreateState(ctx context.Context, name string) (*models.State, error)
}

// AuthService handles the login gate and token issuance
type AuthService interface {
	Authenticate(username, password string) bool
	Login(username, password string) (token string, expiresIn int, err error)
}
