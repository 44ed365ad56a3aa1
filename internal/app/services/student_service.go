package services

import (
	"context"

	"github.com/keremavci/studentapi/internal/app/models"
)

// studentStore is the repository surface the service needs.
type studentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// studentService implements StudentService
type studentService struct {
	studentRepo studentStore
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo studentStore) StudentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

// GetAllStudents returns every student record, newest first.
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

// GetStudentByID returns one student record by id.
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent persists a new record and its subject set; the assigned id
// is written back to the record.
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// UpdateStudent fully replaces an existing record, including its subject set.
func (s *studentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent permanently removes a record.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
