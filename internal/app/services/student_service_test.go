package services

import (
	"context"
	"errors"
	"testing"

	"github.com/keremavci/studentapi/internal/app/models"
	"github.com/keremavci/studentapi/internal/app/repositories"
)

// fakeStudentStore implements studentStore in memory.
type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[int64]*models.Student{}}
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	if len(f.students) == 0 {
		return nil, nil
	}
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	f.nextID++
	student.StudentID = f.nextID
	f.students[student.StudentID] = student
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.StudentID]; !ok {
		return repositories.ErrStudentNotFound
	}
	f.students[student.StudentID] = student
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return repositories.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func TestGetAllStudents_NilBecomesEmpty(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	students, err := svc.GetAllStudents(context.Background())
	if err != nil {
		t.Fatalf("GetAllStudents() error: %v", err)
	}
	if students == nil {
		t.Error("GetAllStudents() returned nil slice, want empty")
	}
}

func TestCreateStudent_AssignsID(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	student := &models.Student{Name: "Jane Doe", StateID: 1}
	if err := svc.CreateStudent(context.Background(), student); err != nil {
		t.Fatalf("CreateStudent() error: %v", err)
	}
	if student.StudentID == 0 {
		t.Error("CreateStudent() did not write back the assigned id")
	}

	got, err := svc.GetStudentByID(context.Background(), student.StudentID)
	if err != nil {
		t.Fatalf("GetStudentByID() error: %v", err)
	}
	if got.Name != "Jane Doe" {
		t.Errorf("Name = %q, want Jane Doe", got.Name)
	}
}

func TestStudentNotFoundPassthrough(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	if _, err := svc.GetStudentByID(ctx, 99); !errors.Is(err, repositories.ErrStudentNotFound) {
		t.Errorf("GetStudentByID(99) error = %v, want ErrStudentNotFound", err)
	}
	if err := svc.UpdateStudent(ctx, &models.Student{StudentID: 99}); !errors.Is(err, repositories.ErrStudentNotFound) {
		t.Errorf("UpdateStudent(99) error = %v, want ErrStudentNotFound", err)
	}
	if err := svc.DeleteStudent(ctx, 99); !errors.Is(err, repositories.ErrStudentNotFound) {
		t.Errorf("DeleteStudent(99) error = %v, want ErrStudentNotFound", err)
	}
}
