package dto

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/keremavci/studentapi/internal/app/models"
	"github.com/keremavci/studentapi/internal/pkg/helpers"
)

// StudentForm carries the multipart form fields of the student create and
// update endpoints. The photo arrives as a file part; all other fields are
// plain form values.
type StudentForm struct {
	StudentID   int64                 `form:"studentId"`
	Name        string                `form:"name"`
	Age         int                   `form:"age"`
	DateOfBirth string                `form:"dateOfBirth"`
	Address     string                `form:"address"`
	PhoneNumber string                `form:"phoneNumber"`
	StateID     int64                 `form:"stateId" binding:"required,min=1"`
	Subjects    []string              `form:"subjects"`
	Photo       *multipart.FileHeader `form:"photo"`
}

// ToModel converts the form to a student record. The photo file, when
// supplied, is read fully into the record's photo bytes; otherwise
// PhotoData stays nil, which the write path treats as "keep the stored
// photo".
func (f *StudentForm) ToModel() (*models.Student, error) {
	student := &models.Student{
		StudentID:   f.StudentID,
		Name:        f.Name,
		Age:         f.Age,
		Address:     f.Address,
		PhoneNumber: f.PhoneNumber,
		StateID:     f.StateID,
		Subjects:    f.Subjects,
	}

	if student.Subjects == nil {
		student.Subjects = []string{}
	}

	if f.DateOfBirth != "" {
		dob, ok := helpers.ParseDate(f.DateOfBirth)
		if !ok {
			return nil, fmt.Errorf("invalid dateOfBirth value: %q", f.DateOfBirth)
		}
		student.DateOfBirth = dob
	}

	if f.Photo != nil && f.Photo.Size > 0 {
		file, err := f.Photo.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open photo upload: %w", err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read photo upload: %w", err)
		}
		student.PhotoData = data
	}

	return student, nil
}
