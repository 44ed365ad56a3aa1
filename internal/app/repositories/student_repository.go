package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/keremavci/studentapi/internal/app/models"
	"github.com/keremavci/studentapi/internal/db"
	"github.com/keremavci/studentapi/internal/pkg/dberrors"
	"github.com/keremavci/studentapi/internal/pkg/helpers"
	"github.com/keremavci/studentapi/internal/pkg/logger"
)

// Student error types
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStateNotFound   = errors.New("state does not exist")
)

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// studentSelect is the base join of the master table with the state lookup.
func (r *StudentRepository) studentSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.student_id", "s.name", "s.age", "s.date_of_birth", "s.address",
		"s.phone_number", "s.state_id", "st.state_name", "s.photo_data",
	).
		From("student_mast s").
		Join("state_mast st ON s.state_id = st.state_id")
}

// scanStudent maps one joined row to a Student, substituting zero values
// for NULL columns.
func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		student models.Student
		name    sql.NullString
		age     sql.NullInt32
		dob     sql.NullTime
		address sql.NullString
		phone   sql.NullString
		stateID sql.NullInt64
		state   sql.NullString
	)

	if err := row.Scan(
		&student.StudentID,
		&name,
		&age,
		&dob,
		&address,
		&phone,
		&stateID,
		&state,
		&student.PhotoData,
	); err != nil {
		return nil, err
	}

	student.Name = helpers.StringOrEmpty(name)
	student.Age = helpers.IntOrZero(age)
	student.DateOfBirth = helpers.TimeOrZero(dob)
	student.Address = helpers.StringOrEmpty(address)
	student.PhoneNumber = helpers.StringOrEmpty(phone)
	student.StateID = helpers.Int64OrZero(stateID)
	student.StateName = helpers.StringOrEmpty(state)
	student.Subjects = []string{}

	return &student, nil
}

// GetAll retrieves all student records, newest first, with their subject sets.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query, args, err := r.studentSelect().OrderBy("s.student_id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, student := range students {
		subjects, err := r.getSubjects(ctx, student.StudentID)
		if err != nil {
			return nil, err
		}
		student.Subjects = subjects
	}

	return students, nil
}

// GetByID retrieves a single student record by id with its subject set.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.studentSelect().Where(squirrel.Eq{"s.student_id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	subjects, err := r.getSubjects(ctx, student.StudentID)
	if err != nil {
		return nil, err
	}
	student.Subjects = subjects

	return student, nil
}

// Create inserts a new student master row plus one child row per subject,
// all inside a single transaction. On any failure nothing is persisted.
// The assigned id is written back to the record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO student_mast (name, age, date_of_birth, address, phone_number, state_id, photo_data)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING student_id
		`

		err := tx.QueryRow(ctx, query,
			helpers.GetContentNullString(student.Name),
			student.Age,
			student.DateOfBirth,
			helpers.GetContentNullString(student.Address),
			helpers.GetContentNullString(student.PhoneNumber),
			student.StateID,
			helpers.GetNullBytes(student.PhotoData),
		).Scan(&student.StudentID)
		if err != nil {
			return err
		}

		return insertSubjects(ctx, tx, student.StudentID, student.Subjects)
	})

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrStateNotFound
		}
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

// Update fully replaces a student record: the master row is updated and the
// subject set is deleted and re-inserted, all inside a single transaction.
// A nil photo preserves the stored photo bytes.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		// COALESCE keeps the previous photo when no new one was supplied.
		query := `
			UPDATE student_mast
			SET name = $1, age = $2, date_of_birth = $3, address = $4,
			    phone_number = $5, state_id = $6,
			    photo_data = COALESCE($7, photo_data)
			WHERE student_id = $8
		`

		cmdTag, err := tx.Exec(ctx, query,
			helpers.GetContentNullString(student.Name),
			student.Age,
			student.DateOfBirth,
			helpers.GetContentNullString(student.Address),
			helpers.GetContentNullString(student.PhoneNumber),
			student.StateID,
			helpers.GetNullBytes(student.PhotoData),
			student.StudentID,
		)
		if err != nil {
			return err
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrStudentNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM student_detail WHERE student_id = $1`, student.StudentID); err != nil {
			return err
		}

		return insertSubjects(ctx, tx, student.StudentID, student.Subjects)
	})

	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			return ErrStudentNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return ErrStateNotFound
		}
		return fmt.Errorf("failed to update student: %w", err)
	}

	return nil
}

// Delete removes a student master row by id. Subject rows are removed by the
// store's ON DELETE CASCADE on student_detail.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student_mast WHERE student_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// getSubjects fetches the subject names for one student.
func (r *StudentRepository) getSubjects(ctx context.Context, studentID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT subject_name FROM student_detail WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	subjects := []string{}
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan subject row: %w", err)
		}
		if name.Valid {
			subjects = append(subjects, name.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// insertSubjects inserts one child row per subject within the given transaction.
func insertSubjects(ctx context.Context, tx pgx.Tx, studentID int64, subjects []string) error {
	for _, subject := range subjects {
		if _, err := tx.Exec(ctx,
			`INSERT INTO student_detail (student_id, subject_name) VALUES ($1, $2)`,
			studentID, subject,
		); err != nil {
			logger.Error().Err(err).Int64("studentId", studentID).Str("subject", subject).Msg("Error inserting subject row")
			return err
		}
	}
	return nil
}
