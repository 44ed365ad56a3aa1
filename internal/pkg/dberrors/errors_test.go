package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "state_mast_state_name_key"}
	wrapped := fmt.Errorf("insert failed: %w", pgErr)

	if !IsUniqueViolation(wrapped) {
		t.Error("IsUniqueViolation() = false for a wrapped 23505")
	}
	if !IsDuplicateConstraintError(wrapped, "state_mast_state_name_key") {
		t.Error("IsDuplicateConstraintError() = false for the matching constraint")
	}
	if IsDuplicateConstraintError(wrapped, "some_other_key") {
		t.Error("IsDuplicateConstraintError() = true for a different constraint")
	}
}

func TestForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}

	if !IsForeignKeyViolation(fmt.Errorf("insert failed: %w", pgErr)) {
		t.Error("IsForeignKeyViolation() = false for a wrapped 23503")
	}
	if IsUniqueViolation(pgErr) {
		t.Error("IsUniqueViolation() = true for a 23503")
	}
}

func TestNonPgErrors(t *testing.T) {
	err := errors.New("connection refused")

	if IsUniqueViolation(err) || IsForeignKeyViolation(err) || IsDuplicateConstraintError(err, "x") {
		t.Error("plain errors must not match any PgError predicate")
	}
}
