package helpers

import (
	"database/sql"
	"time"
)

// GetContentNullString converts a string value to sql.NullString.
// Empty strings are stored as NULL.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// GetNullInt64 converts an int64 to sql.NullInt64.
// A zero value is stored as NULL.
func GetNullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}

// GetNullBytes converts a byte slice to a value suitable for a nullable
// bytea parameter. Nil and empty slices are stored as NULL.
func GetNullBytes(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}

// StringOrEmpty maps a NULL text column to the empty string.
func StringOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// Int64OrZero maps a NULL integer column to zero.
func Int64OrZero(ni sql.NullInt64) int64 {
	if ni.Valid {
		return ni.Int64
	}
	return 0
}

// IntOrZero maps a NULL integer column to zero.
func IntOrZero(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}

// TimeOrZero maps a NULL timestamp column to the zero time.
func TimeOrZero(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}
