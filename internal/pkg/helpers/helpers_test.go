package helpers

import (
	"database/sql"
	"testing"
	"time"
)

func TestGetContentNullString(t *testing.T) {
	if got := GetContentNullString(""); got.Valid {
		t.Errorf("empty string produced valid NullString: %+v", got)
	}
	got := GetContentNullString("Texas")
	if !got.Valid || got.String != "Texas" {
		t.Errorf("GetContentNullString(Texas) = %+v", got)
	}
}

func TestGetNullInt64(t *testing.T) {
	if got := GetNullInt64(0); got.Valid {
		t.Errorf("zero produced valid NullInt64: %+v", got)
	}
	got := GetNullInt64(42)
	if !got.Valid || got.Int64 != 42 {
		t.Errorf("GetNullInt64(42) = %+v", got)
	}
}

func TestGetNullBytes(t *testing.T) {
	if got := GetNullBytes(nil); got != nil {
		t.Errorf("GetNullBytes(nil) = %v, want nil", got)
	}
	if got := GetNullBytes([]byte{}); got != nil {
		t.Errorf("GetNullBytes(empty) = %v, want nil", got)
	}
	data := []byte{0x01, 0x02}
	got, ok := GetNullBytes(data).([]byte)
	if !ok || len(got) != 2 {
		t.Errorf("GetNullBytes(data) = %v", got)
	}
}

func TestNullColumnDefaults(t *testing.T) {
	if got := StringOrEmpty(sql.NullString{}); got != "" {
		t.Errorf("StringOrEmpty(NULL) = %q", got)
	}
	if got := StringOrEmpty(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Errorf("StringOrEmpty(x) = %q", got)
	}
	if got := Int64OrZero(sql.NullInt64{}); got != 0 {
		t.Errorf("Int64OrZero(NULL) = %d", got)
	}
	if got := IntOrZero(sql.NullInt32{Int32: 21, Valid: true}); got != 21 {
		t.Errorf("IntOrZero(21) = %d", got)
	}
	if got := TimeOrZero(sql.NullTime{}); !got.IsZero() {
		t.Errorf("TimeOrZero(NULL) = %v", got)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("45m", time.Hour); got != 45*time.Minute {
		t.Errorf("ParseDuration(45m) = %v", got)
	}
	if got := ParseDuration("bogus", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(bogus) = %v, want default 1h", got)
	}
	if got := ParseDuration("", 30*time.Minute); got != 30*time.Minute {
		t.Errorf("ParseDuration(empty) = %v, want default 30m", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
		year  int
	}{
		{value: "2004-05-17", ok: true, year: 2004},
		{value: "2004-05-17T00:00:00", ok: true, year: 2004},
		{value: "2004-05-17T00:00:00Z", ok: true, year: 2004},
		{value: "17/05/2004", ok: false},
		{value: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseDate(tt.value)
		if ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			continue
		}
		if tt.ok && got.Year() != tt.year {
			t.Errorf("ParseDate(%q) year = %d, want %d", tt.value, got.Year(), tt.year)
		}
	}
}
