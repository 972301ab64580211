package validator

import (
	"strings"
	"time"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
	"github.com/shopspring/decimal"
)

// Required pairs a payload key with the human label reported when the key is
// missing. Order matters: the checker reports the first missing field only.
type Required struct {
	Key   string
	Label string
}

// CheckRequired confirms every required key is present and non-empty in
// fields, in declared order. The first empty value short-circuits into an
// error carrying code and the field's label. Pure, no side effects.
func CheckRequired(code string, required []Required, fields map[string]any) error {
	for _, r := range required {
		if IsEmptyValue(fields[r.Key]) {
			return resterror.RequiredField(code, r.Label)
		}
	}
	return nil
}

// IsEmptyValue reports whether v counts as "not provided": nil, a blank
// string, a zero number, false, or a zero decimal.
func IsEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	case bool:
		return !t
	case decimal.Decimal:
		return t.IsZero()
	case time.Time:
		return t.IsZero()
	default:
		return false
	}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidDate parses a "YYYY-MM-DD" date.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidDateTime checks RFC3339 timestamps, with or without nanoseconds.
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

// IsInSlice reports whether value appears in slice.
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// InEnum reports whether value is a key of the enumerated table.
func InEnum(value string, table map[string]string) bool {
	_, ok := table[value]
	return ok
}

// SplitIncludes splits a comma-separated include directive, stripping all
// whitespace, e.g. "department, designation" -> ["department","designation"].
func SplitIncludes(include string) []string {
	include = strings.ReplaceAll(include, " ", "")
	if include == "" {
		return nil
	}
	return strings.Split(include, ",")
}
