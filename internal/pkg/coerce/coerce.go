package coerce

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ID is an identifier that accepts both JSON numbers and numeric strings,
// always landing on a non-negative integer.
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return err
		}
		n = int64(f)
	}
	if n < 0 {
		n = -n
	}
	*id = ID(n)
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

// Int64 casts an arbitrary JSON-decoded value to int64, zero when it does
// not look like a number.
func Int64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Int is Int64 narrowed to int.
func Int(v any) int {
	return int(Int64(v))
}

// String casts an arbitrary JSON-decoded value to a trimmed string.
func String(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Decimal casts numbers and numeric strings to a decimal, zero otherwise.
func Decimal(v any) decimal.Decimal {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t)
	case int64:
		return decimal.NewFromInt(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
