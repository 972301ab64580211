package validator

import (
	"errors"
	"testing"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRequired_AllPresent(t *testing.T) {
	required := []Required{
		{Key: "company_name", Label: "Company Name"},
		{Key: "job_title", Label: "Job Title"},
	}
	fields := map[string]any{
		"company_name": "Acme",
		"job_title":    "Engineer",
		"extra":        "ignored",
	}

	assert.NoError(t, CheckRequired("rest_required_fields", required, fields))
}

func TestCheckRequired_ReportsFirstMissingInDeclaredOrder(t *testing.T) {
	required := []Required{
		{Key: "performance_date", Label: "Review Date"},
		{Key: "reporting_to", Label: "Reporting To"},
		{Key: "job_knowledge", Label: "Job Knowledge"},
	}
	// Both reporting_to and job_knowledge are empty; only the first in the
	// declared order may be reported.
	fields := map[string]any{
		"performance_date": "2024-05-01",
		"reporting_to":     0,
	}

	err := CheckRequired("rest_performance_required_fields", required, fields)
	require.Error(t, err)

	var restErr *resterror.Error
	require.True(t, errors.As(err, &restErr))
	assert.Equal(t, "rest_performance_required_fields", restErr.Code)
	assert.Equal(t, "Reporting To is required", restErr.Message)
	assert.Equal(t, 400, restErr.Status)
}

func TestCheckRequired_EmptyVariants(t *testing.T) {
	cases := []struct {
		name  string
		value any
		empty bool
	}{
		{"nil", nil, true},
		{"blank string", "   ", true},
		{"zero int", 0, true},
		{"zero int64", int64(0), true},
		{"zero float", float64(0), true},
		{"false", false, true},
		{"zero decimal", decimal.Zero, true},
		{"string", "x", false},
		{"int", 5, false},
		{"true", true, false},
		{"decimal", decimal.NewFromInt(3), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.empty, IsEmptyValue(tc.value))
		})
	}
}

func TestSplitIncludes(t *testing.T) {
	assert.Equal(t, []string{"department", "designation"}, SplitIncludes("department, designation"))
	assert.Equal(t, []string{"avatar"}, SplitIncludes(" avatar "))
	assert.Nil(t, SplitIncludes(""))
	assert.Nil(t, SplitIncludes("   "))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)

	_, ok = IsValidDate("29/02/2024")
	assert.False(t, ok)
}
