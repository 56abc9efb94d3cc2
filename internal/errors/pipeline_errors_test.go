package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorPreservesUnderlying(t *testing.T) {
	underlying := fmt.Errorf("failed to read pipeline config")

	wrapped := WrapError(underlying, ErrorCategoryConfiguration, "signal-report", "load config")

	assert.True(t, errors.Is(wrapped, underlying))
	assert.Contains(t, wrapped.Error(), "CONFIG")
	assert.Contains(t, wrapped.Error(), "signal-report")
	assert.True(t, wrapped.IsFatal())
	assert.False(t, wrapped.IsRetryable())
}

func TestWrapErrorNil(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrorCategoryData, "loader", "load"))
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCategory
	}{
		{"missing file", fmt.Errorf("open data/SP500.csv: no such file or directory"), ErrorCategoryIO},
		{"bad config", fmt.Errorf("period rsi must be positive, got -1"), ErrorCategoryConfiguration},
		{"out of order", fmt.Errorf("series out of chronological order at index 3"), ErrorCategoryData},
		{"unknown indicator", fmt.Errorf("unknown indicator \"OBV\""), ErrorCategoryValidation},
		{"anything else", fmt.Errorf("something odd happened"), ErrorCategoryTemporary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categorized := CategorizeError(tt.err, "test", "op")
			assert.Equal(t, tt.expected, categorized.Category)
		})
	}
}

func TestCategorizeErrorPassthrough(t *testing.T) {
	original := NewValidationError("config", "validate", "buy level above sell level")
	categorized := CategorizeError(original, "other", "op")
	assert.Same(t, original, categorized)
}

func TestWithContext(t *testing.T) {
	err := NewDataError("loader", "load", fmt.Errorf("empty series")).
		WithContext("path", "data/UNRATE.csv")
	assert.Equal(t, "data/UNRATE.csv", err.Context["path"])
}

func TestErrorStats(t *testing.T) {
	stats := NewErrorStats(2)

	stats.RecordError(NewDataError("loader", "load", fmt.Errorf("bad row")))
	stats.RecordError(NewDataError("loader", "load", fmt.Errorf("bad row")))
	stats.RecordError(NewValidationError("config", "validate", "bad threshold"))

	assert.Equal(t, 3, stats.TotalErrors)
	assert.Equal(t, 2, stats.ErrorsByCategory[ErrorCategoryData])
	assert.Len(t, stats.RecentErrors, 2)
	assert.InDelta(t, 2.0/3.0, stats.GetErrorRate(ErrorCategoryData), 1e-9)
	assert.InDelta(t, 0.0, NewErrorStats(1).GetErrorRate(ErrorCategoryData), 1e-9)
}
