package errors

import (
	"fmt"
	"strings"
)

// ErrorCategory represents different types of errors that can occur
type ErrorCategory string

const (
	// Critical errors that should stop the run
	ErrorCategoryFatal         ErrorCategory = "FATAL"
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"

	// Recoverable errors
	ErrorCategoryData       ErrorCategory = "DATA"
	ErrorCategoryValidation ErrorCategory = "VALIDATION"
	ErrorCategoryReport     ErrorCategory = "REPORT"
	ErrorCategoryIO         ErrorCategory = "IO"

	// Temporary errors
	ErrorCategoryTemporary ErrorCategory = "TEMPORARY"
)

// PipelineError represents a categorized error with context
type PipelineError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
	Context    map[string]interface{}
	Retryable  bool
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s in %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s in %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *PipelineError) Unwrap() error {
	return e.Underlying
}

// IsRetryable returns whether this error can be retried
func (e *PipelineError) IsRetryable() bool {
	return e.Retryable
}

// IsFatal returns whether this error should stop the run
func (e *PipelineError) IsFatal() bool {
	return e.Category == ErrorCategoryFatal ||
		e.Category == ErrorCategoryConfiguration
}

// NewPipelineError creates a new categorized pipeline error
func NewPipelineError(category ErrorCategory, component, operation, message string) *PipelineError {
	return &PipelineError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]interface{}),
		Retryable: isRetryableCategory(category),
	}
}

// WrapError wraps an existing error with pipeline error context
func WrapError(err error, category ErrorCategory, component, operation string) *PipelineError {
	if err == nil {
		return nil
	}

	return &PipelineError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
		Context:    make(map[string]interface{}),
		Retryable:  isRetryableCategory(category),
	}
}

// WithContext adds context information to the error
func (e *PipelineError) WithContext(key string, value interface{}) *PipelineError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithRetryable sets the retryable flag
func (e *PipelineError) WithRetryable(retryable bool) *PipelineError {
	e.Retryable = retryable
	return e
}

// isRetryableCategory determines if an error category is generally retryable
func isRetryableCategory(category ErrorCategory) bool {
	switch category {
	case ErrorCategoryIO, ErrorCategoryTemporary:
		return true
	case ErrorCategoryFatal, ErrorCategoryConfiguration, ErrorCategoryValidation:
		return false
	default:
		return false
	}
}

// CategorizeError attempts to categorize a generic error
func CategorizeError(err error, component, operation string) *PipelineError {
	if err == nil {
		return nil
	}

	// Check if it's already a PipelineError
	if pipeErr, ok := err.(*PipelineError); ok {
		return pipeErr
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "no such file") || strings.Contains(errMsg, "permission denied") {
		return WrapError(err, ErrorCategoryIO, component, operation)
	}

	if strings.Contains(errMsg, "config") || strings.Contains(errMsg, "threshold") ||
		strings.Contains(errMsg, "period") {
		return WrapError(err, ErrorCategoryConfiguration, component, operation)
	}

	if strings.Contains(errMsg, "parse") || strings.Contains(errMsg, "chronological") ||
		strings.Contains(errMsg, "empty") {
		return WrapError(err, ErrorCategoryData, component, operation)
	}

	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "unknown") {
		return WrapError(err, ErrorCategoryValidation, component, operation)
	}

	return WrapError(err, ErrorCategoryTemporary, component, operation)
}

// Common error constructors
func NewDataError(component, operation string, err error) *PipelineError {
	return WrapError(err, ErrorCategoryData, component, operation)
}

func NewValidationError(component, operation, message string) *PipelineError {
	return NewPipelineError(ErrorCategoryValidation, component, operation, message)
}

func NewConfigurationError(component, operation, message string) *PipelineError {
	return NewPipelineError(ErrorCategoryConfiguration, component, operation, message)
}

func NewReportError(component, operation string, err error) *PipelineError {
	return WrapError(err, ErrorCategoryReport, component, operation)
}

func NewFatalError(component, operation, message string) *PipelineError {
	return NewPipelineError(ErrorCategoryFatal, component, operation, message)
}

// ErrorStats tracks error statistics across pipeline runs
type ErrorStats struct {
	TotalErrors      int
	ErrorsByCategory map[ErrorCategory]int
	RecentErrors     []*PipelineError
	MaxRecentErrors  int
}

// NewErrorStats creates a new error statistics tracker
func NewErrorStats(maxRecentErrors int) *ErrorStats {
	return &ErrorStats{
		ErrorsByCategory: make(map[ErrorCategory]int),
		RecentErrors:     make([]*PipelineError, 0, maxRecentErrors),
		MaxRecentErrors:  maxRecentErrors,
	}
}

// RecordError records an error in the statistics
func (es *ErrorStats) RecordError(err *PipelineError) {
	es.TotalErrors++
	es.ErrorsByCategory[err.Category]++

	es.RecentErrors = append(es.RecentErrors, err)

	if len(es.RecentErrors) > es.MaxRecentErrors {
		es.RecentErrors = es.RecentErrors[1:]
	}
}

// GetErrorRate returns the error rate for a specific category
func (es *ErrorStats) GetErrorRate(category ErrorCategory) float64 {
	if es.TotalErrors == 0 {
		return 0.0
	}
	return float64(es.ErrorsByCategory[category]) / float64(es.TotalErrors)
}
