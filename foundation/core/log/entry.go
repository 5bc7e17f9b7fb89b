// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry structure that holds a single log
//              message with its level, fields and error.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-16 v0.1.1: Correlation ID is the only request context kept

package log

import (
	"time"

	"github.com/msto63/cmdkit/foundation/utils/mapx"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	CorrelationID string

	Fields Fields
	Error  error
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Merge combines two Fields into a new one, other wins on conflicts
func (f Fields) Merge(other Fields) Fields {
	return mapx.Merge(f, other)
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	return mapx.SortedKeys(f)
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
