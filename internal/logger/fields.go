package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldAlgorithm is the structured log field key for the matching
	// strategy name.
	FieldAlgorithm = "algorithm"
	// FieldJob is the structured log field key for the job description
	// title driving a session.
	FieldJob = "job"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// SessionFields returns standard zap fields describing an analysis session.
// Empty values are ignored to keep log entries compact when information is
// missing.
func SessionFields(algorithm, job string) []zap.Field {
	return StringFields(
		StringField{Key: FieldAlgorithm, Value: algorithm},
		StringField{Key: FieldJob, Value: job},
	)
}
