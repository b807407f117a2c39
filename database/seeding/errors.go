package seeding

import (
	"fmt"
	"strings"

	"github.com/vitralapp/vitral/pkg/validate"
)

// ErrorClass separates the three failure modes of a seed run. Validation
// errors are raised before any write; referential errors mean a natural key
// could not be resolved to a persisted id; persistence errors are
// store-level failures during insert/update.
type ErrorClass string

const (
	ClassValidation  ErrorClass = "validation"
	ClassReferential ErrorClass = "referential"
	ClassPersistence ErrorClass = "persistence"
)

// RecordError ties a failure to the input record that caused it. Index is
// the record's position in the preset list; Key is its natural key when
// known.
type RecordError struct {
	Index   int                   `json:"index"`
	Key     string                `json:"key,omitempty"`
	Class   ErrorClass            `json:"class"`
	Message string                `json:"message"`
	Fields  []validate.FieldError `json:"fields,omitempty"`
}

func (e RecordError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "record %d", e.Index)
	if e.Key != "" {
		fmt.Fprintf(&b, " (%s)", e.Key)
	}
	fmt.Fprintf(&b, ": %s: %s", e.Class, e.Message)
	return b.String()
}

func validationError(index int, key string, fields []validate.FieldError) RecordError {
	msgs := make([]string, len(fields))
	for i, fe := range fields {
		msgs[i] = fe.Error()
	}
	return RecordError{
		Index:   index,
		Key:     key,
		Class:   ClassValidation,
		Message: strings.Join(msgs, "; "),
		Fields:  fields,
	}
}

func referentialError(index int, key, message string) RecordError {
	return RecordError{Index: index, Key: key, Class: ClassReferential, Message: message}
}

func persistenceError(index int, key string, err error) RecordError {
	return RecordError{Index: index, Key: key, Class: ClassPersistence, Message: err.Error()}
}
