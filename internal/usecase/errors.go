package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy of the lifecycle. Every failure returned by a use case unwraps to exactly one
// of these, and none of them leaves a partial change behind.
var (
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrValidationFailed   = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
)

// RuleError identifies the entity and the rule a rejected operation violated.
type RuleError struct {
	Kind   error
	Entity string
	ID     string
	Rule   string
	Fields map[string]string
}

func (e *RuleError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	b.WriteString(": ")
	b.WriteString(e.Entity)
	if e.ID != "" {
		b.WriteString(" ")
		b.WriteString(e.ID)
	}
	if e.Rule != "" {
		b.WriteString(": ")
		b.WriteString(e.Rule)
	}
	return b.String()
}

func (e *RuleError) Unwrap() error { return e.Kind }

func preconditionFailed(entity, id, rule string, args ...any) error {
	return &RuleError{Kind: ErrPreconditionFailed, Entity: entity, ID: id, Rule: fmt.Sprintf(rule, args...)}
}

func validationFailed(entity, rule string, fields map[string]string) error {
	return &RuleError{Kind: ErrValidationFailed, Entity: entity, Rule: rule, Fields: fields}
}

func notFound(entity, id string) error {
	return &RuleError{Kind: ErrNotFound, Entity: entity, ID: id, Rule: "does not exist"}
}
