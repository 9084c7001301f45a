package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	applog "github.com/yukikurage/project-dashboard-api/internal/logger"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksGenerated     = errors.New("AI did not generate any tasks")
	ErrAINoValidTasks         = errors.New("no valid tasks could be drafted from AI output")
	ErrAITooManyTasks         = errors.New("AI generated too many tasks")
)

// NotFoundError reports a missing record. It matches ErrNotFound and repository.ErrNotFound.
// Key, when set, replaces ID in the message for records looked up by something else.
type NotFoundError struct {
	Entity string
	ID     uint64
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == repository.ErrNotFound
}

// ValidationError lists the invalid input fields with a message for each
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// fail logs a store failure and returns it in service terms
func fail(entity, op string, id uint64, err error) error {
	fields := logrus.Fields{"entity": entity, "op": op}
	if id != 0 {
		fields["id"] = id
	}

	if errors.Is(err, repository.ErrNotFound) {
		err = &NotFoundError{Entity: entity, ID: id}
		applog.Log.WithFields(fields).Warn(err.Error())
		return err
	}

	applog.Log.WithFields(fields).WithError(err).Errorf("failed to %s %s", op, entity)
	return fmt.Errorf("failed to %s %s: %w", op, entity, err)
}
