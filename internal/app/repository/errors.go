package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrConstraintViolation marks a write rejected by a uniqueness or foreign key
// rule in the database.
var ErrConstraintViolation = errors.New("constraint violation")

// ConstraintError keeps the driver error, whose text names the constraint.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return e.Err.Error()
}

func (e *ConstraintError) Unwrap() []error {
	return []error{ErrConstraintViolation, e.Err}
}

var constraintMarkers = []string{
	"duplicate key",
	"unique constraint",
	"foreign key constraint",
	"violates foreign key",
}

// wrapConstraint converts storage-level constraint failures into a
// ConstraintError and passes every other error through unchanged.
func wrapConstraint(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConstraintError{Err: err}
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range constraintMarkers {
		if strings.Contains(msg, marker) {
			return &ConstraintError{Err: err}
		}
	}
	return err
}

// IsNotFound reports whether err means the addressed row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
