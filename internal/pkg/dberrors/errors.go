package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"schoolhub/internal/pkg/apperrors"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraintName
}

// constraintErrors maps unique constraint names from the schema to the
// typed conflict errors the services report. Unmapped violations fall
// through as internal errors.
var constraintErrors = map[string]error{
	"students_email_key":                   apperrors.ErrStudentEmailExists,
	"students_student_id_key":              apperrors.ErrStudentIDAlreadyExists,
	"teachers_email_key":                   apperrors.ErrTeacherEmailExists,
	"teachers_employee_id_key":             apperrors.ErrEmployeeIDAlreadyExists,
	"courses_course_code_key":              apperrors.ErrCourseCodeAlreadyExists,
	"enrollments_student_id_course_id_key": apperrors.ErrAlreadyEnrolled,
	"admin_users_email_key":                apperrors.ErrEmailAlreadyExists,
}

// TranslateUniqueViolation maps a unique constraint violation to its
// typed conflict error. Any other error is returned unchanged.
func TranslateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return mapped
	}
	return err
}
