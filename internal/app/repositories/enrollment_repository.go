package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"schoolhub/internal/app/models"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/dberrors"
	"schoolhub/internal/pkg/helpers"
	"schoolhub/internal/pkg/logger"
)

var enrollmentColumns = []string{
	"e.id", "e.student_id", "e.course_id", "e.enrollment_date", "e.status",
	"e.grade", "e.score", "e.created_at", "e.updated_at",
}

// EnrollmentFilter narrows enrollment lists to one side of the relation.
type EnrollmentFilter struct {
	StudentID *int64
	CourseID  *int64
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEnrollment(row pgx.Row, enrollment *models.Enrollment, withStudent, withCourse bool) error {
	targets := []interface{}{
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollment.EnrollmentDate, &enrollment.Status, &enrollment.Grade,
		&enrollment.Score, &enrollment.CreatedAt, &enrollment.UpdatedAt,
	}

	var student models.Student
	if withStudent {
		targets = append(targets,
			&student.ID, &student.Name, &student.Email, &student.StudentID,
			&student.Status, &student.EnrollmentDate,
		)
	}

	var course models.Course
	if withCourse {
		targets = append(targets,
			&course.ID, &course.Title, &course.CourseCode, &course.Credits,
			&course.Status, &course.Department,
		)
	}

	if err := row.Scan(targets...); err != nil {
		return err
	}

	if withStudent {
		enrollment.Student = &student
	}
	if withCourse {
		enrollment.Course = &course
	}

	return nil
}

// selectEnrollments builds the base select, joining the student and
// course sides when their populate tags were requested.
func (r *EnrollmentRepository) selectEnrollments(withStudent, withCourse bool) squirrel.SelectBuilder {
	builder := r.sb.Select(enrollmentColumns...).From("enrollments e")
	if withStudent {
		builder = builder.
			Columns("s.id", "s.name", "s.email", "s.student_id", "s.status", "s.enrollment_date").
			Join("students s ON e.student_id = s.id")
	}
	if withCourse {
		builder = builder.
			Columns("c.id", "c.title", "c.course_code", "c.credits", "c.status", "c.department").
			Join("courses c ON e.course_id = c.id")
	}
	return builder
}

// Create inserts a new enrollment. The (student, course) uniqueness
// constraint surfaces as apperrors.ErrAlreadyEnrolled.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, enrollment_date, status, grade, score)
		VALUES ($1, $2, COALESCE($3, CURRENT_DATE), $4, $5, $6)
		RETURNING id, enrollment_date, created_at, updated_at
	`

	var enrollmentDate interface{}
	if !enrollment.EnrollmentDate.IsZero() {
		enrollmentDate = enrollment.EnrollmentDate
	}

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollmentDate,
		enrollment.Status,
		helpers.GetNullString(enrollment.Grade),
		helpers.GetNullFloat64(enrollment.Score),
	).Scan(&enrollment.ID, &enrollment.EnrollmentDate, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		return dberrors.TranslateUniqueViolation(err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID, optionally joining both sides.
// Returns (nil, nil) when no row matches.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64, withStudent, withCourse bool) (*models.Enrollment, error) {
	query, args, err := r.selectEnrollments(withStudent, withCourse).
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrollment query: %w", err)
	}

	var enrollment models.Enrollment
	if err := scanEnrollment(r.db.QueryRow(ctx, query, args...), &enrollment, withStudent, withCourse); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// List retrieves a page of enrollments with the total row count,
// optionally filtered to one student or course.
func (r *EnrollmentRepository) List(ctx context.Context, params helpers.ListParams, filter EnrollmentFilter, withStudent, withCourse bool) ([]models.Enrollment, int64, error) {
	where := squirrel.And{}
	if filter.StudentID != nil {
		where = append(where, squirrel.Eq{"e.student_id": *filter.StudentID})
	}
	if filter.CourseID != nil {
		where = append(where, squirrel.Eq{"e.course_id": *filter.CourseID})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("enrollments e").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count enrollments: %w", err)
	}

	if totalItems == 0 {
		return []models.Enrollment{}, 0, nil
	}

	querySql, queryArgs, err := r.selectEnrollments(withStudent, withCourse).
		Where(where).
		OrderBy(params.OrderBy()).
		Limit(uint64(params.Limit)).
		Offset(params.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, 0, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := scanEnrollment(rows, &enrollment, withStudent, withCourse); err != nil {
			return nil, 0, fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return enrollments, totalItems, nil
}

// Update persists the mutable enrollment metadata. The (student, course)
// pair itself is immutable.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET enrollment_date = $1, status = $2, grade = $3, score = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.EnrollmentDate,
		enrollment.Status,
		helpers.GetNullString(enrollment.Grade),
		helpers.GetNullFloat64(enrollment.Score),
		enrollment.ID,
	).Scan(&enrollment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	return nil
}

// Delete removes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
