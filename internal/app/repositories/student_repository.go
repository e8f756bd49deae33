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

// studentColumns are the columns scanned for a full student row.
var studentColumns = []string{
	"id", "name", "email", "student_id", "date_of_birth", "phone", "address",
	"enrollment_date", "status", "profile_picture", "created_at", "updated_at",
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student. When no student code is supplied one is
// minted from student_code_seq inside the insert, so concurrent creates
// cannot collide.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, student_id, date_of_birth, phone, address, enrollment_date, status, profile_picture)
		VALUES ($1, $2,
			COALESCE(NULLIF($3, ''), 'STU' || to_char(CURRENT_DATE, 'YYYY') || lpad(nextval('student_code_seq')::text, 4, '0')),
			$4, $5, $6, COALESCE($7, CURRENT_DATE), $8, $9)
		RETURNING id, student_id, enrollment_date, created_at, updated_at
	`

	var enrollmentDate interface{}
	if !student.EnrollmentDate.IsZero() {
		enrollmentDate = student.EnrollmentDate
	}

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.Email,
		student.StudentID,
		student.DateOfBirth,
		helpers.GetNullString(student.Phone),
		helpers.GetNullString(student.Address),
		enrollmentDate,
		student.Status,
		helpers.GetNullString(student.ProfilePicture),
	).Scan(&student.ID, &student.StudentID, &student.EnrollmentDate, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return dberrors.TranslateUniqueViolation(err)
	}

	return nil
}

// GetByID retrieves a student by ID. Returns (nil, nil) when no row matches.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&student.ID, &student.Name, &student.Email, &student.StudentID,
		&student.DateOfBirth, &student.Phone, &student.Address,
		&student.EnrollmentDate, &student.Status, &student.ProfilePicture,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// List retrieves a page of students ordered by the validated sort column,
// along with the total row count.
func (r *StudentRepository) List(ctx context.Context, params helpers.ListParams) ([]models.Student, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	if totalItems == 0 {
		return []models.Student{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy(params.OrderBy()).
		Limit(uint64(params.Limit)).
		Offset(params.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID, &student.Name, &student.Email, &student.StudentID,
			&student.DateOfBirth, &student.Phone, &student.Address,
			&student.EnrollmentDate, &student.Status, &student.ProfilePicture,
			&student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, totalItems, nil
}

// Update persists the mutable columns of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, date_of_birth = $3, phone = $4, address = $5,
			enrollment_date = $6, status = $7, profile_picture = $8, updated_at = now()
		WHERE id = $9
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.Email,
		student.DateOfBirth,
		helpers.GetNullString(student.Phone),
		helpers.GetNullString(student.Address),
		student.EnrollmentDate,
		student.Status,
		helpers.GetNullString(student.ProfilePicture),
		student.ID,
	).Scan(&student.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		return dberrors.TranslateUniqueViolation(err)
	}

	return nil
}

// Delete removes a student by ID. Enrollments cascade at the schema level.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetEnrolledCourses loads the narrowed course projection for a batch of
// students, keyed by student ID. Used by the courses populate tag.
func (r *StudentRepository) GetEnrolledCourses(ctx context.Context, studentIDs []int64) (map[int64][]models.EnrolledCourse, error) {
	if len(studentIDs) == 0 {
		return map[int64][]models.EnrolledCourse{}, nil
	}

	query := `
		SELECT e.student_id, c.id, c.title, c.course_code, c.credits, e.status, e.grade, e.score
		FROM enrollments e
		JOIN courses c ON e.course_id = c.id
		WHERE e.student_id = ANY($1)
		ORDER BY c.title
	`

	rows, err := r.db.Query(ctx, query, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled courses: %w", err)
	}
	defer rows.Close()

	coursesByStudent := make(map[int64][]models.EnrolledCourse)
	for rows.Next() {
		var studentID int64
		var course models.EnrolledCourse
		if err := rows.Scan(
			&studentID, &course.ID, &course.Title, &course.CourseCode,
			&course.Credits, &course.EnrollmentStatus, &course.Grade, &course.Score,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enrolled course row: %w", err)
		}
		coursesByStudent[studentID] = append(coursesByStudent[studentID], course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coursesByStudent, nil
}
