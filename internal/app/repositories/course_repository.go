package repositories

import (
	"context"
	"database/sql"
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

// courseSelectColumns are the course columns plus the optional teacher
// projection pulled in by the teacher populate tag.
var courseColumns = []string{
	"c.id", "c.title", "c.course_code", "c.description", "c.credits", "c.duration",
	"c.max_students", "c.start_date", "c.end_date", "c.schedule", "c.status",
	"c.level", "c.prerequisites", "c.syllabus", "c.department", "c.room",
	"c.teacher_id", "c.created_at", "c.updated_at",
}

var courseTeacherColumns = []string{
	"t.id", "t.name", "t.email", "t.employee_id", "t.department",
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// levelNullString converts the optional course level for persistence.
func levelNullString(level *models.CourseLevel) sql.NullString {
	if level == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*level), Valid: true}
}

func scanCourse(row pgx.Row, course *models.Course, withTeacher bool) error {
	var level sql.NullString
	targets := []interface{}{
		&course.ID, &course.Title, &course.CourseCode, &course.Description,
		&course.Credits, &course.Duration, &course.MaxStudents,
		&course.StartDate, &course.EndDate, &course.Schedule, &course.Status,
		&level, &course.Prerequisites, &course.Syllabus, &course.Department,
		&course.Room, &course.TeacherID, &course.CreatedAt, &course.UpdatedAt,
	}

	var teacherID sql.NullInt64
	var teacherName, teacherEmail, employeeID, teacherDept sql.NullString
	if withTeacher {
		targets = append(targets, &teacherID, &teacherName, &teacherEmail, &employeeID, &teacherDept)
	}

	if err := row.Scan(targets...); err != nil {
		return err
	}

	if level.Valid {
		l := models.CourseLevel(level.String)
		course.Level = &l
	}

	if withTeacher && teacherID.Valid {
		course.Teacher = &models.TeacherSummary{
			ID:         teacherID.Int64,
			Name:       teacherName.String,
			Email:      teacherEmail.String,
			EmployeeID: employeeID.String,
			Department: teacherDept.String,
		}
	}

	return nil
}

// Create inserts a new course. When no course code is supplied one is
// minted from the first three letters of the department (GEN when the
// department is absent) and course_code_seq.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, course_code, description, credits, duration, max_students,
			start_date, end_date, schedule, status, level, prerequisites, syllabus, department, room, teacher_id)
		VALUES ($1,
			COALESCE(NULLIF($2, ''),
				upper(substr(COALESCE(NULLIF($14, ''), 'GEN'), 1, 3)) || lpad(nextval('course_code_seq')::text, 4, '0')),
			$3, COALESCE($4, 3), $5, COALESCE($6, 30), $7, $8, $9, $10, $11, $12, $13, NULLIF($14, ''), $15, $16)
		RETURNING id, course_code, credits, max_students, created_at, updated_at
	`

	var department string
	if course.Department != nil {
		department = *course.Department
	}

	var schedule interface{}
	if len(course.Schedule) > 0 {
		schedule = []byte(course.Schedule)
	}

	err := r.db.QueryRow(ctx, query,
		course.Title,
		course.CourseCode,
		helpers.GetNullString(course.Description),
		nullableInt(course.Credits),
		helpers.GetNullInt32(course.Duration),
		nullableInt(course.MaxStudents),
		course.StartDate,
		course.EndDate,
		schedule,
		course.Status,
		levelNullString(course.Level),
		helpers.GetNullString(course.Prerequisites),
		helpers.GetNullString(course.Syllabus),
		department,
		helpers.GetNullString(course.Room),
		helpers.GetNullInt64(course.TeacherID),
	).Scan(&course.ID, &course.CourseCode, &course.Credits, &course.MaxStudents, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return dberrors.TranslateUniqueViolation(err)
	}

	return nil
}

// nullableInt treats a zero value as absent so the schema default applies.
func nullableInt(i int) sql.NullInt32 {
	if i == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(i), Valid: true}
}

// GetByID retrieves a course by ID, optionally joining the owning teacher.
// Returns (nil, nil) when no row matches.
func (r *CourseRepository) GetByID(ctx context.Context, id int64, withTeacher bool) (*models.Course, error) {
	builder := r.sb.Select(courseColumns...).From("courses c")
	if withTeacher {
		builder = builder.Columns(courseTeacherColumns...).
			LeftJoin("teachers t ON c.teacher_id = t.id")
	}

	query, args, err := builder.Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	var course models.Course
	if err := scanCourse(r.db.QueryRow(ctx, query, args...), &course, withTeacher); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// List retrieves a page of courses with the total row count. The owning
// teacher is joined in when the teacher populate tag was requested.
func (r *CourseRepository) List(ctx context.Context, params helpers.ListParams, withTeacher bool) ([]models.Course, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("courses c").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	if totalItems == 0 {
		return []models.Course{}, 0, nil
	}

	builder := r.sb.Select(courseColumns...).From("courses c")
	if withTeacher {
		builder = builder.Columns(courseTeacherColumns...).
			LeftJoin("teachers t ON c.teacher_id = t.id")
	}

	querySql, queryArgs, err := builder.
		OrderBy(params.OrderBy()).
		Limit(uint64(params.Limit)).
		Offset(params.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, 0, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := scanCourse(rows, &course, withTeacher); err != nil {
			return nil, 0, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, totalItems, nil
}

// Update persists the mutable columns of an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, credits = $3, duration = $4, max_students = $5,
			start_date = $6, end_date = $7, schedule = $8, status = $9, level = $10,
			prerequisites = $11, syllabus = $12, department = $13, room = $14,
			teacher_id = $15, updated_at = now()
		WHERE id = $16
		RETURNING updated_at
	`

	var schedule interface{}
	if len(course.Schedule) > 0 {
		schedule = []byte(course.Schedule)
	}

	err := r.db.QueryRow(ctx, query,
		course.Title,
		helpers.GetNullString(course.Description),
		course.Credits,
		helpers.GetNullInt32(course.Duration),
		course.MaxStudents,
		course.StartDate,
		course.EndDate,
		schedule,
		course.Status,
		levelNullString(course.Level),
		helpers.GetNullString(course.Prerequisites),
		helpers.GetNullString(course.Syllabus),
		helpers.GetNullString(course.Department),
		helpers.GetNullString(course.Room),
		helpers.GetNullInt64(course.TeacherID),
		course.ID,
	).Scan(&course.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCourseNotFound
		}
		return dberrors.TranslateUniqueViolation(err)
	}

	return nil
}

// Delete removes a course by ID. Enrollments cascade at the schema level.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// GetEnrolledStudents loads the narrowed student projection for a batch
// of courses, keyed by course ID. Used by the students populate tag; the
// nested students never carry their own courses.
func (r *CourseRepository) GetEnrolledStudents(ctx context.Context, courseIDs []int64) (map[int64][]models.EnrolledStudent, error) {
	if len(courseIDs) == 0 {
		return map[int64][]models.EnrolledStudent{}, nil
	}

	query := `
		SELECT e.course_id, s.id, s.name, s.email, s.student_id, e.status, e.grade, e.score
		FROM enrollments e
		JOIN students s ON e.student_id = s.id
		WHERE e.course_id = ANY($1)
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled students: %w", err)
	}
	defer rows.Close()

	studentsByCourse := make(map[int64][]models.EnrolledStudent)
	for rows.Next() {
		var courseID int64
		var student models.EnrolledStudent
		if err := rows.Scan(
			&courseID, &student.ID, &student.Name, &student.Email,
			&student.StudentID, &student.EnrollmentStatus, &student.Grade, &student.Score,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enrolled student row: %w", err)
		}
		studentsByCourse[courseID] = append(studentsByCourse[courseID], student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return studentsByCourse, nil
}
