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

var teacherColumns = []string{
	"id", "name", "email", "employee_id", "department", "position",
	"qualifications", "specialization", "phone", "address", "date_of_birth",
	"hire_date", "salary", "status", "profile_picture", "created_at", "updated_at",
}

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanTeacher(row pgx.Row, teacher *models.Teacher) error {
	return row.Scan(
		&teacher.ID, &teacher.Name, &teacher.Email, &teacher.EmployeeID,
		&teacher.Department, &teacher.Position, &teacher.Qualifications,
		&teacher.Specialization, &teacher.Phone, &teacher.Address,
		&teacher.DateOfBirth, &teacher.HireDate, &teacher.Salary,
		&teacher.Status, &teacher.ProfilePicture, &teacher.CreatedAt, &teacher.UpdatedAt,
	)
}

// Create inserts a new teacher, minting an employee code from
// teacher_code_seq when none was supplied.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (name, email, employee_id, department, position, qualifications,
			specialization, phone, address, date_of_birth, hire_date, salary, status, profile_picture)
		VALUES ($1, $2,
			COALESCE(NULLIF($3, ''), 'EMP' || to_char(CURRENT_DATE, 'YYYY') || lpad(nextval('teacher_code_seq')::text, 4, '0')),
			$4, $5, $6, $7, $8, $9, $10, COALESCE($11, CURRENT_DATE), $12, $13, $14)
		RETURNING id, employee_id, hire_date, created_at, updated_at
	`

	var hireDate interface{}
	if !teacher.HireDate.IsZero() {
		hireDate = teacher.HireDate
	}

	err := r.db.QueryRow(ctx, query,
		teacher.Name,
		teacher.Email,
		teacher.EmployeeID,
		teacher.Department,
		helpers.GetNullString(teacher.Position),
		helpers.GetNullString(teacher.Qualifications),
		helpers.GetNullString(teacher.Specialization),
		helpers.GetNullString(teacher.Phone),
		helpers.GetNullString(teacher.Address),
		teacher.DateOfBirth,
		hireDate,
		helpers.GetNullFloat64(teacher.Salary),
		teacher.Status,
		helpers.GetNullString(teacher.ProfilePicture),
	).Scan(&teacher.ID, &teacher.EmployeeID, &teacher.HireDate, &teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		return dberrors.TranslateUniqueViolation(err)
	}

	return nil
}

// GetByID retrieves a teacher by ID. Returns (nil, nil) when no row matches.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build teacher query: %w", err)
	}

	var teacher models.Teacher
	if err := scanTeacher(r.db.QueryRow(ctx, query, args...), &teacher); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// List retrieves a page of teachers with the total row count
func (r *TeacherRepository) List(ctx context.Context, params helpers.ListParams) ([]models.Teacher, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("teachers").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count teachers query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count teachers: %w", err)
	}

	if totalItems == 0 {
		return []models.Teacher{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(teacherColumns...).
		From("teachers").
		OrderBy(params.OrderBy()).
		Limit(uint64(params.Limit)).
		Offset(params.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list teachers query")
		return nil, 0, fmt.Errorf("failed to query teachers: %w", err)
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := scanTeacher(rows, &teacher); err != nil {
			return nil, 0, fmt.Errorf("failed to scan teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return teachers, totalItems, nil
}

// Update persists the mutable columns of an existing teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $1, email = $2, department = $3, position = $4, qualifications = $5,
			specialization = $6, phone = $7, address = $8, date_of_birth = $9,
			hire_date = $10, salary = $11, status = $12, profile_picture = $13, updated_at = now()
		WHERE id = $14
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		teacher.Name,
		teacher.Email,
		teacher.Department,
		helpers.GetNullString(teacher.Position),
		helpers.GetNullString(teacher.Qualifications),
		helpers.GetNullString(teacher.Specialization),
		helpers.GetNullString(teacher.Phone),
		helpers.GetNullString(teacher.Address),
		teacher.DateOfBirth,
		teacher.HireDate,
		helpers.GetNullFloat64(teacher.Salary),
		teacher.Status,
		helpers.GetNullString(teacher.ProfilePicture),
		teacher.ID,
	).Scan(&teacher.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrTeacherNotFound
		}
		return dberrors.TranslateUniqueViolation(err)
	}

	return nil
}

// Delete removes a teacher by ID. Courses owned by the teacher keep their
// row and get a NULL teacher_id at the schema level.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// GetOwnedCourses loads the narrowed course projection for a batch of
// teachers, keyed by teacher ID. Used by the courses populate tag.
func (r *TeacherRepository) GetOwnedCourses(ctx context.Context, teacherIDs []int64) (map[int64][]models.CourseSummary, error) {
	if len(teacherIDs) == 0 {
		return map[int64][]models.CourseSummary{}, nil
	}

	query := `
		SELECT teacher_id, id, title, course_code, credits, status
		FROM courses
		WHERE teacher_id = ANY($1)
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query, teacherIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query owned courses: %w", err)
	}
	defer rows.Close()

	coursesByTeacher := make(map[int64][]models.CourseSummary)
	for rows.Next() {
		var teacherID int64
		var course models.CourseSummary
		if err := rows.Scan(&teacherID, &course.ID, &course.Title, &course.CourseCode, &course.Credits, &course.Status); err != nil {
			return nil, fmt.Errorf("failed to scan owned course row: %w", err)
		}
		coursesByTeacher[teacherID] = append(coursesByTeacher[teacherID], course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coursesByTeacher, nil
}
