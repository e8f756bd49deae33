package services

import (
	"context"
	"fmt"
	"time"

	"schoolhub/internal/app/models"
	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/helpers"
	"schoolhub/internal/pkg/validation"
)

// TeacherSortFields whitelists the sortBy values accepted by teacher lists
var TeacherSortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"employeeId": "employee_id",
	"department": "department",
	"hireDate":   "hire_date",
	"salary":     "salary",
	"status":     "status",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
}

// TeacherStore is the persistence surface the teacher service relies on
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	List(ctx context.Context, params helpers.ListParams) ([]models.Teacher, int64, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
	GetOwnedCourses(ctx context.Context, teacherIDs []int64) (map[int64][]models.CourseSummary, error)
}

// TeacherService handles teacher-related operations
type TeacherService struct {
	teacherRepo TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo TeacherStore) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo}
}

func validateTeacherFields(dateOfBirth *time.Time, phone *string, salary *float64) error {
	if dateOfBirth != nil && !dateOfBirth.Before(time.Now()) {
		return apperrors.NewValidationError("dateOfBirth must precede the current date")
	}
	if phone != nil && !validation.ValidPhone(*phone) {
		return apperrors.NewValidationError("phone has an invalid format")
	}
	if salary != nil && *salary < 0 {
		return apperrors.NewValidationError("salary must be non-negative")
	}
	return nil
}

// CreateTeacher validates and persists a new teacher
func (s *TeacherService) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	dateOfBirth, err := helpers.ParseDatePtr(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("dateOfBirth must be a valid date")
	}

	if err := validateTeacherFields(dateOfBirth, req.Phone, req.Salary); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		Name:           req.Name,
		Email:          req.Email,
		EmployeeID:     req.EmployeeID,
		Department:     req.Department,
		Position:       req.Position,
		Qualifications: req.Qualifications,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Address:        req.Address,
		DateOfBirth:    dateOfBirth,
		Salary:         req.Salary,
		Status:         models.TeacherStatus(req.Status),
		ProfilePicture: req.ProfilePicture,
	}
	if teacher.Status == "" {
		teacher.Status = models.TeacherStatusActive
	}

	if hireDate, err := helpers.ParseDatePtr(req.HireDate); err != nil {
		return nil, apperrors.NewValidationError("hireDate must be a valid date")
	} else if hireDate != nil {
		teacher.HireDate = *hireDate
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// ListTeachers retrieves a page of teachers plus the total count,
// eager-loading owned courses when the courses tag was requested.
func (s *TeacherService) ListTeachers(ctx context.Context, params helpers.ListParams) ([]models.Teacher, int64, error) {
	teachers, totalItems, err := s.teacherRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving teachers: %w", err)
	}

	if helpers.HasTag(params.Populate, PopulateCourses) && len(teachers) > 0 {
		if err := s.attachCourses(ctx, teachers); err != nil {
			return nil, 0, err
		}
	}

	return teachers, totalItems, nil
}

// GetTeacherByID retrieves a single teacher, honoring populate tags
func (s *TeacherService) GetTeacherByID(ctx context.Context, id int64, populate []string) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.ErrTeacherNotFound
	}

	if helpers.HasTag(populate, PopulateCourses) {
		teachers := []models.Teacher{*teacher}
		if err := s.attachCourses(ctx, teachers); err != nil {
			return nil, err
		}
		teacher = &teachers[0]
	}

	return teacher, nil
}

// UpdateTeacher applies a partial update, only touching supplied fields
func (s *TeacherService) UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.ErrTeacherNotFound
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Email != nil {
		teacher.Email = *req.Email
	}
	if req.Department != nil {
		teacher.Department = *req.Department
	}
	if req.Position != nil {
		teacher.Position = req.Position
	}
	if req.Qualifications != nil {
		teacher.Qualifications = req.Qualifications
	}
	if req.Specialization != nil {
		teacher.Specialization = req.Specialization
	}
	if req.Phone != nil {
		teacher.Phone = req.Phone
	}
	if req.Address != nil {
		teacher.Address = req.Address
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := helpers.ParseDatePtr(req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("dateOfBirth must be a valid date")
		}
		teacher.DateOfBirth = dateOfBirth
	}
	if req.HireDate != nil {
		hireDate, err := helpers.ParseDate(*req.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("hireDate must be a valid date")
		}
		teacher.HireDate = hireDate
	}
	if req.Salary != nil {
		teacher.Salary = req.Salary
	}
	if req.Status != nil {
		teacher.Status = models.TeacherStatus(*req.Status)
	}
	if req.ProfilePicture != nil {
		teacher.ProfilePicture = req.ProfilePicture
	}

	if err := validateTeacherFields(teacher.DateOfBirth, teacher.Phone, teacher.Salary); err != nil {
		return nil, err
	}

	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// DeleteTeacher removes a teacher by ID. Courses keep their rows with a
// cleared teacher reference.
func (s *TeacherService) DeleteTeacher(ctx context.Context, id int64) error {
	return s.teacherRepo.Delete(ctx, id)
}

func (s *TeacherService) attachCourses(ctx context.Context, teachers []models.Teacher) error {
	ids := make([]int64, len(teachers))
	for i := range teachers {
		ids[i] = teachers[i].ID
	}

	coursesByTeacher, err := s.teacherRepo.GetOwnedCourses(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading owned courses: %w", err)
	}

	for i := range teachers {
		teachers[i].Courses = coursesByTeacher[teachers[i].ID]
	}

	return nil
}
