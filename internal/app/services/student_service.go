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

// StudentSortFields whitelists the sortBy values accepted by student
// lists, mapped to their database columns. Anything else falls back to
// created_at.
var StudentSortFields = map[string]string{
	"name":           "name",
	"email":          "email",
	"studentId":      "student_id",
	"enrollmentDate": "enrollment_date",
	"status":         "status",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

// PopulateCourses is the populate tag attaching enrolled courses to a
// student.
const PopulateCourses = "courses"

// StudentStore is the persistence surface the student service relies on
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, params helpers.ListParams) ([]models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	GetEnrolledCourses(ctx context.Context, studentIDs []int64) (map[int64][]models.EnrolledCourse, error)
}

// StudentService handles student-related operations
type StudentService struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// validateStudentFields applies the semantic checks the binding tags
// cannot express.
func validateStudentFields(dateOfBirth *time.Time, phone *string) error {
	if dateOfBirth != nil && !dateOfBirth.Before(time.Now()) {
		return apperrors.NewValidationError("dateOfBirth must precede the current date")
	}
	if phone != nil && !validation.ValidPhone(*phone) {
		return apperrors.NewValidationError("phone has an invalid format")
	}
	return nil
}

// CreateStudent validates and persists a new student, returning it with
// generated fields populated.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	dateOfBirth, err := helpers.ParseDatePtr(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("dateOfBirth must be a valid date")
	}

	if err := validateStudentFields(dateOfBirth, req.Phone); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:           req.Name,
		Email:          req.Email,
		StudentID:      req.StudentID,
		DateOfBirth:    dateOfBirth,
		Phone:          req.Phone,
		Address:        req.Address,
		Status:         models.StudentStatus(req.Status),
		ProfilePicture: req.ProfilePicture,
	}
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}

	if enrollmentDate, err := helpers.ParseDatePtr(req.EnrollmentDate); err != nil {
		return nil, apperrors.NewValidationError("enrollmentDate must be a valid date")
	} else if enrollmentDate != nil {
		student.EnrollmentDate = *enrollmentDate
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// ListStudents retrieves a page of students plus the total count,
// eager-loading enrolled courses when the courses tag was requested.
func (s *StudentService) ListStudents(ctx context.Context, params helpers.ListParams) ([]models.Student, int64, error) {
	students, totalItems, err := s.studentRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}

	if helpers.HasTag(params.Populate, PopulateCourses) && len(students) > 0 {
		if err := s.attachCourses(ctx, students); err != nil {
			return nil, 0, err
		}
	}

	return students, totalItems, nil
}

// GetStudentByID retrieves a single student, honoring the same populate
// tags as the list endpoint.
func (s *StudentService) GetStudentByID(ctx context.Context, id int64, populate []string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if helpers.HasTag(populate, PopulateCourses) {
		students := []models.Student{*student}
		if err := s.attachCourses(ctx, students); err != nil {
			return nil, err
		}
		student = &students[0]
	}

	return student, nil
}

// UpdateStudent applies a partial update, only touching supplied fields
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := helpers.ParseDatePtr(req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("dateOfBirth must be a valid date")
		}
		student.DateOfBirth = dateOfBirth
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.EnrollmentDate != nil {
		enrollmentDate, err := helpers.ParseDate(*req.EnrollmentDate)
		if err != nil {
			return nil, apperrors.NewValidationError("enrollmentDate must be a valid date")
		}
		student.EnrollmentDate = enrollmentDate
	}
	if req.Status != nil {
		student.Status = models.StudentStatus(*req.Status)
	}
	if req.ProfilePicture != nil {
		student.ProfilePicture = req.ProfilePicture
	}

	if err := validateStudentFields(student.DateOfBirth, student.Phone); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student by ID. Enrollments go with it.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// attachCourses eager-loads the enrolled-course projection for a slice
// of students in one batch.
func (s *StudentService) attachCourses(ctx context.Context, students []models.Student) error {
	ids := make([]int64, len(students))
	for i := range students {
		ids[i] = students[i].ID
	}

	coursesByStudent, err := s.studentRepo.GetEnrolledCourses(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading enrolled courses: %w", err)
	}

	for i := range students {
		students[i].Courses = coursesByStudent[students[i].ID]
	}

	return nil
}
