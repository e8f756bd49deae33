package services

import (
	"context"
	"fmt"

	"schoolhub/internal/app/models"
	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/app/repositories"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/helpers"
)

// EnrollmentSortFields whitelists the sortBy values accepted by
// enrollment lists
var EnrollmentSortFields = map[string]string{
	"enrollmentDate": "e.enrollment_date",
	"status":         "e.status",
	"grade":          "e.grade",
	"score":          "e.score",
	"createdAt":      "e.created_at",
	"updatedAt":      "e.updated_at",
}

// Populate tags recognized by enrollment endpoints.
const (
	PopulateStudent = "student"
	PopulateCourse  = "course"
)

// EnrollmentStore is the persistence surface the enrollment service
// relies on
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64, withStudent, withCourse bool) (*models.Enrollment, error)
	List(ctx context.Context, params helpers.ListParams, filter repositories.EnrollmentFilter, withStudent, withCourse bool) ([]models.Enrollment, int64, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

// StudentGetter resolves the student side of an enrollment
type StudentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// CourseGetter resolves the course side of an enrollment
type CourseGetter interface {
	GetByID(ctx context.Context, id int64, withTeacher bool) (*models.Course, error)
}

// EnrollmentService handles enrollment-related operations
type EnrollmentService struct {
	enrollmentRepo EnrollmentStore
	studentRepo    StudentGetter
	courseRepo     CourseGetter
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentStore, studentRepo StudentGetter, courseRepo CourseGetter) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// CreateEnrollment links a student to a course. Both sides must exist;
// a duplicate (student, course) pair is rejected as a conflict.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID, false)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	enrollmentDate, err := helpers.ParseDatePtr(req.EnrollmentDate)
	if err != nil {
		return nil, apperrors.NewValidationError("enrollmentDate must be a valid date")
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    models.EnrollmentStatus(req.Status),
		Grade:     req.Grade,
		Score:     req.Score,
	}
	if enrollmentDate != nil {
		enrollment.EnrollmentDate = *enrollmentDate
	}
	if enrollment.Status == "" {
		enrollment.Status = models.EnrollmentStatusEnrolled
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// ListEnrollments retrieves a page of enrollments plus the total count,
// optionally filtered to one student or course and with either side of
// the relation joined in.
func (s *EnrollmentService) ListEnrollments(ctx context.Context, params helpers.ListParams, filter repositories.EnrollmentFilter) ([]models.Enrollment, int64, error) {
	withStudent := helpers.HasTag(params.Populate, PopulateStudent)
	withCourse := helpers.HasTag(params.Populate, PopulateCourse)

	enrollments, totalItems, err := s.enrollmentRepo.List(ctx, params, filter, withStudent, withCourse)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	return enrollments, totalItems, nil
}

// GetEnrollmentByID retrieves a single enrollment, honoring populate tags
func (s *EnrollmentService) GetEnrollmentByID(ctx context.Context, id int64, populate []string) (*models.Enrollment, error) {
	withStudent := helpers.HasTag(populate, PopulateStudent)
	withCourse := helpers.HasTag(populate, PopulateCourse)

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id, withStudent, withCourse)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	return enrollment, nil
}

// UpdateEnrollment applies a partial update to enrollment metadata. The
// (student, course) pair itself never changes.
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id, false, false)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	if req.EnrollmentDate != nil {
		enrollmentDate, err := helpers.ParseDatePtr(req.EnrollmentDate)
		if err != nil {
			return nil, apperrors.NewValidationError("enrollmentDate must be a valid date")
		}
		enrollment.EnrollmentDate = *enrollmentDate
	}
	if req.Status != nil {
		enrollment.Status = models.EnrollmentStatus(*req.Status)
	}
	if req.Grade != nil {
		enrollment.Grade = req.Grade
	}
	if req.Score != nil {
		enrollment.Score = req.Score
	}

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// DeleteEnrollment removes an enrollment by ID
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.enrollmentRepo.Delete(ctx, id)
}
