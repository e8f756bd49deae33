package services

import (
	"context"
	"fmt"
	"time"

	"schoolhub/internal/app/models"
	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/helpers"
)

// CourseSortFields whitelists the sortBy values accepted by course lists
var CourseSortFields = map[string]string{
	"title":      "c.title",
	"courseCode": "c.course_code",
	"credits":    "c.credits",
	"department": "c.department",
	"startDate":  "c.start_date",
	"status":     "c.status",
	"createdAt":  "c.created_at",
	"updatedAt":  "c.updated_at",
}

// Populate tags recognized by course endpoints.
const (
	PopulateTeacher  = "teacher"
	PopulateStudents = "students"
)

// CourseStore is the persistence surface the course service relies on
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64, withTeacher bool) (*models.Course, error)
	List(ctx context.Context, params helpers.ListParams, withTeacher bool) ([]models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	GetEnrolledStudents(ctx context.Context, courseIDs []int64) (map[int64][]models.EnrolledStudent, error)
}

// TeacherGetter resolves teacher references when assigning a course owner
type TeacherGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
}

// CourseService handles course-related operations
type CourseService struct {
	courseRepo  CourseStore
	teacherRepo TeacherGetter
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore, teacherRepo TeacherGetter) *CourseService {
	return &CourseService{
		courseRepo:  courseRepo,
		teacherRepo: teacherRepo,
	}
}

// validateCourseDates requires the end date to fall strictly after the
// start date when both are present.
func validateCourseDates(start, end *time.Time) error {
	if start != nil && end != nil && !end.After(*start) {
		return apperrors.NewValidationError("endDate must be after startDate")
	}
	return nil
}

// checkTeacher verifies that a referenced teacher exists
func (s *CourseService) checkTeacher(ctx context.Context, teacherID *int64) error {
	if teacherID == nil {
		return nil
	}
	teacher, err := s.teacherRepo.GetByID(ctx, *teacherID)
	if err != nil {
		return fmt.Errorf("error checking teacher: %w", err)
	}
	if teacher == nil {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// CreateCourse validates and persists a new course
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	startDate, err := helpers.ParseDatePtr(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate must be a valid date")
	}
	endDate, err := helpers.ParseDatePtr(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate must be a valid date")
	}
	if err := validateCourseDates(startDate, endDate); err != nil {
		return nil, err
	}

	if err := s.checkTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:         req.Title,
		CourseCode:    req.CourseCode,
		Description:   req.Description,
		StartDate:     startDate,
		EndDate:       endDate,
		Schedule:      req.Schedule,
		Status:        models.CourseStatus(req.Status),
		Prerequisites: req.Prerequisites,
		Syllabus:      req.Syllabus,
		Department:    req.Department,
		Room:          req.Room,
		TeacherID:     req.TeacherID,
		Duration:      req.Duration,
	}
	if course.Status == "" {
		course.Status = models.CourseStatusDraft
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.MaxStudents != nil {
		course.MaxStudents = *req.MaxStudents
	}
	if req.Level != nil {
		level := models.CourseLevel(*req.Level)
		course.Level = &level
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// ListCourses retrieves a page of courses plus the total count. The
// teacher tag joins the owning teacher; the students tag batch-loads the
// enrolled students.
func (s *CourseService) ListCourses(ctx context.Context, params helpers.ListParams) ([]models.Course, int64, error) {
	withTeacher := helpers.HasTag(params.Populate, PopulateTeacher)

	courses, totalItems, err := s.courseRepo.List(ctx, params, withTeacher)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving courses: %w", err)
	}

	if helpers.HasTag(params.Populate, PopulateStudents) && len(courses) > 0 {
		if err := s.attachStudents(ctx, courses); err != nil {
			return nil, 0, err
		}
	}

	return courses, totalItems, nil
}

// GetCourseByID retrieves a single course, honoring populate tags
func (s *CourseService) GetCourseByID(ctx context.Context, id int64, populate []string) (*models.Course, error) {
	withTeacher := helpers.HasTag(populate, PopulateTeacher)

	course, err := s.courseRepo.GetByID(ctx, id, withTeacher)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if helpers.HasTag(populate, PopulateStudents) {
		courses := []models.Course{*course}
		if err := s.attachStudents(ctx, courses); err != nil {
			return nil, err
		}
		course = &courses[0]
	}

	return course, nil
}

// UpdateCourse applies a partial update, only touching supplied fields
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.Duration != nil {
		course.Duration = req.Duration
	}
	if req.MaxStudents != nil {
		course.MaxStudents = *req.MaxStudents
	}
	if req.StartDate != nil {
		startDate, err := helpers.ParseDatePtr(req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("startDate must be a valid date")
		}
		course.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := helpers.ParseDatePtr(req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("endDate must be a valid date")
		}
		course.EndDate = endDate
	}
	if len(req.Schedule) > 0 {
		course.Schedule = req.Schedule
	}
	if req.Status != nil {
		course.Status = models.CourseStatus(*req.Status)
	}
	if req.Level != nil {
		level := models.CourseLevel(*req.Level)
		course.Level = &level
	}
	if req.Prerequisites != nil {
		course.Prerequisites = req.Prerequisites
	}
	if req.Syllabus != nil {
		course.Syllabus = req.Syllabus
	}
	if req.Department != nil {
		course.Department = req.Department
	}
	if req.Room != nil {
		course.Room = req.Room
	}
	if req.TeacherID != nil {
		if err := s.checkTeacher(ctx, req.TeacherID); err != nil {
			return nil, err
		}
		course.TeacherID = req.TeacherID
	}

	if err := validateCourseDates(course.StartDate, course.EndDate); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course by ID. Enrollments go with it.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

func (s *CourseService) attachStudents(ctx context.Context, courses []models.Course) error {
	ids := make([]int64, len(courses))
	for i := range courses {
		ids[i] = courses[i].ID
	}

	studentsByCourse, err := s.courseRepo.GetEnrolledStudents(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading enrolled students: %w", err)
	}

	for i := range courses {
		courses[i].Students = studentsByCourse[courses[i].ID]
	}

	return nil
}
