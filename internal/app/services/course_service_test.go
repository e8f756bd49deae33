package services

import (
	"context"
	"errors"
	"testing"

	"schoolhub/internal/app/models"
	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/helpers"
)

type mockCourseStore struct {
	createFn              func(ctx context.Context, course *models.Course) error
	getByIDFn             func(ctx context.Context, id int64, withTeacher bool) (*models.Course, error)
	listFn                func(ctx context.Context, params helpers.ListParams, withTeacher bool) ([]models.Course, int64, error)
	updateFn              func(ctx context.Context, course *models.Course) error
	deleteFn              func(ctx context.Context, id int64) error
	getEnrolledStudentsFn func(ctx context.Context, courseIDs []int64) (map[int64][]models.EnrolledStudent, error)
}

func (m *mockCourseStore) Create(ctx context.Context, course *models.Course) error {
	return m.createFn(ctx, course)
}

func (m *mockCourseStore) GetByID(ctx context.Context, id int64, withTeacher bool) (*models.Course, error) {
	return m.getByIDFn(ctx, id, withTeacher)
}

func (m *mockCourseStore) List(ctx context.Context, params helpers.ListParams, withTeacher bool) ([]models.Course, int64, error) {
	return m.listFn(ctx, params, withTeacher)
}

func (m *mockCourseStore) Update(ctx context.Context, course *models.Course) error {
	return m.updateFn(ctx, course)
}

func (m *mockCourseStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCourseStore) GetEnrolledStudents(ctx context.Context, courseIDs []int64) (map[int64][]models.EnrolledStudent, error) {
	return m.getEnrolledStudentsFn(ctx, courseIDs)
}

type mockTeacherGetter struct {
	getByIDFn func(ctx context.Context, id int64) (*models.Teacher, error)
}

func (m *mockTeacherGetter) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return m.getByIDFn(ctx, id)
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateCourseRejectsUnknownTeacher(t *testing.T) {
	courses := &mockCourseStore{
		createFn: func(ctx context.Context, course *models.Course) error {
			t.Fatal("Create should not be called when the teacher does not exist")
			return nil
		},
	}
	teachers := &mockTeacherGetter{
		getByIDFn: func(ctx context.Context, id int64) (*models.Teacher, error) {
			return nil, nil
		},
	}
	svc := NewCourseService(courses, teachers)

	_, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Title:     "Linear Algebra",
		TeacherID: int64Ptr(99),
	})
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Errorf("expected ErrTeacherNotFound, got %v", err)
	}
}

func TestCreateCourseRejectsEndDateBeforeStartDate(t *testing.T) {
	svc := NewCourseService(&mockCourseStore{}, &mockTeacherGetter{})

	_, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Title:     "Linear Algebra",
		StartDate: strPtr("2026-09-01"),
		EndDate:   strPtr("2026-09-01"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation failure for endDate == startDate, got %v", err)
	}
}

func TestCreateCourseDefaultsStatus(t *testing.T) {
	courses := &mockCourseStore{
		createFn: func(ctx context.Context, course *models.Course) error {
			course.ID = 1
			course.CourseCode = "GEN0001"
			return nil
		},
	}
	svc := NewCourseService(courses, &mockTeacherGetter{})

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Title: "Linear Algebra",
	})
	if err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if course.Status != models.CourseStatusDraft {
		t.Errorf("expected default status %q, got %q", models.CourseStatusDraft, course.Status)
	}
	if course.CourseCode != "GEN0001" {
		t.Errorf("expected generated course code to be returned, got %q", course.CourseCode)
	}
}

func TestGetCourseByIDJoinsTeacherWhenRequested(t *testing.T) {
	courses := &mockCourseStore{
		getByIDFn: func(ctx context.Context, id int64, withTeacher bool) (*models.Course, error) {
			if !withTeacher {
				t.Error("expected the teacher join to be requested")
			}
			return &models.Course{
				ID:      id,
				Title:   "Linear Algebra",
				Teacher: &models.TeacherSummary{ID: 3, Name: "Dr. Smith"},
			}, nil
		},
	}
	svc := NewCourseService(courses, &mockTeacherGetter{})

	course, err := svc.GetCourseByID(context.Background(), 1, []string{PopulateTeacher})
	if err != nil {
		t.Fatalf("GetCourseByID returned error: %v", err)
	}
	if course.Teacher == nil || course.Teacher.Name != "Dr. Smith" {
		t.Errorf("expected teacher summary attached, got %+v", course.Teacher)
	}
}

func TestGetCourseByIDPopulatesStudents(t *testing.T) {
	courses := &mockCourseStore{
		getByIDFn: func(ctx context.Context, id int64, withTeacher bool) (*models.Course, error) {
			return &models.Course{ID: id}, nil
		},
		getEnrolledStudentsFn: func(ctx context.Context, courseIDs []int64) (map[int64][]models.EnrolledStudent, error) {
			return map[int64][]models.EnrolledStudent{
				1: {{ID: 4, Name: "Jane Doe", StudentID: "STU20260001"}},
			}, nil
		},
	}
	svc := NewCourseService(courses, &mockTeacherGetter{})

	course, err := svc.GetCourseByID(context.Background(), 1, []string{PopulateStudents})
	if err != nil {
		t.Fatalf("GetCourseByID returned error: %v", err)
	}
	if len(course.Students) != 1 || course.Students[0].StudentID != "STU20260001" {
		t.Errorf("expected enrolled students attached, got %+v", course.Students)
	}
}

func TestUpdateCourseValidatesDatesAcrossOldAndNewValues(t *testing.T) {
	courses := &mockCourseStore{
		getByIDFn: func(ctx context.Context, id int64, withTeacher bool) (*models.Course, error) {
			start, _ := helpers.ParseDate("2026-09-01")
			return &models.Course{ID: id, Title: "Linear Algebra", StartDate: &start}, nil
		},
		updateFn: func(ctx context.Context, course *models.Course) error {
			t.Fatal("Update should not be called for an invalid date range")
			return nil
		},
	}
	svc := NewCourseService(courses, &mockTeacherGetter{})

	// New end date falls before the existing start date
	_, err := svc.UpdateCourse(context.Background(), 1, &dto.UpdateCourseRequest{
		EndDate: strPtr("2026-08-01"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation failure, got %v", err)
	}
}

func TestDeleteCourseNotFound(t *testing.T) {
	courses := &mockCourseStore{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.ErrCourseNotFound
		},
	}
	svc := NewCourseService(courses, &mockTeacherGetter{})

	if err := svc.DeleteCourse(context.Background(), 9); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}
