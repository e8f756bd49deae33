package services

import (
	"context"
	"errors"
	"testing"

	"schoolhub/internal/app/models"
	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/app/repositories"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/helpers"
)

type mockEnrollmentStore struct {
	createFn  func(ctx context.Context, enrollment *models.Enrollment) error
	getByIDFn func(ctx context.Context, id int64, withStudent, withCourse bool) (*models.Enrollment, error)
	listFn    func(ctx context.Context, params helpers.ListParams, filter repositories.EnrollmentFilter, withStudent, withCourse bool) ([]models.Enrollment, int64, error)
	updateFn  func(ctx context.Context, enrollment *models.Enrollment) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockEnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return m.createFn(ctx, enrollment)
}

func (m *mockEnrollmentStore) GetByID(ctx context.Context, id int64, withStudent, withCourse bool) (*models.Enrollment, error) {
	return m.getByIDFn(ctx, id, withStudent, withCourse)
}

func (m *mockEnrollmentStore) List(ctx context.Context, params helpers.ListParams, filter repositories.EnrollmentFilter, withStudent, withCourse bool) ([]models.Enrollment, int64, error) {
	return m.listFn(ctx, params, filter, withStudent, withCourse)
}

func (m *mockEnrollmentStore) Update(ctx context.Context, enrollment *models.Enrollment) error {
	return m.updateFn(ctx, enrollment)
}

func (m *mockEnrollmentStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockStudentGetter struct {
	getByIDFn func(ctx context.Context, id int64) (*models.Student, error)
}

func (m *mockStudentGetter) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return m.getByIDFn(ctx, id)
}

type mockCourseGetter struct {
	getByIDFn func(ctx context.Context, id int64, withTeacher bool) (*models.Course, error)
}

func (m *mockCourseGetter) GetByID(ctx context.Context, id int64, withTeacher bool) (*models.Course, error) {
	return m.getByIDFn(ctx, id, withTeacher)
}

func existingStudent(ctx context.Context, id int64) (*models.Student, error) {
	return &models.Student{ID: id}, nil
}

func existingCourse(ctx context.Context, id int64, withTeacher bool) (*models.Course, error) {
	return &models.Course{ID: id}, nil
}

func TestCreateEnrollmentRejectsUnknownStudent(t *testing.T) {
	enrollments := &mockEnrollmentStore{}
	students := &mockStudentGetter{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, nil
		},
	}
	courses := &mockCourseGetter{getByIDFn: existingCourse}
	svc := NewEnrollmentService(enrollments, students, courses)

	_, err := svc.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		StudentID: 1, CourseID: 2,
	})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestCreateEnrollmentRejectsUnknownCourse(t *testing.T) {
	enrollments := &mockEnrollmentStore{}
	students := &mockStudentGetter{getByIDFn: existingStudent}
	courses := &mockCourseGetter{
		getByIDFn: func(ctx context.Context, id int64, withTeacher bool) (*models.Course, error) {
			return nil, nil
		},
	}
	svc := NewEnrollmentService(enrollments, students, courses)

	_, err := svc.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		StudentID: 1, CourseID: 2,
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCreateEnrollmentDefaultsStatus(t *testing.T) {
	enrollments := &mockEnrollmentStore{
		createFn: func(ctx context.Context, enrollment *models.Enrollment) error {
			enrollment.ID = 1
			return nil
		},
	}
	svc := NewEnrollmentService(enrollments,
		&mockStudentGetter{getByIDFn: existingStudent},
		&mockCourseGetter{getByIDFn: existingCourse},
	)

	enrollment, err := svc.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		StudentID: 1, CourseID: 2,
	})
	if err != nil {
		t.Fatalf("CreateEnrollment returned error: %v", err)
	}
	if enrollment.Status != models.EnrollmentStatusEnrolled {
		t.Errorf("expected default status %q, got %q", models.EnrollmentStatusEnrolled, enrollment.Status)
	}
}

func TestCreateEnrollmentPropagatesDuplicateConflict(t *testing.T) {
	enrollments := &mockEnrollmentStore{
		createFn: func(ctx context.Context, enrollment *models.Enrollment) error {
			return apperrors.ErrAlreadyEnrolled
		},
	}
	svc := NewEnrollmentService(enrollments,
		&mockStudentGetter{getByIDFn: existingStudent},
		&mockCourseGetter{getByIDFn: existingCourse},
	)

	_, err := svc.CreateEnrollment(context.Background(), &dto.CreateEnrollmentRequest{
		StudentID: 1, CourseID: 2,
	})
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Errorf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestListEnrollmentsForwardsPopulateTags(t *testing.T) {
	enrollments := &mockEnrollmentStore{
		listFn: func(ctx context.Context, params helpers.ListParams, filter repositories.EnrollmentFilter, withStudent, withCourse bool) ([]models.Enrollment, int64, error) {
			if !withStudent || withCourse {
				t.Errorf("expected withStudent=true withCourse=false, got %v %v", withStudent, withCourse)
			}
			if filter.StudentID == nil || *filter.StudentID != 7 {
				t.Errorf("expected studentId filter 7, got %+v", filter)
			}
			return []models.Enrollment{{ID: 1}}, 1, nil
		},
	}
	svc := NewEnrollmentService(enrollments,
		&mockStudentGetter{getByIDFn: existingStudent},
		&mockCourseGetter{getByIDFn: existingCourse},
	)

	studentID := int64(7)
	result, total, err := svc.ListEnrollments(context.Background(),
		helpers.ListParams{Limit: 10, Page: 1, Sort: "desc", SortBy: "e.created_at", Populate: []string{PopulateStudent}},
		repositories.EnrollmentFilter{StudentID: &studentID},
	)
	if err != nil {
		t.Fatalf("ListEnrollments returned error: %v", err)
	}
	if total != 1 || len(result) != 1 {
		t.Errorf("expected one enrollment, got %d (total %d)", len(result), total)
	}
}

func TestUpdateEnrollmentKeepsPairImmutable(t *testing.T) {
	var updated *models.Enrollment
	enrollments := &mockEnrollmentStore{
		getByIDFn: func(ctx context.Context, id int64, withStudent, withCourse bool) (*models.Enrollment, error) {
			return &models.Enrollment{
				ID: id, StudentID: 1, CourseID: 2,
				Status: models.EnrollmentStatusEnrolled,
			}, nil
		},
		updateFn: func(ctx context.Context, enrollment *models.Enrollment) error {
			updated = enrollment
			return nil
		},
	}
	svc := NewEnrollmentService(enrollments,
		&mockStudentGetter{getByIDFn: existingStudent},
		&mockCourseGetter{getByIDFn: existingCourse},
	)

	grade := "A-"
	score := 91.5
	_, err := svc.UpdateEnrollment(context.Background(), 3, &dto.UpdateEnrollmentRequest{
		Status: strPtr("completed"),
		Grade:  &grade,
		Score:  &score,
	})
	if err != nil {
		t.Fatalf("UpdateEnrollment returned error: %v", err)
	}

	if updated.StudentID != 1 || updated.CourseID != 2 {
		t.Errorf("the (student, course) pair must not change, got %+v", updated)
	}
	if updated.Status != models.EnrollmentStatusCompleted || updated.Grade == nil || *updated.Grade != "A-" {
		t.Errorf("expected metadata applied, got %+v", updated)
	}
}

func TestUpdateEnrollmentNotFound(t *testing.T) {
	enrollments := &mockEnrollmentStore{
		getByIDFn: func(ctx context.Context, id int64, withStudent, withCourse bool) (*models.Enrollment, error) {
			return nil, nil
		},
	}
	svc := NewEnrollmentService(enrollments,
		&mockStudentGetter{getByIDFn: existingStudent},
		&mockCourseGetter{getByIDFn: existingCourse},
	)

	_, err := svc.UpdateEnrollment(context.Background(), 3, &dto.UpdateEnrollmentRequest{})
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Errorf("expected ErrEnrollmentNotFound, got %v", err)
	}
}
