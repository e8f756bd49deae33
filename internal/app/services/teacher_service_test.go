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

type mockTeacherStore struct {
	createFn          func(ctx context.Context, teacher *models.Teacher) error
	getByIDFn         func(ctx context.Context, id int64) (*models.Teacher, error)
	listFn            func(ctx context.Context, params helpers.ListParams) ([]models.Teacher, int64, error)
	updateFn          func(ctx context.Context, teacher *models.Teacher) error
	deleteFn          func(ctx context.Context, id int64) error
	getOwnedCoursesFn func(ctx context.Context, teacherIDs []int64) (map[int64][]models.CourseSummary, error)
}

func (m *mockTeacherStore) Create(ctx context.Context, teacher *models.Teacher) error {
	return m.createFn(ctx, teacher)
}

func (m *mockTeacherStore) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTeacherStore) List(ctx context.Context, params helpers.ListParams) ([]models.Teacher, int64, error) {
	return m.listFn(ctx, params)
}

func (m *mockTeacherStore) Update(ctx context.Context, teacher *models.Teacher) error {
	return m.updateFn(ctx, teacher)
}

func (m *mockTeacherStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTeacherStore) GetOwnedCourses(ctx context.Context, teacherIDs []int64) (map[int64][]models.CourseSummary, error) {
	return m.getOwnedCoursesFn(ctx, teacherIDs)
}

func TestCreateTeacherRejectsNegativeSalary(t *testing.T) {
	svc := NewTeacherService(&mockTeacherStore{})
	salary := -100.0

	_, err := svc.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Name:       "Dr. Smith",
		Email:      "smith@example.com",
		Department: "Mathematics",
		Salary:     &salary,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation failure, got %v", err)
	}
}

func TestCreateTeacherDefaultsStatus(t *testing.T) {
	store := &mockTeacherStore{
		createFn: func(ctx context.Context, teacher *models.Teacher) error {
			teacher.ID = 1
			teacher.EmployeeID = "EMP20260001"
			return nil
		},
	}
	svc := NewTeacherService(store)

	teacher, err := svc.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Name:       "Dr. Smith",
		Email:      "smith@example.com",
		Department: "Mathematics",
	})
	if err != nil {
		t.Fatalf("CreateTeacher returned error: %v", err)
	}
	if teacher.Status != models.TeacherStatusActive {
		t.Errorf("expected default status %q, got %q", models.TeacherStatusActive, teacher.Status)
	}
	if teacher.EmployeeID != "EMP20260001" {
		t.Errorf("expected generated employee ID to be returned, got %q", teacher.EmployeeID)
	}
}

func TestGetTeacherByIDPopulatesOwnedCourses(t *testing.T) {
	store := &mockTeacherStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id, Name: "Dr. Smith"}, nil
		},
		getOwnedCoursesFn: func(ctx context.Context, teacherIDs []int64) (map[int64][]models.CourseSummary, error) {
			return map[int64][]models.CourseSummary{
				3: {{ID: 11, Title: "Calculus", CourseCode: "MAT0003"}},
			}, nil
		},
	}
	svc := NewTeacherService(store)

	teacher, err := svc.GetTeacherByID(context.Background(), 3, []string{PopulateCourses})
	if err != nil {
		t.Fatalf("GetTeacherByID returned error: %v", err)
	}
	if len(teacher.Courses) != 1 || teacher.Courses[0].CourseCode != "MAT0003" {
		t.Errorf("expected owned courses attached, got %+v", teacher.Courses)
	}
}

func TestUpdateTeacherNotFound(t *testing.T) {
	store := &mockTeacherStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Teacher, error) {
			return nil, nil
		},
	}
	svc := NewTeacherService(store)

	_, err := svc.UpdateTeacher(context.Background(), 3, &dto.UpdateTeacherRequest{})
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Errorf("expected ErrTeacherNotFound, got %v", err)
	}
}
