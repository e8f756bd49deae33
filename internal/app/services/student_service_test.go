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

// mockStudentStore is a hand-written StudentStore double. Behavior is
// overridden per test through the function fields.
type mockStudentStore struct {
	createFn             func(ctx context.Context, student *models.Student) error
	getByIDFn            func(ctx context.Context, id int64) (*models.Student, error)
	listFn               func(ctx context.Context, params helpers.ListParams) ([]models.Student, int64, error)
	updateFn             func(ctx context.Context, student *models.Student) error
	deleteFn             func(ctx context.Context, id int64) error
	getEnrolledCoursesFn func(ctx context.Context, studentIDs []int64) (map[int64][]models.EnrolledCourse, error)
}

func (m *mockStudentStore) Create(ctx context.Context, student *models.Student) error {
	return m.createFn(ctx, student)
}

func (m *mockStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockStudentStore) List(ctx context.Context, params helpers.ListParams) ([]models.Student, int64, error) {
	return m.listFn(ctx, params)
}

func (m *mockStudentStore) Update(ctx context.Context, student *models.Student) error {
	return m.updateFn(ctx, student)
}

func (m *mockStudentStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockStudentStore) GetEnrolledCourses(ctx context.Context, studentIDs []int64) (map[int64][]models.EnrolledCourse, error) {
	return m.getEnrolledCoursesFn(ctx, studentIDs)
}

func strPtr(s string) *string { return &s }

func TestCreateStudentDefaultsStatus(t *testing.T) {
	store := &mockStudentStore{
		createFn: func(ctx context.Context, student *models.Student) error {
			student.ID = 1
			student.StudentID = "STU20260001"
			return nil
		},
	}
	svc := NewStudentService(store)

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}

	if student.Status != models.StudentStatusActive {
		t.Errorf("expected default status %q, got %q", models.StudentStatusActive, student.Status)
	}
	if student.StudentID != "STU20260001" {
		t.Errorf("expected generated student ID to be returned, got %q", student.StudentID)
	}
}

func TestCreateStudentRejectsFutureDateOfBirth(t *testing.T) {
	store := &mockStudentStore{
		createFn: func(ctx context.Context, student *models.Student) error {
			t.Fatal("Create should not be called for an invalid request")
			return nil
		},
	}
	svc := NewStudentService(store)

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		DateOfBirth: strPtr("2999-01-01"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation failure, got %v", err)
	}
}

func TestCreateStudentRejectsInvalidPhone(t *testing.T) {
	store := &mockStudentStore{}
	svc := NewStudentService(store)

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: strPtr("not-a-phone"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation failure, got %v", err)
	}
}

func TestGetStudentByIDNotFound(t *testing.T) {
	store := &mockStudentStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, nil
		},
	}
	svc := NewStudentService(store)

	_, err := svc.GetStudentByID(context.Background(), 42, nil)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestGetStudentByIDPopulatesCourses(t *testing.T) {
	courses := []models.EnrolledCourse{
		{ID: 7, Title: "Algebra", CourseCode: "MAT0001", Credits: 3, EnrollmentStatus: models.EnrollmentStatusEnrolled},
	}
	store := &mockStudentStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return &models.Student{ID: id, Name: "Jane Doe"}, nil
		},
		getEnrolledCoursesFn: func(ctx context.Context, studentIDs []int64) (map[int64][]models.EnrolledCourse, error) {
			if len(studentIDs) != 1 || studentIDs[0] != 42 {
				t.Errorf("expected batch lookup for [42], got %v", studentIDs)
			}
			return map[int64][]models.EnrolledCourse{42: courses}, nil
		},
	}
	svc := NewStudentService(store)

	student, err := svc.GetStudentByID(context.Background(), 42, []string{PopulateCourses})
	if err != nil {
		t.Fatalf("GetStudentByID returned error: %v", err)
	}
	if len(student.Courses) != 1 || student.Courses[0].CourseCode != "MAT0001" {
		t.Errorf("expected enrolled courses to be attached, got %+v", student.Courses)
	}
}

func TestGetStudentByIDIgnoresUnknownPopulateTag(t *testing.T) {
	store := &mockStudentStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return &models.Student{ID: id}, nil
		},
		getEnrolledCoursesFn: func(ctx context.Context, studentIDs []int64) (map[int64][]models.EnrolledCourse, error) {
			t.Fatal("GetEnrolledCourses should not be called for an unknown tag")
			return nil, nil
		},
	}
	svc := NewStudentService(store)

	student, err := svc.GetStudentByID(context.Background(), 1, []string{"teacher"})
	if err != nil {
		t.Fatalf("GetStudentByID returned error: %v", err)
	}
	if student.Courses != nil {
		t.Errorf("expected no courses attached, got %+v", student.Courses)
	}
}

func TestListStudentsPopulatesCoursesInBatch(t *testing.T) {
	store := &mockStudentStore{
		listFn: func(ctx context.Context, params helpers.ListParams) ([]models.Student, int64, error) {
			return []models.Student{{ID: 1}, {ID: 2}}, 2, nil
		},
		getEnrolledCoursesFn: func(ctx context.Context, studentIDs []int64) (map[int64][]models.EnrolledCourse, error) {
			if len(studentIDs) != 2 {
				t.Errorf("expected one batch lookup for both students, got %v", studentIDs)
			}
			return map[int64][]models.EnrolledCourse{
				2: {{ID: 9, Title: "Physics", CourseCode: "PHY0002"}},
			}, nil
		},
	}
	svc := NewStudentService(store)

	students, total, err := svc.ListStudents(context.Background(), helpers.ListParams{
		Limit: 10, Page: 1, Sort: "desc", SortBy: "created_at",
		Populate: []string{PopulateCourses},
	})
	if err != nil {
		t.Fatalf("ListStudents returned error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
	if len(students[0].Courses) != 0 {
		t.Errorf("student without enrollments should have no courses, got %+v", students[0].Courses)
	}
	if len(students[1].Courses) != 1 {
		t.Errorf("expected one course for second student, got %+v", students[1].Courses)
	}
}

func TestUpdateStudentAppliesOnlySuppliedFields(t *testing.T) {
	var updated *models.Student
	store := &mockStudentStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return &models.Student{
				ID:     id,
				Name:   "Jane Doe",
				Email:  "jane@example.com",
				Status: models.StudentStatusActive,
			}, nil
		},
		updateFn: func(ctx context.Context, student *models.Student) error {
			updated = student
			return nil
		},
	}
	svc := NewStudentService(store)

	_, err := svc.UpdateStudent(context.Background(), 5, &dto.UpdateStudentRequest{
		Status: strPtr("graduated"),
	})
	if err != nil {
		t.Fatalf("UpdateStudent returned error: %v", err)
	}

	if updated.Status != models.StudentStatusGraduated {
		t.Errorf("expected status graduated, got %q", updated.Status)
	}
	if updated.Name != "Jane Doe" || updated.Email != "jane@example.com" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	store := &mockStudentStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, nil
		},
	}
	svc := NewStudentService(store)

	_, err := svc.UpdateStudent(context.Background(), 5, &dto.UpdateStudentRequest{})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestCreateStudentPropagatesConflict(t *testing.T) {
	store := &mockStudentStore{
		createFn: func(ctx context.Context, student *models.Student) error {
			return apperrors.ErrStudentEmailExists
		},
	}
	svc := NewStudentService(store)

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})
	if !errors.Is(err, apperrors.ErrStudentEmailExists) {
		t.Errorf("expected ErrStudentEmailExists, got %v", err)
	}
}
