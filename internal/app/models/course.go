package models

import (
	"encoding/json"
	"time"
)

// Course represents a course offered by the school.
type Course struct {
	ID            int64           `json:"id" db:"id"`
	Title         string          `json:"title" db:"title"`                             // 3-200 characters
	CourseCode    string          `json:"courseCode" db:"course_code"`                  // Unique code, generated from the department when absent
	Description   *string         `json:"description,omitempty" db:"description"`       // Nullable
	Credits       int             `json:"credits" db:"credits"`                         // 1-10, defaults to 3
	Duration      *int            `json:"duration,omitempty" db:"duration"`             // Duration in weeks
	MaxStudents   int             `json:"maxStudents" db:"max_students"`                // At least 1, defaults to 30
	StartDate     *time.Time      `json:"startDate,omitempty" db:"start_date"`
	EndDate       *time.Time      `json:"endDate,omitempty" db:"end_date"`              // Strictly after StartDate when both are set
	Schedule      json.RawMessage `json:"schedule,omitempty" db:"schedule"`             // Opaque schedule blob
	Status        CourseStatus    `json:"status" db:"status"`                           // draft, active, completed, cancelled
	Level         *CourseLevel    `json:"level,omitempty" db:"level"`                   // beginner, intermediate, advanced
	Prerequisites *string         `json:"prerequisites,omitempty" db:"prerequisites"`
	Syllabus      *string         `json:"syllabus,omitempty" db:"syllabus"`
	Department    *string         `json:"department,omitempty" db:"department"`
	Room          *string         `json:"room,omitempty" db:"room"`
	TeacherID     *int64          `json:"teacherId,omitempty" db:"teacher_id"` // Owning teacher, nullable
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Teacher  *TeacherSummary   `json:"teacher,omitempty"`  // Owning teacher
	Students []EnrolledStudent `json:"students,omitempty"` // Enrolled students
}

// TeacherSummary is the narrowed teacher projection attached to a course
// when the teacher relation is populated.
type TeacherSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
}

// EnrolledStudent is the narrowed student projection attached to a course
// when the students relation is populated. Kept to one level: the nested
// student never carries its own courses.
type EnrolledStudent struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	StudentID        string           `json:"studentId"`
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus"`
	Grade            *string          `json:"grade,omitempty"`
	Score            *float64         `json:"score,omitempty"`
}
