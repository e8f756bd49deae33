package models

import "time"

// Enrollment is the join record linking a student to a course. A given
// (student, course) pair may appear at most once; enrollment metadata
// lives nowhere else.
type Enrollment struct {
	ID             int64            `json:"id" db:"id"`
	StudentID      int64            `json:"studentId" db:"student_id"`
	CourseID       int64            `json:"courseId" db:"course_id"`
	EnrollmentDate time.Time        `json:"enrollmentDate" db:"enrollment_date"` // Defaults to creation date
	Status         EnrollmentStatus `json:"status" db:"status"`                  // enrolled, completed, dropped, failed
	Grade          *string          `json:"grade,omitempty" db:"grade"`          // Short grade string, e.g. "A-"
	Score          *float64         `json:"score,omitempty" db:"score"`          // 0-100, two decimals
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
