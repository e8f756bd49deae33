package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64         `json:"id" db:"id" example:"1"`                                    // Unique identifier for the student record
	Name           string        `json:"name" db:"name" example:"John Doe"`                         // Full name, 2-100 characters
	Email          string        `json:"email" db:"email" example:"john@example.com"`               // Unique email address
	StudentID      string        `json:"studentId" db:"student_id" example:"STU20260001"`           // Unique student code, generated when absent
	DateOfBirth    *time.Time    `json:"dateOfBirth,omitempty" db:"date_of_birth"`                  // Must precede the current date
	Phone          *string       `json:"phone,omitempty" db:"phone" example:"+15550100"`            // Pattern-validated phone number
	Address        *string       `json:"address,omitempty" db:"address"`                            // Postal address
	EnrollmentDate time.Time     `json:"enrollmentDate" db:"enrollment_date"`                       // Defaults to creation date
	Status         StudentStatus `json:"status" db:"status" example:"active"`                       // active, inactive, graduated, suspended
	ProfilePicture *string       `json:"profilePicture,omitempty" db:"profile_picture"`             // URL of the profile picture
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Courses []EnrolledCourse `json:"courses,omitempty"` // Courses the student is enrolled in
}

// EnrolledCourse is the narrowed course projection attached to a student
// when the courses relation is populated. Enrollment metadata rides along
// so callers do not need a second lookup.
type EnrolledCourse struct {
	ID               int64            `json:"id"`
	Title            string           `json:"title"`
	CourseCode       string           `json:"courseCode"`
	Credits          int              `json:"credits"`
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus"`
	Grade            *string          `json:"grade,omitempty"`
	Score            *float64         `json:"score,omitempty"`
}
