package models

import "time"

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID             int64         `json:"id" db:"id" example:"1"`                          // Unique identifier for the teacher record
	Name           string        `json:"name" db:"name" example:"Jane Smith"`             // Full name, 2-100 characters
	Email          string        `json:"email" db:"email" example:"jane@example.com"`     // Unique email address
	EmployeeID     string        `json:"employeeId" db:"employee_id" example:"EMP20260001"` // Unique employee code, generated when absent
	Department     string        `json:"department" db:"department" example:"Mathematics"`  // Owning department, required
	Position       *string       `json:"position,omitempty" db:"position"`
	Qualifications *string       `json:"qualifications,omitempty" db:"qualifications"`
	Specialization *string       `json:"specialization,omitempty" db:"specialization"`
	Phone          *string       `json:"phone,omitempty" db:"phone"`
	Address        *string       `json:"address,omitempty" db:"address"`
	DateOfBirth    *time.Time    `json:"dateOfBirth,omitempty" db:"date_of_birth"` // Must precede the current date
	HireDate       time.Time     `json:"hireDate" db:"hire_date"`                  // Defaults to creation date
	Salary         *float64      `json:"salary,omitempty" db:"salary"`             // Non-negative
	Status         TeacherStatus `json:"status" db:"status" example:"active"`      // active, inactive, on_leave, terminated
	ProfilePicture *string       `json:"profilePicture,omitempty" db:"profile_picture"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Courses []CourseSummary `json:"courses,omitempty"` // Courses owned by the teacher
}

// CourseSummary is the narrowed course projection attached to a teacher
// when the courses relation is populated.
type CourseSummary struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	CourseCode string       `json:"courseCode"`
	Credits    int          `json:"credits"`
	Status     CourseStatus `json:"status"`
}
