package dto

// CreateEnrollmentRequest represents the request to enroll a student in a course
type CreateEnrollmentRequest struct {
	StudentID      int64    `json:"studentId" binding:"required,min=1"`
	CourseID       int64    `json:"courseId" binding:"required,min=1"`
	EnrollmentDate *string  `json:"enrollmentDate" binding:"omitempty,datetime=2006-01-02"`
	Status         string   `json:"status" binding:"omitempty,oneof=enrolled completed dropped failed"`
	Grade          *string  `json:"grade" binding:"omitempty,max=5"`
	Score          *float64 `json:"score" binding:"omitempty,min=0,max=100"`
}

// UpdateEnrollmentRequest represents a partial enrollment update. The
// (student, course) pair is immutable; only the metadata can change.
type UpdateEnrollmentRequest struct {
	EnrollmentDate *string  `json:"enrollmentDate" binding:"omitempty,datetime=2006-01-02"`
	Status         *string  `json:"status" binding:"omitempty,oneof=enrolled completed dropped failed"`
	Grade          *string  `json:"grade" binding:"omitempty,max=5"`
	Score          *float64 `json:"score" binding:"omitempty,min=0,max=100"`
}
