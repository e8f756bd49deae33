package dto

// CreateStudentRequest represents the request to create a student
type CreateStudentRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=100"`
	Email          string  `json:"email" binding:"required,email"`
	StudentID      string  `json:"studentId" binding:"omitempty,max=20"`
	DateOfBirth    *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Phone          *string `json:"phone" binding:"omitempty,phone,max=20"`
	Address        *string `json:"address" binding:"omitempty,max=500"`
	EnrollmentDate *string `json:"enrollmentDate" binding:"omitempty,datetime=2006-01-02"`
	Status         string  `json:"status" binding:"omitempty,oneof=active inactive graduated suspended"`
	ProfilePicture *string `json:"profilePicture" binding:"omitempty,url"`
}

// UpdateStudentRequest represents a partial student update; only supplied
// fields are applied.
type UpdateStudentRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	DateOfBirth    *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Phone          *string `json:"phone" binding:"omitempty,phone,max=20"`
	Address        *string `json:"address" binding:"omitempty,max=500"`
	EnrollmentDate *string `json:"enrollmentDate" binding:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive graduated suspended"`
	ProfilePicture *string `json:"profilePicture" binding:"omitempty,url"`
}
