package dto

// CreateTeacherRequest represents the request to create a teacher
type CreateTeacherRequest struct {
	Name           string   `json:"name" binding:"required,min=2,max=100"`
	Email          string   `json:"email" binding:"required,email"`
	EmployeeID     string   `json:"employeeId" binding:"omitempty,max=20"`
	Department     string   `json:"department" binding:"required,min=2,max=100"`
	Position       *string  `json:"position" binding:"omitempty,max=100"`
	Qualifications *string  `json:"qualifications" binding:"omitempty,max=500"`
	Specialization *string  `json:"specialization" binding:"omitempty,max=200"`
	Phone          *string  `json:"phone" binding:"omitempty,phone,max=20"`
	Address        *string  `json:"address" binding:"omitempty,max=500"`
	DateOfBirth    *string  `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	HireDate       *string  `json:"hireDate" binding:"omitempty,datetime=2006-01-02"`
	Salary         *float64 `json:"salary" binding:"omitempty,min=0"`
	Status         string   `json:"status" binding:"omitempty,oneof=active inactive on_leave terminated"`
	ProfilePicture *string  `json:"profilePicture" binding:"omitempty,url"`
}

// UpdateTeacherRequest represents a partial teacher update
type UpdateTeacherRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	Department     *string  `json:"department" binding:"omitempty,min=2,max=100"`
	Position       *string  `json:"position" binding:"omitempty,max=100"`
	Qualifications *string  `json:"qualifications" binding:"omitempty,max=500"`
	Specialization *string  `json:"specialization" binding:"omitempty,max=200"`
	Phone          *string  `json:"phone" binding:"omitempty,phone,max=20"`
	Address        *string  `json:"address" binding:"omitempty,max=500"`
	DateOfBirth    *string  `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	HireDate       *string  `json:"hireDate" binding:"omitempty,datetime=2006-01-02"`
	Salary         *float64 `json:"salary" binding:"omitempty,min=0"`
	Status         *string  `json:"status" binding:"omitempty,oneof=active inactive on_leave terminated"`
	ProfilePicture *string  `json:"profilePicture" binding:"omitempty,url"`
}
