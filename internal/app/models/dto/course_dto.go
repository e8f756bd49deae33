package dto

import "encoding/json"

// CreateCourseRequest represents the request to create a course
type CreateCourseRequest struct {
	Title         string          `json:"title" binding:"required,min=3,max=200"`
	CourseCode    string          `json:"courseCode" binding:"omitempty,max=20"`
	Description   *string         `json:"description" binding:"omitempty,max=2000"`
	Credits       *int            `json:"credits" binding:"omitempty,min=1,max=10"`
	Duration      *int            `json:"duration" binding:"omitempty,min=1"`
	MaxStudents   *int            `json:"maxStudents" binding:"omitempty,min=1"`
	StartDate     *string         `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string         `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Schedule      json.RawMessage `json:"schedule" binding:"omitempty"`
	Status        string          `json:"status" binding:"omitempty,oneof=draft active completed cancelled"`
	Level         *string         `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Prerequisites *string         `json:"prerequisites" binding:"omitempty,max=1000"`
	Syllabus      *string         `json:"syllabus" binding:"omitempty,max=5000"`
	Department    *string         `json:"department" binding:"omitempty,max=100"`
	Room          *string         `json:"room" binding:"omitempty,max=50"`
	TeacherID     *int64          `json:"teacherId" binding:"omitempty,min=1"`
}

// UpdateCourseRequest represents a partial course update
type UpdateCourseRequest struct {
	Title         *string         `json:"title" binding:"omitempty,min=3,max=200"`
	Description   *string         `json:"description" binding:"omitempty,max=2000"`
	Credits       *int            `json:"credits" binding:"omitempty,min=1,max=10"`
	Duration      *int            `json:"duration" binding:"omitempty,min=1"`
	MaxStudents   *int            `json:"maxStudents" binding:"omitempty,min=1"`
	StartDate     *string         `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string         `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Schedule      json.RawMessage `json:"schedule" binding:"omitempty"`
	Status        *string         `json:"status" binding:"omitempty,oneof=draft active completed cancelled"`
	Level         *string         `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Prerequisites *string         `json:"prerequisites" binding:"omitempty,max=1000"`
	Syllabus      *string         `json:"syllabus" binding:"omitempty,max=5000"`
	Department    *string         `json:"department" binding:"omitempty,max=100"`
	Room          *string         `json:"room" binding:"omitempty,max=50"`
	TeacherID     *int64          `json:"teacherId" binding:"omitempty,min=1"`
}
