package models

// StudentStatus defines the lifecycle state of a student record
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusSuspended StudentStatus = "suspended"
)

// TeacherStatus defines the lifecycle state of a teacher record
type TeacherStatus string

const (
	TeacherStatusActive     TeacherStatus = "active"
	TeacherStatusInactive   TeacherStatus = "inactive"
	TeacherStatusOnLeave    TeacherStatus = "on_leave"
	TeacherStatusTerminated TeacherStatus = "terminated"
)

// CourseStatus defines the lifecycle state of a course
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusActive    CourseStatus = "active"
	CourseStatusCompleted CourseStatus = "completed"
	CourseStatusCancelled CourseStatus = "cancelled"
)

// CourseLevel defines the difficulty level of a course
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

// EnrollmentStatus defines the state of a student's enrollment in a course
type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
	EnrollmentStatusFailed    EnrollmentStatus = "failed"
)
