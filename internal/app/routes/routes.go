package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/app/controllers"
	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Profile route requires a valid token
	authProtected := v1.Group("/auth")
	authProtected.Use(authMiddleware.JWTAuth())
	{
		authProtected.GET("/me", authController.GetProfile)
	}

	// --- Student routes ---
	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudentByID)

		studentsProtected := students.Group("")
		studentsProtected.Use(authMiddleware.JWTAuth())
		{
			studentsProtected.POST("", studentController.CreateStudent)
			studentsProtected.PUT("/:id", studentController.UpdateStudent)
			studentsProtected.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	// --- Teacher routes ---
	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.ListTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)

		teachersProtected := teachers.Group("")
		teachersProtected.Use(authMiddleware.JWTAuth())
		{
			teachersProtected.POST("", teacherController.CreateTeacher)
			teachersProtected.PUT("/:id", teacherController.UpdateTeacher)
			teachersProtected.DELETE("/:id", teacherController.DeleteTeacher)
		}
	}

	// --- Course routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		coursesProtected := courses.Group("")
		coursesProtected.Use(authMiddleware.JWTAuth())
		{
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.PUT("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	// --- Enrollment routes ---
	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.ListEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)

		enrollmentsProtected := enrollments.Group("")
		enrollmentsProtected.Use(authMiddleware.JWTAuth())
		{
			enrollmentsProtected.POST("", enrollmentController.CreateEnrollment)
			enrollmentsProtected.PUT("/:id", enrollmentController.UpdateEnrollment)
			enrollmentsProtected.DELETE("/:id", enrollmentController.DeleteEnrollment)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
