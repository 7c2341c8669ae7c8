// Package routes wires controllers onto the versioned API surface.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/devansh/hostelhub/internal/app/controllers"
	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	roomController *controllers.RoomController,
	hostelController *controllers.HostelController,
	leaveController *controllers.LeaveRequestController,
	disciplinaryController *controllers.DisciplinaryController,
	issueController *controllers.IssueController,
	paymentController *controllers.PaymentController,
	announcementController *controllers.AnnouncementController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	users := v1.Group("/users")
	{
		users.POST("/login", userController.Login)
		users.POST("/logout", userController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		usersAuth := authenticated.Group("/users")
		{
			usersAuth.GET("/me", userController.Me)
			usersAuth.POST("/register",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), userController.Register)
			usersAuth.PATCH("/:id/status",
				authMiddleware.RoleRequired(models.RoleAdmin), userController.UpdateStatus)
		}

		students := authenticated.Group("/students")
		{
			students.POST("/create",
				authMiddleware.RoleRequired(models.RoleAdmin), studentController.Enroll)
			students.GET("",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), studentController.List)
			students.GET("/me", studentController.GetOwn)
			students.GET("/:userId", studentController.GetByUserID)
			students.PUT("/:userId", studentController.Update)
			students.DELETE("/:userId",
				authMiddleware.RoleRequired(models.RoleAdmin), studentController.Delete)
		}

		rooms := authenticated.Group("/rooms")
		{
			rooms.GET("", roomController.List)
			rooms.GET("/:id", roomController.Get)

			roomsAdmin := rooms.Group("")
			roomsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				roomsAdmin.POST("", roomController.Create)
				roomsAdmin.PUT("/:id", roomController.Update)
				roomsAdmin.PATCH("/:id/toggle", roomController.ToggleActive)
				roomsAdmin.DELETE("/:id", roomController.Delete)
			}
		}

		hostels := authenticated.Group("/hostels")
		{
			hostels.GET("", hostelController.List)
			hostels.GET("/:id", hostelController.Get)

			hostelsAdmin := hostels.Group("")
			hostelsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				hostelsAdmin.POST("", hostelController.Create)
				hostelsAdmin.PUT("/:id", hostelController.Update)
				hostelsAdmin.PATCH("/:id/toggle", hostelController.ToggleActive)
				hostelsAdmin.DELETE("/:id", hostelController.Delete)
			}
		}

		leaves := authenticated.Group("/leaves")
		{
			leaves.POST("", leaveController.Create)
			leaves.GET("", leaveController.List)
			leaves.GET("/:id", leaveController.Get)
			leaves.PATCH("/:id/status",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), leaveController.UpdateStatus)
			leaves.DELETE("/:id", leaveController.Delete)
		}

		disciplinary := authenticated.Group("/disciplinary")
		{
			disciplinary.POST("",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), disciplinaryController.Create)
			disciplinary.GET("", disciplinaryController.List)
			disciplinary.GET("/:id", disciplinaryController.Get)
			disciplinary.PUT("/:id",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), disciplinaryController.Update)
			disciplinary.DELETE("/:id",
				authMiddleware.RoleRequired(models.RoleAdmin), disciplinaryController.Delete)
		}

		issues := authenticated.Group("/issues")
		{
			issues.POST("", issueController.Create)
			issues.GET("", issueController.List)
			issues.GET("/:id", issueController.Get)
			issues.PUT("/:id", issueController.Update)
			issues.PATCH("/:id/status",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), issueController.UpdateStatus)
			issues.DELETE("/:id", issueController.Delete)

			issues.POST("/:id/comments", issueController.AddComment)
			issues.GET("/:id/comments", issueController.ListComments)
			issues.PUT("/comments/:commentId", issueController.UpdateComment)
			issues.DELETE("/comments/:commentId", issueController.DeleteComment)
		}

		payments := authenticated.Group("/payments")
		{
			payments.POST("",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), paymentController.Create)
			payments.GET("", paymentController.List)
			payments.GET("/stats",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), paymentController.Stats)
			payments.GET("/:id", paymentController.Get)
			payments.PUT("/:id",
				authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff), paymentController.Update)
			payments.DELETE("/:id",
				authMiddleware.RoleRequired(models.RoleAdmin), paymentController.Delete)
		}

		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.List)
			announcements.GET("/:id", announcementController.Get)

			announcementsStaff := announcements.Group("")
			announcementsStaff.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff))
			{
				announcementsStaff.POST("", announcementController.Create)
				announcementsStaff.PUT("/:id", announcementController.Update)
				announcementsStaff.DELETE("/:id", announcementController.Delete)
			}
		}
	}
}
