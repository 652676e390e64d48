package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/http/handlers"
	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Attendance     *handlers.AttendanceHandler
	Leave          *handlers.LeaveHandler
	Documents      *handlers.DocumentsHandler
	Salary         *handlers.SalaryHandler
	Training       *handlers.TrainingHandler
	Clients        *handlers.ClientsHandler
	Notifications  *handlers.NotificationsHandler
	Dashboard      *handlers.DashboardHandler
	Contact        *handlers.ContactHandler
	Chat           *handlers.ChatHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/forgot-password", cfg.Auth.ForgotPassword)
	authGroup.Post("/verify-otp", cfg.Auth.VerifyOTP)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)
	authGroup.Post("/register", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Auth.Register)

	users := api.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	users.Get("/", cfg.Users.List)
	users.Get("/staff", cfg.Users.ListStaff)
	users.Delete("/:id", cfg.Users.Delete)

	attendance := api.Group("/attendance", cfg.AuthMiddleware.Handle)
	attendance.Post("/mark", cfg.Attendance.Mark)
	attendance.Put("/update", auth.RequireAdmin(), cfg.Attendance.Update)
	attendance.Get("/all", auth.RequireAdmin(), cfg.Attendance.ListAll)
	attendance.Get("/my", cfg.Attendance.My)
	attendance.Get("/user/:id", cfg.Attendance.ByUser)

	leave := api.Group("/leave", cfg.AuthMiddleware.Handle)
	leave.Post("/apply", cfg.Leave.Apply)
	leave.Get("/all", auth.RequireAdmin(), cfg.Leave.ListAll)
	leave.Get("/my", cfg.Leave.My)
	leave.Put("/update/:id", auth.RequireAdmin(), cfg.Leave.UpdateStatus)

	documents := api.Group("/documents", cfg.AuthMiddleware.Handle)
	documents.Post("/staff-upload", cfg.Documents.StaffUpload)
	documents.Get("/staff-uploads", auth.RequireAdmin(), cfg.Documents.ListStaffUploads)
	documents.Get("/download/:filename", auth.RequireAdmin(), cfg.Documents.Download)
	documents.Post("/admin-upload", auth.RequireAdmin(), cfg.Documents.AdminUpload)
	documents.Get("/client-download/:filename", cfg.Documents.ClientDownload)

	salary := api.Group("/salary", cfg.AuthMiddleware.Handle)
	salary.Post("/upload", auth.RequireAdmin(), cfg.Salary.Upload)
	salary.Get("/my-slips", cfg.Salary.MySlips)
	salary.Get("/download/:filename", cfg.Salary.Download)
	salary.Post("/request-slip", cfg.Salary.RequestSlip)

	training := api.Group("/training", cfg.AuthMiddleware.Handle)
	training.Post("/upload", auth.RequireAdmin(), cfg.Training.Upload)
	training.Get("/all", cfg.Training.ListAll)
	training.Delete("/delete/:id", auth.RequireAdmin(), cfg.Training.Delete)

	clients := api.Group("/clients")
	clients.Post("/complaint", cfg.Clients.SubmitComplaint)
	clients.Post("/feedback", cfg.Clients.SubmitFeedback)
	clients.Get("/public-feedbacks", cfg.Clients.PublicFeedback)
	clients.Get("/complaints", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Clients.ListComplaints)
	clients.Post("/complaint/assign", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Clients.AssignComplaint)
	clients.Get("/complaints/assigned", cfg.AuthMiddleware.Handle, cfg.Clients.MyComplaints)
	clients.Put("/complaint/resolve/:id", cfg.AuthMiddleware.Handle, cfg.Clients.ResolveComplaint)
	clients.Delete("/complaints/staff/:id", cfg.AuthMiddleware.Handle, cfg.Clients.HideComplaint)
	clients.Delete("/complaint/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Clients.DeleteComplaint)
	clients.Get("/feedbacks", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Clients.ListFeedback)
	clients.Put("/feedback/public/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Clients.PublishFeedback)
	clients.Put("/feedback/unpublic/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Clients.UnpublishFeedback)
	clients.Delete("/feedback/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Clients.DeleteFeedback)

	notifications := api.Group("/notifications", cfg.AuthMiddleware.Handle)
	notifications.Post("/send", auth.RequireAdmin(), cfg.Notifications.Send)
	notifications.Get("/my", cfg.Notifications.My)
	notifications.Post("/mark-read/:notificationId", cfg.Notifications.MarkRead)
	notifications.Post("/mark-all-read", cfg.Notifications.MarkAllRead)
	notifications.Get("/all", auth.RequireAdmin(), cfg.Notifications.ListAll)
	notifications.Put("/update/:id", auth.RequireAdmin(), cfg.Notifications.Update)
	notifications.Delete("/delete/:id", auth.RequireAdmin(), cfg.Notifications.Delete)

	dashboard := api.Group("/dashboard", cfg.AuthMiddleware.Handle)
	dashboard.Get("/admin", auth.RequireAdmin(), cfg.Dashboard.Admin)
	dashboard.Get("/staff", cfg.Dashboard.Staff)

	api.Post("/contact", cfg.Contact.Submit)

	api.Post("/chat", cfg.Chat.Ask)
	api.Post("/chat/reset", cfg.Chat.Reset)
}
